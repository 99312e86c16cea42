package seed

import (
	"encoding/json"
	"log"
	"os"

	"github.com/wardrobe-shop/wardrobe-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type adminSeed struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type productSeed struct {
	Title   string  `json:"title"`
	Desc    string  `json:"desc"`
	Img     string  `json:"img"`
	Color   string  `json:"color"`
	Gender  string  `json:"gender"`
	Size    string  `json:"size"`
	Company string  `json:"company"`
	Price   float64 `json:"price"`
}

type seedData struct {
	Admin    adminSeed     `json:"admin"`
	Products []productSeed `json:"products"`
}

// Load resets the store and inserts the admin account and the product set
// from a JSON seed file. Loading twice leaves the same rows behind.
func Load(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []interface{}{
			&models.Address{}, &models.CartItem{}, &models.Cart{},
			&models.Order{}, &models.Product{}, &models.User{},
		} {
			if err := wipe.Delete(model).Error; err != nil {
				return err
			}
		}

		admin := models.User{
			Firstname: data.Admin.Firstname,
			Lastname:  data.Admin.Lastname,
			Username:  data.Admin.Username,
			Email:     data.Admin.Email,
			Password:  string(hash),
			IsAdmin:   true,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error; err != nil {
			return err
		}

		for _, p := range data.Products {
			product := models.Product{
				Title:   p.Title,
				Desc:    p.Desc,
				Img:     p.Img,
				Color:   p.Color,
				Gender:  p.Gender,
				Size:    p.Size,
				Company: p.Company,
				Price:   p.Price,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
		}

		log.Printf("Seed done: admin %s and %d products", admin.Email, len(data.Products))
		return nil
	})
}
