package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/users/model"
)

type UserSeed struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nama     string `json:"nama"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_username = ?", data.Username).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User '%s' sudah ada, dilewati.", data.Username)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Username, err)
			continue
		}

		newUser := model.UserModel{
			UserUsername: data.Username,
			UserPassword: string(hashed),
			UserNama:     data.Nama,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Username, err)
		} else {
			log.Printf("✅ Berhasil insert user '%s'", data.Username)
		}
	}
}
