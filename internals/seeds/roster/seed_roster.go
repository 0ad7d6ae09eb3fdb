package roster

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/roster/model"
)

type SantriSeed struct {
	Nama     string `json:"nama"`
	Marhalah string `json:"marhalah"`
	Kelas    string `json:"kelas"`
}

type WaliKelasSeed struct {
	Nama     string `json:"nama"`
	Marhalah string `json:"marhalah"`
	Kelas    string `json:"kelas"`
	NomorWA  string `json:"nomor_wa"`
}

func SeedSantriFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file santri:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []SantriSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		if !constants.ValidMarhalah(data.Marhalah) {
			log.Printf("❌ Marhalah '%s' tidak dikenal, santri '%s' dilewati.", data.Marhalah, data.Nama)
			continue
		}

		var existing model.SantriModel
		if err := db.Where("santri_nama = ? AND santri_marhalah = ? AND santri_kelas = ?",
			data.Nama, data.Marhalah, data.Kelas).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Santri '%s' sudah ada, dilewati.", data.Nama)
			continue
		}

		row := model.SantriModel{
			SantriNama:     data.Nama,
			SantriMarhalah: data.Marhalah,
			SantriKelas:    data.Kelas,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert santri '%s': %v", data.Nama, err)
		} else {
			log.Printf("✅ Berhasil insert santri '%s'", data.Nama)
		}
	}
}

func SeedWaliKelasFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file wali kelas:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []WaliKelasSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.WaliKelasModel
		if err := db.Where("wali_kelas_marhalah = ? AND wali_kelas_kelas = ?",
			data.Marhalah, data.Kelas).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Wali kelas %s (%s) sudah ada, dilewati.", data.Kelas, data.Marhalah)
			continue
		}

		row := model.WaliKelasModel{
			WaliKelasNama:     data.Nama,
			WaliKelasMarhalah: data.Marhalah,
			WaliKelasKelas:    data.Kelas,
			WaliKelasNomorWA:  data.NomorWA,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert wali kelas '%s': %v", data.Nama, err)
		} else {
			log.Printf("✅ Berhasil insert wali kelas '%s'", data.Nama)
		}
	}
}
