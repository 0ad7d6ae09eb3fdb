package model

import (
	"time"

	"github.com/lib/pq"
)

type HalaqahModel struct {
	HalaqahId        int64  `gorm:"primaryKey;autoIncrement;column:halaqah_id" json:"halaqah_id"`
	HalaqahNama      string `gorm:"not null;column:halaqah_nama" json:"halaqah_nama"`
	HalaqahMarhalah  string `gorm:"not null;column:halaqah_marhalah" json:"halaqah_marhalah"`
	HalaqahMusammiId int64  `gorm:"not null;column:halaqah_musammi_id" json:"halaqah_musammi_id"`

	// Jenis halaqah string bebas ("Halaqah Utama", "Halaqah Pagi", dst).
	HalaqahJenis string `gorm:"not null;column:halaqah_jenis" json:"halaqah_jenis"`

	// Waktu sesi yang dipakai halaqah ini, disimpan sebagai text[].
	HalaqahWaktu pq.StringArray `gorm:"type:text[];column:halaqah_waktu" json:"halaqah_waktu"`

	HalaqahCreatedAt time.Time  `gorm:"column:halaqah_created_at;autoCreateTime" json:"halaqah_created_at"`
	HalaqahUpdatedAt *time.Time `gorm:"column:halaqah_updated_at;autoUpdateTime" json:"halaqah_updated_at,omitempty"`
}

func (HalaqahModel) TableName() string { return "halaqah" }

// Link keanggotaan santri di halaqah.
type HalaqahSantriModel struct {
	HalaqahSantriId        int64     `gorm:"primaryKey;autoIncrement;column:halaqah_santri_id" json:"halaqah_santri_id"`
	HalaqahSantriHalaqahId int64     `gorm:"not null;index;column:halaqah_santri_halaqah_id" json:"halaqah_santri_halaqah_id"`
	HalaqahSantriSantriId  int64     `gorm:"not null;index;column:halaqah_santri_santri_id" json:"halaqah_santri_santri_id"`
	HalaqahSantriCreatedAt time.Time `gorm:"column:halaqah_santri_created_at;autoCreateTime" json:"halaqah_santri_created_at"`
}

func (HalaqahSantriModel) TableName() string { return "halaqah_santri" }
