package model

import "time"

type SantriModel struct {
	SantriId       int64  `gorm:"primaryKey;autoIncrement;column:santri_id" json:"santri_id"`
	SantriNama     string `gorm:"not null;column:santri_nama" json:"santri_nama"`
	SantriMarhalah string `gorm:"not null;column:santri_marhalah" json:"santri_marhalah"`
	SantriKelas    string `gorm:"not null;column:santri_kelas" json:"santri_kelas"`

	SantriCreatedAt time.Time  `gorm:"column:santri_created_at;autoCreateTime" json:"santri_created_at"`
	SantriUpdatedAt *time.Time `gorm:"column:santri_updated_at;autoUpdateTime" json:"santri_updated_at,omitempty"`
}

func (SantriModel) TableName() string { return "santri" }
