package model

import "time"

// Musammi: pembimbing halaqah. Marhalah di sini adalah jenjang binaannya.
type MusammiModel struct {
	MusammiId       int64  `gorm:"primaryKey;autoIncrement;column:musammi_id" json:"musammi_id"`
	MusammiNama     string `gorm:"not null;column:musammi_nama" json:"musammi_nama"`
	MusammiMarhalah string `gorm:"not null;column:musammi_marhalah" json:"musammi_marhalah"`

	MusammiCreatedAt time.Time  `gorm:"column:musammi_created_at;autoCreateTime" json:"musammi_created_at"`
	MusammiUpdatedAt *time.Time `gorm:"column:musammi_updated_at;autoUpdateTime" json:"musammi_updated_at,omitempty"`
}

func (MusammiModel) TableName() string { return "musammi" }
