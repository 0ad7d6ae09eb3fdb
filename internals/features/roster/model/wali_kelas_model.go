package model

import "time"

type WaliKelasModel struct {
	WaliKelasId       int64  `gorm:"primaryKey;autoIncrement;column:wali_kelas_id" json:"wali_kelas_id"`
	WaliKelasNama     string `gorm:"not null;column:wali_kelas_nama" json:"wali_kelas_nama"`
	WaliKelasMarhalah string `gorm:"not null;column:wali_kelas_marhalah" json:"wali_kelas_marhalah"`
	WaliKelasKelas    string `gorm:"not null;column:wali_kelas_kelas" json:"wali_kelas_kelas"`

	// Nomor WA boleh kosong; laporan kelas tanpa nomor akan ditolak saat kirim.
	WaliKelasNomorWA string `gorm:"column:wali_kelas_nomor_wa" json:"wali_kelas_nomor_wa"`

	WaliKelasCreatedAt time.Time  `gorm:"column:wali_kelas_created_at;autoCreateTime" json:"wali_kelas_created_at"`
	WaliKelasUpdatedAt *time.Time `gorm:"column:wali_kelas_updated_at;autoUpdateTime" json:"wali_kelas_updated_at,omitempty"`
}

func (WaliKelasModel) TableName() string { return "wali_kelas" }
