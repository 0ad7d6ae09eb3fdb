package model

import "time"

// Capaian hafalan bulanan per santri. Satu baris per
// (santri, bulan, jenis); input ulang menimpa nilai lama.
type StudentProgressModel struct {
	StudentProgressId       int64  `gorm:"primaryKey;autoIncrement;column:student_progress_id" json:"student_progress_id"`
	StudentProgressSantriId int64  `gorm:"not null;uniqueIndex:uq_progress_key,priority:1;column:student_progress_santri_id" json:"student_progress_santri_id"`
	StudentProgressMonthKey string `gorm:"type:varchar(7);not null;uniqueIndex:uq_progress_key,priority:2;column:student_progress_month_key" json:"student_progress_month_key"`
	StudentProgressType     string `gorm:"not null;uniqueIndex:uq_progress_key,priority:3;column:student_progress_type" json:"student_progress_type"`

	// Hafalan & Murojaah dalam Juz, Ziyadah dalam Halaman.
	StudentProgressNilai float64 `gorm:"not null;column:student_progress_nilai" json:"student_progress_nilai"`

	StudentProgressCreatedAt time.Time  `gorm:"column:student_progress_created_at;autoCreateTime" json:"student_progress_created_at"`
	StudentProgressUpdatedAt *time.Time `gorm:"column:student_progress_updated_at;autoUpdateTime" json:"student_progress_updated_at,omitempty"`
}

func (StudentProgressModel) TableName() string { return "student_progress" }
