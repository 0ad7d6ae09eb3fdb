package model

import "time"

// Satu baris = satu kehadiran seseorang pada satu sesi.
// Nama/marhalah/kelas disalin saat pencatatan supaya laporan lama tidak
// ikut berubah ketika data induk diedit.
// Tanggal disimpan string YYYY-MM-DD; perbandingan rentang cukup leksikografis.
type AttendanceModel struct {
	AttendanceId       int64  `gorm:"primaryKey;autoIncrement;column:attendance_id" json:"attendance_id"`
	AttendanceDate     string `gorm:"type:varchar(10);not null;index;column:attendance_date" json:"attendance_date"`
	AttendanceWaktu    string `gorm:"not null;column:attendance_waktu" json:"attendance_waktu"`
	AttendancePeran    string `gorm:"not null;column:attendance_peran" json:"attendance_peran"`
	AttendancePersonId int64  `gorm:"not null;index;column:attendance_person_id" json:"attendance_person_id"`

	AttendanceNama     string `gorm:"not null;column:attendance_nama" json:"attendance_nama"`
	AttendanceMarhalah string `gorm:"not null;column:attendance_marhalah" json:"attendance_marhalah"`
	AttendanceKelas    string `gorm:"not null;column:attendance_kelas" json:"attendance_kelas"`

	AttendanceHalaqahId *int64 `gorm:"index;column:attendance_halaqah_id" json:"attendance_halaqah_id,omitempty"`
	AttendanceStatus    string `gorm:"not null;column:attendance_status" json:"attendance_status"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendance" }
