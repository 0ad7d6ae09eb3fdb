package database

import (
	"log"

	attendanceModel "tahfidzku_backend/internals/features/attendance/model"
	halaqahModel "tahfidzku_backend/internals/features/halaqah/model"
	progressModel "tahfidzku_backend/internals/features/progress/model"
	rosterModel "tahfidzku_backend/internals/features/roster/model"
	userModel "tahfidzku_backend/internals/features/users/model"
)

// AutoMigrate menjalankan migrasi skema. Dipanggil hanya kalau
// DB_AUTO_MIGRATE=true; di produksi skema dikelola terpisah.
func AutoMigrate() {
	log.Println("🛠️ Menjalankan auto-migrate...")
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&rosterModel.SantriModel{},
		&rosterModel.MusammiModel{},
		&rosterModel.WaliKelasModel{},
		&halaqahModel.HalaqahModel{},
		&halaqahModel.HalaqahSantriModel{},
		&attendanceModel.AttendanceModel{},
		&progressModel.StudentProgressModel{},
	)
	if err != nil {
		log.Fatalf("❌ Auto-migrate gagal: %v", err)
	}
	log.Println("✅ Auto-migrate selesai.")
}
