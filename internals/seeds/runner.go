package seeds

import (
	"gorm.io/gorm"

	roster "tahfidzku_backend/internals/seeds/roster"
	users "tahfidzku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	roster.SeedSantriFromJSON(db, "internals/seeds/roster/data_santri.json")
	roster.SeedWaliKelasFromJSON(db, "internals/seeds/roster/data_wali_kelas.json")
}
