package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rosterCtrl "tahfidzku_backend/internals/features/roster/controller"
)

func RosterRoutes(r fiber.Router, db *gorm.DB) {
	santri := rosterCtrl.NewSantriController(db)
	sGroup := r.Group("/santri")
	sGroup.Get("/", santri.List)
	sGroup.Get("/:id", santri.GetByID)
	sGroup.Post("/", santri.Create)
	sGroup.Patch("/:id", santri.Update)
	sGroup.Delete("/:id", santri.Delete)

	musammi := rosterCtrl.NewMusammiController(db)
	mGroup := r.Group("/musammi")
	mGroup.Get("/", musammi.List)
	mGroup.Post("/", musammi.Create)
	mGroup.Patch("/:id", musammi.Update)
	mGroup.Delete("/:id", musammi.Delete)

	wali := rosterCtrl.NewWaliKelasController(db)
	wGroup := r.Group("/wali-kelas")
	wGroup.Get("/", wali.List)
	wGroup.Post("/", wali.Create)
	wGroup.Patch("/:id", wali.Update)
	wGroup.Delete("/:id", wali.Delete)
}
