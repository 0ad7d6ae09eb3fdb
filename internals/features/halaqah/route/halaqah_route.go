package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	halaqahCtrl "tahfidzku_backend/internals/features/halaqah/controller"
)

func HalaqahRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := halaqahCtrl.NewHalaqahController(db)

	g := r.Group("/halaqah")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/santri", ctrl.AddMembers)
	g.Delete("/:id/santri/:santri_id", ctrl.RemoveMember)
}
