package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressCtrl "tahfidzku_backend/internals/features/progress/controller"
)

func ProgressRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := progressCtrl.NewProgressController(db)

	g := r.Group("/progress")
	g.Get("/", ctrl.List)
	g.Post("/upsert", ctrl.Upsert)
	g.Delete("/month", ctrl.DeleteByMonth)
	g.Delete("/:id", ctrl.Delete)
}
