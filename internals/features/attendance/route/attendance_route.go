package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtrl "tahfidzku_backend/internals/features/attendance/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceCtrl.NewAttendanceController(db)

	g := r.Group("/attendance")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Post("/batch", ctrl.CreateBatch)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/session", ctrl.DeleteSession)
	g.Delete("/:id", ctrl.Delete)
}
