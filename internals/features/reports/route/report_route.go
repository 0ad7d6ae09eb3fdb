package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtrl "tahfidzku_backend/internals/features/reports/controller"
)

func ReportRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportCtrl.NewReportController(db)

	g := r.Group("/reports")
	g.Get("/recap/person", ctrl.RecapPerson)
	g.Get("/recap/kelas", ctrl.RecapKelas)
	g.Get("/recap/waktu", ctrl.RecapWaktu)
	g.Get("/distribution/waktu", ctrl.DistributionWaktu)
	g.Get("/distribution/status", ctrl.DistributionStatus)
	g.Get("/chart/:kind", ctrl.Chart)
	g.Get("/export/:table", ctrl.Export)
	g.Get("/caption/daily", ctrl.CaptionDaily)
	g.Get("/caption/weekly", ctrl.CaptionWeekly)
	g.Get("/caption/monthly", ctrl.CaptionMonthly)
	g.Get("/progress/trend", ctrl.ProgressTrend)
	g.Post("/wa/generate", ctrl.GenerateWA)
	g.Get("/dashboard", ctrl.Dashboard)
	g.Post("/book", ctrl.GenerateBook)
}
