// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/configs"
	attendanceRoute "tahfidzku_backend/internals/features/attendance/route"
	halaqahRoute "tahfidzku_backend/internals/features/halaqah/route"
	progressRoute "tahfidzku_backend/internals/features/progress/route"
	reportRoute "tahfidzku_backend/internals/features/reports/route"
	rosterRoute "tahfidzku_backend/internals/features/roster/route"
	userRoute "tahfidzku_backend/internals/features/users/route"
	"tahfidzku_backend/internals/middlewares"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	userRoute.AuthPublicRoutes(public, db)

	// ===================== PRIVATE (JWT) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api",
		middlewares.AuthJWT(middlewares.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Mounting Users routes...")
	userRoute.AuthProtectedRoutes(private, db)

	log.Println("[INFO] Mounting Roster routes...")
	rosterRoute.RosterRoutes(private, db)

	log.Println("[INFO] Mounting Halaqah routes...")
	halaqahRoute.HalaqahRoutes(private, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(private, db)

	log.Println("[INFO] Mounting Progress routes...")
	progressRoute.ProgressRoutes(private, db)

	log.Println("[INFO] Mounting Report routes...")
	reportRoute.ReportRoutes(private, db)
}
