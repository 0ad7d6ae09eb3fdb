package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtrl "tahfidzku_backend/internals/features/users/controller"
	"tahfidzku_backend/internals/middlewares"
)

func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewAuthController(db)
	r.Post("/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewAuthController(db)
	r.Post("/auth/register", ctrl.Register)
}
