package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/users/auth/controller"
	"absensiku_backend/internals/middlewares"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	api.Get("/profile", authMiddleware.AuthMiddleware(db), authCtrl.GetProfile)
	api.Post("/logout", authMiddleware.AuthMiddleware(db), authCtrl.Logout)
}
