// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "absensiku_backend/internals/features/attendance/route"
	locationRoute "absensiku_backend/internals/features/locations/route"
	authRoute "absensiku_backend/internals/features/users/auth/route"
	"absensiku_backend/internals/middlewares"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (per karyawan) =====================
	log.Println("[INFO] Setting up attendance & location routes...")
	api := app.Group("/api",
		middlewares.GlobalRateLimiter(),
		authMiddleware.AuthMiddleware(db),
	)
	attendanceRoute.AttendanceRoutes(api, db)
	locationRoute.LocationRoutes(api, db)
}
