package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/locations/controller"
)

func LocationRoutes(api fiber.Router, db *gorm.DB) {
	locationCtrl := controller.NewLocationController(db)

	locations := api.Group("/locations")
	locations.Get("/", locationCtrl.GetAll)
	locations.Get("/:id", locationCtrl.GetByID)
}
