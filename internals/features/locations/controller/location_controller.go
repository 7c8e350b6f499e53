package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/locations/dto"
	"absensiku_backend/internals/features/locations/service"
	helper "absensiku_backend/internals/helpers"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

// =======================
// 📄 Get All Locations
// GET /api/locations
// =======================
func (ctrl *LocationController) GetAll(c *fiber.Ctx) error {
	locations, err := service.GetAllActive(ctrl.DB)
	if err != nil {
		log.Println("[ERROR] GetAll locations:", err)
		return helper.JsonInternalError(c, "Failed to get locations", err)
	}

	resp := make([]dto.OfficeLocationDTO, 0, len(locations))
	for _, l := range locations {
		resp = append(resp, dto.ToOfficeLocationDTO(l))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    resp,
		"total":   len(resp),
	})
}

// =======================
// 🔍 Get Location by ID
// GET /api/locations/:id
// =======================
func (ctrl *LocationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Location not found")
	}

	location, err := service.FindActiveByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Location not found")
		}
		log.Println("[ERROR] GetByID location:", err)
		return helper.JsonInternalError(c, "Failed to get location", err)
	}

	return helper.JsonOK(c, "", dto.ToOfficeLocationDTO(*location))
}
