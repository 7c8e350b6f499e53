package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/users/auth/dto"
	"absensiku_backend/internals/features/users/auth/model"
	"absensiku_backend/internals/features/users/auth/service"
	helper "absensiku_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =======================
// 🔑 Login
// POST /api/auth/login  Body: {nip, password}
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "NIP and password are required")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "NIP and password are required")
	}

	var employee model.EmployeeModel
	err := ctrl.DB.Where("employee_nip = ? AND is_active = ?", body.NIP, true).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// NIP tidak dikenal dan password salah dibuat tidak bisa dibedakan
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid NIP or password")
		}
		log.Println("[ERROR] Login query:", err)
		return helper.JsonInternalError(c, "Internal server error", err)
	}

	if err := service.CheckPasswordHash(employee.EmployeePassword, body.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid NIP or password")
	}

	token, err := service.GenerateToken(employee)
	if err != nil {
		log.Println("[ERROR] Generate token:", err)
		return helper.JsonInternalError(c, "Internal server error", err)
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponseDTO{
		Token: token,
		User:  dto.ToEmployeeDTO(employee),
	})
}

// =======================
// 👤 Profile
// GET /api/auth/profile (auth)
// =======================
func (ctrl *AuthController) GetProfile(c *fiber.Ctx) error {
	employeeID, err := employeeIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var employee model.EmployeeModel
	if err := ctrl.DB.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] GetProfile query:", err)
		return helper.JsonInternalError(c, "Internal server error", err)
	}

	return helper.JsonOK(c, "", dto.ToEmployeeDTO(employee))
}

// =======================
// 🚪 Logout
// POST /api/auth/logout (auth) — token stateless, cukup dihapus di client
// =======================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Logout successful. Please remove token from client.", nil)
}

func employeeIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("employee_id").(string)
	if raw == "" {
		return uuid.Nil, errors.New("employee_id tidak ada di context")
	}
	return uuid.Parse(raw)
}
