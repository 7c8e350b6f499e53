// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	employeeModel "absensiku_backend/internals/features/users/auth/model"
)

// AuthMiddleware memverifikasi bearer token dan memuat identitas karyawan
// ke locals: employee_id, employee_nip, employee_name
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "No token provided. Please login first.",
			})
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Authentication failed",
			})
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"success": false,
					"message": "Token expired. Please login again.",
				})
			}
			log.Println("[ERROR] Gagal parse token:", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid token",
			})
		}

		employeeID, err := extractEmployeeID(claims)
		if err != nil {
			log.Println("[ERROR] employee id:", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid token",
			})
		}

		// Pastikan karyawan masih terdaftar & aktif
		var employee employeeModel.EmployeeModel
		if err := db.Where("employee_id = ? AND is_active = ?", employeeID, true).
			First(&employee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"success": false,
					"message": "User not found or inactive",
				})
			}
			log.Println("[ERROR] DB error saat cek karyawan:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Authentication failed",
			})
		}

		// Identitas request, dibaca controller lewat locals
		c.Locals("employee_id", employee.EmployeeID.String())
		c.Locals("employee_nip", employee.EmployeeNIP)
		c.Locals("employee_name", employee.EmployeeName)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("missing bearer token")
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}

func extractEmployeeID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("claim id tidak ada")
	}
	return uuid.Parse(raw)
}
