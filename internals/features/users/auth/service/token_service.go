// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/users/auth/model"
)

const accessTTLDefault = 24 * time.Hour

// GenerateToken membuat access token HS256 dengan klaim identitas karyawan
// (id, nip, name) — klaim yang sama dibaca ulang oleh auth middleware.
func GenerateToken(employee model.EmployeeModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	ttl := accessTTLDefault
	if raw := configs.GetEnv("JWT_EXPIRES_IN_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":   employee.EmployeeID.String(),
		"nip":  employee.EmployeeNIP,
		"name": employee.EmployeeName,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
