package dto

import (
	"absensiku_backend/internals/features/users/auth/model"
)

// ============================
// Request DTO
// ============================

type LoginRequest struct {
	NIP      string `json:"nip" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ============================
// Response DTO
// ============================

type EmployeeDTO struct {
	ID       string  `json:"id"`
	NIP      string  `json:"nip"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Position string  `json:"position"`
}

type LoginResponseDTO struct {
	Token string      `json:"token"`
	User  EmployeeDTO `json:"user"`
}

// ============================
// Converter
// ============================

func ToEmployeeDTO(m model.EmployeeModel) EmployeeDTO {
	return EmployeeDTO{
		ID:       m.EmployeeID.String(),
		NIP:      m.EmployeeNIP,
		Name:     m.EmployeeName,
		Email:    m.EmployeeEmail,
		Phone:    m.EmployeePhone,
		Position: m.EmployeePosition,
	}
}
