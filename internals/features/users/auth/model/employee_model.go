package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeModel merepresentasikan tabel employees.
// Dibuat lewat provisioning admin/seeder, read-only bagi core absensi.
type EmployeeModel struct {
	EmployeeID       uuid.UUID `gorm:"type:uuid;primaryKey;column:employee_id" json:"employee_id"`
	EmployeeNIP      string    `gorm:"size:20;uniqueIndex;not null;column:employee_nip" json:"employee_nip" validate:"required"`
	EmployeeName     string    `gorm:"size:100;not null;column:employee_name" json:"employee_name" validate:"required"`
	EmployeeEmail    string    `gorm:"size:255;uniqueIndex;not null;column:employee_email" json:"employee_email" validate:"required,email"`
	EmployeePassword string    `gorm:"not null;column:employee_password" json:"-" validate:"required,min=8"`
	EmployeePhone    *string   `gorm:"size:30;column:employee_phone" json:"employee_phone,omitempty"`
	EmployeePosition string    `gorm:"size:50;not null;default:'Staff';column:employee_position" json:"employee_position"`

	// Tanpa default DB: nilai false dari default tag akan di-skip GORM
	// saat INSERT, sehingga karyawan nonaktif tersimpan sebagai aktif.
	IsActive bool `gorm:"not null;column:is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (EmployeeModel) TableName() string { return "employees" }

// BeforeCreate mengisi UUID di aplikasi (portable untuk Postgres & SQLite test)
func (m *EmployeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.EmployeeID == uuid.Nil {
		m.EmployeeID = uuid.New()
	}
	return nil
}
