package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfficeLocationModel merepresentasikan tabel office_locations.
// Lokasi boleh dinonaktifkan tapi tidak pernah dihapus selama masih
// direferensikan record absensi.
type OfficeLocationModel struct {
	LocationID        uuid.UUID `gorm:"type:uuid;primaryKey;column:location_id" json:"location_id"`
	LocationName      string    `gorm:"size:100;not null;column:location_name" json:"location_name"`
	LocationAddress   *string   `gorm:"column:location_address" json:"location_address,omitempty"`
	LocationLatitude  float64   `gorm:"not null;column:location_latitude" json:"location_latitude"`
	LocationLongitude float64   `gorm:"not null;column:location_longitude" json:"location_longitude"`
	LocationRadius    float64   `gorm:"not null;default:100;check:location_radius > 0;column:location_radius" json:"location_radius"`

	// Tanpa default DB: nilai false dari default tag akan di-skip GORM
	// saat INSERT, sehingga lokasi nonaktif tersimpan sebagai aktif.
	IsActive bool `gorm:"not null;column:is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (OfficeLocationModel) TableName() string { return "office_locations" }

func (m *OfficeLocationModel) BeforeCreate(tx *gorm.DB) error {
	if m.LocationID == uuid.Nil {
		m.LocationID = uuid.New()
	}
	return nil
}
