package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/locations/model"
)

// FindActiveByID mencari lokasi aktif berdasarkan id
func FindActiveByID(db *gorm.DB, id uuid.UUID) (*model.OfficeLocationModel, error) {
	var loc model.OfficeLocationModel
	if err := db.Where("location_id = ? AND is_active = ?", id, true).
		First(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

// GetDefault me-resolve lokasi default untuk check-in tanpa location_id.
// Prioritas: env DEFAULT_LOCATION_ID → lokasi aktif yang paling dulu terdaftar.
func GetDefault(db *gorm.DB) (*model.OfficeLocationModel, error) {
	if raw := configs.GetEnv("DEFAULT_LOCATION_ID"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return FindActiveByID(db, id)
		}
	}

	var loc model.OfficeLocationModel
	if err := db.Where("is_active = ?", true).
		Order("created_at ASC").
		First(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

// GetAllActive mengembalikan semua lokasi aktif, diurutkan per nama
func GetAllActive(db *gorm.DB) ([]model.OfficeLocationModel, error) {
	var locations []model.OfficeLocationModel
	if err := db.Where("is_active = ?", true).
		Order("location_name ASC").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
