package locations

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"absensiku_backend/internals/features/locations/model"
)

type OfficeLocationSeed struct {
	Name      string  `json:"name"`
	Address   *string `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

func SeedOfficeLocationsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []OfficeLocationSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range seeds {
		var count int64
		if err := db.Model(&model.OfficeLocationModel{}).
			Where("location_name = ?", s.Name).
			Count(&count).Error; err != nil {
			log.Fatalf("❌ Gagal cek lokasi %s: %v", s.Name, err)
		}
		if count > 0 {
			log.Printf("ℹ️ Lokasi '%s' sudah ada, dilewati.", s.Name)
			continue
		}

		radius := s.Radius
		if radius <= 0 {
			radius = 100 // default 100 meter
		}

		location := model.OfficeLocationModel{
			LocationName:      s.Name,
			LocationAddress:   s.Address,
			LocationLatitude:  s.Latitude,
			LocationLongitude: s.Longitude,
			LocationRadius:    radius,
			IsActive:          true,
		}
		if err := db.Create(&location).Error; err != nil {
			log.Fatalf("❌ Gagal insert lokasi %s: %v", s.Name, err)
		}
		log.Printf("✅ Lokasi '%s' berhasil dibuat.", s.Name)
	}
}
