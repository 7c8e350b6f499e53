package employees

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"absensiku_backend/internals/features/users/auth/model"
	authService "absensiku_backend/internals/features/users/auth/service"
)

type EmployeeSeed struct {
	NIP      string  `json:"nip"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
	Position string  `json:"position"`
}

func SeedEmployeesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []EmployeeSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range seeds {
		var count int64
		if err := db.Model(&model.EmployeeModel{}).
			Where("employee_nip = ?", s.NIP).
			Count(&count).Error; err != nil {
			log.Fatalf("❌ Gagal cek NIP %s: %v", s.NIP, err)
		}
		if count > 0 {
			log.Printf("ℹ️ Karyawan dengan NIP '%s' sudah ada, dilewati.", s.NIP)
			continue
		}

		hashed, err := authService.HashPassword(s.Password)
		if err != nil {
			log.Fatalf("❌ Gagal hash password untuk %s: %v", s.NIP, err)
		}

		position := s.Position
		if position == "" {
			position = "Staff"
		}

		employee := model.EmployeeModel{
			EmployeeNIP:      s.NIP,
			EmployeeName:     s.Name,
			EmployeeEmail:    s.Email,
			EmployeePassword: hashed,
			EmployeePhone:    s.Phone,
			EmployeePosition: position,
			IsActive:         true,
		}
		if err := db.Create(&employee).Error; err != nil {
			log.Fatalf("❌ Gagal insert karyawan %s: %v", s.NIP, err)
		}
		log.Printf("✅ Karyawan '%s' (%s) berhasil dibuat.", s.Name, s.NIP)
	}
}
