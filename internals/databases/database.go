package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	attendanceModel "absensiku_backend/internals/features/attendance/model"
	locationModel "absensiku_backend/internals/features/locations/model"
	employeeModel "absensiku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=absensiku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
		// Duplicate key dari unique index (employee_id, attendance_day)
		// harus bisa dikenali sebagai gorm.ErrDuplicatedKey oleh service absensi.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// Migrate membuat/menyesuaikan skema, termasuk unique index
// (employee_id, attendance_day) di attendances.
func Migrate() {
	if err := DB.AutoMigrate(
		&employeeModel.EmployeeModel{},
		&locationModel.OfficeLocationModel{},
		&attendanceModel.AttendanceModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrate skema: %v", err)
	}
	log.Println("✅ Skema siap.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}
