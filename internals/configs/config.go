package configs

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret     string
	AppEnv        string
	WorkStartTime string // HH:MM:SS, batas telat check-in
	Timezone      string // zona organisasi untuk batas hari absensi
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AppEnv = GetEnv("APP_ENV", "production")
	WorkStartTime = GetEnv("WORK_START_TIME", "08:00:00")
	Timezone = GetEnv("TIMEZONE", "Asia/Jakarta")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// IsDevelopment menentukan apakah detail error boleh ikut ke response
func IsDevelopment() bool {
	return AppEnv == "development"
}

// =======================
// APP TIMEZONE
// =======================
// Batas "hari ini" untuk absensi dihitung di zona organisasi, bukan
// zona lokal server.

var (
	appLocOnce sync.Once
	appLoc     *time.Location
)

func AppLocation() *time.Location {
	appLocOnce.Do(func() {
		tz := Timezone
		if tz == "" {
			tz = GetEnv("TIMEZONE", "Asia/Jakarta")
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("⚠️ Timezone %q tidak valid, fallback ke waktu lokal: %v", tz, err)
			loc = time.Local
		}
		appLoc = loc
	})
	return appLoc
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
