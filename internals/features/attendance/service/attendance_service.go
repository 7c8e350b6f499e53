package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/attendance/model"
	helper "absensiku_backend/internals/helpers"
)

/* ==========================
   Errors
========================== */

var (
	// ErrAlreadyCheckedIn: insert check-in menabrak unique index
	// (employee_id, attendance_day) — sudah ada record hari ini.
	ErrAlreadyCheckedIn = errors.New("already checked in today")

	// ErrAlreadyCheckedOut: record hari ini sudah closed
	ErrAlreadyCheckedOut = errors.New("already checked out today")
)

/* ==========================
   Hari & status absensi
========================== */

// AttendanceDay memotong timestamp ke tanggal di zona organisasi.
// Disimpan sebagai midnight UTC supaya equality konsisten lintas driver.
func AttendanceDay(t time.Time) time.Time {
	y, m, d := t.In(configs.AppLocation()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// workStartSeconds membaca WORK_START_TIME (HH:MM:SS) sebagai detik sejak
// tengah malam. Perbandingan numerik, bukan string.
func workStartSeconds() int {
	raw := configs.WorkStartTime
	if raw == "" {
		raw = configs.GetEnv("WORK_START_TIME", "08:00:00")
	}
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return 8 * 3600
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	s := 0
	if len(parts) > 2 {
		s, _ = strconv.Atoi(parts[2])
	}
	return h*3600 + m*60 + s
}

// DetermineStatus: late jika jam check-in lewat dari batas masuk,
// selain itu present. Absent/permission tidak pernah dihasilkan di sini.
func DetermineStatus(checkInTime time.Time) string {
	local := checkInTime.In(configs.AppLocation())
	secs := local.Hour()*3600 + local.Minute()*60 + local.Second()
	if secs > workStartSeconds() {
		return model.StatusLate
	}
	return model.StatusPresent
}

/* ==========================
   Ledger
========================== */

// GetTodayByEmployee mencari record dengan hari check-in == hari `now`.
// Mengembalikan nil (tanpa error) kalau belum ada.
func GetTodayByEmployee(db *gorm.DB, employeeID uuid.UUID, now time.Time) (*model.AttendanceModel, error) {
	var rec model.AttendanceModel
	err := db.Preload("Location").
		Where("employee_id = ? AND attendance_day = ?", employeeID, AttendanceDay(now)).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

type CheckInInput struct {
	EmployeeID uuid.UUID
	LocationID uuid.UUID
	Latitude   float64
	Longitude  float64
	Distance   float64
	Status     string
	Notes      *string
	Now        time.Time
}

// CheckIn membuat record open untuk hari ini dengan satu insert atomik.
// Duplikat (race dua request bersamaan sekalipun) ditolak oleh unique
// index dan dipetakan ke ErrAlreadyCheckedIn.
func CheckIn(db *gorm.DB, in CheckInInput) (*model.AttendanceModel, error) {
	locationID := in.LocationID
	rec := model.AttendanceModel{
		EmployeeID:       in.EmployeeID,
		LocationID:       &locationID,
		AttendanceDay:    AttendanceDay(in.Now),
		CheckInTime:      in.Now,
		CheckInLatitude:  in.Latitude,
		CheckInLongitude: in.Longitude,
		CheckInDistance:  helper.Round2(in.Distance),
		Status:           in.Status,
		Notes:            in.Notes,
	}
	if err := db.Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}
	return &rec, nil
}

// CheckOut menutup record open: mengisi field check-out sekali, dan
// menyambung notes lama (bukan menimpa). Update dipagari
// check_out_time IS NULL supaya dua check-out bersamaan (keduanya
// sempat membaca record open) tidak bisa sama-sama menulis — record
// closed tidak pernah dimutasi lagi.
func CheckOut(db *gorm.DB, rec *model.AttendanceModel, lat, lng, distance float64, notes *string, now time.Time) error {
	if rec.IsCheckedOut() {
		return ErrAlreadyCheckedOut
	}

	roundedDistance := helper.Round2(distance)
	updates := map[string]interface{}{
		"check_out_time":      now,
		"check_out_latitude":  lat,
		"check_out_longitude": lng,
		"check_out_distance":  roundedDistance,
	}

	var combined string
	if notes != nil && *notes != "" {
		existing := ""
		if rec.Notes != nil {
			existing = *rec.Notes
		}
		combined = existing + " | Check-out: " + *notes
		updates["notes"] = combined
	}

	res := db.Model(rec).Where("check_out_time IS NULL").Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// record sudah keburu ditutup request lain
		return ErrAlreadyCheckedOut
	}

	if combined != "" {
		rec.Notes = &combined
	}
	rec.CheckOutTime = &now
	rec.CheckOutLatitude = &lat
	rec.CheckOutLongitude = &lng
	rec.CheckOutDistance = &roundedDistance
	return nil
}

// History mengembalikan record milik karyawan, check-in terbaru dulu
func History(db *gorm.DB, employeeID uuid.UUID, limit, offset int) ([]model.AttendanceModel, error) {
	var records []model.AttendanceModel
	err := db.Preload("Location").
		Where("employee_id = ?", employeeID).
		Order("check_in_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	return records, err
}

func CountByEmployee(db *gorm.DB, employeeID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&model.AttendanceModel{}).
		Where("employee_id = ?", employeeID).
		Count(&total).Error
	return total, err
}

type MonthlySummary struct {
	TotalDays       int64 `gorm:"column:total_days"`
	PresentCount    int64 `gorm:"column:present_count"`
	LateCount       int64 `gorm:"column:late_count"`
	AbsentCount     int64 `gorm:"column:absent_count"`
	PermissionCount int64 `gorm:"column:permission_count"`
}

// GetMonthlySummary menghitung agregat status untuk bulan berjalan
// berdasarkan attendance_day (range scan, bukan fungsi per-row).
func GetMonthlySummary(db *gorm.DB, employeeID uuid.UUID, year, month int) (MonthlySummary, error) {
	if month < 1 || month > 12 {
		return MonthlySummary{}, fmt.Errorf("invalid month %d", month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var summary MonthlySummary
	err := db.Raw(`
		SELECT
			COUNT(*) AS total_days,
			COALESCE(SUM(CASE WHEN status = 'present'    THEN 1 ELSE 0 END), 0) AS present_count,
			COALESCE(SUM(CASE WHEN status = 'late'       THEN 1 ELSE 0 END), 0) AS late_count,
			COALESCE(SUM(CASE WHEN status = 'absent'     THEN 1 ELSE 0 END), 0) AS absent_count,
			COALESCE(SUM(CASE WHEN status = 'permission' THEN 1 ELSE 0 END), 0) AS permission_count
		FROM attendances
		WHERE employee_id = ? AND attendance_day >= ? AND attendance_day < ?`,
		employeeID, start, end,
	).Scan(&summary).Error
	return summary, err
}
