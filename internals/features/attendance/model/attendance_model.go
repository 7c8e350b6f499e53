package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	locationModel "absensiku_backend/internals/features/locations/model"
)

// Status absensi. Hanya present/late yang diberikan jalur otomatis;
// absent/permission diisi alur administratif.
const (
	StatusPresent    = "present"
	StatusLate       = "late"
	StatusAbsent     = "absent"
	StatusPermission = "permission"
)

// AttendanceModel merepresentasikan tabel attendances.
// Lifecycle: dibuat oleh check-in (open), dimutasi sekali oleh check-out
// (closed), tidak pernah dihapus dan tidak pernah dimutasi lagi.
type AttendanceModel struct {
	AttendanceID uuid.UUID  `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_employee_day;column:employee_id" json:"employee_id"`
	LocationID   *uuid.UUID `gorm:"type:uuid;column:location_id" json:"location_id,omitempty"`

	// Tanggal check-in di zona organisasi. Unique bareng employee_id:
	// maksimal satu record per karyawan per hari, ditegakkan oleh store
	// sehingga dua check-in bersamaan tidak bisa sama-sama lolos.
	AttendanceDay time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendances_employee_day;column:attendance_day" json:"attendance_day"`

	CheckInTime      time.Time `gorm:"not null;column:check_in_time" json:"check_in_time"`
	CheckInLatitude  float64   `gorm:"not null;column:check_in_latitude" json:"check_in_latitude"`
	CheckInLongitude float64   `gorm:"not null;column:check_in_longitude" json:"check_in_longitude"`
	CheckInDistance  float64   `gorm:"not null;column:check_in_distance" json:"check_in_distance"`

	Status string  `gorm:"size:20;not null;column:status" json:"status"`
	Notes  *string `gorm:"column:notes" json:"notes,omitempty"`

	CheckOutTime      *time.Time `gorm:"column:check_out_time" json:"check_out_time,omitempty"`
	CheckOutLatitude  *float64   `gorm:"column:check_out_latitude" json:"check_out_latitude,omitempty"`
	CheckOutLongitude *float64   `gorm:"column:check_out_longitude" json:"check_out_longitude,omitempty"`
	CheckOutDistance  *float64   `gorm:"column:check_out_distance" json:"check_out_distance,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`

	// Snapshot koordinat kantor untuk check-out diambil dari row lokasi
	// yang direferensikan record, bukan hasil resolve ulang.
	Location *locationModel.OfficeLocationModel `gorm:"foreignKey:LocationID;references:LocationID" json:"-"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}

// IsCheckedOut menandakan record sudah closed
func (m *AttendanceModel) IsCheckedOut() bool {
	return m.CheckOutTime != nil
}
