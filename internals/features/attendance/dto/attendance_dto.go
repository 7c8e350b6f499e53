package dto

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"encoding/json"

	"absensiku_backend/internals/features/attendance/model"
	locationDto "absensiku_backend/internals/features/locations/dto"
	helper "absensiku_backend/internals/helpers"
)

// ============================
// Request DTO
// ============================

// Koordinat diterima sebagai any: mobile client lama kadang mengirim
// string, yang baru angka. Presence dicek terpisah dari validitas format.
type CheckInRequest struct {
	Latitude   any     `json:"latitude"`
	Longitude  any     `json:"longitude"`
	LocationID *string `json:"location_id"`
	Notes      *string `json:"notes"`
}

type CheckOutRequest struct {
	Latitude  any     `json:"latitude"`
	Longitude any     `json:"longitude"`
	Notes     *string `json:"notes"`
}

var ErrInvalidCoordinate = errors.New("invalid coordinate format")

// ParseCoordinate menerima float64, string, atau json.Number
func ParseCoordinate(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case json.Number:
		return t.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, ErrInvalidCoordinate
		}
		return f, nil
	default:
		return 0, ErrInvalidCoordinate
	}
}

// ============================
// Response DTO
// ============================

type CoordinatesDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type WorkDurationDTO struct {
	Minutes   int64  `json:"minutes"`
	Hours     string `json:"hours"`
	Formatted string `json:"formatted"`
}

// BuildWorkDuration menghitung durasi kerja dalam menit utuh
func BuildWorkDuration(checkIn, checkOut time.Time) WorkDurationDTO {
	minutes := int64(math.Round(checkOut.Sub(checkIn).Minutes()))
	return WorkDurationDTO{
		Minutes:   minutes,
		Hours:     fmt.Sprintf("%.2f", float64(minutes)/60),
		Formatted: fmt.Sprintf("%dh %dm", minutes/60, minutes%60),
	}
}

type CheckInResponseDTO struct {
	ID          string                       `json:"id"`
	EmployeeID  string                       `json:"employee_id"`
	CheckInTime time.Time                    `json:"check_in_time"`
	Status      string                       `json:"status"`
	Distance    int                          `json:"distance"`
	Office      locationDto.OfficeSummaryDTO `json:"office"`
	Coordinates CoordinatesDTO               `json:"coordinates"`
}

// AlreadyCheckedInDTO: payload info saat check-in ganda ditolak
type AlreadyCheckedInDTO struct {
	CheckInTime time.Time `json:"check_in_time"`
	Status      string    `json:"status"`
	OfficeName  string    `json:"office_name"`
}

// OutOfRangeDTO: konteks penolakan geofence — cukup untuk client
// menjelaskan ke user tanpa round-trip kedua
type OutOfRangeDTO struct {
	YourDistance       int               `json:"your_distance"`
	RequiredRadius     float64           `json:"required_radius"`
	DistanceDifference float64           `json:"distance_difference"`
	Office             OutOfRangeOffice  `json:"office"`
	MessageDetail      string            `json:"message_detail"`
}

type OutOfRangeOffice struct {
	Name        string         `json:"name"`
	Address     *string        `json:"address,omitempty"`
	Coordinates CoordinatesDTO `json:"coordinates"`
}

type CheckOutResponseDTO struct {
	ID           string          `json:"id"`
	CheckInTime  time.Time       `json:"check_in_time"`
	CheckOutTime time.Time       `json:"check_out_time"`
	WorkDuration WorkDurationDTO `json:"work_duration"`
	Distance     int             `json:"distance"`
	OfficeName   string          `json:"office_name"`
}

// AttendanceDTO: bentuk read (today & history)
type AttendanceDTO struct {
	ID                string           `json:"id"`
	EmployeeID        string           `json:"employee_id"`
	LocationID        *string          `json:"location_id,omitempty"`
	AttendanceDay     string           `json:"attendance_day"`
	CheckInTime       time.Time        `json:"check_in_time"`
	CheckInLatitude   float64          `json:"check_in_latitude"`
	CheckInLongitude  float64          `json:"check_in_longitude"`
	CheckInDistance   float64          `json:"check_in_distance"`
	Status            string           `json:"status"`
	Notes             *string          `json:"notes,omitempty"`
	CheckOutTime      *time.Time       `json:"check_out_time"`
	CheckOutLatitude  *float64         `json:"check_out_latitude,omitempty"`
	CheckOutLongitude *float64         `json:"check_out_longitude,omitempty"`
	CheckOutDistance  *float64         `json:"check_out_distance,omitempty"`
	OfficeName        *string          `json:"office_name,omitempty"`
	OfficeAddress     *string          `json:"office_address,omitempty"`
	WorkDuration      *WorkDurationDTO `json:"work_duration,omitempty"`
}

type MonthlySummaryDTO struct {
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	TotalDays      int64  `json:"total_days"`
	Present        int64  `json:"present"`
	Late           int64  `json:"late"`
	Absent         int64  `json:"absent"`
	Permission     int64  `json:"permission"`
	AttendanceRate string `json:"attendance_rate"`
}

// ============================
// Converter
// ============================

func ToAttendanceDTO(m model.AttendanceModel) AttendanceDTO {
	out := AttendanceDTO{
		ID:                m.AttendanceID.String(),
		EmployeeID:        m.EmployeeID.String(),
		AttendanceDay:     m.AttendanceDay.Format("2006-01-02"),
		CheckInTime:       m.CheckInTime,
		CheckInLatitude:   m.CheckInLatitude,
		CheckInLongitude:  m.CheckInLongitude,
		CheckInDistance:   m.CheckInDistance,
		Status:            m.Status,
		Notes:             m.Notes,
		CheckOutTime:      m.CheckOutTime,
		CheckOutLatitude:  m.CheckOutLatitude,
		CheckOutLongitude: m.CheckOutLongitude,
		CheckOutDistance:  m.CheckOutDistance,
	}
	if m.LocationID != nil {
		id := m.LocationID.String()
		out.LocationID = &id
	}
	if m.Location != nil {
		out.OfficeName = &m.Location.LocationName
		out.OfficeAddress = m.Location.LocationAddress
	}
	if m.CheckOutTime != nil {
		dur := BuildWorkDuration(m.CheckInTime, *m.CheckOutTime)
		out.WorkDuration = &dur
	}
	return out
}

// OutOfRangeData membentuk payload penolakan radius.
// distance_difference = jarak dibulatkan − radius wajib.
func OutOfRangeData(distance, radius float64, officeName string, officeAddress *string, officeLat, officeLng float64) OutOfRangeDTO {
	rounded := helper.RoundMeters(distance)
	return OutOfRangeDTO{
		YourDistance:       rounded,
		RequiredRadius:     radius,
		DistanceDifference: float64(rounded) - radius,
		Office: OutOfRangeOffice{
			Name:    officeName,
			Address: officeAddress,
			Coordinates: CoordinatesDTO{
				Latitude:  officeLat,
				Longitude: officeLng,
			},
		},
		MessageDetail: fmt.Sprintf("You must be within %.0f meters. You are %d meters away.", radius, rounded),
	}
}
