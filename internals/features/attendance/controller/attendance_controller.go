package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/attendance/dto"
	attendanceModel "absensiku_backend/internals/features/attendance/model"
	"absensiku_backend/internals/features/attendance/service"
	locationDto "absensiku_backend/internals/features/locations/dto"
	locationModel "absensiku_backend/internals/features/locations/model"
	locationService "absensiku_backend/internals/features/locations/service"
	helper "absensiku_backend/internals/helpers"
)

// FLOW CHECK-IN:
// 1. Validasi input (latitude, longitude)
// 2. Cek apakah sudah check-in hari ini
// 3. Get office location (location_id atau default)
// 4. Calculate distance user → office
// 5. Validasi radius
// 6. Determine status (present/late)
// 7. Create attendance record (insert atomik, duplikat = sudah check-in)
// 8. Return response

type AttendanceController struct {
	DB *gorm.DB

	// Now bisa di-override di test untuk skenario yang bergantung jam
	Now func() time.Time
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Now: time.Now}
}

func (ctrl *AttendanceController) now() time.Time {
	if ctrl.Now != nil {
		return ctrl.Now()
	}
	return time.Now()
}

// =======================
// ✅ Check-In
// POST /api/attendance/check-in
// Body: {latitude, longitude, location_id?, notes?}
// =======================
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	var body dto.CheckInRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	employeeID, err := employeeIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// ===== STEP 1: Validasi presence =====
	if body.Latitude == nil || body.Longitude == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Latitude and longitude are required")
	}

	// ===== STEP 2: Parse koordinat =====
	lat, latErr := dto.ParseCoordinate(body.Latitude)
	lng, lngErr := dto.ParseCoordinate(body.Longitude)
	if latErr != nil || lngErr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid coordinates format")
	}

	// ===== STEP 3: Range check =====
	if !helper.ValidCoordinate(lat, lng) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Coordinates out of valid range")
	}

	now := ctrl.now()

	// ===== STEP 4: Sudah check-in hari ini? =====
	existing, err := service.GetTodayByEmployee(ctrl.DB, employeeID, now)
	if err != nil {
		log.Println("[ERROR] CheckIn getToday:", err)
		return helper.JsonInternalError(c, "Failed to check in. Please try again.", err)
	}
	if existing != nil {
		return helper.JsonErrorWithData(c, fiber.StatusBadRequest,
			"You have already checked in today", alreadyCheckedInData(existing))
	}

	// ===== STEP 5: Resolve office location =====
	office, err := resolveOffice(ctrl.DB, body.LocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound,
				"Office location not found. Please contact admin.")
		}
		log.Println("[ERROR] CheckIn resolve office:", err)
		return helper.JsonInternalError(c, "Failed to check in. Please try again.", err)
	}

	// ===== STEP 6: Calculate distance =====
	distance := helper.HaversineDistance(lat, lng,
		office.LocationLatitude, office.LocationLongitude)

	// ===== STEP 7: Validasi radius =====
	if distance > office.LocationRadius {
		return helper.JsonErrorWithData(c, fiber.StatusBadRequest,
			"You are too far from the office",
			dto.OutOfRangeData(distance, office.LocationRadius,
				office.LocationName, office.LocationAddress,
				office.LocationLatitude, office.LocationLongitude))
	}

	// ===== STEP 8: Determine status =====
	status := service.DetermineStatus(now)

	// ===== STEP 9: Create record =====
	record, err := service.CheckIn(ctrl.DB, service.CheckInInput{
		EmployeeID: employeeID,
		LocationID: office.LocationID,
		Latitude:   lat,
		Longitude:  lng,
		Distance:   distance,
		Status:     status,
		Notes:      body.Notes,
		Now:        now,
	})
	if err != nil {
		// Race dua check-in bersamaan: yang kalah mendarat di sini
		if errors.Is(err, service.ErrAlreadyCheckedIn) {
			if existing, getErr := service.GetTodayByEmployee(ctrl.DB, employeeID, now); getErr == nil && existing != nil {
				return helper.JsonErrorWithData(c, fiber.StatusBadRequest,
					"You have already checked in today", alreadyCheckedInData(existing))
			}
			return helper.JsonError(c, fiber.StatusBadRequest, "You have already checked in today")
		}
		log.Println("[ERROR] CheckIn create:", err)
		return helper.JsonInternalError(c, "Failed to check in. Please try again.", err)
	}

	// ===== STEP 10: Success response =====
	return helper.JsonCreated(c, fmt.Sprintf("Check-in successful! Status: %s", status),
		dto.CheckInResponseDTO{
			ID:          record.AttendanceID.String(),
			EmployeeID:  record.EmployeeID.String(),
			CheckInTime: record.CheckInTime,
			Status:      record.Status,
			Distance:    helper.RoundMeters(distance),
			Office:      locationDto.ToOfficeSummaryDTO(*office),
			Coordinates: dto.CoordinatesDTO{Latitude: lat, Longitude: lng},
		})
}

// =======================
// 🏁 Check-Out
// POST /api/attendance/check-out
// Body: {latitude, longitude, notes?}
// Catatan: tidak ada range check & radius enforcement di check-out
// =======================
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	var body dto.CheckOutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	employeeID, err := employeeIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if body.Latitude == nil || body.Longitude == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Latitude and longitude are required")
	}

	lat, latErr := dto.ParseCoordinate(body.Latitude)
	lng, lngErr := dto.ParseCoordinate(body.Longitude)
	if latErr != nil || lngErr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid coordinates format")
	}

	now := ctrl.now()

	record, err := service.GetTodayByEmployee(ctrl.DB, employeeID, now)
	if err != nil {
		log.Println("[ERROR] CheckOut getToday:", err)
		return helper.JsonInternalError(c, "Failed to check out. Please try again.", err)
	}
	if record == nil {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"No check-in record found for today. Please check-in first.")
	}

	if record.IsCheckedOut() {
		return helper.JsonErrorWithData(c, fiber.StatusBadRequest,
			"You have already checked out today", fiber.Map{
				"check_out_time": record.CheckOutTime,
			})
	}

	// Jarak informasional dari koordinat kantor yang tersimpan di record
	var distance float64
	officeName := ""
	if record.Location != nil {
		distance = helper.HaversineDistance(lat, lng,
			record.Location.LocationLatitude, record.Location.LocationLongitude)
		officeName = record.Location.LocationName
	}

	if err := service.CheckOut(ctrl.DB, record, lat, lng, distance, body.Notes, now); err != nil {
		// Race dua check-out bersamaan: yang kalah mendarat di sini dengan
		// record in-memory yang masih open — ambil ulang untuk jam aslinya
		if errors.Is(err, service.ErrAlreadyCheckedOut) {
			checkOutTime := record.CheckOutTime
			if checkOutTime == nil {
				if fresh, getErr := service.GetTodayByEmployee(ctrl.DB, employeeID, now); getErr == nil && fresh != nil {
					checkOutTime = fresh.CheckOutTime
				}
			}
			return helper.JsonErrorWithData(c, fiber.StatusBadRequest,
				"You have already checked out today", fiber.Map{
					"check_out_time": checkOutTime,
				})
		}
		log.Println("[ERROR] CheckOut update:", err)
		return helper.JsonInternalError(c, "Failed to check out. Please try again.", err)
	}

	return helper.JsonOK(c, "Check-out successful!", dto.CheckOutResponseDTO{
		ID:           record.AttendanceID.String(),
		CheckInTime:  record.CheckInTime,
		CheckOutTime: *record.CheckOutTime,
		WorkDuration: dto.BuildWorkDuration(record.CheckInTime, *record.CheckOutTime),
		Distance:     helper.RoundMeters(distance),
		OfficeName:   officeName,
	})
}

// =======================
// 📅 Today's Attendance
// GET /api/attendance/today
// =======================
func (ctrl *AttendanceController) GetToday(c *fiber.Ctx) error {
	employeeID, err := employeeIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	record, err := service.GetTodayByEmployee(ctrl.DB, employeeID, ctrl.now())
	if err != nil {
		log.Println("[ERROR] GetToday:", err)
		return helper.JsonInternalError(c, "Failed to get today attendance", err)
	}
	if record == nil {
		return helper.JsonOK(c, "No attendance record for today", nil)
	}

	return helper.JsonOK(c, "", dto.ToAttendanceDTO(*record))
}

// =======================
// 📜 Attendance History
// GET /api/attendance/history?limit=30&offset=0
// =======================
func (ctrl *AttendanceController) GetHistory(c *fiber.Ctx) error {
	employeeID, err := employeeIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	limit := c.QueryInt("limit", 30)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 30
	}
	if offset < 0 {
		offset = 0
	}

	records, err := service.History(ctrl.DB, employeeID, limit, offset)
	if err != nil {
		log.Println("[ERROR] GetHistory:", err)
		return helper.JsonInternalError(c, "Failed to get attendance history", err)
	}

	total, err := service.CountByEmployee(ctrl.DB, employeeID)
	if err != nil {
		log.Println("[ERROR] GetHistory count:", err)
		return helper.JsonInternalError(c, "Failed to get attendance history", err)
	}

	resp := make([]dto.AttendanceDTO, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.ToAttendanceDTO(r))
	}

	return helper.JsonList(c, resp, total, limit, offset)
}

// =======================
// 📊 Monthly Summary
// GET /api/attendance/summary?year=2026&month=2
// =======================
func (ctrl *AttendanceController) GetMonthlySummary(c *fiber.Ctx) error {
	employeeID, err := employeeIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := ctrl.now().In(configs.AppLocation())
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid month. Must be between 1-12")
	}

	summary, err := service.GetMonthlySummary(ctrl.DB, employeeID, year, month)
	if err != nil {
		log.Println("[ERROR] GetMonthlySummary:", err)
		return helper.JsonInternalError(c, "Failed to get monthly summary", err)
	}

	rate := "0%"
	if summary.TotalDays > 0 {
		rate = fmt.Sprintf("%.2f%%",
			float64(summary.PresentCount)/float64(summary.TotalDays)*100)
	}

	return helper.JsonOK(c, "", dto.MonthlySummaryDTO{
		Year:           year,
		Month:          month,
		TotalDays:      summary.TotalDays,
		Present:        summary.PresentCount,
		Late:           summary.LateCount,
		Absent:         summary.AbsentCount,
		Permission:     summary.PermissionCount,
		AttendanceRate: rate,
	})
}

/* ==========================
   Helpers
========================== */

func employeeIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("employee_id").(string)
	if raw == "" {
		return uuid.Nil, errors.New("employee_id tidak ada di context")
	}
	return uuid.Parse(raw)
}

func resolveOffice(db *gorm.DB, locationID *string) (*locationModel.OfficeLocationModel, error) {
	if locationID != nil && *locationID != "" {
		id, err := uuid.Parse(*locationID)
		if err != nil {
			return nil, gorm.ErrRecordNotFound
		}
		return locationService.FindActiveByID(db, id)
	}
	return locationService.GetDefault(db)
}

func alreadyCheckedInData(rec *attendanceModel.AttendanceModel) dto.AlreadyCheckedInDTO {
	officeName := ""
	if rec.Location != nil {
		officeName = rec.Location.LocationName
	}
	return dto.AlreadyCheckedInDTO{
		CheckInTime: rec.CheckInTime,
		Status:      rec.Status,
		OfficeName:  officeName,
	}
}
