package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/controller"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	attendanceCtrl := controller.NewAttendanceController(db)

	attendance := api.Group("/attendance")
	attendance.Post("/check-in", attendanceCtrl.CheckIn)
	attendance.Post("/check-out", attendanceCtrl.CheckOut)
	attendance.Get("/today", attendanceCtrl.GetToday)
	attendance.Get("/history", attendanceCtrl.GetHistory)
	attendance.Get("/summary", attendanceCtrl.GetMonthlySummary)
}
