package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	employeeModel "absensiku_backend/internals/features/users/auth/model"
	"absensiku_backend/internals/features/users/auth/service"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
)

func newAuthTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	configs.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("gagal buka sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&employeeModel.EmployeeModel{}); err != nil {
		t.Fatalf("gagal migrate: %v", err)
	}

	hashed, err := service.HashPassword("password123")
	if err != nil {
		t.Fatalf("gagal hash password: %v", err)
	}
	emp := employeeModel.EmployeeModel{
		EmployeeNIP:      "EMP001",
		EmployeeName:     "Budi Santoso",
		EmployeeEmail:    "budi@example.com",
		EmployeePassword: hashed,
		EmployeePosition: "Staff",
		IsActive:         true,
	}
	if err := db.Create(&emp).Error; err != nil {
		t.Fatalf("gagal seed employee: %v", err)
	}

	inactive := employeeModel.EmployeeModel{
		EmployeeNIP:      "EMP099",
		EmployeeName:     "Mantan Karyawan",
		EmployeeEmail:    "mantan@example.com",
		EmployeePassword: hashed,
		EmployeePosition: "Staff",
		IsActive:         false,
	}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("gagal seed employee nonaktif: %v", err)
	}

	ctrl := NewAuthController(db)
	app := fiber.New()
	api := app.Group("/api/auth")
	api.Post("/login", ctrl.Login)
	api.Get("/profile", authMiddleware.AuthMiddleware(db), ctrl.GetProfile)
	api.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)

	return app, db
}

func doAuthRequest(t *testing.T, app *fiber.App, method, target, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("gagal marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("gagal decode response: %v", err)
	}
	return resp.StatusCode, parsed
}

func TestLoginSuccess(t *testing.T) {
	app, _ := newAuthTestApp(t)

	status, body := doAuthRequest(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"nip":      "EMP001",
		"password": "password123",
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (%v)", status, body)
	}
	if body["message"] != "Login successful" {
		t.Errorf("message = %v", body["message"])
	}

	data, _ := body["data"].(map[string]any)
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("token kosong")
	}
	user, _ := data["user"].(map[string]any)
	if user["nip"] != "EMP001" || user["name"] != "Budi Santoso" {
		t.Errorf("user = %v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Error("password ikut ke response")
	}

	// token hasil login valid untuk endpoint terproteksi
	status, body = doAuthRequest(t, app, "GET", "/api/auth/profile", token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("profile status = %d (%v)", status, body)
	}
	profile, _ := body["data"].(map[string]any)
	if profile["email"] != "budi@example.com" {
		t.Errorf("profile = %v", profile)
	}
}

func TestLoginRejected(t *testing.T) {
	app, _ := newAuthTestApp(t)

	cases := []struct {
		name    string
		body    fiber.Map
		status  int
		message string
	}{
		{
			"password salah",
			fiber.Map{"nip": "EMP001", "password": "bukan-password"},
			fiber.StatusUnauthorized,
			"Invalid NIP or password",
		},
		{
			"nip tidak dikenal",
			fiber.Map{"nip": "EMP404", "password": "password123"},
			fiber.StatusUnauthorized,
			"Invalid NIP or password",
		},
		{
			"karyawan nonaktif",
			fiber.Map{"nip": "EMP099", "password": "password123"},
			fiber.StatusUnauthorized,
			"Invalid NIP or password",
		},
		{
			"field kosong",
			fiber.Map{"nip": "", "password": ""},
			fiber.StatusBadRequest,
			"NIP and password are required",
		},
		{
			"tanpa password",
			fiber.Map{"nip": "EMP001"},
			fiber.StatusBadRequest,
			"NIP and password are required",
		},
	}
	for _, tc := range cases {
		status, body := doAuthRequest(t, app, "POST", "/api/auth/login", "", tc.body)
		if status != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.name, status, tc.status)
		}
		if body["message"] != tc.message {
			t.Errorf("%s: message = %v, want %q", tc.name, body["message"], tc.message)
		}
	}
}

// Status nonaktif harus tersimpan apa adanya; kalau tertukar default
// kolom, karyawan yang dinonaktifkan bisa login lagi.
func TestInactiveEmployeeStoredInactive(t *testing.T) {
	_, db := newAuthTestApp(t)

	var stored employeeModel.EmployeeModel
	if err := db.First(&stored, "employee_nip = ?", "EMP099").Error; err != nil {
		t.Fatalf("re-fetch karyawan nonaktif: %v", err)
	}
	if stored.IsActive {
		t.Error("karyawan dibuat nonaktif tapi tersimpan aktif")
	}
}

func TestProfileRequiresToken(t *testing.T) {
	app, _ := newAuthTestApp(t)

	status, body := doAuthRequest(t, app, "GET", "/api/auth/profile", "", nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if body["message"] != "No token provided. Please login first." {
		t.Errorf("message = %v", body["message"])
	}

	status, body = doAuthRequest(t, app, "GET", "/api/auth/profile", "bukan.token.valid", nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if body["message"] != "Invalid token" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestLogout(t *testing.T) {
	app, _ := newAuthTestApp(t)

	status, body := doAuthRequest(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"nip":      "EMP001",
		"password": "password123",
	})
	if status != fiber.StatusOK {
		t.Fatalf("login: %d", status)
	}
	data, _ := body["data"].(map[string]any)
	token, _ := data["token"].(string)

	status, body = doAuthRequest(t, app, "POST", "/api/auth/logout", token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("logout status = %d (%v)", status, body)
	}
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}

	// tanpa token, logout ditolak middleware
	status, _ = doAuthRequest(t, app, "POST", "/api/auth/logout", "", nil)
	if status != fiber.StatusUnauthorized {
		t.Errorf("logout tanpa token status = %d, want 401", status)
	}
}
