// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/configs"
)

/* ===============================
   Standard envelope
   sukses : {success: true, message?, data, ...}
   error  : {success: false, message, error?, data?}
=================================*/

// JsonOK: response sukses generic (GET detail, dsb)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	body := fiber.Map{
		"success": true,
		"data":    data,
	}
	if strings.TrimSpace(message) != "" {
		body["message"] = message
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonList: list + pagination gaya offset (history absensi)
func JsonList(c *fiber.Ctx, data any, total int64, limit, offset int) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
		"pagination": fiber.Map{
			"total":    total,
			"limit":    limit,
			"offset":   offset,
			"has_more": int64(offset+limit) < total,
		},
	})
}

// JsonError: error generic tanpa payload tambahan
func JsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// JsonErrorWithData: penolakan state-machine / business rule yang
// membawa konteks untuk ditampilkan client (sudah check-in, di luar radius)
func JsonErrorWithData(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    data,
	})
}

// JsonInternalError: kegagalan tak terduga. Detail hanya ikut di development.
func JsonInternalError(c *fiber.Ctx, message string, err error) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if err != nil && configs.IsDevelopment() {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
