package utils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Fail writes the standard failure envelope.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// Success writes the standard success envelope with an optional payload.
func Success(c *fiber.Ctx, status int, message string, payload fiber.Map) error {
	resp := fiber.Map{
		"success": true,
		"message": message,
	}
	for k, v := range payload {
		resp[k] = v
	}
	return c.Status(status).JSON(resp)
}

// FailDB translates storage errors: duplicate keys become 400s with a
// readable message, missing records 404s, everything else a generic 500.
func FailDB(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Fail(c, fiber.StatusBadRequest, "A record with the same unique value already exists")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Fail(c, fiber.StatusNotFound, "Record not found")
	case errors.Is(err, gorm.ErrInvalidData), errors.Is(err, gorm.ErrInvalidValue):
		return Fail(c, fiber.StatusBadRequest, "Invalid data in request")
	default:
		log.Printf("storage error: %v", err)
		return Fail(c, fiber.StatusInternalServerError, "Something went wrong")
	}
}
