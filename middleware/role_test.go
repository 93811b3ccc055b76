package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/models"
)

func roleTestApp(user *models.User, allowed ...models.UserRole) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(currentUserKey, user)
		}
		return c.Next()
	})
	app.Get("/guarded", RequireRole(allowed...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	app := roleTestApp(&models.User{Role: models.RoleAdmin}, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRole_RejectsOtherRoles(t *testing.T) {
	// a non admin token must be rejected from administration endpoints
	app := roleTestApp(&models.User{Role: models.RoleReceptionist}, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("expected 403, got %d", resp.StatusCode)
	}
}

func TestRequireRole_AllowsAnyOfSet(t *testing.T) {
	app := roleTestApp(&models.User{Role: models.RoleDoctor}, models.RoleReceptionist, models.RoleDoctor)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRole_MissingUser(t *testing.T) {
	app := roleTestApp(nil, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}
