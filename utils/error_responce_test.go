package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func failDBResponse(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return FailDB(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	if testErr != nil {
		t.Fatalf("unexpected error: %v", testErr)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		t.Fatalf("unexpected error reading body: %v", readErr)
	}
	var body map[string]interface{}
	if jsonErr := json.Unmarshal(raw, &body); jsonErr != nil {
		t.Fatalf("unexpected error decoding body %q: %v", raw, jsonErr)
	}
	return resp.StatusCode, body
}

func TestFailDB_DuplicateKeyBecomes400(t *testing.T) {
	// a second batch with an already-used batch number loses the race at the
	// unique index and must still answer with a duplicate 400
	status, body := failDBResponse(t, gorm.ErrDuplicatedKey)

	if status != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if body["success"] != false {
		t.Errorf("expected success false, got %v", body["success"])
	}
	message, _ := body["message"].(string)
	if !strings.Contains(message, "already exists") {
		t.Errorf("expected a duplicate message, got %q", message)
	}
}

func TestFailDB_RecordNotFoundBecomes404(t *testing.T) {
	status, body := failDBResponse(t, gorm.ErrRecordNotFound)

	if status != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
	if body["success"] != false {
		t.Errorf("expected success false, got %v", body["success"])
	}
}

func TestFailDB_InvalidDataBecomes400(t *testing.T) {
	status, _ := failDBResponse(t, gorm.ErrInvalidData)

	if status != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}

func TestFailDB_UnexpectedErrorBecomesGeneric500(t *testing.T) {
	status, body := failDBResponse(t, errors.New("connection reset by peer"))

	if status != fiber.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
	message, _ := body["message"].(string)
	if strings.Contains(message, "connection reset") {
		t.Errorf("expected a generic message, got %q", message)
	}
}
