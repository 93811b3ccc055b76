package controllers

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/clinichq/clinic-app/models"
)

func TestCreateToken_RoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	user := &models.User{
		ID:    7,
		Email: "doctor@clinic.example",
		Role:  models.RoleDoctor,
	}

	tokenString, err := createToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !token.Valid {
		t.Fatal("expected a valid token")
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["id"].(float64) != 7 {
		t.Errorf("expected id claim 7, got %v", claims["id"])
	}
	if claims["email"] != "doctor@clinic.example" {
		t.Errorf("unexpected email claim %v", claims["email"])
	}
	if claims["role"] != string(models.RoleDoctor) {
		t.Errorf("unexpected role claim %v", claims["role"])
	}

	exp := int64(claims["exp"].(float64))
	if exp <= time.Now().Unix() {
		t.Error("expected a future expiry")
	}
}

func TestCreateToken_RejectsWrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	tokenString, err := createToken(&models.User{ID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Error("expected verification with the wrong secret to fail")
	}
}
