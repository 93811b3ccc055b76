package controllers

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinichq/clinic-app/db"
	"github.com/clinichq/clinic-app/middleware"
	"github.com/clinichq/clinic-app/models"
	"github.com/clinichq/clinic-app/utils"
)

const tokenCookie = "token"

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

func createToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func setTokenCookie(c *fiber.Ctx, tokenString string) {
	c.Cookie(&fiber.Cookie{
		Name:     tokenCookie,
		Value:    tokenString,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Signup creates an admin account. The route is gated to admins, so only an
// existing admin can mint another one.
func Signup(c *fiber.Ctx) error {
	type SignupInput struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		NationalID string `json:"national_id"`
	}

	input := new(SignupInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Name == "" || input.Email == "" || input.Password == "" || input.NationalID == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "Missing required fields")
	}
	if !utils.IsValidEmail(input.Email) {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid email format")
	}
	if !utils.IsValidNationalID(input.NationalID) {
		return utils.Fail(c, fiber.StatusBadRequest, "National ID must match the format NNNNN-NNNNNNN-N")
	}

	var existing models.User
	if db.DB.Where("email = ? OR national_id = ?", input.Email, input.NationalID).First(&existing).RowsAffected > 0 {
		return utils.Fail(c, fiber.StatusBadRequest, "An account with this email or national ID already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	verificationExpiry := time.Now().Add(24 * time.Hour)
	user := models.User{
		Name:               input.Name,
		Email:              input.Email,
		Password:           string(hashed),
		NationalID:         input.NationalID,
		Role:               models.RoleAdmin,
		VerificationToken:  utils.GenerateToken(),
		VerificationExpiry: &verificationExpiry,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return utils.FailDB(c, err)
	}

	if err := utils.SendVerificationEmail(user.Email, user.Name, user.VerificationToken); err != nil {
		log.Printf("Failed to send verification email to %s: %v", user.Email, err)
	}

	tokenString, err := createToken(&user)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to generate token")
	}
	setTokenCookie(c, tokenString)

	return utils.Success(c, fiber.StatusCreated, "Account created successfully", fiber.Map{
		"token": tokenString,
		"user":  user,
	})
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now()
	user.LastLogin = &now
	if err := db.DB.Model(&user).Update("last_login", now).Error; err != nil {
		log.Printf("Failed to update last login for %s: %v", user.Email, err)
	}

	tokenString, err := createToken(&user)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to generate token")
	}
	setTokenCookie(c, tokenString)

	return utils.Success(c, fiber.StatusOK, "Logged in successfully", fiber.Map{
		"token": tokenString,
		"user":  user,
	})
}

// Logout clears the token cookie. The JWT itself stays valid until expiry.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return utils.Success(c, fiber.StatusOK, "Logged out successfully", nil)
}

// VerifyEmail consumes a verification token.
func VerifyEmail(c *fiber.Ctx) error {
	type VerifyInput struct {
		Token string `json:"token"`
	}

	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if input.Token == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "Verification token is required")
	}

	var user models.User
	if db.DB.Where("verification_token = ?", input.Token).First(&user).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid or expired verification token")
	}
	if user.VerificationExpiry == nil || user.VerificationExpiry.Before(time.Now()) {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid or expired verification token")
	}

	updates := map[string]interface{}{
		"is_verified":         true,
		"verification_token":  "",
		"verification_expiry": nil,
	}
	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Email verified successfully", nil)
}

// ForgotPassword generates a reset token and emails the reset link.
func ForgotPassword(c *fiber.Ctx) error {
	type ForgotInput struct {
		Email string `json:"email"`
	}

	input := new(ForgotInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if input.Email == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "Email is required")
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusBadRequest, "No account found with this email")
	}

	resetExpiry := time.Now().Add(time.Hour)
	resetToken := utils.GenerateToken()
	updates := map[string]interface{}{
		"reset_token":  resetToken,
		"reset_expiry": resetExpiry,
	}
	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		return utils.FailDB(c, err)
	}

	if err := utils.SendResetPasswordEmail(user.Email, user.Name, resetToken); err != nil {
		log.Printf("Failed to send reset email to %s: %v", user.Email, err)
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to send reset email")
	}

	return utils.Success(c, fiber.StatusOK, "Password reset link sent to your email", nil)
}

// ResetPassword consumes a reset token and overwrites the password.
func ResetPassword(c *fiber.Ctx) error {
	type ResetInput struct {
		Password string `json:"password"`
	}

	input := new(ResetInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if input.Password == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "New password is required")
	}

	token := c.Params("token")
	var user models.User
	if db.DB.Where("reset_token = ?", token).First(&user).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid or expired reset token")
	}
	if user.ResetExpiry == nil || user.ResetExpiry.Before(time.Now()) {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid or expired reset token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	updates := map[string]interface{}{
		"password":     string(hashed),
		"reset_token":  "",
		"reset_expiry": nil,
	}
	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Password reset successfully", nil)
}

// CheckAuth returns the acting user resolved from the token.
func CheckAuth(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Authentication required")
	}
	return utils.Success(c, fiber.StatusOK, "Authenticated", fiber.Map{
		"user": user,
	})
}

// UpdatePassword verifies the current password before overwriting it.
func UpdatePassword(c *fiber.Ctx) error {
	type UpdateInput struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "Current and new passwords are required")
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := db.DB.Model(user).Update("password", string(hashed)).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Password updated successfully", nil)
}
