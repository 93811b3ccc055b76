package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/clinichq/clinic-app/db"
	"github.com/clinichq/clinic-app/models"
	"github.com/clinichq/clinic-app/utils"
)

type staffInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Gender     string `json:"gender"`
	// Doctor-only fields
	Speciality         string `json:"speciality"`
	RegistrationNumber string `json:"registration_number"`
	Schedule           string `json:"schedule"`
}

func (in *staffInput) validate(role models.UserRole) (string, bool) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.NationalID == "" ||
		in.Phone == "" || in.Address == "" {
		return "Missing required fields", false
	}
	if role == models.RoleDoctor &&
		(in.Speciality == "" || in.RegistrationNumber == "" || in.Schedule == "") {
		return "Speciality, registration number and schedule are required for doctors", false
	}
	if !utils.IsValidEmail(in.Email) {
		return "Invalid email format", false
	}
	if !utils.IsValidNationalID(in.NationalID) {
		return "National ID must match the format NNNNN-NNNNNNN-N", false
	}
	if in.Gender != "" && !models.IsValidGender(in.Gender) {
		return "Gender must be male, female or other", false
	}
	return "", true
}

// registerStaff is the shared body of the four role registration endpoints.
func registerStaff(c *fiber.Ctx, role models.UserRole) error {
	input := new(staffInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if msg, ok := input.validate(role); !ok {
		return utils.Fail(c, fiber.StatusBadRequest, msg)
	}

	var existing models.User
	if db.DB.Where("email = ? OR national_id = ?", input.Email, input.NationalID).First(&existing).RowsAffected > 0 {
		return utils.Fail(c, fiber.StatusBadRequest, "An account with this email or national ID already exists")
	}
	if role == models.RoleDoctor {
		var profile models.DoctorProfile
		if db.DB.Where("registration_number = ?", input.RegistrationNumber).First(&profile).RowsAffected > 0 {
			return utils.Fail(c, fiber.StatusBadRequest, "A doctor with this registration number already exists")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := models.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   string(hashed),
		NationalID: input.NationalID,
		Role:       role,
		StaffProfile: &models.StaffProfile{
			Phone:    input.Phone,
			Address:  input.Address,
			Gender:   input.Gender,
			IsActive: true,
		},
	}
	if role == models.RoleDoctor {
		user.DoctorProfile = &models.DoctorProfile{
			Speciality:         input.Speciality,
			RegistrationNumber: input.RegistrationNumber,
			Schedule:           input.Schedule,
		}
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, string(role)+" registered successfully", fiber.Map{
		"user": user,
	})
}

func RegisterDoctor(c *fiber.Ctx) error {
	return registerStaff(c, models.RoleDoctor)
}

func RegisterReceptionist(c *fiber.Ctx) error {
	return registerStaff(c, models.RoleReceptionist)
}

func RegisterPharmacistDispenser(c *fiber.Ctx) error {
	return registerStaff(c, models.RolePharmacistDispenser)
}

func RegisterPharmacistInventory(c *fiber.Ctx) error {
	return registerStaff(c, models.RolePharmacistInventory)
}

// staffRole resolves and checks the :role path parameter.
func staffRole(c *fiber.Ctx) (models.UserRole, bool) {
	role := c.Params("role")
	if !models.IsValidStaffRole(role) {
		return "", false
	}
	return models.UserRole(role), true
}

// ListStaff returns every account holding the given role.
func ListStaff(c *fiber.Ctx) error {
	role, ok := staffRole(c)
	if !ok {
		return utils.Fail(c, fiber.StatusNotFound, "Unknown staff role")
	}

	var users []models.User
	query := db.DB.Preload("StaffProfile").Where("role = ?", role)
	if role == models.RoleDoctor {
		query = query.Preload("DoctorProfile")
	}
	if err := query.Order("id").Find(&users).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Staff fetched successfully", fiber.Map{
		"users": users,
	})
}

// GetStaff returns one account by role and id.
func GetStaff(c *fiber.Ctx) error {
	role, ok := staffRole(c)
	if !ok {
		return utils.Fail(c, fiber.StatusNotFound, "Unknown staff role")
	}

	var user models.User
	if db.DB.Preload("StaffProfile").Preload("DoctorProfile").
		Where("role = ? AND id = ?", role, c.Params("id")).First(&user).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Staff member not found")
	}

	return utils.Success(c, fiber.StatusOK, "Staff member fetched successfully", fiber.Map{
		"user": user,
	})
}

// UpdateStaff edits an account, re-validating only the supplied fields and
// re-checking uniqueness excluding the account itself.
func UpdateStaff(c *fiber.Ctx) error {
	role, ok := staffRole(c)
	if !ok {
		return utils.Fail(c, fiber.StatusNotFound, "Unknown staff role")
	}

	var user models.User
	if db.DB.Preload("StaffProfile").Preload("DoctorProfile").
		Where("role = ? AND id = ?", role, c.Params("id")).First(&user).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Staff member not found")
	}

	type updateInput struct {
		Name       *string `json:"name"`
		Email      *string `json:"email"`
		NationalID *string `json:"national_id"`
		Phone      *string `json:"phone"`
		Address    *string `json:"address"`
		Gender     *string `json:"gender"`
		IsActive   *bool   `json:"is_active"`
		Speciality *string `json:"speciality"`
		Schedule   *string `json:"schedule"`
	}

	input := new(updateInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Email != nil {
		if !utils.IsValidEmail(*input.Email) {
			return utils.Fail(c, fiber.StatusBadRequest, "Invalid email format")
		}
		var other models.User
		if db.DB.Where("email = ? AND id <> ?", *input.Email, user.ID).First(&other).RowsAffected > 0 {
			return utils.Fail(c, fiber.StatusBadRequest, "An account with this email already exists")
		}
		user.Email = *input.Email
	}
	if input.NationalID != nil {
		if !utils.IsValidNationalID(*input.NationalID) {
			return utils.Fail(c, fiber.StatusBadRequest, "National ID must match the format NNNNN-NNNNNNN-N")
		}
		var other models.User
		if db.DB.Where("national_id = ? AND id <> ?", *input.NationalID, user.ID).First(&other).RowsAffected > 0 {
			return utils.Fail(c, fiber.StatusBadRequest, "An account with this national ID already exists")
		}
		user.NationalID = *input.NationalID
	}
	if input.Gender != nil && *input.Gender != "" && !models.IsValidGender(*input.Gender) {
		return utils.Fail(c, fiber.StatusBadRequest, "Gender must be male, female or other")
	}
	if input.Name != nil {
		user.Name = *input.Name
	}

	if user.StaffProfile != nil {
		if input.Phone != nil {
			user.StaffProfile.Phone = *input.Phone
		}
		if input.Address != nil {
			user.StaffProfile.Address = *input.Address
		}
		if input.Gender != nil {
			user.StaffProfile.Gender = *input.Gender
		}
		if input.IsActive != nil {
			user.StaffProfile.IsActive = *input.IsActive
		}
	}
	if user.DoctorProfile != nil {
		if input.Speciality != nil {
			user.DoctorProfile.Speciality = *input.Speciality
		}
		if input.Schedule != nil {
			user.DoctorProfile.Schedule = *input.Schedule
		}
	}

	if err := db.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(&user).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Staff member updated successfully", fiber.Map{
		"user": user,
	})
}

// DeleteStaff removes an account and its profile rows.
func DeleteStaff(c *fiber.Ctx) error {
	role, ok := staffRole(c)
	if !ok {
		return utils.Fail(c, fiber.StatusNotFound, "Unknown staff role")
	}

	var user models.User
	if db.DB.Where("role = ? AND id = ?", role, c.Params("id")).First(&user).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Staff member not found")
	}

	if err := db.DB.Where("user_id = ?", user.ID).Delete(&models.StaffProfile{}).Error; err != nil {
		return utils.FailDB(c, err)
	}
	if err := db.DB.Where("user_id = ?", user.ID).Delete(&models.DoctorProfile{}).Error; err != nil {
		return utils.FailDB(c, err)
	}
	if err := db.DB.Delete(&user).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Staff member deleted successfully", nil)
}
