package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/db"
	"github.com/clinichq/clinic-app/models"
	"github.com/clinichq/clinic-app/utils"
)

const dateLayout = "2006-01-02"

type patientInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Gender         string `json:"gender"`
	DateOfBirth    string `json:"date_of_birth"`
	Contact        string `json:"contact"`
	Address        string `json:"address"`
	NationalID     string `json:"national_id"`
	ChiefComplaint string `json:"chief_complaint"`
	MedicalHistory string `json:"medical_history"`
}

// RegisterPatient creates a patient record.
func RegisterPatient(c *fiber.Ctx) error {
	input := new(patientInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Name == "" || input.Email == "" || input.Gender == "" || input.DateOfBirth == "" ||
		input.Contact == "" || input.Address == "" || input.NationalID == "" || input.ChiefComplaint == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "Missing required fields")
	}
	if !utils.IsValidEmail(input.Email) {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid email format")
	}
	if !utils.IsValidNationalID(input.NationalID) {
		return utils.Fail(c, fiber.StatusBadRequest, "National ID must match the format NNNNN-NNNNNNN-N")
	}
	if !models.IsValidGender(input.Gender) {
		return utils.Fail(c, fiber.StatusBadRequest, "Gender must be male, female or other")
	}
	dob, err := time.Parse(dateLayout, input.DateOfBirth)
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Date of birth must be in YYYY-MM-DD format")
	}
	if err := models.ValidateDateOfBirth(dob, time.Now()); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := models.ValidateChiefComplaint(input.ChiefComplaint); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	var existing models.Patient
	if db.DB.Where("email = ? OR national_id = ?", input.Email, input.NationalID).First(&existing).RowsAffected > 0 {
		return utils.Fail(c, fiber.StatusBadRequest, "A patient with this email or national ID already exists")
	}

	patient := models.Patient{
		Name:           input.Name,
		Email:          input.Email,
		Gender:         input.Gender,
		DateOfBirth:    dob,
		Contact:        input.Contact,
		Address:        input.Address,
		NationalID:     input.NationalID,
		ChiefComplaint: input.ChiefComplaint,
		MedicalHistory: input.MedicalHistory,
	}
	if err := db.DB.Create(&patient).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, "Patient registered successfully", fiber.Map{
		"patient": patient,
	})
}

// GetAllPatients lists all patient records.
func GetAllPatients(c *fiber.Ctx) error {
	var patients []models.Patient
	if err := db.DB.Order("id").Find(&patients).Error; err != nil {
		return utils.FailDB(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Patients fetched successfully", fiber.Map{
		"patients": patients,
	})
}

// GetPatient fetches one patient by id.
func GetPatient(c *fiber.Ctx) error {
	var patient models.Patient
	if db.DB.Preload("Prescriptions").Preload("Appointments").
		First(&patient, "id = ?", c.Params("id")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Patient not found")
	}
	return utils.Success(c, fiber.StatusOK, "Patient fetched successfully", fiber.Map{
		"patient": patient,
	})
}

// UpdatePatient edits a patient, re-validating only the supplied fields and
// re-checking uniqueness excluding the record itself.
func UpdatePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if db.DB.First(&patient, "id = ?", c.Params("id")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Patient not found")
	}

	type updateInput struct {
		Name           *string `json:"name"`
		Email          *string `json:"email"`
		Gender         *string `json:"gender"`
		DateOfBirth    *string `json:"date_of_birth"`
		Contact        *string `json:"contact"`
		Address        *string `json:"address"`
		NationalID     *string `json:"national_id"`
		ChiefComplaint *string `json:"chief_complaint"`
		MedicalHistory *string `json:"medical_history"`
	}

	input := new(updateInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Email != nil {
		if !utils.IsValidEmail(*input.Email) {
			return utils.Fail(c, fiber.StatusBadRequest, "Invalid email format")
		}
		var other models.Patient
		if db.DB.Where("email = ? AND id <> ?", *input.Email, patient.ID).First(&other).RowsAffected > 0 {
			return utils.Fail(c, fiber.StatusBadRequest, "A patient with this email already exists")
		}
		patient.Email = *input.Email
	}
	if input.NationalID != nil {
		if !utils.IsValidNationalID(*input.NationalID) {
			return utils.Fail(c, fiber.StatusBadRequest, "National ID must match the format NNNNN-NNNNNNN-N")
		}
		var other models.Patient
		if db.DB.Where("national_id = ? AND id <> ?", *input.NationalID, patient.ID).First(&other).RowsAffected > 0 {
			return utils.Fail(c, fiber.StatusBadRequest, "A patient with this national ID already exists")
		}
		patient.NationalID = *input.NationalID
	}
	if input.Gender != nil {
		if !models.IsValidGender(*input.Gender) {
			return utils.Fail(c, fiber.StatusBadRequest, "Gender must be male, female or other")
		}
		patient.Gender = *input.Gender
	}
	if input.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *input.DateOfBirth)
		if err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, "Date of birth must be in YYYY-MM-DD format")
		}
		if err := models.ValidateDateOfBirth(dob, time.Now()); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}
		patient.DateOfBirth = dob
	}
	if input.ChiefComplaint != nil {
		if err := models.ValidateChiefComplaint(*input.ChiefComplaint); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}
		patient.ChiefComplaint = *input.ChiefComplaint
	}
	if input.Name != nil {
		patient.Name = *input.Name
	}
	if input.Contact != nil {
		patient.Contact = *input.Contact
	}
	if input.Address != nil {
		patient.Address = *input.Address
	}
	if input.MedicalHistory != nil {
		patient.MedicalHistory = *input.MedicalHistory
	}

	if err := db.DB.Save(&patient).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Patient updated successfully", fiber.Map{
		"patient": patient,
	})
}

// DeletePatient removes a patient record.
func DeletePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if db.DB.First(&patient, "id = ?", c.Params("id")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Patient not found")
	}
	if err := db.DB.Delete(&patient).Error; err != nil {
		return utils.FailDB(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Patient deleted successfully", nil)
}
