package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/db"
	"github.com/clinichq/clinic-app/middleware"
	"github.com/clinichq/clinic-app/models"
	"github.com/clinichq/clinic-app/utils"
)

// CreatePrescription lets a doctor write a prescription for a patient.
func CreatePrescription(c *fiber.Ctx) error {
	type prescriptionInput struct {
		PatientID uint   `json:"patient_id"`
		Details   string `json:"details"`
	}

	input := new(prescriptionInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if input.PatientID == 0 || input.Details == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "Patient and details are required")
	}

	var patient models.Patient
	if db.DB.First(&patient, input.PatientID).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Patient not found")
	}

	doctor, err := middleware.CurrentUser(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	prescription := models.Prescription{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Details:   input.Details,
	}
	if err := db.DB.Create(&prescription).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, "Prescription created successfully", fiber.Map{
		"prescription": prescription,
	})
}

// GetPrescriptions lists prescriptions, optionally filtered by patient or
// status.
func GetPrescriptions(c *fiber.Ctx) error {
	query := db.DB.Preload("Patient").Preload("Doctor")
	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var prescriptions []models.Prescription
	if err := query.Order("id desc").Find(&prescriptions).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Prescriptions fetched successfully", fiber.Map{
		"prescriptions": prescriptions,
	})
}

// UpdatePrescriptionStatus lets a dispenser fulfill or reject a pending
// prescription.
func UpdatePrescriptionStatus(c *fiber.Ctx) error {
	type statusInput struct {
		Status models.PrescriptionStatus `json:"status"`
	}

	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var prescription models.Prescription
	if db.DB.First(&prescription, "id = ?", c.Params("id")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Prescription not found")
	}

	if err := prescription.UpdateStatus(db.DB, input.Status); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	return utils.Success(c, fiber.StatusOK, "Prescription status updated", fiber.Map{
		"prescription": prescription,
	})
}
