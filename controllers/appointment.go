package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/db"
	"github.com/clinichq/clinic-app/models"
	"github.com/clinichq/clinic-app/utils"
)

// CreateAppointment lets a receptionist schedule a patient with a doctor.
func CreateAppointment(c *fiber.Ctx) error {
	type appointmentInput struct {
		PatientID   uint      `json:"patient_id"`
		DoctorID    uint      `json:"doctor_id"`
		ScheduledAt time.Time `json:"scheduled_at"`
		Reason      string    `json:"reason"`
	}

	input := new(appointmentInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if input.PatientID == 0 || input.DoctorID == 0 || input.ScheduledAt.IsZero() {
		return utils.Fail(c, fiber.StatusBadRequest, "Patient, doctor and scheduled time are required")
	}

	var patient models.Patient
	if db.DB.First(&patient, input.PatientID).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Patient not found")
	}
	var doctor models.User
	if db.DB.Where("id = ? AND role = ?", input.DoctorID, models.RoleDoctor).First(&doctor).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Doctor not found")
	}

	appointment := models.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		ScheduledAt: input.ScheduledAt,
		Reason:      input.Reason,
	}
	if err := db.DB.Create(&appointment).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, "Appointment scheduled successfully", fiber.Map{
		"appointment": appointment,
	})
}

// GetAppointments lists appointments, optionally filtered by patient, doctor
// or status.
func GetAppointments(c *fiber.Ctx) error {
	query := db.DB.Preload("Patient").Preload("Doctor")
	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if doctorID := c.Query("doctor_id"); doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("scheduled_at").Find(&appointments).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Appointments fetched successfully", fiber.Map{
		"appointments": appointments,
	})
}

// UpdateAppointmentStatus completes or cancels a scheduled appointment.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	type statusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}

	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var appointment models.Appointment
	if db.DB.First(&appointment, "id = ?", c.Params("id")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Appointment not found")
	}

	if err := appointment.UpdateStatus(db.DB, input.Status); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	return utils.Success(c, fiber.StatusOK, "Appointment status updated", fiber.Map{
		"appointment": appointment,
	})
}
