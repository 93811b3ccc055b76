package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	gorm.Model
	PatientID   uint              `json:"patient_id" gorm:"index"`
	Patient     Patient           `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	DoctorID    uint              `json:"doctor_id"`
	Doctor      User              `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	ScheduledAt time.Time         `json:"scheduled_at"`
	Reason      string            `json:"reason"`
	Status      AppointmentStatus `json:"status"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = AppointmentScheduled
	}
	return nil
}

// UpdateStatus enforces the scheduled -> completed/cancelled transitions and
// persists the change.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	switch a.Status {
	case AppointmentScheduled:
		if newStatus != AppointmentCompleted && newStatus != AppointmentCancelled {
			return fmt.Errorf("invalid transition from scheduled to %s", newStatus)
		}
	case AppointmentCompleted, AppointmentCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	default:
		return fmt.Errorf("unknown appointment status %s", a.Status)
	}

	a.Status = newStatus
	return tx.Save(a).Error
}
