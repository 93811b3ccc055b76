package models

import (
	"fmt"

	"gorm.io/gorm"
)

type PrescriptionStatus string

const (
	PrescriptionPending   PrescriptionStatus = "pending"
	PrescriptionFulfilled PrescriptionStatus = "fulfilled"
	PrescriptionRejected  PrescriptionStatus = "rejected"
)

type Prescription struct {
	gorm.Model
	PatientID uint               `json:"patient_id" gorm:"index"`
	Patient   Patient            `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	DoctorID  uint               `json:"doctor_id"`
	Doctor    User               `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Details   string             `json:"details"`
	Status    PrescriptionStatus `json:"status"`
}

func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = PrescriptionPending
	}
	return nil
}

// UpdateStatus enforces the pending -> fulfilled/rejected transitions and
// persists the change.
func (p *Prescription) UpdateStatus(tx *gorm.DB, newStatus PrescriptionStatus) error {
	switch p.Status {
	case PrescriptionPending:
		if newStatus != PrescriptionFulfilled && newStatus != PrescriptionRejected {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case PrescriptionFulfilled, PrescriptionRejected:
		return fmt.Errorf("no transitions allowed from %s", p.Status)
	default:
		return fmt.Errorf("unknown prescription status %s", p.Status)
	}

	p.Status = newStatus
	return tx.Save(p).Error
}
