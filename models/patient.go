package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

var (
	ErrFutureDateOfBirth  = errors.New("date of birth cannot be in the future")
	ErrImplausibleAge     = errors.New("date of birth implies an age above 150 years")
	ErrChiefComplaintLong = errors.New("chief complaint cannot exceed 500 characters")
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// MaxPatientAge bounds how far in the past a date of birth may lie.
const MaxPatientAge = 150

// MaxChiefComplaintLen caps the free-text chief complaint.
const MaxChiefComplaintLen = 500

func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

type Patient struct {
	gorm.Model
	Name           string         `json:"name"`
	Email          string         `json:"email" gorm:"uniqueIndex"`
	Gender         string         `json:"gender"`
	DateOfBirth    time.Time      `json:"date_of_birth"`
	Contact        string         `json:"contact"`
	Address        string         `json:"address"`
	NationalID     string         `json:"national_id" gorm:"uniqueIndex"`
	ChiefComplaint string         `json:"chief_complaint"`
	MedicalHistory string         `json:"medical_history,omitempty"`
	Prescriptions  []Prescription `json:"prescriptions,omitempty" gorm:"foreignKey:PatientID"`
	Appointments   []Appointment  `json:"appointments,omitempty" gorm:"foreignKey:PatientID"`
}

// ValidateChiefComplaint caps the complaint at MaxChiefComplaintLen
// characters, counted as runes so multibyte text is not penalized.
func ValidateChiefComplaint(complaint string) error {
	if utf8.RuneCountInString(complaint) > MaxChiefComplaintLen {
		return ErrChiefComplaintLong
	}
	return nil
}

// ValidateDateOfBirth rejects birth dates in the future or implying an age
// above MaxPatientAge, evaluated against now.
func ValidateDateOfBirth(dob, now time.Time) error {
	if dob.After(now) {
		return ErrFutureDateOfBirth
	}
	if dob.Before(now.AddDate(-MaxPatientAge, 0, 0)) {
		return ErrImplausibleAge
	}
	return nil
}
