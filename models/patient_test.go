package models

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidateDateOfBirth(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	if err := ValidateDateOfBirth(now.AddDate(-30, 0, 0), now); err != nil {
		t.Errorf("expected a 30 year old birth date to pass, got %v", err)
	}

	if err := ValidateDateOfBirth(now.AddDate(0, 0, 1), now); !errors.Is(err, ErrFutureDateOfBirth) {
		t.Errorf("expected ErrFutureDateOfBirth for a future date, got %v", err)
	}

	if err := ValidateDateOfBirth(now.AddDate(-151, 0, 0), now); !errors.Is(err, ErrImplausibleAge) {
		t.Errorf("expected ErrImplausibleAge for a 151 year age, got %v", err)
	}

	// exactly at the bound
	if err := ValidateDateOfBirth(now.AddDate(-MaxPatientAge, 0, 0), now); err != nil {
		t.Errorf("expected an age of exactly %d to pass, got %v", MaxPatientAge, err)
	}
}

func TestValidateChiefComplaint(t *testing.T) {
	if err := ValidateChiefComplaint(strings.Repeat("a", MaxChiefComplaintLen)); err != nil {
		t.Errorf("expected exactly %d characters to pass, got %v", MaxChiefComplaintLen, err)
	}

	if err := ValidateChiefComplaint(strings.Repeat("a", MaxChiefComplaintLen+1)); !errors.Is(err, ErrChiefComplaintLong) {
		t.Errorf("expected ErrChiefComplaintLong, got %v", err)
	}

	// characters are counted as runes, not bytes
	multibyte := strings.Repeat("درد", 166) + "دد" // 500 runes, 1000 bytes
	if err := ValidateChiefComplaint(multibyte); err != nil {
		t.Errorf("expected a 500 rune multibyte complaint to pass, got %v", err)
	}
}

func TestIsValidGender(t *testing.T) {
	for _, g := range []string{GenderMale, GenderFemale, GenderOther} {
		if !IsValidGender(g) {
			t.Errorf("expected %q to be accepted", g)
		}
	}
	for _, g := range []string{"", "Male", "unknown"} {
		if IsValidGender(g) {
			t.Errorf("expected %q to be rejected", g)
		}
	}
}
