package utils

import "testing"

func TestIsValidNationalID(t *testing.T) {
	valid := []string{
		"42101-1234567-1",
		"00000-0000000-0",
		"99999-9999999-9",
	}
	for _, id := range valid {
		if !IsValidNationalID(id) {
			t.Errorf("expected %q to be accepted", id)
		}
	}

	invalid := []string{
		"",
		"42101-1234567",
		"4210-1234567-1",
		"42101-123456-1",
		"42101-1234567-12",
		"421011234567-1",
		"42101-1234567-x",
		"a2101-1234567-1",
		" 42101-1234567-1",
		"42101-1234567-1 ",
		"42101_1234567_1",
	}
	for _, id := range invalid {
		if IsValidNationalID(id) {
			t.Errorf("expected %q to be rejected", id)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("doctor@clinic.example") {
		t.Error("expected a plain address to be accepted")
	}
	for _, email := range []string{"", "doctor", "doctor@clinic", "doctor clinic@x.y", "@clinic.example"} {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be rejected", email)
		}
	}
}
