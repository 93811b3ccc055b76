package controllers

import (
	"testing"

	"github.com/clinichq/clinic-app/models"
)

func validStaffInput() staffInput {
	return staffInput{
		Name:       "Jordan Ellis",
		Email:      "jordan@clinic.example",
		Password:   "changeme",
		NationalID: "42101-1234567-1",
		Phone:      "0300-1234567",
		Address:    "12 Hospital Road",
	}
}

func TestStaffInputValidate(t *testing.T) {
	in := validStaffInput()
	if msg, ok := in.validate(models.RoleReceptionist); !ok {
		t.Fatalf("expected a valid receptionist input, got %q", msg)
	}

	cases := []struct {
		name   string
		role   models.UserRole
		mutate func(*staffInput)
	}{
		{"missing name", models.RoleReceptionist, func(in *staffInput) { in.Name = "" }},
		{"missing phone", models.RolePharmacistDispenser, func(in *staffInput) { in.Phone = "" }},
		{"missing address", models.RolePharmacistInventory, func(in *staffInput) { in.Address = "" }},
		{"bad email", models.RoleReceptionist, func(in *staffInput) { in.Email = "not-an-email" }},
		{"bad national id", models.RoleReceptionist, func(in *staffInput) { in.NationalID = "12345-67-8" }},
		{"bad gender", models.RoleReceptionist, func(in *staffInput) { in.Gender = "none" }},
		{"doctor without speciality", models.RoleDoctor, func(in *staffInput) {
			in.RegistrationNumber = "PMC-9931"
			in.Schedule = "Mon-Fri 9-5"
		}},
		{"doctor without registration number", models.RoleDoctor, func(in *staffInput) {
			in.Speciality = "Cardiology"
			in.Schedule = "Mon-Fri 9-5"
		}},
		{"doctor without schedule", models.RoleDoctor, func(in *staffInput) {
			in.Speciality = "Cardiology"
			in.RegistrationNumber = "PMC-9931"
		}},
	}

	for _, tc := range cases {
		in := validStaffInput()
		tc.mutate(&in)
		if _, ok := in.validate(tc.role); ok {
			t.Errorf("%s: expected validation to fail", tc.name)
		}
	}

	// a complete doctor input passes
	in = validStaffInput()
	in.Speciality = "Cardiology"
	in.RegistrationNumber = "PMC-9931"
	in.Schedule = "Mon-Fri 9-5"
	if msg, ok := in.validate(models.RoleDoctor); !ok {
		t.Errorf("expected a complete doctor input to pass, got %q", msg)
	}
}

func TestIsValidStaffRole(t *testing.T) {
	for _, role := range models.StaffRoles {
		if !models.IsValidStaffRole(string(role)) {
			t.Errorf("expected %s to be a valid staff role", role)
		}
	}
	for _, role := range []string{"admin", "nurse", ""} {
		if models.IsValidStaffRole(role) {
			t.Errorf("expected %q to be rejected", role)
		}
	}
}
