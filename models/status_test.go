package models

import "testing"

// The invalid transitions fail before any save, so no database is needed.

func TestPrescriptionStatusGuards(t *testing.T) {
	p := Prescription{Status: PrescriptionFulfilled}
	if err := p.UpdateStatus(nil, PrescriptionRejected); err == nil {
		t.Error("expected no transitions from fulfilled")
	}

	p = Prescription{Status: PrescriptionRejected}
	if err := p.UpdateStatus(nil, PrescriptionFulfilled); err == nil {
		t.Error("expected no transitions from rejected")
	}

	p = Prescription{Status: PrescriptionPending}
	if err := p.UpdateStatus(nil, PrescriptionPending); err == nil {
		t.Error("expected pending to pending to be rejected")
	}
	if p.Status != PrescriptionPending {
		t.Errorf("status should be unchanged after a rejected transition, got %s", p.Status)
	}
}

func TestAppointmentStatusGuards(t *testing.T) {
	a := Appointment{Status: AppointmentCompleted}
	if err := a.UpdateStatus(nil, AppointmentCancelled); err == nil {
		t.Error("expected no transitions from completed")
	}

	a = Appointment{Status: AppointmentCancelled}
	if err := a.UpdateStatus(nil, AppointmentCompleted); err == nil {
		t.Error("expected no transitions from cancelled")
	}

	a = Appointment{Status: AppointmentScheduled}
	if err := a.UpdateStatus(nil, AppointmentScheduled); err == nil {
		t.Error("expected scheduled to scheduled to be rejected")
	}
	if a.Status != AppointmentScheduled {
		t.Errorf("status should be unchanged after a rejected transition, got %s", a.Status)
	}
}
