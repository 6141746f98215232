// Package directory defines the interface to the practice-management
// system that owns patient identity and the appointment calendar. The
// booking core only ever talks to this interface; concrete integrations
// live in subpackages.
package directory

import (
	"context"
	"time"
)

// Patient is a patient record as known to the directory.
type Patient struct {
	ID          string
	Name        string
	Phone       string
	Email       string
	DateOfBirth string
}

// PatientSearchQuery searches by name and/or phone. Matching semantics
// belong to the directory; callers take results in directory order.
type PatientSearchQuery struct {
	Name  string
	Phone string
}

// Slot is one bookable opening on the calendar.
type Slot struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
}

// AppointmentRequest asks the directory to book one appointment.
type AppointmentRequest struct {
	PatientID string
	StartTime time.Time
	EndTime   time.Time
	Notes     string
}

// Appointment is a booked appointment as confirmed by the directory.
type Appointment struct {
	ID        string
	PatientID string
	StartTime time.Time
	EndTime   time.Time
	Status    string
}

// Client is implemented by each practice-management integration.
type Client interface {
	// SearchPatients finds existing patients matching the query.
	SearchPatients(ctx context.Context, query PatientSearchQuery) ([]Patient, error)

	// CreatePatient registers a new patient and returns it with its
	// directory-assigned ID.
	CreatePatient(ctx context.Context, patient Patient) (*Patient, error)

	// CreateAppointment books an appointment for an existing patient.
	CreateAppointment(ctx context.Context, req AppointmentRequest) (*Appointment, error)

	// GetAvailability lists free slots for one calendar day.
	GetAvailability(ctx context.Context, day time.Time) ([]Slot, error)
}
