// Package cliniko implements the directory.Client interface against a
// Cliniko-style practice-management REST API.
package cliniko

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mindwell/voicedesk/internal/directory"
)

// Client talks to the practice-management REST API. Authentication uses
// the API key as the basic-auth username with an empty password.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config holds configuration for the client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// New creates a directory client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("cliniko: BaseURL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("cliniko: APIKey is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

var _ directory.Client = (*Client)(nil)

type patientResource struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone_number"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
}

type patientList struct {
	Patients []patientResource `json:"patients"`
}

// SearchPatients queries the directory by name and/or phone.
// GET /patients?q={name}&phone={phone}
func (c *Client) SearchPatients(ctx context.Context, query directory.PatientSearchQuery) ([]directory.Patient, error) {
	params := url.Values{}
	if query.Name != "" {
		params.Set("q", query.Name)
	}
	if query.Phone != "" {
		params.Set("phone", query.Phone)
	}

	var list patientList
	if err := c.do(ctx, http.MethodGet, "/patients?"+params.Encode(), nil, &list); err != nil {
		return nil, fmt.Errorf("cliniko: search patients: %w", err)
	}

	patients := make([]directory.Patient, 0, len(list.Patients))
	for _, p := range list.Patients {
		patients = append(patients, toPatient(p))
	}
	return patients, nil
}

// CreatePatient registers a new patient record.
// POST /patients
func (c *Client) CreatePatient(ctx context.Context, patient directory.Patient) (*directory.Patient, error) {
	first, last := splitName(patient.Name)
	body := patientResource{
		FirstName:   first,
		LastName:    last,
		Phone:       patient.Phone,
		Email:       patient.Email,
		DateOfBirth: patient.DateOfBirth,
	}

	var created patientResource
	if err := c.do(ctx, http.MethodPost, "/patients", body, &created); err != nil {
		return nil, fmt.Errorf("cliniko: create patient: %w", err)
	}
	out := toPatient(created)
	return &out, nil
}

type appointmentResource struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`
	StartsAt  string `json:"starts_at"`
	EndsAt    string `json:"ends_at"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status,omitempty"`
}

// CreateAppointment books an appointment for an existing patient.
// POST /individual_appointments
func (c *Client) CreateAppointment(ctx context.Context, req directory.AppointmentRequest) (*directory.Appointment, error) {
	body := appointmentResource{
		PatientID: req.PatientID,
		StartsAt:  req.StartTime.Format(time.RFC3339),
		EndsAt:    req.EndTime.Format(time.RFC3339),
		Notes:     req.Notes,
	}

	var created appointmentResource
	if err := c.do(ctx, http.MethodPost, "/individual_appointments", body, &created); err != nil {
		return nil, fmt.Errorf("cliniko: create appointment: %w", err)
	}

	appt := directory.Appointment{
		ID:        created.ID,
		PatientID: created.PatientID,
		Status:    created.Status,
	}
	if t, err := time.Parse(time.RFC3339, created.StartsAt); err == nil {
		appt.StartTime = t
	}
	if t, err := time.Parse(time.RFC3339, created.EndsAt); err == nil {
		appt.EndTime = t
	}
	return &appt, nil
}

type availableTimesList struct {
	AvailableTimes []struct {
		ID       string `json:"id"`
		StartsAt string `json:"appointment_start"`
		EndsAt   string `json:"appointment_end"`
	} `json:"available_times"`
}

// GetAvailability lists free slots for one calendar day.
// GET /available_times?from={date}&to={date}
func (c *Client) GetAvailability(ctx context.Context, day time.Time) ([]directory.Slot, error) {
	params := url.Values{}
	params.Set("from", day.Format("2006-01-02"))
	params.Set("to", day.Format("2006-01-02"))

	var list availableTimesList
	if err := c.do(ctx, http.MethodGet, "/available_times?"+params.Encode(), nil, &list); err != nil {
		return nil, fmt.Errorf("cliniko: get availability: %w", err)
	}

	slots := make([]directory.Slot, 0, len(list.AvailableTimes))
	for _, s := range list.AvailableTimes {
		slot := directory.Slot{ID: s.ID}
		if t, err := time.Parse(time.RFC3339, s.StartsAt); err == nil {
			slot.StartTime = t
		}
		if t, err := time.Parse(time.RFC3339, s.EndsAt); err == nil {
			slot.EndTime = t
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// do issues one authenticated request and decodes a JSON response.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(detail))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func toPatient(p patientResource) directory.Patient {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	return directory.Patient{
		ID:          p.ID,
		Name:        name,
		Phone:       p.Phone,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth,
	}
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
