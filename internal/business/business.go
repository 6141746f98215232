// Package business persists business profiles captured during setup
// conversations. This is the one capability whose records outlive a
// call; everything is keyed by a generated BIZ- identifier.
package business

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no profile exists for the given ID.
var ErrNotFound = errors.New("business: profile not found")

// Info is one stored business profile.
type Info struct {
	ID          string    `json:"business_id"`
	Name        string    `json:"business_name"`
	Phone       string    `json:"business_phone"`
	Address     string    `json:"business_address,omitempty"`
	Email       string    `json:"business_email,omitempty"`
	Website     string    `json:"business_website,omitempty"`
	Description string    `json:"business_description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Updates holds the mutable fields for an update; empty strings leave
// the stored value untouched.
type Updates struct {
	Name        string
	Phone       string
	Address     string
	Email       string
	Website     string
	Description string
}

// Repository stores business profiles.
type Repository interface {
	Save(ctx context.Context, info *Info) error
	Get(ctx context.Context, id string) (*Info, error)
	List(ctx context.Context) ([]*Info, error)
	Update(ctx context.Context, id string, updates Updates) (*Info, error)
	Delete(ctx context.Context, id string) error
}
