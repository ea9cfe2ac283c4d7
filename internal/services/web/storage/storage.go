package storage

import (
	"context"
	"errors"
	"time"
)

// ErrPersistence marks every failure raised by a Store implementation.
var ErrPersistence = errors.New("persistence failure")

// Registrant is one general-interest registration.
type Registrant struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Location         string
	InterestArea     string
	InvestmentLevel  string
	RegistrationDate time.Time
}

// WorkshopRegistrant is one workshop sign-up.
type WorkshopRegistrant struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	WorkshopType     string
	PaymentMethod    string
	RegistrationDate time.Time
}

// RegistrantStore persists general-interest registrations.
type RegistrantStore interface {
	PutRegistrant(ctx context.Context, r Registrant) (int64, error)
	ListRegistrants(ctx context.Context) ([]Registrant, error)
	DeleteRegistrant(ctx context.Context, id int64) error
}

// WorkshopRegistrantStore persists workshop sign-ups.
type WorkshopRegistrantStore interface {
	PutWorkshopRegistrant(ctx context.Context, r WorkshopRegistrant) (int64, error)
	ListWorkshopRegistrants(ctx context.Context) ([]WorkshopRegistrant, error)
	DeleteWorkshopRegistrant(ctx context.Context, id int64) error
}

// Store is the full persistence contract owned by the web service.
//
// List operations return rows newest first. Deleting an id that does not
// exist succeeds without effect.
type Store interface {
	RegistrantStore
	WorkshopRegistrantStore
	Close() error
}
