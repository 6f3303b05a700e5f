package shared

import (
	"time"

	"salon-booking/internal/domain/organization"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	Status      string
	RequestHash string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

type OrganizationSnapshot struct {
	ID       uuid.UUID
	Name     string
	Slug     string
	Settings organization.Settings
}

type UserSnapshot struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Email          string
	FirstName      string
	LastName       string
	Role           string
	BirthDate      *time.Time
	IsActive       bool
}

type SponsorSnapshot struct {
	ClientID       uuid.UUID
	OrganizationID uuid.UUID
}
