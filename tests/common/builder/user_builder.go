//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/user"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Email          string
	PasswordHash   string
	Role           string
	FirstName      string
	LastName       string
	BirthDate      *time.Time
	Newsletter     bool
	IsActive       bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Email:          "test@example.com",
		PasswordHash:   "hashed_password",
		Role:           "admin",
		FirstName:      "Camille",
		LastName:       "Martin",
		IsActive:       true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	name, err := user.NewName(u.FirstName, u.LastName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return user.ReconstructUser(
		u.ID, u.OrganizationID, email, u.PasswordHash, role, name,
		nil, u.BirthDate, u.Newsletter, u.IsActive, nil, now, now,
	), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	var birthDate pgtype.Date
	if u.BirthDate != nil {
		birthDate = pgtype.Date{Time: *u.BirthDate, Valid: true}
	}

	return sqlc.Users{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Role:           u.Role,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		BirthDate:      birthDate,
		Newsletter:     u.Newsletter,
		LastLogin:      pgtype.Timestamptz{},
		IsActive:       u.IsActive,
		CreatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           u.Role,
		BirthDate:      u.BirthDate,
		Newsletter:     u.Newsletter,
		IsActive:       u.IsActive,
		CreatedAt:      time.Now(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithOrganizationID(orgID uuid.UUID) *UserBuilder {
	u.OrganizationID = orgID
	return u
}

func (u *UserBuilder) WithBirthDate(d time.Time) *UserBuilder {
	u.BirthDate = &d
	return u
}

func (u *UserBuilder) AsClient() *UserBuilder {
	u.Role = "client"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
