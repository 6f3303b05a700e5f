package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id             uuid.UUID
	organizationID uuid.UUID
	email          Email
	passwordHash   string
	role           Role
	name           Name
	phone          *string
	birthDate      *time.Time
	newsletter     bool
	lastLogin      *time.Time
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewUser(organizationID uuid.UUID, email Email, passwordHash string, role Role, name Name) *User {
	return &User{
		id:             uuid.New(),
		organizationID: organizationID,
		email:          email,
		passwordHash:   passwordHash,
		role:           role,
		name:           name,
		isActive:       true,
	}
}

func ReconstructUser(
	id, organizationID uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	name Name,
	phone *string,
	birthDate *time.Time,
	newsletter, isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:             id,
		organizationID: organizationID,
		email:          email,
		passwordHash:   passwordHash,
		role:           role,
		name:           name,
		phone:          phone,
		birthDate:      birthDate,
		newsletter:     newsletter,
		isActive:       isActive,
		lastLogin:      lastLogin,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (u *User) SetContact(phone *string, birthDate *time.Time, newsletter bool) {
	u.phone = phone
	u.birthDate = birthDate
	u.newsletter = newsletter
}

func (u *User) Rename(name Name)     { u.name = name }
func (u *User) ChangeRole(role Role) { u.role = role }
func (u *User) Deactivate()          { u.isActive = false }
func (u *User) Activate()            { u.isActive = true }

// HasBirthdayIn reports whether the stored birth month equals the month of t.
func (u *User) HasBirthdayIn(t time.Time) bool {
	return u.birthDate != nil && u.birthDate.Month() == t.Month()
}

func (u *User) ID() uuid.UUID             { return u.id }
func (u *User) OrganizationID() uuid.UUID { return u.organizationID }
func (u *User) Email() Email              { return u.email }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Role() Role                { return u.role }
func (u *User) Name() Name                { return u.name }
func (u *User) Phone() *string            { return u.phone }
func (u *User) BirthDate() *time.Time     { return u.birthDate }
func (u *User) Newsletter() bool          { return u.newsletter }
func (u *User) LastLogin() *time.Time     { return u.lastLogin }
func (u *User) IsActive() bool            { return u.isActive }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }
