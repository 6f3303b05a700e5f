package shared

import (
	"salon-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller, resolved by the auth middleware from the
// access token and passed explicitly into every use case.
type Actor struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	Role           user.Role
}

func (a Actor) AtLeast(role user.Role) bool {
	return a.Role.AtLeast(role)
}

// CanAccess reports whether the actor may touch data of the given tenant.
func (a Actor) CanAccess(organizationID uuid.UUID) bool {
	return a.Role == user.RoleSuperAdmin || a.OrganizationID == organizationID
}
