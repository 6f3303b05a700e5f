package converter

import (
	"fmt"

	"salon-booking/internal/domain/user"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:             u.ID(),
		OrganizationID: u.OrganizationID(),
		Email:          u.Email().Value(),
		PasswordHash:   u.PasswordHash(),
		Role:           u.Role().String(),
		FirstName:      u.Name().First(),
		LastName:       u.Name().Last(),
		Phone:          pgconv.StringPtrToPgtype(u.Phone()),
		BirthDate:      pgconv.DatePtrToPgtype(u.BirthDate()),
		Newsletter:     u.Newsletter(),
		IsActive:       u.IsActive(),
		CreatedAt:      pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserToProfileParams(u *user.User) sqlc.UpdateUserProfileParams {
	return sqlc.UpdateUserProfileParams{
		FirstName:  u.Name().First(),
		LastName:   u.Name().Last(),
		Phone:      pgconv.StringPtrToPgtype(u.Phone()),
		BirthDate:  pgconv.DatePtrToPgtype(u.BirthDate()),
		Newsletter: u.Newsletter(),
		Role:       u.Role().String(),
		IsActive:   u.IsActive(),
		UpdatedAt:  pgconv.TimeToPgtype(u.UpdatedAt()),
		ID:         u.ID(),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}
	name, err := user.NewName(row.FirstName, row.LastName)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}

	return user.ReconstructUser(
		row.ID, row.OrganizationID,
		email, row.PasswordHash, role, name,
		pgconv.StringPtrFromPgtype(row.Phone),
		pgconv.DatePtrFromPgtype(row.BirthDate),
		row.Newsletter, row.IsActive,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
