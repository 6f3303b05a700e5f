package commands

import (
	"context"
	"strings"
	"time"

	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/referral"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/pkg/patch"
	"salon-booking/internal/pkg/randcode"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrSponsorNotFound      = errs.New("sponsor referral code not found")
	ErrCannotDeactivateSelf = errs.New("cannot deactivate own account")
	ErrRoleNotAssignable    = errs.New("role cannot be assigned")
)

// generated passwords are never shown; the client resets theirs before first login
const generatedPasswordLength = 24

type CreateClientRequest struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	BirthDate   *time.Time
	Newsletter  bool
	SponsorCode *string
}

type UpdateUserRequest struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Role       *string
	IsActive   *bool
	BirthDate  *time.Time
	Newsletter *bool
}

type UserCommands interface {
	CreateClient(ctx context.Context, actor shared.Actor, req CreateClientRequest) (*queries.UserView, error)
	UpdateUser(ctx context.Context, actor shared.Actor, userID uuid.UUID, req UpdateUserRequest) (*queries.UserView, error)
	DeactivateUser(ctx context.Context, actor shared.Actor, userID uuid.UUID) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	users queries.UserReadStore
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, users queries.UserReadStore, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, users: users, clock: clk}
}

func (uc *userCommandsImpl) CreateClient(ctx context.Context, actor shared.Actor, req CreateClientRequest) (*queries.UserView, error) {
	if !actor.AtLeast(user.RoleStaff) {
		return nil, ErrAccessDenied
	}
	now := uc.clock.Now()

	u, err := uc.newClient(actor.OrganizationID, req, now)
	if err != nil {
		return nil, err
	}
	code, err := loyalty.GenerateReferralCode()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate referral code")
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Loyalty().CreateProfile(ctx, tx.DB(), loyalty.NewProfile(u.ID(), u.OrganizationID(), code)); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if req.SponsorCode != nil && strings.TrimSpace(*req.SponsorCode) != "" {
			if err := linkSponsor(ctx, tx, u, *req.SponsorCode, now); err != nil {
				return err
			}
		}

		if u.HasBirthdayIn(now) {
			if _, err := tx.Loyalty().GrantBirthday(ctx, tx.DB(), loyalty.GrantBirthdayDiscount(u.ID(), now)); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.users.FindByID(ctx, u.ID())
}

func (uc *userCommandsImpl) newClient(organizationID uuid.UUID, req CreateClientRequest, now time.Time) (*user.User, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	name, err := user.NewName(req.FirstName, req.LastName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	phone, err := user.NewPhone(req.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := user.ValidateBirthDate(req.BirthDate, now); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	plain := req.Password
	if plain == "" {
		if plain, err = randcode.Generate(generatedPasswordLength); err != nil {
			return nil, errs.Wrap(err, "failed to generate password")
		}
	}
	pw, err := user.NewPassword(plain)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(organizationID, email, hash, user.RoleClient, name)
	u.SetContact(phone, req.BirthDate, req.Newsletter)
	return u, nil
}

func linkSponsor(ctx context.Context, tx shared.Tx, referred *user.User, rawCode string, now time.Time) error {
	code, err := loyalty.NewReferralCode(strings.ToUpper(strings.TrimSpace(rawCode)))
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	sponsor, err := tx.Reads().SponsorByReferralCode(ctx, code.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSponsorNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if sponsor.OrganizationID != referred.OrganizationID() {
		return ErrSponsorNotFound
	}

	ref, err := referral.NewReferral(referred.OrganizationID(), sponsor.ClientID, referred.ID(), now)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := tx.Referrals().Create(ctx, tx.DB(), ref); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *userCommandsImpl) UpdateUser(ctx context.Context, actor shared.Actor, userID uuid.UUID, req UpdateUserRequest) (*queries.UserView, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, ErrAccessDenied
	}
	now := uc.clock.Now()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := findUser(ctx, tx, actor, userID)
		if err != nil {
			return err
		}

		name, err := user.NewName(
			patch.Coalesce(req.FirstName, u.Name().First()),
			patch.Coalesce(req.LastName, u.Name().Last()),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		u.Rename(name)

		phone := u.Phone()
		if req.Phone != nil {
			if phone, err = user.NewPhone(*req.Phone); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		birthDate := u.BirthDate()
		if req.BirthDate != nil {
			if err := user.ValidateBirthDate(req.BirthDate, now); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			birthDate = req.BirthDate
		}
		u.SetContact(phone, birthDate, patch.Coalesce(req.Newsletter, u.Newsletter()))

		if req.Role != nil {
			role, err := user.NewRole(*req.Role)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if !actor.AtLeast(role) {
				return ErrRoleNotAssignable
			}
			u.ChangeRole(role)
		}
		if req.IsActive != nil {
			if !*req.IsActive && u.ID() == actor.UserID {
				return ErrCannotDeactivateSelf
			}
			if *req.IsActive {
				u.Activate()
			} else {
				u.Deactivate()
			}
		}

		if err := tx.Users().Update(ctx, tx.DB(), u); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.users.FindByID(ctx, userID)
}

func (uc *userCommandsImpl) DeactivateUser(ctx context.Context, actor shared.Actor, userID uuid.UUID) error {
	if !actor.AtLeast(user.RoleAdmin) {
		return ErrAccessDenied
	}
	if userID == actor.UserID {
		return ErrCannotDeactivateSelf
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := findUser(ctx, tx, actor, userID)
		if err != nil {
			return err
		}
		if !actor.AtLeast(u.Role()) {
			return ErrAccessDenied
		}
		u.Deactivate()
		if err := tx.Users().Update(ctx, tx.DB(), u); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func findUser(ctx context.Context, tx shared.Tx, actor shared.Actor, id uuid.UUID) (*user.User, error) {
	u, err := tx.Users().FindByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !actor.CanAccess(u.OrganizationID()) {
		return nil, ErrUserNotFound
	}
	return u, nil
}
