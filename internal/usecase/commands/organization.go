package commands

import (
	"context"

	"salon-booking/internal/domain/organization"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrganizationNotFound = errs.New("organization not found")
	ErrSlugTaken            = errs.New("organization slug already exists")
)

type CreateOrganizationRequest struct {
	Name     string
	Slug     string
	Settings *organization.Settings
}

type OrganizationCommands interface {
	Create(ctx context.Context, actor shared.Actor, req CreateOrganizationRequest) (*queries.OrganizationView, error)
	UpdateSettings(ctx context.Context, actor shared.Actor, id uuid.UUID, settings organization.Settings) (*queries.OrganizationView, error)
}

type organizationCommandsImpl struct {
	uow  shared.UnitOfWork
	orgs queries.OrganizationReadStore
}

func NewOrganizationCommands(uow shared.UnitOfWork, orgs queries.OrganizationReadStore) OrganizationCommands {
	return &organizationCommandsImpl{uow: uow, orgs: orgs}
}

func (uc *organizationCommandsImpl) Create(ctx context.Context, actor shared.Actor, req CreateOrganizationRequest) (*queries.OrganizationView, error) {
	if !actor.AtLeast(user.RoleSuperAdmin) {
		return nil, ErrAccessDenied
	}

	slug, err := organization.NewSlug(req.Slug)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	settings := organization.DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}
	org, err := organization.NewOrganization(req.Name, slug, settings)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Organizations().Create(ctx, tx.DB(), org); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrSlugTaken
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.orgs.FindByID(ctx, org.ID())
}

func (uc *organizationCommandsImpl) UpdateSettings(ctx context.Context, actor shared.Actor, id uuid.UUID, settings organization.Settings) (*queries.OrganizationView, error) {
	if !actor.AtLeast(user.RoleSuperAdmin) {
		return nil, ErrAccessDenied
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		org, err := tx.Organizations().FindByID(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrganizationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := org.UpdateSettings(settings); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Organizations().UpdateSettings(ctx, tx.DB(), org); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.orgs.FindByID(ctx, id)
}
