package organization

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName = errors.New("organization name must be between 1 and 120 characters")
)

const maxNameLength = 120

type Organization struct {
	id        uuid.UUID
	name      string
	slug      Slug
	settings  Settings
	createdAt time.Time
	updatedAt time.Time
}

func NewOrganization(name string, slug Slug, settings Settings) (*Organization, error) {
	if name == "" || len(name) > maxNameLength {
		return nil, ErrInvalidName
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Organization{
		id:       uuid.New(),
		name:     name,
		slug:     slug,
		settings: settings,
	}, nil
}

func ReconstructOrganization(id uuid.UUID, name string, slug Slug, settings Settings, createdAt, updatedAt time.Time) *Organization {
	return &Organization{
		id:        id,
		name:      name,
		slug:      slug,
		settings:  settings,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (o *Organization) UpdateSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.settings = s
	return nil
}

func (o *Organization) ID() uuid.UUID        { return o.id }
func (o *Organization) Name() string         { return o.name }
func (o *Organization) Slug() Slug           { return o.slug }
func (o *Organization) Settings() Settings   { return o.settings }
func (o *Organization) CreatedAt() time.Time { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time { return o.updatedAt }
