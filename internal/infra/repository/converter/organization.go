package converter

import (
	"encoding/json"
	"fmt"

	"salon-booking/internal/domain/organization"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
)

func OrganizationToCreateParams(o *organization.Organization) (sqlc.CreateOrganizationParams, error) {
	settings, err := json.Marshal(o.Settings())
	if err != nil {
		return sqlc.CreateOrganizationParams{}, fmt.Errorf("marshal settings: %w", err)
	}
	return sqlc.CreateOrganizationParams{
		ID:        o.ID(),
		Name:      o.Name(),
		Slug:      o.Slug().Value(),
		Settings:  settings,
		CreatedAt: pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(o.UpdatedAt()),
	}, nil
}

// SettingsFromJSON starts from the defaults so documents written before a
// setting existed still decode to a usable configuration.
func SettingsFromJSON(raw []byte) (organization.Settings, error) {
	s := organization.DefaultSettings()
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return organization.Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}

func OrganizationFromRow(row sqlc.Organizations) (*organization.Organization, error) {
	slug, err := organization.NewSlug(row.Slug)
	if err != nil {
		return nil, fmt.Errorf("organization %s: %w", row.ID, err)
	}
	settings, err := SettingsFromJSON(row.Settings)
	if err != nil {
		return nil, fmt.Errorf("organization %s: %w", row.ID, err)
	}
	return organization.ReconstructOrganization(
		row.ID, row.Name, slug, settings,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
