package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/regional-portal/geo-backend/internal/domain"
)

// geoMatch is the single row returned by the geo_resolve_* procedures.
// Tenant columns are NULL when the region has no active partner.
type geoMatch struct {
	RegionID     uuid.UUID      `db:"region_id"`
	StateCode    string         `db:"uf"`
	CityName     string         `db:"city"`
	TenantID     *uuid.UUID     `db:"tenant_id"`
	TenantSlug   sql.NullString `db:"tenant_slug"`
	TenantDomain sql.NullString `db:"tenant_domain"`
	TenantName   sql.NullString `db:"tenant_name"`
}

func (m geoMatch) toResolution() *domain.Resolution {
	region := &domain.Region{
		ID:        m.RegionID,
		StateCode: m.StateCode,
		CityName:  m.CityName,
	}

	var tenant *domain.Tenant
	if m.TenantID != nil && m.TenantSlug.Valid {
		tenant = &domain.Tenant{
			ID:     *m.TenantID,
			Slug:   m.TenantSlug.String,
			Domain: m.TenantDomain.String,
			Name:   m.TenantName.String,
		}
	}

	return domain.NewResolution(region, tenant)
}

type geoProcedureRepository struct {
	db *sqlx.DB
}

func newGeoProcedureRepository(db *sqlx.DB) *geoProcedureRepository {
	return &geoProcedureRepository{
		db: db,
	}
}

func (r *geoProcedureRepository) ResolveByPostalCode(ctx context.Context, code string) (*domain.Resolution, error) {
	const query = `CALL geo_resolve_cep(?);`

	var matches []geoMatch
	if err := r.db.SelectContext(ctx, &matches, query, code); err != nil {
		return nil, fmt.Errorf("call geo_resolve_cep failed: %w", err)
	}

	return firstMatch(matches), nil
}

func (r *geoProcedureRepository) ResolveByPoint(ctx context.Context, latitude, longitude float64) (*domain.Resolution, error) {
	const query = `CALL geo_resolve_point(?, ?);`

	var matches []geoMatch
	if err := r.db.SelectContext(ctx, &matches, query, latitude, longitude); err != nil {
		return nil, fmt.Errorf("call geo_resolve_point failed: %w", err)
	}

	return firstMatch(matches), nil
}

// firstMatch treats an empty result as a no-match rather than an error.
func firstMatch(matches []geoMatch) *domain.Resolution {
	if len(matches) == 0 {
		return domain.Unresolved()
	}
	return matches[0].toResolution()
}
