package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/regional-portal/geo-backend/internal/domain"
)

type tenantRepository struct {
	db *sqlx.DB
}

func newTenantRepository(db *sqlx.DB) *tenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// GetPreferredByRegionID returns the tenant of the active mapping with the lowest priority.
// Equal priorities are ordered by slug so the answer is stable.
func (r *tenantRepository) GetPreferredByRegionID(ctx context.Context, regionID uuid.UUID) (*domain.Tenant, error) {
	const query = `
	SELECT t.id, t.slug, t.domain, t.name
	FROM partner_map pm
	JOIN tenant t ON t.id = pm.tenant_id
	WHERE pm.region_id = uuid_to_bin(?) AND pm.active = 1
	ORDER BY pm.priority ASC, t.slug ASC
	LIMIT 1;
	`
	var tenant domain.Tenant
	if err := r.db.GetContext(ctx, &tenant, query, regionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select preferred tenant by region id failed: %w", err)
	}
	return &tenant, nil
}

func (r *tenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	const query = `
	SELECT id, slug, domain, name FROM tenant WHERE slug = ?;
	`
	var tenant domain.Tenant
	if err := r.db.GetContext(ctx, &tenant, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from tenant by slug failed: %w", err)
	}
	return &tenant, nil
}
