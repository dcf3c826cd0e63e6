package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/regional-portal/geo-backend/internal/domain"
)

type tenantPreferenceRow struct {
	IdentityKind      domain.IdentityKind `db:"identity_kind"`
	IdentityID        string              `db:"identity_id"`
	TenantIDPreferred *uuid.UUID          `db:"tenant_id_preferred"`
	RegionID          *uuid.UUID          `db:"region_id"`
	PostalCode        sql.NullString      `db:"cep"`
	LastResolvedAt    time.Time           `db:"last_resolved_at"`
}

type tenantPreferenceRepository struct {
	db *sqlx.DB
}

func newTenantPreferenceRepository(db *sqlx.DB) *tenantPreferenceRepository {
	return &tenantPreferenceRepository{
		db: db,
	}
}

// Upsert keeps one row per (identity_kind, identity_id); a later write overwrites the previous choice.
func (r *tenantPreferenceRepository) Upsert(ctx context.Context, pref *domain.TenantPreference) error {
	if pref.Identity == nil {
		return domain.ErrInvalidIdentity
	}

	const query = `
	INSERT INTO tenant_pref
	(identity_kind, identity_id, tenant_id_preferred, region_id, cep, last_resolved_at)
	VALUES (?, ?, uuid_to_bin(?), uuid_to_bin(?), ?, ?)
	ON DUPLICATE KEY UPDATE
		tenant_id_preferred = VALUES(tenant_id_preferred),
		region_id = VALUES(region_id),
		cep = VALUES(cep),
		last_resolved_at = VALUES(last_resolved_at);
	`

	var postalCode sql.NullString
	if pref.PostalCode != nil {
		postalCode = sql.NullString{String: *pref.PostalCode, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		pref.Identity.Kind(),
		pref.Identity.Key(),
		pref.TenantIDPreferred,
		pref.RegionID,
		postalCode,
		pref.LastResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("db upsert tenant preference: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *tenantPreferenceRepository) GetByIdentity(ctx context.Context, identity domain.Identity) (*domain.TenantPreference, error) {
	const query = `
	SELECT identity_kind, identity_id, tenant_id_preferred, region_id, cep, last_resolved_at
	FROM tenant_pref WHERE identity_kind = ? AND identity_id = ?;
	`
	var row tenantPreferenceRow
	if err := r.db.GetContext(ctx, &row, query, identity.Kind(), identity.Key()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from tenant_pref by identity failed: %w", err)
	}

	pref := &domain.TenantPreference{
		Identity:          identity,
		TenantIDPreferred: row.TenantIDPreferred,
		RegionID:          row.RegionID,
		LastResolvedAt:    row.LastResolvedAt,
	}
	if row.PostalCode.Valid {
		postalCode := row.PostalCode.String
		pref.PostalCode = &postalCode
	}

	return pref, nil
}
