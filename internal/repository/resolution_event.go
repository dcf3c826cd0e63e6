package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/regional-portal/geo-backend/internal/db"
	"github.com/regional-portal/geo-backend/internal/domain"
)

type resolutionEventRepository struct {
	db *sqlx.DB
}

func newResolutionEventRepository(db *sqlx.DB) *resolutionEventRepository {
	return &resolutionEventRepository{
		db: db,
	}
}

// Create is safe to replay: a task retried after a successful insert reports ErrDuplicateEntry.
func (r *resolutionEventRepository) Create(ctx context.Context, event *domain.ResolutionEvent) error {
	const query = `
	INSERT INTO resolution_event
	(id, lookup_kind, region_id, uf, city, tenant_id, fallback, resolved_at)
	VALUES (uuid_to_bin(?), ?, uuid_to_bin(?), ?, ?, uuid_to_bin(?), ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.LookupKind,
		event.RegionID,
		event.StateCode,
		event.CityName,
		event.TenantID,
		event.Fallback,
		event.ResolvedAt,
	)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert resolution event: %w", err)
	}

	return nil
}

func (r *resolutionEventRepository) FallbackStats(ctx context.Context, since time.Time, limit int) ([]domain.FallbackStat, error) {
	const query = `
	SELECT
		COALESCE(uf, '') AS uf,
		COALESCE(city, '') AS city,
		COUNT(*) AS count,
		MAX(resolved_at) AS last_seen
	FROM resolution_event
	WHERE fallback = 1 AND resolved_at >= ?
	GROUP BY uf, city
	ORDER BY count DESC, last_seen DESC
	LIMIT ?;
	`
	stats := make([]domain.FallbackStat, 0)
	if err := r.db.SelectContext(ctx, &stats, query, since, limit); err != nil {
		return nil, fmt.Errorf("select fallback stats failed: %w", err)
	}
	return stats, nil
}
