package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/regional-portal/geo-backend/internal/domain"
)

type regionRepository struct {
	db *sqlx.DB
}

func newRegionRepository(db *sqlx.DB) *regionRepository {
	return &regionRepository{
		db: db,
	}
}

func (r *regionRepository) GetByStateAndCity(ctx context.Context, stateCode string, cityName string) (*domain.Region, error) {
	const query = `
	SELECT id, uf, city FROM region WHERE uf = ? AND city = ? LIMIT 1;
	`
	var region domain.Region
	if err := r.db.GetContext(ctx, &region, query, stateCode, cityName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from region by uf and city failed: %w", err)
	}
	return &region, nil
}
