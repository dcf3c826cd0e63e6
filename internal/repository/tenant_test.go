package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regional-portal/geo-backend/internal/domain"
)

func TestTenantRepository_GetPreferredByRegionID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newTenantRepository(db)
	regionID := uuid.New()
	tenantID := uuid.New()

	mock.ExpectQuery(`WHERE pm.region_id = uuid_to_bin\(\?\) AND pm.active = 1 ORDER BY pm.priority ASC, t.slug ASC LIMIT 1`).
		WithArgs(regionID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "domain", "name"}).
			AddRow(tenantID[:], "acme", "acme.example", "Acme News"))

	tenant, err := repo.GetPreferredByRegionID(context.Background(), regionID)
	require.NoError(t, err)
	assert.Equal(t, &domain.Tenant{ID: tenantID, Slug: "acme", Domain: "acme.example", Name: "Acme News"}, tenant)
}

func TestTenantRepository_GetPreferredByRegionID_NoActiveMapping(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newTenantRepository(db)

	mock.ExpectQuery(`FROM partner_map`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "domain", "name"}))

	_, err := repo.GetPreferredByRegionID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTenantRepository_GetBySlug(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newTenantRepository(db)
	tenantID := uuid.New()

	mock.ExpectQuery(`FROM tenant WHERE slug = \?`).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "domain", "name"}).
			AddRow(tenantID[:], "acme", "acme.example", "Acme News"))

	tenant, err := repo.GetBySlug(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, tenantID, tenant.ID)

	mock.ExpectQuery(`FROM tenant WHERE slug = \?`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "domain", "name"}))

	_, err = repo.GetBySlug(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
