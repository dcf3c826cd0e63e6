package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regional-portal/geo-backend/internal/domain"
)

var geoColumns = []string{"region_id", "uf", "city", "tenant_id", "tenant_slug", "tenant_domain", "tenant_name"}

func TestGeoProcedureRepository_ResolveByPostalCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newGeoProcedureRepository(db)
	regionID := uuid.New()
	tenantID := uuid.New()

	mock.ExpectQuery(`CALL geo_resolve_cep\(\?\)`).
		WithArgs("13010111").
		WillReturnRows(sqlmock.NewRows(geoColumns).
			AddRow(regionID[:], "SP", "Campinas", tenantID[:], "acme", "acme.example", "Acme News"))

	res, err := repo.ResolveByPostalCode(context.Background(), "13010111")
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.Equal(t, &domain.Region{ID: regionID, StateCode: "SP", CityName: "Campinas"}, res.Region)
	assert.Equal(t, &domain.Tenant{ID: tenantID, Slug: "acme", Domain: "acme.example", Name: "Acme News"}, res.Tenant)
}

func TestGeoProcedureRepository_ResolveByPostalCode_RegionWithoutPartner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newGeoProcedureRepository(db)
	regionID := uuid.New()

	mock.ExpectQuery(`CALL geo_resolve_cep`).
		WillReturnRows(sqlmock.NewRows(geoColumns).
			AddRow(regionID[:], "MG", "Uberaba", nil, nil, nil, nil))

	res, err := repo.ResolveByPostalCode(context.Background(), "38010000")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Nil(t, res.Tenant)
	require.NotNil(t, res.Region)
	assert.Equal(t, "Uberaba", res.Region.CityName)
}

func TestGeoProcedureRepository_ResolveByPoint_NoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newGeoProcedureRepository(db)

	mock.ExpectQuery(`CALL geo_resolve_point\(\?, \?\)`).
		WithArgs(-22.9, -47.06).
		WillReturnRows(sqlmock.NewRows(geoColumns))

	res, err := repo.ResolveByPoint(context.Background(), -22.9, -47.06)
	require.NoError(t, err)
	assert.Equal(t, domain.Unresolved(), res)
}

func TestGeoProcedureRepository_ResolveByPoint_StoreError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newGeoProcedureRepository(db)
	storeErr := errors.New("procedure does not exist")

	mock.ExpectQuery(`CALL geo_resolve_point`).WillReturnError(storeErr)

	_, err := repo.ResolveByPoint(context.Background(), 0, 0)
	assert.ErrorIs(t, err, storeErr)
}
