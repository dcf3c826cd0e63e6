package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolution_Fallback(t *testing.T) {
	region := &Region{ID: uuid.New(), StateCode: "SP", CityName: "Campinas"}
	tenant := &Tenant{ID: uuid.New(), Slug: "acme", Domain: "acme.example"}

	assert.False(t, NewResolution(region, tenant).Fallback)
	assert.True(t, NewResolution(region, nil).Fallback)
	assert.Equal(t, &Resolution{Fallback: true}, Unresolved())
}

func TestNewResolutionEvent(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	id := uuid.New()
	region := &Region{ID: uuid.New(), StateCode: "SP", CityName: "Campinas"}
	tenant := &Tenant{ID: uuid.New(), Slug: "acme"}

	event := NewResolutionEvent(id, LookupKindCity, NewResolution(region, tenant), at)
	require.NotNil(t, event.RegionID)
	require.NotNil(t, event.TenantID)
	assert.Equal(t, region.ID, *event.RegionID)
	assert.Equal(t, "SP", *event.StateCode)
	assert.Equal(t, tenant.ID, *event.TenantID)
	assert.False(t, event.Fallback)

	event = NewResolutionEvent(id, LookupKindPostalCode, Unresolved(), at)
	assert.Nil(t, event.RegionID)
	assert.Nil(t, event.TenantID)
	assert.True(t, event.Fallback)
	assert.Equal(t, at, event.ResolvedAt)
}
