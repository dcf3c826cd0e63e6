package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/regional-portal/geo-backend/internal/domain"
	mock_repository "github.com/regional-portal/geo-backend/internal/repository/mock"
)

// memoryPreferences mimics the unique (identity_kind, identity_id) upsert of tenant_pref.
type memoryPreferences struct {
	mu   sync.Mutex
	rows map[string]domain.TenantPreference
}

func newMemoryPreferences() *memoryPreferences {
	return &memoryPreferences{rows: make(map[string]domain.TenantPreference)}
}

func (m *memoryPreferences) Upsert(_ context.Context, pref *domain.TenantPreference) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[string(pref.Identity.Kind())+":"+pref.Identity.Key()] = *pref
	return nil
}

func (m *memoryPreferences) GetByIdentity(_ context.Context, identity domain.Identity) (*domain.TenantPreference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pref, ok := m.rows[string(identity.Kind())+":"+identity.Key()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &pref, nil
}

func TestPreferences_LastWriteWins(t *testing.T) {
	store := newMemoryPreferences()
	svc := newPreferenceService(store, nil, stepClock(testNow, time.Second))
	ctx := context.Background()

	identity := domain.UserIdentity{ID: uuid.New()}
	first, second := uuid.New(), uuid.New()
	region := uuid.New()

	require.NoError(t, svc.Save(ctx, SavePreferenceInput{Identity: identity, TenantIDPreferred: &first, RegionID: &region}))
	require.NoError(t, svc.Save(ctx, SavePreferenceInput{Identity: identity, TenantIDPreferred: &second, RegionID: &region}))

	assert.Len(t, store.rows, 1)
	pref, err := svc.Get(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, second, *pref.TenantIDPreferred)
	assert.Equal(t, testNow.Add(time.Second), pref.LastResolvedAt)
}

func TestPreferences_IdempotentExceptTimestamp(t *testing.T) {
	store := newMemoryPreferences()
	svc := newPreferenceService(store, nil, stepClock(testNow, time.Minute))
	ctx := context.Background()

	identity := domain.AnonymousIdentity{ID: "anon-1"}
	tenant, region := uuid.New(), uuid.New()
	cep := "13010-111"
	input := SavePreferenceInput{Identity: identity, TenantIDPreferred: &tenant, RegionID: &region, PostalCode: &cep}

	require.NoError(t, svc.Save(ctx, input))
	before, err := svc.Get(ctx, identity)
	require.NoError(t, err)

	require.NoError(t, svc.Save(ctx, input))
	after, err := svc.Get(ctx, identity)
	require.NoError(t, err)

	assert.Len(t, store.rows, 1)
	assert.Equal(t, before.TenantIDPreferred, after.TenantIDPreferred)
	assert.Equal(t, before.RegionID, after.RegionID)
	assert.Equal(t, "13010111", *after.PostalCode)
	assert.True(t, after.LastResolvedAt.After(before.LastResolvedAt))
}

func TestPreferences_UserAndAnonymousRowsAreSeparate(t *testing.T) {
	store := newMemoryPreferences()
	svc := newPreferenceService(store, nil, stepClock(testNow, time.Second))
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, SavePreferenceInput{Identity: domain.AnonymousIdentity{ID: "anon-1"}}))
	require.NoError(t, svc.Save(ctx, SavePreferenceInput{Identity: domain.UserIdentity{ID: uuid.New()}}))

	assert.Len(t, store.rows, 2)
}

func TestPreferences_SaveErrors(t *testing.T) {
	repo := new(mock_repository.TenantPreferences)
	svc := newPreferenceService(repo, nil, stepClock(testNow, 0))
	ctx := context.Background()

	err := svc.Save(ctx, SavePreferenceInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidIdentity)

	bad := "12ab"
	err = svc.Save(ctx, SavePreferenceInput{Identity: domain.AnonymousIdentity{ID: "a"}, PostalCode: &bad})
	assert.ErrorIs(t, err, domain.ErrMalformedLookup)

	storeErr := errors.New("lock wait timeout")
	repo.On("Upsert", ctx, mock.MatchedBy(func(p *domain.TenantPreference) bool {
		return p.LastResolvedAt.Equal(testNow)
	})).Return(storeErr).Once()

	err = svc.Save(ctx, SavePreferenceInput{Identity: domain.AnonymousIdentity{ID: "a"}})
	assert.ErrorIs(t, err, storeErr)
	repo.AssertExpectations(t)
}

func TestPreferences_GetNotFound(t *testing.T) {
	svc := newPreferenceService(newMemoryPreferences(), nil, time.Now)

	_, err := svc.Get(context.Background(), domain.AnonymousIdentity{ID: "nobody"})
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	_, err = svc.Get(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentity)
}
