package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
	storage "github.com/m04kA/SMC-MarketplaceClient/internal/infra/storage/session"
	"github.com/m04kA/SMC-MarketplaceClient/internal/service/session"
	"github.com/m04kA/SMC-MarketplaceClient/pkg/logger"
)

// ---------- Mocks ----------

type failingStore struct {
	*storage.MemoryStore
	failRemove map[string]bool
	failGet    bool
}

func (f *failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failGet {
		return "", false, errors.New("disk unavailable")
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *failingStore) Remove(ctx context.Context, key string) error {
	if f.failRemove[key] {
		return errors.New("remove failed")
	}
	return f.MemoryStore.Remove(ctx, key)
}

// ---------- Helpers ----------

func newService(t *testing.T) (*session.Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return session.NewService(store, logger.NewNop()), store
}

func clientRequest() session.SetUserRequest {
	return session.SetUserRequest{
		User:  &domain.User{ID: "1", Name: "A", Email: "a@a.com", Role: domain.RoleClient},
		Token: "t1",
		Role:  domain.RoleClient,
	}
}

func agencyRequest() session.SetUserRequest {
	return session.SetUserRequest{
		User:  &domain.User{ID: "7", Name: "Owner", Email: "o@agency.io", Role: domain.RoleAgency},
		Token: "t-agency",
		Role:  domain.RoleAgency,
		Agency: &domain.Agency{
			ID:          "12",
			Name:        "Atlas Tours",
			Email:       "contact@atlas.io",
			Phone:       "+212600000000",
			Description: "Desert trips",
			Logo:        "https://cdn.example.com/atlas.png",
		},
	}
}

func has(t *testing.T, store *storage.MemoryStore, key string) bool {
	t.Helper()
	_, ok, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	return ok
}

// ---------- Tests ----------

func TestIsAuthenticated_AfterSetAndClear(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	assert.False(t, svc.IsAuthenticated(ctx))

	require.NoError(t, svc.SetUser(ctx, clientRequest()))
	assert.True(t, svc.IsAuthenticated(ctx))

	require.NoError(t, svc.Clear(ctx))
	assert.False(t, svc.IsAuthenticated(ctx))
}

func TestIsAuthenticated_NotCached(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetUser(ctx, clientRequest()))
	assert.True(t, svc.IsAuthenticated(ctx))

	// Хранилище очищено в обход сервиса
	require.NoError(t, store.Remove(ctx, domain.KeyToken))
	assert.False(t, svc.IsAuthenticated(ctx))
}

func TestSetUser_ClientRemovesAgencyKeys(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetUser(ctx, agencyRequest()))
	require.True(t, has(t, store, domain.KeyAgencyID))

	require.NoError(t, svc.SetUser(ctx, clientRequest()))

	assert.False(t, has(t, store, domain.KeyAgencyID))
	assert.False(t, has(t, store, domain.KeyAgency))

	clientID, err := svc.GetClientID(ctx)
	require.NoError(t, err)
	require.NotNil(t, clientID)
	assert.Equal(t, domain.ID("1"), *clientID)
}

func TestSetUser_AgencyWritesAgencyKeys(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetUser(ctx, clientRequest()))
	require.NoError(t, svc.SetUser(ctx, agencyRequest()))

	agencyID, err := svc.GetAgencyID(ctx)
	require.NoError(t, err)
	require.NotNil(t, agencyID)

	agency, err := svc.GetAgency(ctx)
	require.NoError(t, err)
	require.NotNil(t, agency)
	assert.Equal(t, agency.ID, *agencyID)
	assert.False(t, has(t, store, domain.KeyClientID))
}

func TestSetUser_AgencyWithoutPayloadDropsStaleAgency(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetUser(ctx, agencyRequest()))

	req := agencyRequest()
	req.Agency = nil
	require.NoError(t, svc.SetUser(ctx, req))

	assert.False(t, has(t, store, domain.KeyAgencyID))
	assert.False(t, has(t, store, domain.KeyAgency))
}

func TestSetUser_AdminClearsRoleKeys(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetUser(ctx, clientRequest()))
	require.NoError(t, svc.SetUser(ctx, session.SetUserRequest{
		User:  &domain.User{ID: "99", Name: "Root", Role: domain.RoleAdmin},
		Token: "t-admin",
		Role:  domain.RoleAdmin,
	}))

	assert.False(t, has(t, store, domain.KeyClientID))
	role, err := svc.GetRole(ctx)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, domain.RoleAdmin, *role)
}

func TestSetUser_RoundTrip(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	req := agencyRequest()

	require.NoError(t, svc.SetUser(ctx, req))

	user, err := svc.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, req.User, user)

	agency, err := svc.GetAgency(ctx)
	require.NoError(t, err)
	assert.Equal(t, req.Agency, agency)

	token, err := svc.GetToken(ctx)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "t-agency", *token)
}

func TestSetUser_InvalidInput(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	err := svc.SetUser(ctx, session.SetUserRequest{Token: "t"})
	assert.ErrorIs(t, err, session.ErrInvalidInput)

	err = svc.SetUser(ctx, session.SetUserRequest{User: &domain.User{ID: "1"}})
	assert.ErrorIs(t, err, session.ErrInvalidInput)

	assert.Equal(t, 0, store.Len(), "rejected input must not write anything")
}

func TestGetUser_CorruptedEntrySelfHeals(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domain.KeyUser, "{not json"))

	for i := 0; i < 2; i++ {
		user, err := svc.GetUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, user)
		assert.False(t, has(t, store, domain.KeyUser))
	}
}

func TestGetAgency_CorruptedEntrySelfHeals(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domain.KeyAgency, "undefined"))

	agency, err := svc.GetAgency(ctx)
	require.NoError(t, err)
	assert.Nil(t, agency)
	assert.False(t, has(t, store, domain.KeyAgency))
}

func TestTypedReads_Absent(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	user, err := svc.GetUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	role, err := svc.GetRole(ctx)
	require.NoError(t, err)
	assert.Nil(t, role)

	token, err := svc.GetToken(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)

	clientID, err := svc.GetClientID(ctx)
	require.NoError(t, err)
	assert.Nil(t, clientID)

	agencyID, err := svc.GetAgencyID(ctx)
	require.NoError(t, err)
	assert.Nil(t, agencyID)
}

func TestGetRole_UnknownRole(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, domain.KeyRole, "superuser"))

	role, err := svc.GetRole(ctx)
	require.NoError(t, err)
	assert.Nil(t, role)
}

func TestClear_Idempotent(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Clear(ctx))
	require.NoError(t, svc.SetUser(ctx, agencyRequest()))
	require.NoError(t, svc.Clear(ctx))
	require.NoError(t, svc.Clear(ctx))

	for _, key := range domain.SessionKeys {
		assert.False(t, has(t, store, key), key)
	}
}

func TestClear_ContinuesAfterFailure(t *testing.T) {
	store := &failingStore{
		MemoryStore: storage.NewMemoryStore(),
		failRemove:  map[string]bool{domain.KeyToken: true},
	}
	svc := session.NewService(store, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.SetUser(ctx, clientRequest()))

	err := svc.Clear(ctx)
	assert.ErrorIs(t, err, session.ErrStorage)

	_, ok, _ := store.MemoryStore.Get(ctx, domain.KeyUser)
	assert.False(t, ok, "keys after the failing one must still be removed")
	_, ok, _ = store.MemoryStore.Get(ctx, domain.KeyClientID)
	assert.False(t, ok)
}

func TestIsAuthenticated_StorageError(t *testing.T) {
	store := &failingStore{MemoryStore: storage.NewMemoryStore(), failGet: true}
	svc := session.NewService(store, logger.NewNop())

	assert.False(t, svc.IsAuthenticated(context.Background()))

	_, err := svc.GetUser(context.Background())
	assert.ErrorIs(t, err, session.ErrStorage)
}

func TestSnapshot(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	require.NoError(t, svc.SetUser(ctx, clientRequest()))

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snap.IsAuthenticated())
	require.NotNil(t, snap.Role)
	assert.Equal(t, domain.RoleClient, *snap.Role)
}

func TestUpdateAgency(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.UpdateAgency(ctx, &domain.Agency{Name: "no id"}), session.ErrInvalidInput)

	require.NoError(t, svc.UpdateAgency(ctx, &domain.Agency{ID: "5", Name: "New"}))
	id, err := svc.GetAgencyID(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ID("5"), *id)
}

func TestFromAuthPayload_FallsBackToUserRole(t *testing.T) {
	req := session.FromAuthPayload(&domain.AuthPayload{
		User:  &domain.User{ID: "1", Role: domain.RoleClient},
		Token: "t1",
	})
	assert.Equal(t, domain.RoleClient, req.Role)
}
