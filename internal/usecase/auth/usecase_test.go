package auth_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
	storage "github.com/m04kA/SMC-MarketplaceClient/internal/infra/storage/session"
	"github.com/m04kA/SMC-MarketplaceClient/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceClient/internal/service/session"
	"github.com/m04kA/SMC-MarketplaceClient/internal/usecase/auth"
	"github.com/m04kA/SMC-MarketplaceClient/pkg/logger"
	"github.com/m04kA/SMC-MarketplaceClient/pkg/validation"
)

// ---------- Mocks ----------

type fakeAPI struct {
	mu          sync.Mutex
	loginCalls  int
	logoutCalls int
	payload     *domain.AuthPayload
	err         error
	logoutErr   error
}

func (f *fakeAPI) Login(_ context.Context, _ *marketplace.LoginRequest) (*domain.AuthPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	return f.payload, f.err
}

func (f *fakeAPI) Register(_ context.Context, _ *marketplace.RegisterRequest) (*domain.AuthPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	return f.payload, f.err
}

func (f *fakeAPI) Logout(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	return f.logoutErr
}

// blockingAPI держит Login, пока тест не отпустит release
type blockingAPI struct {
	fakeAPI
	started chan struct{}
	release chan struct{}
}

func (b *blockingAPI) Login(ctx context.Context, req *marketplace.LoginRequest) (*domain.AuthPayload, error) {
	close(b.started)
	<-b.release
	return b.fakeAPI.Login(ctx, req)
}

type navigatorFunc func(route string)

func (f navigatorFunc) Navigate(route string) { f(route) }

// ---------- Helpers ----------

func newContainer(t *testing.T, api auth.API) (*auth.Container, *session.Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	sessionSvc := session.NewService(store, logger.NewNop())
	return auth.NewContainer(api, sessionSvc, validation.New(), logger.NewNop()), sessionSvc, store
}

func clientPayload() *domain.AuthPayload {
	return &domain.AuthPayload{
		User:  &domain.User{ID: "1", Name: "A", Email: "a@a.com", Role: domain.RoleClient},
		Token: "t1",
		Role:  domain.RoleClient,
	}
}

func validLogin() *marketplace.LoginRequest {
	return &marketplace.LoginRequest{Email: "a@a.com", Password: "secret"}
}

// ---------- Tests ----------

func TestLogin_Success(t *testing.T) {
	api := &fakeAPI{payload: clientPayload()}
	c, sessionSvc, _ := newContainer(t, api)
	ctx := context.Background()

	var events []auth.Event
	c.Subscribe(func(e auth.Event) { events = append(events, e) })

	payload, err := c.Login(ctx, validLogin())
	require.NoError(t, err)
	assert.Equal(t, "t1", payload.Token)

	st := c.State(ctx)
	assert.Equal(t, auth.StatusAuthenticated, st.Status)
	require.NotNil(t, st.Role)
	assert.Equal(t, domain.RoleClient, *st.Role)

	assert.True(t, sessionSvc.IsAuthenticated(ctx))
	require.Len(t, events, 1)
	assert.Equal(t, auth.EventLogin, events[0].Type)
	assert.Equal(t, payload, events[0].Payload)

	assert.Equal(t, domain.RouteClientDashboard, c.RedirectTarget(ctx))
}

func TestLogin_InvalidFormSkipsAPI(t *testing.T) {
	api := &fakeAPI{payload: clientPayload()}
	c, _, store := newContainer(t, api)
	ctx := context.Background()

	_, err := c.Login(ctx, &marketplace.LoginRequest{Email: "nope"})
	assert.ErrorIs(t, err, auth.ErrInvalidInput)
	assert.Equal(t, 0, api.loginCalls)
	assert.Equal(t, 0, store.Len())

	st := c.State(ctx)
	assert.Equal(t, auth.StatusError, st.Status)
	assert.NotEmpty(t, st.Error)
}

func TestLogin_InvalidFormDuringLoginKeepsAuthenticating(t *testing.T) {
	api := &blockingAPI{
		fakeAPI: fakeAPI{payload: clientPayload()},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c, _, _ := newContainer(t, api)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := c.Login(ctx, validLogin())
		done <- err
	}()
	<-api.started

	_, err := c.Login(ctx, &marketplace.LoginRequest{Email: "nope"})
	assert.ErrorIs(t, err, auth.ErrInProgress)
	assert.Equal(t, auth.StatusAuthenticating, c.State(ctx).Status)

	_, err = c.Login(ctx, validLogin())
	assert.ErrorIs(t, err, auth.ErrInProgress)

	close(api.release)
	require.NoError(t, <-done)
	assert.Equal(t, auth.StatusAuthenticated, c.State(ctx).Status)
}

func TestLogin_RejectedLeavesStorageUntouched(t *testing.T) {
	apiErr := &marketplace.APIError{Kind: marketplace.KindUnauthorized, Status: 401, Message: "Identifiants incorrects"}
	api := &fakeAPI{err: apiErr}
	c, _, store := newContainer(t, api)
	ctx := context.Background()

	_, err := c.Login(ctx, validLogin())
	assert.ErrorIs(t, err, auth.ErrAuthFailed)
	assert.ErrorIs(t, err, marketplace.ErrUnauthorized)

	st := c.State(ctx)
	assert.Equal(t, auth.StatusError, st.Status)
	assert.Equal(t, "Identifiants incorrects", st.Error)
	assert.Equal(t, 0, store.Len())
}

func TestLogin_ResponseWithoutToken(t *testing.T) {
	payload := clientPayload()
	payload.Token = ""
	c, _, store := newContainer(t, &fakeAPI{payload: payload})

	_, err := c.Login(context.Background(), validLogin())
	assert.ErrorIs(t, err, auth.ErrInvalidResponse)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, auth.StatusError, c.State(context.Background()).Status)
}

func TestRegister_AgencyStoresAgency(t *testing.T) {
	api := &fakeAPI{payload: &domain.AuthPayload{
		User:   &domain.User{ID: "7", Name: "Owner", Email: "o@atlas.io"},
		Token:  "t-agency",
		Role:   domain.RoleAgency,
		Agency: &domain.Agency{ID: "12", Name: "Atlas"},
	}}
	c, sessionSvc, _ := newContainer(t, api)
	ctx := context.Background()

	_, err := c.Register(ctx, &marketplace.RegisterRequest{
		Name:                 "Owner",
		Email:                "o@atlas.io",
		Password:             "password1",
		PasswordConfirmation: "password1",
		Role:                 domain.RoleAgency,
		AgencyName:           "Atlas",
	})
	require.NoError(t, err)

	agencyID, err := sessionSvc.GetAgencyID(ctx)
	require.NoError(t, err)
	require.NotNil(t, agencyID)
	assert.Equal(t, domain.ID("12"), *agencyID)
	assert.Equal(t, domain.RouteAgencyDashboard, c.RedirectTarget(ctx))
}

func TestRegister_AgencyRequiresAgencyName(t *testing.T) {
	api := &fakeAPI{payload: clientPayload()}
	c, _, _ := newContainer(t, api)

	_, err := c.Register(context.Background(), &marketplace.RegisterRequest{
		Name:                 "Owner",
		Email:                "o@atlas.io",
		Password:             "password1",
		PasswordConfirmation: "password1",
		Role:                 domain.RoleAgency,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidInput)
	assert.Equal(t, 0, api.loginCalls)
}

func TestLogout_ClearsEvenWhenServerFails(t *testing.T) {
	api := &fakeAPI{payload: clientPayload(), logoutErr: errors.New("server down")}
	c, _, store := newContainer(t, api)
	ctx := context.Background()

	_, err := c.Login(ctx, validLogin())
	require.NoError(t, err)

	var got []auth.EventType
	c.Subscribe(func(e auth.Event) { got = append(got, e.Type) })

	require.NoError(t, c.Logout(ctx))
	assert.Equal(t, 1, api.logoutCalls)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, auth.StatusAnonymous, c.State(ctx).Status)
	assert.Equal(t, []auth.EventType{auth.EventLogout}, got)
	assert.Equal(t, domain.RouteLogin, c.RedirectTarget(ctx))
}

func TestLogout_AnonymousSkipsServer(t *testing.T) {
	api := &fakeAPI{}
	c, _, _ := newContainer(t, api)

	require.NoError(t, c.Logout(context.Background()))
	assert.Equal(t, 0, api.logoutCalls)
}

func TestState_StorageWins(t *testing.T) {
	c, sessionSvc, _ := newContainer(t, &fakeAPI{payload: clientPayload()})
	ctx := context.Background()

	_, err := c.Login(ctx, validLogin())
	require.NoError(t, err)

	// Хранилище очищено извне, как при 401
	require.NoError(t, sessionSvc.Clear(ctx))
	assert.Equal(t, auth.StatusAnonymous, c.State(ctx).Status)
}

func TestRestore(t *testing.T) {
	c, sessionSvc, _ := newContainer(t, &fakeAPI{})
	ctx := context.Background()

	st, err := c.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.StatusAnonymous, st.Status)

	require.NoError(t, sessionSvc.SetUser(ctx, session.FromAuthPayload(clientPayload())))

	st, err = c.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.StatusAuthenticated, st.Status)
	assert.Equal(t, domain.ID("1"), st.User.ID)
	assert.Equal(t, auth.StatusAuthenticated, c.State(ctx).Status)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	c, _, _ := newContainer(t, &fakeAPI{payload: clientPayload()})
	ctx := context.Background()

	calls := 0
	unsubscribe := c.Subscribe(func(auth.Event) { calls++ })

	_, err := c.Login(ctx, validLogin())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	unsubscribe()
	unsubscribe()

	require.NoError(t, c.Logout(ctx))
	assert.Equal(t, 1, calls)
}

func TestRedirectTarget_UnknownRole(t *testing.T) {
	c, sessionSvc, store := newContainer(t, &fakeAPI{})
	ctx := context.Background()

	require.NoError(t, sessionSvc.SetUser(ctx, session.FromAuthPayload(clientPayload())))
	require.NoError(t, store.Set(ctx, domain.KeyRole, "superuser"))

	assert.Equal(t, domain.RouteHome, c.RedirectTarget(ctx))
}

// Вход через настоящий HTTP клиент, затем 401 на защищенном запросе
func TestLoginThenUnauthorized_EndToEnd(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"user":{"id":1,"name":"A","email":"a@a.com"},"token":"t1","role":"client"}`)
	}).Methods(http.MethodPost)
	router.HandleFunc("/api/reservations", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Token expired"}`)
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	ctx := context.Background()
	store := storage.NewMemoryStore()
	sessionSvc := session.NewService(store, logger.NewNop())

	var routes []string
	nav := navigatorFunc(func(route string) { routes = append(routes, route) })
	client := marketplace.NewClient(server.URL+"/api", 0, sessionSvc, nav, logger.NewNop())
	c := auth.NewContainer(client, sessionSvc, validation.New(), logger.NewNop())

	_, err := c.Login(ctx, validLogin())
	require.NoError(t, err)

	assert.Equal(t, domain.RouteClientDashboard, c.RedirectTarget(ctx))
	clientID, err := sessionSvc.GetClientID(ctx)
	require.NoError(t, err)
	require.NotNil(t, clientID)
	assert.Equal(t, domain.ID("1"), *clientID)

	_, err = client.ListReservations(ctx, domain.ReservationFilter{})
	require.Error(t, err)
	assert.Equal(t, "Token expired", err.Error())

	assert.Equal(t, []string{domain.RouteLogin}, routes)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, auth.StatusAnonymous, c.State(ctx).Status)
}
