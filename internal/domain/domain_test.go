package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_JSON(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"name":"A"}`), &u))
	assert.Equal(t, ID("42"), u.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"ag-7","name":"A"}`), &u))
	assert.Equal(t, ID("ag-7"), u.ID)

	data, err := json.Marshal(User{ID: "42", Name: "A"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42,"name":"A","email":""}`, string(data))

	data, err = json.Marshal(Agency{ID: "ag-7", Name: "B"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"ag-7","name":"B"}`, string(data))

	data, err = json.Marshal(Agency{ID: "007", Name: "C"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"007","name":"C"}`, string(data))
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"client", "agency", "admin"} {
		r, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, Role(s), r)
	}

	_, err := ParseRole("superuser")
	assert.ErrorIs(t, err, ErrUnknownRole)
	assert.False(t, Role("").IsValid())
}

func TestLandingRoute(t *testing.T) {
	assert.Equal(t, "/client/dashboard", LandingRoute(RoleClient))
	assert.Equal(t, "/agency/dashboard", LandingRoute(RoleAgency))
	assert.Equal(t, "/admin/dashboard", LandingRoute(RoleAdmin))
	assert.Equal(t, "/", LandingRoute(Role("guest")))
}

func TestCanAccess(t *testing.T) {
	assert.True(t, CanAccess(RoleClient, AreaPublic))
	assert.True(t, CanAccess(RoleAgency, AreaAgency))
	assert.False(t, CanAccess(RoleClient, AreaAgency))
	assert.False(t, CanAccess(RoleAgency, AreaAdmin))
	assert.True(t, CanAccess(RoleAdmin, AreaAdmin))
	assert.False(t, CanAccess(RoleAdmin, Area("billing")))
}

func TestSession_IsAuthenticated(t *testing.T) {
	token := "t"
	assert.False(t, (*Session)(nil).IsAuthenticated())
	assert.False(t, (&Session{User: &User{ID: "1"}}).IsAuthenticated())
	assert.False(t, (&Session{Token: &token}).IsAuthenticated())
	assert.True(t, (&Session{User: &User{ID: "1"}, Token: &token}).IsAuthenticated())
}

func TestAuthPayload_EffectiveRole(t *testing.T) {
	p := AuthPayload{User: &User{Role: RoleClient}}
	assert.Equal(t, RoleClient, p.EffectiveRole())

	p.Role = RoleAgency
	assert.Equal(t, RoleAgency, p.EffectiveRole())

	assert.Equal(t, Role(""), (&AuthPayload{}).EffectiveRole())
}

func TestReservation_Transitions(t *testing.T) {
	pending := &Reservation{Status: StatusPending}
	assert.True(t, pending.CanTransitionTo(StatusConfirmed))
	assert.True(t, pending.CanTransitionTo(StatusCancelled))
	assert.False(t, pending.CanTransitionTo(StatusCompleted))

	confirmed := &Reservation{Status: StatusConfirmed}
	assert.False(t, confirmed.CanTransitionTo(StatusConfirmed))
	assert.True(t, confirmed.CanTransitionTo(StatusCancelled))
	assert.True(t, confirmed.CanTransitionTo(StatusCompleted))

	cancelled := &Reservation{Status: StatusCancelled}
	assert.False(t, cancelled.CanBeCancelled())
	assert.False(t, cancelled.IsActive())
	assert.False(t, cancelled.CanTransitionTo(StatusPending))
}

func TestReservation_CancellationDeadline(t *testing.T) {
	r := &Reservation{ReservationDate: "2026-10-20"}
	deadline, err := r.CancellationDeadline(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), deadline)

	_, err = (&Reservation{ReservationDate: "20/10/2026"}).CancellationDeadline(time.UTC)
	assert.Error(t, err)
}

func TestReservation_DateAcceptsDatetime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"date only", "2026-10-20"},
		{"iso datetime", "2026-10-20T00:00:00.000000Z"},
		{"sql datetime", "2026-10-20 14:30:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := (&Reservation{ReservationDate: tt.raw}).Date(time.UTC)
			require.NoError(t, err)
			assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), date)
		})
	}

	_, err := (&Reservation{ReservationDate: "2026-10-20X"}).Date(time.UTC)
	assert.Error(t, err)
}

func TestReservation_IsGuest(t *testing.T) {
	assert.True(t, (&Reservation{GuestEmail: "g@x.io"}).IsGuest())
	assert.False(t, (&Reservation{User: &User{ID: "1"}, GuestEmail: "g@x.io"}).IsGuest())
}

func TestParseReservationStatus(t *testing.T) {
	st, err := ParseReservationStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, st)

	_, err = ParseReservationStatus("no_show")
	assert.Error(t, err)
}

func TestService_PriceFor(t *testing.T) {
	s := &Service{Price: 25.5}
	assert.Equal(t, 51.0, s.PriceFor(2))
	assert.Equal(t, 0.0, s.PriceFor(0))
	assert.True(t, s.IsBookable())

	s.Status = ServiceInactive
	assert.False(t, s.IsBookable())
}
