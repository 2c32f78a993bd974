package render_invoice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
	"github.com/m04kA/SMC-MarketplaceClient/internal/integrations/marketplace"
	uc "github.com/m04kA/SMC-MarketplaceClient/internal/usecase/render_invoice"
	"github.com/m04kA/SMC-MarketplaceClient/pkg/logger"
)

// ---------- Mocks ----------

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeClient struct {
	reservation *domain.Reservation
	err         error
}

func (f *fakeClient) GetReservation(_ context.Context, _ domain.ID) (*domain.Reservation, error) {
	return f.reservation, f.err
}

// ---------- Helpers ----------

func setup(client *fakeClient) *uc.UseCase {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	return uc.NewUseCaseWithTimeProvider(client, fixedTime{now: now}, logger.NewNop())
}

func reservation() *domain.Reservation {
	return &domain.Reservation{
		ID: "501",
		Service: &domain.Service{
			Title:  "Kayak | sunset",
			Agency: &domain.Agency{Name: "Atlas"},
		},
		User:            &domain.User{Name: "Alice", Email: "alice@mail.com"},
		ReservationDate: "2026-11-02",
		StartTime:       "18:00",
		NumberOfPeople:  2,
		TotalPrice:      80,
		Status:          domain.StatusConfirmed,
		SpecialRequests: "<script>alert(1)</script>",
	}
}

// ---------- Tests ----------

func TestExecute_RendersHTML(t *testing.T) {
	useCase := setup(&fakeClient{reservation: reservation()})

	resp, err := useCase.Execute(context.Background(), "501")
	require.NoError(t, err)

	assert.Contains(t, resp.Markdown, "Émise le 2026-10-18")
	assert.Contains(t, resp.HTML, "<h1>Facture réservation n° 501</h1>")
	assert.Contains(t, resp.HTML, "<table>")
	assert.Contains(t, resp.HTML, "Kayak | sunset")
	assert.Contains(t, resp.HTML, "80.00 €")
	assert.Contains(t, resp.HTML, "Alice")
	assert.Contains(t, resp.HTML, "Atlas")
	assert.NotContains(t, resp.HTML, "<script>")
}

func TestRender_Guest(t *testing.T) {
	r := reservation()
	r.User = nil
	r.GuestName = "Guest"
	r.GuestEmail = "g@mail.com"
	r.GuestPhone = "+33600000000"

	resp, err := setup(&fakeClient{}).Render(r)
	require.NoError(t, err)
	assert.Contains(t, resp.HTML, "g@mail.com")
	assert.Contains(t, resp.HTML, "+33600000000")
}

func TestRender_WithoutService(t *testing.T) {
	r := reservation()
	r.Service = nil
	r.ServiceID = "3"
	r.StartTime = ""

	resp, err := setup(&fakeClient{}).Render(r)
	require.NoError(t, err)
	assert.Contains(t, resp.HTML, "Service 3")
	assert.NotContains(t, resp.HTML, "Agence")
}

func TestExecute_APIError(t *testing.T) {
	useCase := setup(&fakeClient{err: &marketplace.APIError{Kind: marketplace.KindHTTP, Status: 404, Message: "Introuvable"}})

	_, err := useCase.Execute(context.Background(), "501")
	assert.ErrorIs(t, err, uc.ErrRequestFailed)
	assert.Equal(t, "Introuvable", marketplace.MessageOf(err))
}

func TestExecute_EmptyID(t *testing.T) {
	_, err := setup(&fakeClient{}).Execute(context.Background(), "")
	assert.ErrorIs(t, err, uc.ErrInvalidInput)
}
