package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UA-BookingService/internal/domain"
	storage "github.com/m04kA/UA-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/UA-BookingService/pkg/ptr"
	"github.com/m04kA/UA-BookingService/pkg/types"
)

type fakeRepo struct {
	existing *domain.Reservation
	replaced *domain.Reservation
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	if f.existing == nil || f.existing.ID != id {
		return nil, storage.ErrReservationNotFound
	}
	return f.existing, nil
}

func (f *fakeRepo) ReplaceByID(_ context.Context, id uuid.UUID, r *domain.Reservation) error {
	if f.existing == nil || f.existing.ID != id {
		return storage.ErrReservationNotFound
	}
	f.replaced = r
	return nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate(_ context.Context) error {
	f.calls++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func existingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:            uuid.New(),
		CustomerName:  "María García",
		Activity:      domain.ActivityKayak,
		Date:          time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00:00"),
		Duration:      "2 horas",
		PartySize:     3,
		ContactMethod: domain.ContactWhatsApp,
		ContactValue:  "+34 600 000 000",
		FinalPrice:    54,
		BookedAt:      time.Date(2026, time.August, 1, 12, 30, 0, 0, time.UTC),
		UnitPrice:     18,
	}
}

func updateRequest(id uuid.UUID) *Request {
	date := time.Date(2026, time.August, 11, 0, 0, 0, 0, time.UTC)
	return &Request{
		ID:            id,
		CustomerName:  "María García",
		Activity:      domain.ActivityKayak,
		Date:          &date,
		StartTime:     types.TimeString("12:00:00"),
		Duration:      "1 hora",
		PartySize:     2,
		ContactMethod: domain.ContactEmail,
		ContactValue:  "maria@example.com",
	}
}

func TestExecute_ReplacesRecordAndRecomputesDerivedFields(t *testing.T) {
	existing := existingReservation()
	repo := &fakeRepo{existing: existing}
	invalidator := &fakeInvalidator{}
	uc := NewUseCase(repo, invalidator, nopLogger{})

	resp, err := uc.Execute(context.Background(), updateRequest(existing.ID))
	require.NoError(t, err)

	require.NotNil(t, repo.replaced)
	// Ключ и время создания сохраняются, остальное перезаписывается
	assert.Equal(t, existing.ID, repo.replaced.ID)
	assert.Equal(t, existing.BookedAt, repo.replaced.BookedAt)
	assert.Equal(t, "1 hora", repo.replaced.Duration)
	assert.Equal(t, 20.0, repo.replaced.FinalPrice)
	assert.Equal(t, 10.0, repo.replaced.UnitPrice)

	assert.Equal(t, 20.0, resp.FinalPrice)
	assert.Equal(t, 1, invalidator.calls)
}

func TestExecute_FinalPriceOverride(t *testing.T) {
	existing := existingReservation()
	repo := &fakeRepo{existing: existing}
	uc := NewUseCase(repo, &fakeInvalidator{}, nopLogger{})

	req := updateRequest(existing.ID)
	req.FinalPrice = ptr.Ptr(35.0)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 35.0, resp.FinalPrice)
	assert.Equal(t, 17.5, resp.UnitPrice)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeRepo{existing: existingReservation()}
	invalidator := &fakeInvalidator{}
	uc := NewUseCase(repo, invalidator, nopLogger{})

	_, err := uc.Execute(context.Background(), updateRequest(uuid.New()))
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Equal(t, 0, invalidator.calls)
}

func TestExecute_ValidationRunsBeforeStoreAccess(t *testing.T) {
	existing := existingReservation()
	repo := &fakeRepo{existing: existing}
	uc := NewUseCase(repo, &fakeInvalidator{}, nopLogger{})

	req := updateRequest(existing.ID)
	req.CustomerName = ""
	req.ContactValue = ""

	_, err := uc.Execute(context.Background(), req)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{domain.FieldName, domain.FieldContact}, validationErr.Missing)
	assert.Nil(t, repo.replaced)
}
