package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/pkg/ptr"
	"github.com/m04kA/UA-BookingService/pkg/types"
)

type fakeRepo struct {
	appended []*domain.Reservation
	failWith error
}

func (f *fakeRepo) Append(_ context.Context, r *domain.Reservation) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.appended = append(f.appended, r)
	return nil
}

type fakeInvalidator struct {
	calls    int
	failWith error
}

func (f *fakeInvalidator) Invalidate(_ context.Context) error {
	f.calls++
	return f.failWith
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	date := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	return &Request{
		CustomerName:  "María García",
		Activity:      domain.ActivityKayak,
		Date:          &date,
		StartTime:     types.TimeString("10:00:00"),
		Duration:      "2 horas",
		PartySize:     3,
		ContactMethod: domain.ContactWhatsApp,
		ContactValue:  "+34 600 000 000",
	}
}

func TestExecute_SavesReservationWithDerivedFields(t *testing.T) {
	repo := &fakeRepo{}
	invalidator := &fakeInvalidator{}
	now := time.Date(2026, time.August, 1, 12, 30, 0, 0, time.UTC)
	uc := NewUseCase(repo, invalidator, &fixedTimeProvider{now: now}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, repo.appended, 1)
	saved := repo.appended[0]

	// Без переопределения применяется рекомендованная цена
	assert.Equal(t, 54.0, saved.FinalPrice)
	assert.Equal(t, 18.0, saved.UnitPrice)
	assert.Equal(t, now, saved.BookedAt)
	assert.NotEqual(t, saved.ID.String(), "00000000-0000-0000-0000-000000000000")

	assert.Equal(t, saved.ID, resp.ID)
	assert.Equal(t, 54.0, resp.FinalPrice)

	// Ровно одна инвалидация кеша на мутацию
	assert.Equal(t, 1, invalidator.calls)
}

func TestExecute_FinalPriceOverride(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, &fakeInvalidator{}, &fixedTimeProvider{now: time.Now()}, nopLogger{})

	req := validRequest()
	req.FinalPrice = ptr.Ptr(45.0)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 45.0, resp.FinalPrice)
	// Цена за единицу пересчитывается от переопределенной цены
	assert.Equal(t, 15.0, resp.UnitPrice)

	req.FinalPrice = ptr.Ptr(-1.0)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ValidationAggregatesMissingFields(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeInvalidator{}, &fixedTimeProvider{now: time.Now()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Activity: domain.ActivityKayak, Duration: "1 hora"})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Missing, domain.FieldName)
	assert.Contains(t, validationErr.Missing, domain.FieldDate)
}

func TestExecute_UnknownActivity(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeInvalidator{}, &fixedTimeProvider{now: time.Now()}, nopLogger{})

	req := validRequest()
	req.Activity = "Parapente"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownActivity)
}

func TestExecute_StoreFailureLeavesTransitionUncommitted(t *testing.T) {
	repo := &fakeRepo{failWith: errors.New("network down")}
	invalidator := &fakeInvalidator{}
	uc := NewUseCase(repo, invalidator, &fixedTimeProvider{now: time.Now()}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	// Запись не состоялась, кеш не трогали
	assert.Empty(t, repo.appended)
	assert.Equal(t, 0, invalidator.calls)
}

func TestExecute_CacheInvalidationFailureDoesNotFailSave(t *testing.T) {
	repo := &fakeRepo{}
	invalidator := &fakeInvalidator{failWith: errors.New("redis down")}
	uc := NewUseCase(repo, invalidator, &fixedTimeProvider{now: time.Now()}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.Len(t, repo.appended, 1)
}

func TestExecute_NilCache(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, nil, &fixedTimeProvider{now: time.Now()}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}
