package get_agenda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/pkg/types"
)

type fakeReader struct {
	reservations []*domain.Reservation
	failWith     error
}

func (f *fakeReader) GetAll(_ context.Context) ([]*domain.Reservation, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.reservations, nil
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

func agendaReservation(date time.Time, start string) *domain.Reservation {
	return &domain.Reservation{
		ID:        uuid.New(),
		Activity:  domain.ActivityKayak,
		Date:      date,
		StartTime: types.TimeString(start),
	}
}

func TestExecute_GroupsByDayAndSortsByStartTime(t *testing.T) {
	day1 := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.July, 12, 0, 0, 0, 0, time.UTC)

	late := agendaReservation(day2, "16:00:00")
	early := agendaReservation(day2, "09:00:00")
	single := agendaReservation(day1, "11:00:00")

	reader := &fakeReader{reservations: []*domain.Reservation{late, single, early}}
	now := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(reader, &fixedTimeProvider{now: now}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		From: day1,
		To:   day2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Days, 2)

	// Дни по возрастанию
	assert.Equal(t, day1, resp.Days[0].Date)
	assert.Equal(t, day2, resp.Days[1].Date)

	// Внутри дня записи по времени начала
	require.Len(t, resp.Days[1].Entries, 2)
	assert.Equal(t, early.ID, resp.Days[1].Entries[0].ID)
	assert.Equal(t, late.ID, resp.Days[1].Entries[1].ID)
}

func TestExecute_StatusDerivation(t *testing.T) {
	now := time.Date(2026, time.July, 10, 12, 0, 0, 0, time.UTC)
	day := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)

	past := agendaReservation(day, "09:00:00")
	tomorrow := agendaReservation(day.AddDate(0, 0, 1), "09:00:00")
	nextWeek := agendaReservation(day.AddDate(0, 0, 7), "09:00:00")
	badTime := agendaReservation(day, "por la mañana")

	reader := &fakeReader{reservations: []*domain.Reservation{past, tomorrow, nextWeek, badTime}}
	uc := NewUseCase(reader, &fixedTimeProvider{now: now}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		From: day,
		To:   day.AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	statuses := make(map[uuid.UUID]string)
	for _, d := range resp.Days {
		for _, e := range d.Entries {
			statuses[e.ID] = e.Status
		}
	}

	assert.Equal(t, "pasada", statuses[past.ID])
	assert.Equal(t, "próxima, en 1 día", statuses[tomorrow.ID])
	assert.Equal(t, "próxima, en 7 días", statuses[nextWeek.ID])
	// Рукописное время не роняет повестку
	assert.Equal(t, "hora no válida", statuses[badTime.ID])
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&fakeReader{}, &fixedTimeProvider{now: time.Now()}, nopLogger{})

	from := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{From: from, To: from.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	reader := &fakeReader{failWith: errors.New("store down")}
	uc := NewUseCase(reader, &fixedTimeProvider{now: time.Now()}, nopLogger{})

	day := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{From: day, To: day})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
