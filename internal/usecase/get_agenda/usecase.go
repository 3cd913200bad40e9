package get_agenda

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// UseCase представление повестки: бронирования выбранного диапазона дат,
// сгруппированные по дням, с производным статусом каждой записи
type UseCase struct {
	reader       ReservationReader
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reader ReservationReader, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		reader:       reader,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute строит повестку для окна запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAgenda: from=%s, to=%s, activities=%d",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), len(req.Activities))

	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: 'to' precedes 'from'", ErrInvalidRange)
	}

	reservations, err := uc.reader.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetAgenda: read reservations failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - read reservations: %v", ErrStoreUnavailable, err)
	}

	filtered := domain.FilterAgenda(reservations, domain.AgendaWindow{
		From:       req.From,
		To:         req.To,
		Activities: req.Activities,
	})

	now := uc.timeProvider.Now()
	days := groupByDay(filtered, now)

	uc.logger.Info("GetAgenda: %d reservations in %d days", len(filtered), len(days))

	return &Response{Days: days, Total: len(filtered)}, nil
}

// groupByDay группирует записи по календарной дате: дни по возрастанию,
// внутри дня - по времени начала
func groupByDay(reservations []*domain.Reservation, now time.Time) []DayGroup {
	byDay := make(map[time.Time][]*domain.Reservation)
	for _, r := range reservations {
		day := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.UTC)
		byDay[day] = append(byDay[day], r)
	}

	dates := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	groups := make([]DayGroup, 0, len(dates))
	for _, day := range dates {
		entries := byDay[day]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].StartTime.IsBefore(entries[j].StartTime)
		})

		group := DayGroup{Date: day, Entries: make([]Entry, 0, len(entries))}
		for _, r := range entries {
			group.Entries = append(group.Entries, Entry{
				ID:            r.ID,
				CustomerName:  r.CustomerName,
				Activity:      r.Activity,
				Date:          r.Date,
				StartTime:     r.StartTime.Short(),
				Duration:      r.Duration,
				PartySize:     r.PartySize,
				ContactMethod: r.ContactMethod,
				ContactValue:  r.ContactValue,
				FinalPrice:    r.FinalPrice,
				Notes:         r.Notes,
				Status:        deriveStatus(r, now),
			})
		}
		groups = append(groups, group)
	}

	return groups
}
