package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// eventDuration длительность отображения события в календарной сетке
const eventDuration = 2 * time.Hour

// UseCase календарное представление: бронирования выбранного месяца
// как события с цветом активности
type UseCase struct {
	reader ReservationReader
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reader ReservationReader, logger Logger) *UseCase {
	return &UseCase{reader: reader, logger: logger}
}

// Execute строит события календаря для окна запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: month=%d, year=%d, activities=%d",
		req.Month, req.Year, len(req.Activities))

	if req.Month < time.January || req.Month > time.December || req.Year < 1 {
		return nil, fmt.Errorf("%w: month=%d, year=%d", ErrInvalidWindow, req.Month, req.Year)
	}

	reservations, err := uc.reader.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetCalendar: read reservations failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - read reservations: %v", ErrStoreUnavailable, err)
	}

	filtered := domain.FilterCalendar(reservations, domain.CalendarWindow{
		Month:      req.Month,
		Year:       req.Year,
		Activities: req.Activities,
	})

	events := make([]Event, 0, len(filtered))
	for _, r := range filtered {
		startAt, err := r.StartAt()
		if err != nil {
			// строки с рукописным временем не ложатся в календарную сетку,
			// но остаются видимыми в повестке
			uc.logger.Warn("GetCalendar: skip reservation %s, bad start time %q", r.ID, r.StartTime)
			continue
		}

		events = append(events, Event{
			ID:    r.ID,
			Title: string(r.Activity) + " - " + r.CustomerName,
			Start: startAt.Format(time.RFC3339),
			End:   startAt.Add(eventDuration).Format(time.RFC3339),
			Color: r.Activity.Color(),
		})
	}

	uc.logger.Info("GetCalendar: %d events", len(events))
	return &Response{Events: events}, nil
}
