package get_calendar

import (
	getCalendar "github.com/m04kA/UA-BookingService/internal/usecase/get_calendar"
)

// CalendarEventResponse событие календаря
type CalendarEventResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Events []CalendarEventResponse `json:"events"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	events := make([]CalendarEventResponse, 0, len(resp.Events))
	for _, e := range resp.Events {
		events = append(events, CalendarEventResponse{
			ID:    e.ID.String(),
			Title: e.Title,
			Start: e.Start,
			End:   e.End,
			Color: e.Color,
		})
	}
	return &CalendarResponse{Events: events}
}
