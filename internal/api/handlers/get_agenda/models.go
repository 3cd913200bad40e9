package get_agenda

import (
	"github.com/m04kA/UA-BookingService/internal/domain"
	getAgenda "github.com/m04kA/UA-BookingService/internal/usecase/get_agenda"
)

// AgendaEntryResponse запись повестки
type AgendaEntryResponse struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	Activity      string  `json:"activity"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	Duration      string  `json:"duration"`
	PartySize     int     `json:"partySize"`
	ContactMethod string  `json:"contactMethod"`
	ContactValue  string  `json:"contactValue"`
	FinalPrice    float64 `json:"finalPrice"`
	Notes         string  `json:"notes,omitempty"`
	Status        string  `json:"status"`
}

// AgendaDayResponse записи одного календарного дня
type AgendaDayResponse struct {
	Date    string                `json:"date"`
	Entries []AgendaEntryResponse `json:"entries"`
}

// AgendaResponse HTTP response model
type AgendaResponse struct {
	Days  []AgendaDayResponse `json:"days"`
	Total int                 `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAgenda.Response) *AgendaResponse {
	days := make([]AgendaDayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		entries := make([]AgendaEntryResponse, 0, len(day.Entries))
		for _, e := range day.Entries {
			entries = append(entries, AgendaEntryResponse{
				ID:            e.ID.String(),
				CustomerName:  e.CustomerName,
				Activity:      string(e.Activity),
				Date:          e.Date.Format(domain.DateFormat),
				StartTime:     e.StartTime,
				Duration:      e.Duration,
				PartySize:     e.PartySize,
				ContactMethod: e.ContactMethod,
				ContactValue:  e.ContactValue,
				FinalPrice:    e.FinalPrice,
				Notes:         e.Notes,
				Status:        e.Status,
			})
		}
		days = append(days, AgendaDayResponse{
			Date:    day.Date.Format(domain.DateFormat),
			Entries: entries,
		})
	}

	return &AgendaResponse{Days: days, Total: resp.Total}
}
