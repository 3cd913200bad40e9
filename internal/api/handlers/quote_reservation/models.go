package quote_reservation

import (
	"time"

	"github.com/m04kA/UA-BookingService/internal/domain"
	quoteReservation "github.com/m04kA/UA-BookingService/internal/usecase/quote_reservation"
	"github.com/m04kA/UA-BookingService/pkg/types"
)

// QuoteReservationRequest HTTP request model
type QuoteReservationRequest struct {
	CustomerName    string   `json:"customerName"`
	Activity        string   `json:"activity"`
	Date            string   `json:"date"` // "31/12/2026"
	StartTime       string   `json:"startTime"`
	Duration        string   `json:"duration"`
	PartySize       int      `json:"partySize"`
	Adults          int      `json:"adults"`
	Children        int      `json:"children"`
	ContactMethod   string   `json:"contactMethod"`
	ContactValue    string   `json:"contactValue"`
	ManualUnitPrice float64  `json:"manualUnitPrice"`
	FinalPrice      *float64 `json:"finalPrice,omitempty"`
	Notes           string   `json:"notes"`
}

// SummaryLineResponse строка сводки подтверждения
type SummaryLineResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	SuggestedPrice float64               `json:"suggestedPrice"`
	FinalPrice     float64               `json:"finalPrice"`
	TotalPartySize int                   `json:"totalPartySize"`
	Summary        []SummaryLineResponse `json:"summary"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время парсятся здесь: use case работает только с типизированными полями
func (r *QuoteReservationRequest) ToUseCaseRequest() (*quoteReservation.Request, error) {
	req := &quoteReservation.Request{
		CustomerName:    r.CustomerName,
		Activity:        domain.Activity(r.Activity),
		Duration:        r.Duration,
		PartySize:       r.PartySize,
		Adults:          r.Adults,
		Children:        r.Children,
		ContactMethod:   r.ContactMethod,
		ContactValue:    r.ContactValue,
		ManualUnitPrice: r.ManualUnitPrice,
		FinalPrice:      r.FinalPrice,
		Notes:           r.Notes,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != "" {
		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteReservation.Response) *QuoteResponse {
	summary := make([]SummaryLineResponse, 0, len(resp.Summary))
	for _, line := range resp.Summary {
		summary = append(summary, SummaryLineResponse{Label: line.Label, Value: line.Value})
	}

	return &QuoteResponse{
		SuggestedPrice: resp.SuggestedPrice,
		FinalPrice:     resp.FinalPrice,
		TotalPartySize: resp.TotalPartySize,
		Summary:        summary,
	}
}
