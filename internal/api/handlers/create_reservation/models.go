package create_reservation

import (
	"time"

	"github.com/m04kA/UA-BookingService/internal/domain"
	createReservation "github.com/m04kA/UA-BookingService/internal/usecase/create_reservation"
	"github.com/m04kA/UA-BookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
// Подтверждение присылает тот же набор полей, что и шаг проверки
type CreateReservationRequest struct {
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

// ReservationCreatedResponse HTTP response model
type ReservationCreatedResponse struct {
	ID         string  `json:"id"`
	FinalPrice float64 `json:"finalPrice"`
	UnitPrice  float64 `json:"unitPrice"`
	BookedAt   string  `json:"bookedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	req := &createReservation.Request{
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
func FromUseCaseResponse(resp *createReservation.Response) *ReservationCreatedResponse {
	return &ReservationCreatedResponse{
		ID:         resp.ID.String(),
		FinalPrice: resp.FinalPrice,
		UnitPrice:  resp.UnitPrice,
		BookedAt:   resp.BookedAt.Format(domain.BookedAtFormat),
	}
}
