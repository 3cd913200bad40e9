package models

import (
	"time"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	Activity      string  `json:"activity"`
	Date          string  `json:"date"`      // "15/10/2025"
	StartTime     string  `json:"startTime"` // "10:30:00"
	Duration      string  `json:"duration"`
	PartySize     int     `json:"partySize"`
	ContactMethod string  `json:"contactMethod"`
	ContactValue  string  `json:"contactValue"`
	FinalPrice    float64 `json:"finalPrice"`
	UnitPrice     float64 `json:"unitPrice"`
	Notes         string  `json:"notes,omitempty"`
	BookedAt      string  `json:"bookedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:            r.ID.String(),
		CustomerName:  r.CustomerName,
		Activity:      string(r.Activity),
		Date:          r.Date.Format(domain.DateFormat),
		StartTime:     r.StartTime.String(),
		Duration:      r.Duration,
		PartySize:     r.PartySize,
		ContactMethod: r.ContactMethod,
		ContactValue:  r.ContactValue,
		FinalPrice:    r.FinalPrice,
		UnitPrice:     r.UnitPrice,
		Notes:         r.Notes,
		BookedAt:      r.BookedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}
