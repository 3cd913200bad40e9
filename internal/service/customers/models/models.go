package models

import (
	"time"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// CreateCustomerRequest запрос на регистрацию клиента
type CreateCustomerRequest struct {
	ExternalID   string  `json:"externalId"`
	Sex          string  `json:"sex"`
	BirthDate    string  `json:"birthDate"` // "15/10/1990"
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Activity     string  `json:"activity"`
	ActivityDate string  `json:"activityDate"` // "15/10/2025"
	StartTime    string  `json:"startTime"`    // "10:30"
	Duration     string  `json:"duration"`
	PartySize    int     `json:"partySize"`
	Price        float64 `json:"price"`
	Notes        string  `json:"notes,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateCustomerRequest) ToDomain(now time.Time) (*domain.Customer, error) {
	birthDate, err := time.Parse(domain.DateFormat, r.BirthDate)
	if err != nil {
		return nil, err
	}

	activityDate, err := time.Parse(domain.DateFormat, r.ActivityDate)
	if err != nil {
		return nil, err
	}

	return &domain.Customer{
		ExternalID:   r.ExternalID,
		Sex:          r.Sex,
		BirthDate:    birthDate,
		City:         r.City,
		Country:      r.Country,
		Activity:     domain.Activity(r.Activity),
		ActivityDate: activityDate,
		StartTime:    r.StartTime,
		Duration:     r.Duration,
		PartySize:    r.PartySize,
		Price:        r.Price,
		RegisteredAt: now,
		Notes:        r.Notes,
	}, nil
}
