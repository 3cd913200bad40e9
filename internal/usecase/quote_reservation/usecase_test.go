package quote_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/pkg/ptr"
	"github.com/m04kA/UA-BookingService/pkg/types"
)

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
		Notes:         "trae su propio chaleco",
	}
}

func TestExecute_BuildsQuoteAndSummary(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 54.0, resp.SuggestedPrice)
	assert.Equal(t, 54.0, resp.FinalPrice)
	assert.Equal(t, 3, resp.TotalPartySize)

	labels := make(map[string]string)
	for _, line := range resp.Summary {
		labels[line.Label] = line.Value
	}
	assert.Equal(t, "María García", labels["Nombre"])
	assert.Equal(t, "Kayak", labels["Actividad"])
	assert.Equal(t, "10/08/2026", labels["Fecha"])
	assert.Equal(t, "10:00", labels["Hora"])
	assert.Equal(t, "54€", labels["Precio final"])
	assert.Equal(t, "3", labels["Personas"])
}

func TestExecute_FinalPriceOverrideKeepsSuggestion(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	req := validRequest()
	req.FinalPrice = ptr.Ptr(45.0)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 54.0, resp.SuggestedPrice)
	assert.Equal(t, 45.0, resp.FinalPrice)

	req.FinalPrice = ptr.Ptr(-5.0)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BisontesSummarySplitsPartyComposition(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	req := validRequest()
	req.Activity = domain.ActivityRutaBisontes
	req.PartySize = 0
	req.Adults = 2
	req.Children = 1

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 167.0, resp.SuggestedPrice)
	assert.Equal(t, 3, resp.TotalPartySize)

	labels := make(map[string]string)
	for _, line := range resp.Summary {
		labels[line.Label] = line.Value
	}
	assert.Equal(t, "2", labels["Adultos"])
	assert.Equal(t, "1", labels["Niños"])
	assert.NotContains(t, labels, "Personas")
}

func TestExecute_ValidationAggregatesAllMissing(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Missing, domain.FieldName)
	assert.Contains(t, validationErr.Missing, domain.FieldActivity)
	assert.Contains(t, validationErr.Missing, domain.FieldDate)
	assert.Contains(t, validationErr.Missing, domain.FieldStartTime)
	assert.Contains(t, validationErr.Missing, domain.FieldDuration)
	assert.Contains(t, validationErr.Missing, domain.FieldContact)
	assert.Contains(t, validationErr.Missing, domain.FieldPartySize)
}

func TestExecute_UnknownActivity(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	req := validRequest()
	req.Activity = "Parapente"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownActivity)
}
