package quote_reservation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// UseCase переход "черновик -> ожидает подтверждения"
// Валидирует рабочую запись, считает рекомендованную цену и строит
// read-only сводку; запись в хранилище не выполняется
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute валидирует черновик и возвращает сводку для подтверждения
// Ошибка валидации агрегирует все пропущенные поля разом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteReservation: name=%q, activity=%s, party=%d",
		req.CustomerName, req.Activity, req.PartySize)

	if req.Activity != "" && !req.Activity.IsKnown() {
		uc.logger.Warn("QuoteReservation: unknown activity %q", req.Activity)
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, req.Activity)
	}

	draft := req.toDraft()
	if err := draft.Validate(); err != nil {
		uc.logger.Warn("QuoteReservation: validation failed: %v", err)
		return nil, err
	}

	suggested := draft.SuggestedPrice()

	finalPrice := suggested
	if req.FinalPrice != nil {
		if *req.FinalPrice < 0 {
			return nil, fmt.Errorf("%w: final price must be non-negative", ErrInvalidInput)
		}
		finalPrice = *req.FinalPrice
	}

	resp := &Response{
		SuggestedPrice: suggested,
		FinalPrice:     finalPrice,
		TotalPartySize: draft.TotalPartySize(),
		Summary:        buildSummary(draft, finalPrice),
	}

	uc.logger.Info("QuoteReservation: suggested=%.2f, final=%.2f", suggested, finalPrice)
	return resp, nil
}

// buildSummary собирает сводку подтверждения в порядке отображения
func buildSummary(draft *domain.ReservationDraft, finalPrice float64) []SummaryLine {
	lines := []SummaryLine{
		{Label: "Nombre", Value: draft.CustomerName},
		{Label: "Actividad", Value: string(draft.Activity)},
		{Label: "Fecha", Value: draft.Date.Format(domain.DateFormat)},
		{Label: "Hora", Value: draft.StartTime.Short()},
		{Label: "Duración", Value: draft.Duration},
		{Label: "Contacto", Value: draft.ContactMethod + ": " + draft.ContactValue},
		{Label: "Precio final", Value: strconv.FormatFloat(finalPrice, 'f', -1, 64) + "€"},
		{Label: "Notas", Value: draft.Notes},
	}

	if draft.Activity.IsBisontes() {
		lines = append(lines,
			SummaryLine{Label: "Adultos", Value: strconv.Itoa(draft.Adults)},
			SummaryLine{Label: "Niños", Value: strconv.Itoa(draft.Children)},
		)
	} else {
		lines = append(lines, SummaryLine{Label: "Personas", Value: strconv.Itoa(draft.TotalPartySize())})
	}

	return lines
}
