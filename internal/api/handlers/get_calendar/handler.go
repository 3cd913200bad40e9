package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/UA-BookingService/internal/api/handlers"
	"github.com/m04kA/UA-BookingService/internal/domain"
	getCalendar "github.com/m04kA/UA-BookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidMonthYear = "mes o año no válido"
	msgStoreUnavailable = "almacén de reservas no disponible, inténtelo de nuevo"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?month=M&year=YYYY&activities=a,b
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /calendar - Invalid month %q", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonthYear)
		return
	}

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil || year < 1 {
		h.logger.Warn("GET /calendar - Invalid year %q", query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidMonthYear)
		return
	}

	req := &getCalendar.Request{
		Month:      time.Month(month),
		Year:       year,
		Activities: parseActivities(query.Get("activities")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidWindow):
			h.logger.Warn("GET /calendar - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonthYear)

		case errors.Is(err, getCalendar.ErrStoreUnavailable):
			h.logger.Error("GET /calendar - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - %d events for %02d/%d", len(result.Events), month, year)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseActivities разбирает список активностей из query-параметра
func parseActivities(raw string) []domain.Activity {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	activities := make([]domain.Activity, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			activities = append(activities, domain.Activity(trimmed))
		}
	}
	return activities
}
