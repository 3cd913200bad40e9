package get_agenda

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/UA-BookingService/internal/api/handlers"
	"github.com/m04kA/UA-BookingService/internal/domain"
	getAgenda "github.com/m04kA/UA-BookingService/internal/usecase/get_agenda"
)

const (
	msgInvalidDate      = "formato de fecha no válido, se espera DD/MM/YYYY"
	msgInvalidRange     = "rango de fechas no válido"
	msgStoreUnavailable = "almacén de reservas no disponible, inténtelo de nuevo"
)

type Handler struct {
	useCase GetAgendaUseCase
	logger  Logger
}

func NewHandler(useCase GetAgendaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agenda?from=DD/MM/YYYY&to=DD/MM/YYYY&activities=a,b
// Параметр activities опционален: без него фильтр по активностям не применяется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /agenda - Invalid 'from' date %q", query.Get("from"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /agenda - Invalid 'to' date %q", query.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAgenda.Request{
		From:       from,
		To:         to,
		Activities: parseActivities(query.Get("activities")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAgenda.ErrInvalidRange):
			h.logger.Warn("GET /agenda - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAgenda.ErrStoreUnavailable):
			h.logger.Error("GET /agenda - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /agenda - Failed to build agenda: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agenda - %d reservations in %d days", result.Total, len(result.Days))
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
