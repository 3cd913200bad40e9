package get_reservations

import (
	"net/http"
	"strconv"

	"github.com/m04kA/UA-BookingService/internal/api/handlers"
	"github.com/m04kA/UA-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidLimit     = "parámetro limit no válido"
	msgStoreUnavailable = "almacén de reservas no disponible, inténtelo de nuevo"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?limit=N
// Без limit возвращается весь реестр в порядке хранения;
// с limit - последние N зарегистрированных, новые первыми
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limitParam := r.URL.Query().Get("limit")

	if limitParam == "" {
		reservations, err := h.service.GetAll(r.Context())
		if err != nil {
			h.logger.Error("GET /reservations - Failed to read reservations: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)
			return
		}

		h.logger.Info("GET /reservations - %d reservations", len(reservations))
		handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservationList(reservations))
		return
	}

	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit < 1 {
		h.logger.Warn("GET /reservations - Invalid limit %q", limitParam)
		handlers.RespondBadRequest(w, msgInvalidLimit)
		return
	}

	reservations, err := h.service.Latest(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to read latest reservations: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)
		return
	}

	h.logger.Info("GET /reservations - latest %d of requested %d", len(reservations), limit)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservationList(reservations))
}
