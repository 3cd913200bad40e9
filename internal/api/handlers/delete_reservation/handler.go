package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/UA-BookingService/internal/api/handlers"
	deleteReservation "github.com/m04kA/UA-BookingService/internal/usecase/delete_reservation"
)

const (
	msgInvalidReservationID = "identificador de reserva no válido"
	msgReservationNotFound  = "reserva no encontrada"
	msgStoreUnavailable     = "almacén de reservas no disponible, inténtelo de nuevo"
)

type Handler struct {
	useCase DeleteReservationUseCase
	logger  Logger
}

func NewHandler(useCase DeleteReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["reservationId"])
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation id %q", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.useCase.Execute(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, deleteReservation.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/%s - Reservation not found", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, deleteReservation.ErrStoreUnavailable):
			h.logger.Error("DELETE /reservations/%s - Store unavailable: %v", id, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("DELETE /reservations/%s - Failed to delete reservation: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/%s - Reservation deleted", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
