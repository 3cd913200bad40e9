package update_reservation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/UA-BookingService/internal/api/handlers"
	"github.com/m04kA/UA-BookingService/internal/domain"
	updateReservation "github.com/m04kA/UA-BookingService/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud no válido"
	msgInvalidReservationID = "identificador de reserva no válido"
	msgInvalidDateOrTime    = "formato de fecha u hora no válido, se espera DD/MM/YYYY y HH:MM"
	msgReservationNotFound  = "reserva no encontrada"
	msgUnknownActivity      = "actividad desconocida"
	msgInvalidInput         = "datos de entrada no válidos"
	msgStoreUnavailable     = "almacén de reservas no disponible, inténtelo de nuevo"
	msgMissingFieldsFmt     = "campos obligatorios faltantes: "
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["reservationId"])
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation id %q", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/%s - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /reservations/%s - Failed to parse request: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /reservations/%s - Validation failed: %v", id, err)
			handlers.RespondBadRequest(w, msgMissingFieldsFmt+strings.Join(validationErr.Missing, ", "))

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/%s - Reservation not found", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrUnknownActivity):
			h.logger.Warn("PUT /reservations/%s - Unknown activity: %s", id, req.Activity)
			handlers.RespondBadRequest(w, msgUnknownActivity)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/%s - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateReservation.ErrStoreUnavailable):
			h.logger.Error("PUT /reservations/%s - Store unavailable: %v", id, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /reservations/%s - Failed to update reservation: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/%s - Reservation updated: final=%.2f", id, result.FinalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
