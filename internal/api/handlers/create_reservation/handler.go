package create_reservation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/UA-BookingService/internal/api/handlers"
	"github.com/m04kA/UA-BookingService/internal/domain"
	createReservation "github.com/m04kA/UA-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidDateOrTime  = "formato de fecha u hora no válido, se espera DD/MM/YYYY y HH:MM"
	msgUnknownActivity    = "actividad desconocida"
	msgInvalidInput       = "datos de entrada no válidos"
	msgStoreUnavailable   = "almacén de reservas no disponible, inténtelo de nuevo"
	msgMissingFieldsFmt   = "campos obligatorios faltantes: "
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgMissingFieldsFmt+strings.Join(validationErr.Missing, ", "))

		case errors.Is(err, createReservation.ErrUnknownActivity):
			h.logger.Warn("POST /reservations - Unknown activity: %s", req.Activity)
			handlers.RespondBadRequest(w, msgUnknownActivity)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrStoreUnavailable):
			h.logger.Error("POST /reservations - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, activity=%s, final=%.2f",
		result.ID, req.Activity, result.FinalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
