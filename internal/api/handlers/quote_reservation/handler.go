package quote_reservation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/UA-BookingService/internal/api/handlers"
	"github.com/m04kA/UA-BookingService/internal/domain"
	quoteReservation "github.com/m04kA/UA-BookingService/internal/usecase/quote_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidDateOrTime  = "formato de fecha u hora no válido, se espera DD/MM/YYYY y HH:MM"
	msgUnknownActivity    = "actividad desconocida"
	msgInvalidInput       = "datos de entrada no válidos"
	msgMissingFieldsFmt   = "campos obligatorios faltantes: "
)

type Handler struct {
	useCase QuoteReservationUseCase
	logger  Logger
}

func NewHandler(useCase QuoteReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /reservations/quote - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgMissingFieldsFmt+strings.Join(validationErr.Missing, ", "))

		case errors.Is(err, quoteReservation.ErrUnknownActivity):
			h.logger.Warn("POST /reservations/quote - Unknown activity: %s", req.Activity)
			handlers.RespondBadRequest(w, msgUnknownActivity)

		case errors.Is(err, quoteReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/quote - Failed to quote reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/quote - Quote built: activity=%s, final=%.2f",
		req.Activity, result.FinalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
