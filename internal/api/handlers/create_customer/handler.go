package create_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/UA-BookingService/internal/api/handlers"
	customersService "github.com/m04kA/UA-BookingService/internal/service/customers"
	"github.com/m04kA/UA-BookingService/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidInput       = "datos del cliente no válidos"
	msgStoreUnavailable   = "almacén de clientes no disponible, inténtelo de nuevo"
)

type Handler struct {
	service CustomersService
	logger  Logger
}

func NewHandler(service CustomersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Create(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, customersService.ErrInvalidInput):
			h.logger.Warn("POST /customers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /customers - Failed to create customer: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)
		}
		return
	}

	h.logger.Info("POST /customers - Customer created: id=%s", req.ExternalID)
	handlers.RespondJSON(w, http.StatusCreated, nil)
}
