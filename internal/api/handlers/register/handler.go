package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/UA-BookingService/internal/api/handlers"
	authService "github.com/m04kA/UA-BookingService/internal/service/auth"
	"github.com/m04kA/UA-BookingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidInput       = "todos los campos son obligatorios"
	msgPasswordMismatch   = "las contraseñas no coinciden"
	msgUserAlreadyExists  = "el nombre de usuario ya está en uso"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, authService.ErrPasswordMismatch):
			h.logger.Warn("POST /auth/register - Password mismatch for %q", req.Username)
			handlers.RespondBadRequest(w, msgPasswordMismatch)

		case errors.Is(err, authService.ErrUserAlreadyExists):
			h.logger.Warn("POST /auth/register - Username %q already taken", req.Username)
			handlers.RespondError(w, http.StatusConflict, msgUserAlreadyExists)

		default:
			h.logger.Error("POST /auth/register - Failed to register user %q: %v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User %q registered", req.Username)
	handlers.RespondJSON(w, http.StatusCreated, nil)
}
