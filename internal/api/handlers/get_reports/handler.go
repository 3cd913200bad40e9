package get_reports

import (
	"net/http"

	"github.com/m04kA/UA-BookingService/internal/api/handlers"
)

const msgStoreUnavailable = "almacén de clientes no disponible, inténtelo de nuevo"

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/summary - Failed to build summary: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)
		return
	}

	h.logger.Info("GET /reports/summary - Summary built: %d customers", summary.TotalCustomers)
	handlers.RespondJSON(w, http.StatusOK, summary)
}
