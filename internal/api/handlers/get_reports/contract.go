package get_reports

import (
	"context"

	"github.com/m04kA/UA-BookingService/internal/service/reports/models"
)

type ReportsService interface {
	Summary(ctx context.Context) (*models.Summary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
