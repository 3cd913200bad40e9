package create_customer

import (
	"context"

	"github.com/m04kA/UA-BookingService/internal/service/customers/models"
)

type CustomersService interface {
	Create(ctx context.Context, req *models.CreateCustomerRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
