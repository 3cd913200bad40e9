package customers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/UA-BookingService/internal/service/customers/models"
)

// Service сервис демографического реестра клиентов
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create сохраняет запись клиента
// Возраст и выручка на человека - производные, считаются при записи
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) error {
	s.logger.Info("CreateCustomer: id=%s, activity=%s", req.ExternalID, req.Activity)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateCustomer: validation failed for id=%s: %v", req.ExternalID, err)
		return err
	}

	customer, err := req.ToDomain(time.Now())
	if err != nil {
		s.logger.Warn("CreateCustomer: failed to parse dates for id=%s: %v", req.ExternalID, err)
		return fmt.Errorf("%w: invalid date format, expected dd/mm/yyyy", ErrInvalidInput)
	}

	if err := s.customerRepo.Append(ctx, customer); err != nil {
		s.logger.Error("CreateCustomer: failed to store customer id=%s: %v", req.ExternalID, err)
		return fmt.Errorf("%w: Create - store customer: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCustomer: customer id=%s stored", req.ExternalID)
	return nil
}

func validateCreateRequest(req *models.CreateCustomerRequest) error {
	missing := make([]string, 0)

	if strings.TrimSpace(req.ExternalID) == "" {
		missing = append(missing, "ID Cliente")
	}
	if strings.TrimSpace(req.Sex) == "" {
		missing = append(missing, "Sexo")
	}
	if strings.TrimSpace(req.BirthDate) == "" {
		missing = append(missing, "Fecha de Nacimiento")
	}
	if strings.TrimSpace(req.City) == "" {
		missing = append(missing, "Ciudad")
	}
	if strings.TrimSpace(req.Country) == "" {
		missing = append(missing, "País")
	}
	if strings.TrimSpace(req.Activity) == "" {
		missing = append(missing, "Actividad")
	}
	if strings.TrimSpace(req.ActivityDate) == "" {
		missing = append(missing, "Fecha de Actividad")
	}
	if strings.TrimSpace(req.StartTime) == "" {
		missing = append(missing, "Hora de Inicio")
	}
	if strings.TrimSpace(req.Duration) == "" {
		missing = append(missing, "Duración")
	}
	if req.PartySize < 1 {
		missing = append(missing, "Número de Personas")
	}
	if req.Price < 0 {
		missing = append(missing, "Precio Total")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	return nil
}
