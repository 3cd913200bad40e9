package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/UA-BookingService/internal/service/reports/models"
)

// Service сервис отчетных агрегатов
// Возвращает плоский табличный набор данных; рендеринг графиков - внешний
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Summary считает демографические и финансовые агрегаты по реестру клиентов
func (s *Service) Summary(ctx context.Context) (*models.Summary, error) {
	s.logger.Info("Summary: building report dataset")

	customers, err := s.customerRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Summary: repository error: %v", err)
		return nil, fmt.Errorf("%w: Summary: %v", ErrStoreUnavailable, err)
	}

	summary := buildSummary(customers, time.Now())

	s.logger.Info("Summary: dataset built from %d customers", len(customers))
	return summary, nil
}
