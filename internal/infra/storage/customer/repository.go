package customer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/internal/integrations/sheetstore"
)

// RowStore интерфейс внешнего хранилища строк
type RowStore interface {
	ReadAll(ctx context.Context, worksheet string) ([]sheetstore.Row, error)
	Append(ctx context.Context, worksheet string, row sheetstore.Row) error
}

// Позиционная схема листа клиентов
// Edad и Ingresos por Persona - производные колонки, пересчитываются при записи
const (
	colExternalID = iota
	colSex
	colBirthDate
	colCity
	colCountry
	colActivity
	colActivityDate
	colStartTime
	colDuration
	colPartySize
	colPrice
	colRegisteredAt
	colAge
	colRevenuePerPerson
	colNotes

	rowWidth = colNotes + 1
)

// Repository репозиторий демографических записей клиентов
type Repository struct {
	store     RowStore
	worksheet string
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(store RowStore, worksheet string) *Repository {
	return &Repository{store: store, worksheet: worksheet}
}

// Append дописывает запись клиента в конец листа
// Возраст и выручка на человека считаются на момент записи
func (r *Repository) Append(ctx context.Context, c *domain.Customer) error {
	row := sheetstore.Row{
		c.ExternalID,
		c.Sex,
		c.BirthDate.Format(domain.DateFormat),
		c.City,
		c.Country,
		string(c.Activity),
		c.ActivityDate.Format(domain.DateFormat),
		c.StartTime,
		c.Duration,
		strconv.Itoa(c.PartySize),
		strconv.FormatFloat(c.Price, 'f', -1, 64),
		c.RegisteredAt.Format(domain.BookedAtFormat),
		strconv.Itoa(c.Age(c.RegisteredAt)),
		strconv.FormatFloat(c.RevenuePerPerson(), 'f', 2, 64),
		c.Notes,
	}

	if err := r.store.Append(ctx, r.worksheet, row); err != nil {
		return fmt.Errorf("%w: Append: %v", ErrWriteStore, err)
	}

	return nil
}

// ReadAll читает все записи клиентов
func (r *Repository) ReadAll(ctx context.Context) ([]*domain.Customer, error) {
	rows, err := r.store.ReadAll(ctx, r.worksheet)
	if err != nil {
		return nil, fmt.Errorf("%w: ReadAll: %v", ErrReadStore, err)
	}

	customers := make([]*domain.Customer, 0, len(rows))
	for i, row := range rows {
		decoded, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: ReadAll - row %d: %v", ErrDecodeRow, i, err)
		}
		customers = append(customers, decoded)
	}

	return customers, nil
}

func decodeRow(row sheetstore.Row) (*domain.Customer, error) {
	if len(row) < rowWidth {
		return nil, fmt.Errorf("expected %d cells, got %d", rowWidth, len(row))
	}

	birthDate, err := time.Parse(domain.DateFormat, row[colBirthDate])
	if err != nil {
		return nil, fmt.Errorf("invalid birth date %q: %v", row[colBirthDate], err)
	}

	activityDate, err := time.Parse(domain.DateFormat, row[colActivityDate])
	if err != nil {
		return nil, fmt.Errorf("invalid activity date %q: %v", row[colActivityDate], err)
	}

	registeredAt, err := time.Parse(domain.BookedAtFormat, row[colRegisteredAt])
	if err != nil {
		return nil, fmt.Errorf("invalid registration timestamp %q: %v", row[colRegisteredAt], err)
	}

	partySize, err := strconv.Atoi(row[colPartySize])
	if err != nil {
		return nil, fmt.Errorf("invalid party size %q: %v", row[colPartySize], err)
	}

	price, err := strconv.ParseFloat(row[colPrice], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %v", row[colPrice], err)
	}

	return &domain.Customer{
		ExternalID:   row[colExternalID],
		Sex:          row[colSex],
		BirthDate:    birthDate,
		City:         row[colCity],
		Country:      row[colCountry],
		Activity:     domain.Activity(row[colActivity]),
		ActivityDate: activityDate,
		StartTime:    row[colStartTime],
		Duration:     row[colDuration],
		PartySize:    partySize,
		Price:        price,
		RegisteredAt: registeredAt,
		Notes:        row[colNotes],
	}, nil
}
