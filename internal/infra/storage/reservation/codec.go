package reservation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/internal/integrations/sheetstore"
	"github.com/m04kA/UA-BookingService/pkg/types"
)

// Позиционная схема строки листа бронирований
// Первые 12 колонок - исторический формат таблицы, колонка ID добавлена
// в конце как стабильный суррогатный ключ
const (
	colName = iota
	colActivity
	colDate
	colStartTime
	colDuration
	colPartySize
	colContactMethod
	colContactValue
	colFinalPrice
	colNotes
	colBookedAt
	colUnitPrice
	colID

	rowWidth       = colID + 1
	legacyRowWidth = colID // строки, записанные до появления колонки ID
)

// encodeRow кодирует бронирование в позиционную строку листа
func encodeRow(r *domain.Reservation) sheetstore.Row {
	return sheetstore.Row{
		r.CustomerName,
		string(r.Activity),
		r.Date.Format(domain.DateFormat),
		r.StartTime.String(),
		r.Duration,
		strconv.Itoa(r.PartySize),
		r.ContactMethod,
		r.ContactValue,
		formatPrice(r.FinalPrice),
		r.Notes,
		r.BookedAt.Format(domain.BookedAtFormat),
		formatPrice(r.UnitPrice),
		r.ID.String(),
	}
}

// decodeRow декодирует позиционную строку листа в бронирование
// У строк старого формата (без колонки ID) идентификатор остается нулевым:
// такие записи видны в выборках, но не адресуемы для редактирования
func decodeRow(row sheetstore.Row) (*domain.Reservation, error) {
	if len(row) < legacyRowWidth {
		return nil, fmt.Errorf("%w: expected at least %d cells, got %d", ErrDecodeRow, legacyRowWidth, len(row))
	}

	date, err := time.Parse(domain.DateFormat, row[colDate])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid activity date %q: %v", ErrDecodeRow, row[colDate], err)
	}

	startTime, err := types.NewTimeStringFromString(row[colStartTime])
	if err != nil {
		// Некорректное время не блокирует чтение строки:
		// повестка помечает такую запись статусом "hora no válida"
		startTime = types.TimeString(row[colStartTime])
	}

	partySize, err := strconv.Atoi(row[colPartySize])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid party size %q: %v", ErrDecodeRow, row[colPartySize], err)
	}

	finalPrice, err := strconv.ParseFloat(row[colFinalPrice], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid final price %q: %v", ErrDecodeRow, row[colFinalPrice], err)
	}

	unitPrice, err := strconv.ParseFloat(row[colUnitPrice], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid unit price %q: %v", ErrDecodeRow, row[colUnitPrice], err)
	}

	bookedAt, err := time.Parse(domain.BookedAtFormat, row[colBookedAt])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking timestamp %q: %v", ErrDecodeRow, row[colBookedAt], err)
	}

	id := uuid.Nil
	if len(row) >= rowWidth {
		if parsed, parseErr := uuid.Parse(row[colID]); parseErr == nil {
			id = parsed
		}
	}

	return &domain.Reservation{
		ID:            id,
		CustomerName:  row[colName],
		Activity:      domain.Activity(row[colActivity]),
		Date:          date,
		StartTime:     startTime,
		Duration:      row[colDuration],
		PartySize:     partySize,
		ContactMethod: row[colContactMethod],
		ContactValue:  row[colContactValue],
		FinalPrice:    finalPrice,
		Notes:         row[colNotes],
		BookedAt:      bookedAt,
		UnitPrice:     unitPrice,
	}, nil
}

// formatPrice форматирует цену без хвостовых нулей дробной части
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
