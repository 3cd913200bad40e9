package reservation

import (
	"context"

	"github.com/m04kA/UA-BookingService/internal/integrations/sheetstore"
)

// RowStore интерфейс внешнего хранилища строк
// Реализуется клиентом sheetstore
type RowStore interface {
	ReadAll(ctx context.Context, worksheet string) ([]sheetstore.Row, error)
	Append(ctx context.Context, worksheet string, row sheetstore.Row) error
	InsertAt(ctx context.Context, worksheet string, index int, row sheetstore.Row) error
	DeleteAt(ctx context.Context, worksheet string, index int) error
}
