package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/internal/integrations/sheetstore"
	"github.com/m04kA/UA-BookingService/pkg/types"
)

const testWorksheet = "Reservas"

// fakeRowStore хранилище строк в памяти с семантикой порядковых номеров
type fakeRowStore struct {
	rows    []sheetstore.Row
	failAll bool
}

var errStoreDown = errors.New("store down")

func (f *fakeRowStore) ReadAll(_ context.Context, _ string) ([]sheetstore.Row, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	out := make([]sheetstore.Row, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeRowStore) Append(_ context.Context, _ string, row sheetstore.Row) error {
	if f.failAll {
		return errStoreDown
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeRowStore) InsertAt(_ context.Context, _ string, index int, row sheetstore.Row) error {
	if f.failAll {
		return errStoreDown
	}
	f.rows = append(f.rows[:index], append([]sheetstore.Row{row}, f.rows[index:]...)...)
	return nil
}

func (f *fakeRowStore) DeleteAt(_ context.Context, _ string, index int) error {
	if f.failAll {
		return errStoreDown
	}
	f.rows = append(f.rows[:index], f.rows[index+1:]...)
	return nil
}

func testReservation(name string) *domain.Reservation {
	return &domain.Reservation{
		ID:            uuid.New(),
		CustomerName:  name,
		Activity:      domain.ActivityKayak,
		Date:          time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00:00"),
		Duration:      "2 horas",
		PartySize:     3,
		ContactMethod: domain.ContactWhatsApp,
		ContactValue:  "+34 600 000 000",
		FinalPrice:    54,
		Notes:         "sin notas",
		BookedAt:      time.Date(2026, time.August, 1, 12, 30, 0, 0, time.UTC),
		UnitPrice:     18,
	}
}

func TestRepository_AppendAndReadAll(t *testing.T) {
	store := &fakeRowStore{}
	repo := NewRepository(store, testWorksheet)
	ctx := context.Background()

	original := testReservation("María García")
	require.NoError(t, repo.Append(ctx, original))

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, original, got[0])
}

func TestRepository_ReadAll_LegacyRowWithoutID(t *testing.T) {
	store := &fakeRowStore{rows: []sheetstore.Row{{
		"Cliente Antiguo", "Kayak", "05/03/2024", "09:00:00", "1 hora", "2",
		"Email", "antiguo@example.com", "20", "", "01/03/2024 18:00", "10",
	}}}
	repo := NewRepository(store, testWorksheet)

	got, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	// Строка старого формата читается, но остается без ключа
	assert.Equal(t, uuid.Nil, got[0].ID)
	assert.Equal(t, "Cliente Antiguo", got[0].CustomerName)
}

func TestRepository_ReadAll_KeepsInvalidStartTime(t *testing.T) {
	store := &fakeRowStore{rows: []sheetstore.Row{{
		"Cliente", "Kayak", "05/03/2026", "por la mañana", "1 hora", "2",
		"Email", "c@example.com", "20", "", "01/03/2026 18:00", "10", uuid.NewString(),
	}}}
	repo := NewRepository(store, testWorksheet)

	got, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "por la mañana", got[0].StartTime.String())
}

func TestRepository_DeleteByID_ShiftsFollowingRows(t *testing.T) {
	store := &fakeRowStore{}
	repo := NewRepository(store, testWorksheet)
	ctx := context.Background()

	first := testReservation("Primera")
	second := testReservation("Segunda")
	third := testReservation("Tercera")
	for _, r := range []*domain.Reservation{first, second, third} {
		require.NoError(t, repo.Append(ctx, r))
	}

	require.NoError(t, repo.DeleteByID(ctx, first.ID))

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Последующие строки сдвинулись, но остаются адресуемыми по ключу
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, third.ID, got[1].ID)

	found, err := repo.GetByID(ctx, third.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tercera", found.CustomerName)
}

func TestRepository_DeleteByID_NotFound(t *testing.T) {
	repo := NewRepository(&fakeRowStore{}, testWorksheet)

	err := repo.DeleteByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReservationNotFound)

	// Нулевой ключ никогда не разрешается в строку
	err = repo.DeleteByID(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_ReplaceByID_PreservesPosition(t *testing.T) {
	store := &fakeRowStore{}
	repo := NewRepository(store, testWorksheet)
	ctx := context.Background()

	first := testReservation("Primera")
	second := testReservation("Segunda")
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	updated := testReservation("Primera Editada")
	updated.ID = first.ID
	updated.FinalPrice = 99
	require.NoError(t, repo.ReplaceByID(ctx, first.ID, updated))

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Primera Editada", got[0].CustomerName)
	assert.Equal(t, 99.0, got[0].FinalPrice)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestRepository_StoreErrorsAreWrapped(t *testing.T) {
	repo := NewRepository(&fakeRowStore{failAll: true}, testWorksheet)
	ctx := context.Background()

	_, err := repo.ReadAll(ctx)
	assert.ErrorIs(t, err, ErrReadStore)

	err = repo.Append(ctx, testReservation("Cliente"))
	assert.ErrorIs(t, err, ErrWriteStore)
}
