package delete_reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	storage "github.com/m04kA/UA-BookingService/internal/infra/storage/reservation"
)

type fakeRepo struct {
	known   uuid.UUID
	deleted []uuid.UUID
	failAll bool
}

func (f *fakeRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	if f.failAll {
		return errors.New("network down")
	}
	if id != f.known {
		return storage.ErrReservationNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate(_ context.Context) error {
	f.calls++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_DeletesAndInvalidatesCacheOnce(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{known: id}
	invalidator := &fakeInvalidator{}
	uc := NewUseCase(repo, invalidator, nopLogger{})

	err := uc.Execute(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, repo.deleted)
	assert.Equal(t, 1, invalidator.calls)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeRepo{known: uuid.New()}
	invalidator := &fakeInvalidator{}
	uc := NewUseCase(repo, invalidator, nopLogger{})

	err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Equal(t, 0, invalidator.calls)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	repo := &fakeRepo{failAll: true}
	invalidator := &fakeInvalidator{}
	uc := NewUseCase(repo, invalidator, nopLogger{})

	err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, 0, invalidator.calls)
}
