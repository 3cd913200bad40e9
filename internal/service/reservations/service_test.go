package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/internal/infra/cache"
)

type fakeRepo struct {
	reservations []*domain.Reservation
	calls        int
	failWith     error
}

func (f *fakeRepo) ReadAll(_ context.Context) ([]*domain.Reservation, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.reservations, nil
}

type fakeCache struct {
	stored   []*domain.Reservation
	getErr   error
	setErr   error
	setCalls int
}

func (f *fakeCache) Get(_ context.Context) ([]*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeCache) Set(_ context.Context, reservations []*domain.Reservation) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.stored = reservations
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func bookedAt(ts time.Time) *domain.Reservation {
	return &domain.Reservation{ID: uuid.New(), BookedAt: ts}
}

func TestGetAll_CacheHitSkipsStore(t *testing.T) {
	cached := []*domain.Reservation{bookedAt(time.Now())}
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeCache{stored: cached}, nopLogger{})

	got, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, got)
	assert.Equal(t, 0, repo.calls)
}

func TestGetAll_CacheMissPopulatesCache(t *testing.T) {
	stored := []*domain.Reservation{bookedAt(time.Now())}
	repo := &fakeRepo{reservations: stored}
	c := &fakeCache{getErr: cache.ErrCacheMiss}
	svc := NewService(repo, c, nopLogger{})

	got, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, 1, c.setCalls)
}

func TestGetAll_CacheUnavailableDegradesToStore(t *testing.T) {
	stored := []*domain.Reservation{bookedAt(time.Now())}
	repo := &fakeRepo{reservations: stored}
	c := &fakeCache{getErr: cache.ErrCacheUnavailable, setErr: cache.ErrCacheUnavailable}
	svc := NewService(repo, c, nopLogger{})

	// Недоступный кеш не роняет чтение
	got, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestGetAll_NilCache(t *testing.T) {
	stored := []*domain.Reservation{bookedAt(time.Now())}
	svc := NewService(&fakeRepo{reservations: stored}, nil, nopLogger{})

	got, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestGetAll_StoreError(t *testing.T) {
	repo := &fakeRepo{failWith: errors.New("store down")}
	svc := NewService(repo, nil, nopLogger{})

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestLatest_SortsNewestFirstAndLimits(t *testing.T) {
	base := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	oldest := bookedAt(base)
	middle := bookedAt(base.Add(time.Hour))
	newest := bookedAt(base.Add(2 * time.Hour))

	repo := &fakeRepo{reservations: []*domain.Reservation{oldest, newest, middle}}
	svc := NewService(repo, nil, nopLogger{})

	got, err := svc.Latest(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newest.ID, got[0].ID)
	assert.Equal(t, middle.ID, got[1].ID)

	// Порядок хранения не мутируется
	assert.Equal(t, oldest.ID, repo.reservations[0].ID)
}
