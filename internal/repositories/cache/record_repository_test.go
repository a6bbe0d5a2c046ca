package cache

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/apperrors"
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	"github.com/SscSPs/employee_attendance_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRepository records how often reads reach the backend.
type countingRepository struct {
	*memory.Store[domain.Employee]
	finds int
}

func (c *countingRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	c.finds++
	return c.Store.FindByID(ctx, id)
}

func TestRecordRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	backend := &countingRepository{Store: memory.NewStore[domain.Employee]()}
	repo := NewRecordRepository[domain.Employee](backend, 8, time.Minute)

	require.NoError(t, backend.Save(ctx, domain.Employee{EmployeeID: "1", FirstName: "Ada"}))

	for range 3 {
		found, err := repo.FindByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Ada", found.FirstName)
	}
	assert.Equal(t, 1, backend.finds)
	assert.Equal(t, 1, repo.Len())
}

func TestRecordRepository_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	backend := &countingRepository{Store: memory.NewStore[domain.Employee]()}
	repo := NewRecordRepository[domain.Employee](backend, 8, time.Minute)

	require.NoError(t, repo.Save(ctx, domain.Employee{EmployeeID: "1", FirstName: "Ada"}))
	_, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 0, backend.finds, "saved records are cached")

	require.NoError(t, repo.Update(ctx, domain.Employee{EmployeeID: "1", FirstName: "Grace"}))
	found, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Grace", found.FirstName)

	require.NoError(t, repo.Delete(ctx, "1"))
	_, err = repo.FindByID(ctx, "1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 0, repo.Len())
}

func TestRecordRepository_FailedUpdateStillInvalidates(t *testing.T) {
	ctx := context.Background()
	backend := &countingRepository{Store: memory.NewStore(memory.UniqueKey[domain.Employee]{
		Name: "email",
		Key:  func(e domain.Employee) string { return e.Email },
	})}
	repo := NewRecordRepository[domain.Employee](backend, 8, time.Minute)

	require.NoError(t, repo.Save(ctx, domain.Employee{EmployeeID: "1", Email: "a@example.com"}))
	require.NoError(t, repo.Save(ctx, domain.Employee{EmployeeID: "2", Email: "b@example.com"}))

	err := repo.Update(ctx, domain.Employee{EmployeeID: "1", Email: "b@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	found, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", found.Email)
}

// blockingRepository holds every backend read open until release is closed.
type blockingRepository struct {
	*memory.Store[domain.Employee]
	loaded  chan struct{}
	release chan struct{}
}

func (b *blockingRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	record, err := b.Store.FindByID(ctx, id)
	b.loaded <- struct{}{}
	<-b.release
	return record, err
}

func TestRecordRepository_ReadRacingUpdateIsNotCached(t *testing.T) {
	ctx := context.Background()
	backend := &blockingRepository{
		Store:   memory.NewStore[domain.Employee](),
		loaded:  make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	repo := NewRecordRepository[domain.Employee](backend, 8, time.Minute)
	require.NoError(t, backend.Store.Save(ctx, domain.Employee{EmployeeID: "1", FirstName: "Ada"}))

	done := make(chan *domain.Employee)
	go func() {
		found, err := repo.FindByID(ctx, "1")
		assert.NoError(t, err)
		done <- found
	}()

	<-backend.loaded
	require.NoError(t, repo.Update(ctx, domain.Employee{EmployeeID: "1", FirstName: "Grace"}))
	close(backend.release)

	assert.Equal(t, "Ada", (<-done).FirstName, "the racing read completes with what it loaded")
	assert.Equal(t, 0, repo.Len())

	found, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Grace", found.FirstName)
}

func TestWrapProvider_Disabled(t *testing.T) {
	repos := memory.NewRepositoryProvider()
	assert.Equal(t, repos, WrapProvider(repos, 0, time.Minute))

	wrapped := WrapProvider(repos, 4, time.Minute)
	assert.IsType(t, &RecordRepository[domain.Employee]{}, wrapped.EmployeeRepo)
}
