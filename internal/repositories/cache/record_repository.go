// Package cache decorates repositories with an expiring LRU of records keyed by id.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_attendance_app/internal/core/ports/repositories"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// RecordRepository serves FindByID from cache and forwards everything else to the backend.
type RecordRepository[T domain.Record] struct {
	backend portsrepo.RecordRepositoryFacade[T]
	records *expirable.LRU[string, T]

	// generation counts invalidations. A record read before an invalidation
	// is not cached after it.
	mu         sync.Mutex
	generation uint64
}

// NewRecordRepository wraps backend with a cache of at most size records living for ttl.
func NewRecordRepository[T domain.Record](backend portsrepo.RecordRepositoryFacade[T], size int, ttl time.Duration) *RecordRepository[T] {
	return &RecordRepository[T]{
		backend: backend,
		records: expirable.NewLRU[string, T](size, nil, ttl),
	}
}

// FindByID implements [portsrepo.RecordReader].
func (r *RecordRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if record, ok := r.records.Get(id); ok {
		return &record, nil
	}

	generation := r.currentGeneration()
	record, err := r.backend.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.addUnlessInvalidated(generation, *record)
	return record, nil
}

// FindAll implements [portsrepo.RecordReader]. Lists always hit the backend.
func (r *RecordRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	return r.backend.FindAll(ctx)
}

// Save implements [portsrepo.RecordWriter].
func (r *RecordRepository[T]) Save(ctx context.Context, record T) error {
	generation := r.currentGeneration()
	if err := r.backend.Save(ctx, record); err != nil {
		return err
	}
	r.addUnlessInvalidated(generation, record)
	return nil
}

// Update implements [portsrepo.RecordWriter].
func (r *RecordRepository[T]) Update(ctx context.Context, record T) error {
	defer r.invalidate(record.GetID())

	return r.backend.Update(ctx, record)
}

// Delete implements [portsrepo.RecordWriter].
func (r *RecordRepository[T]) Delete(ctx context.Context, id string) error {
	defer r.invalidate(id)

	return r.backend.Delete(ctx, id)
}

func (r *RecordRepository[T]) currentGeneration() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.generation
}

func (r *RecordRepository[T]) addUnlessInvalidated(generation uint64, record T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.generation != generation {
		return
	}
	r.records.Add(record.GetID(), record)
}

func (r *RecordRepository[T]) invalidate(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation++
	r.records.Remove(id)
}

// Len reports how many records are currently cached.
func (r *RecordRepository[T]) Len() int {
	return r.records.Len()
}

// WrapProvider returns repos with every repository behind a cache.
// A non-positive size leaves repos untouched.
func WrapProvider(repos portsrepo.RepositoryProvider, size int, ttl time.Duration) portsrepo.RepositoryProvider {
	if size <= 0 {
		return repos
	}
	return portsrepo.RepositoryProvider{
		EmployeeRepo:   NewRecordRepository(repos.EmployeeRepo, size, ttl),
		AttendanceRepo: NewRecordRepository(repos.AttendanceRepo, size, ttl),
	}
}

var (
	_ portsrepo.EmployeeRepositoryFacade   = &RecordRepository[domain.Employee]{}
	_ portsrepo.AttendanceRepositoryFacade = &RecordRepository[domain.Attendance]{}
)
