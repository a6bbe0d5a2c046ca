// Package memory keeps records in process memory. It backs STORAGE_DRIVER=memory
// and the handler tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/employee_attendance_app/internal/apperrors"
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
)

// UniqueKey extracts a value that must be unique across a collection.
type UniqueKey[T domain.Record] struct {
	Name string
	Key  func(T) string
}

// Store is a generic insertion-ordered record store.
type Store[T domain.Record] struct {
	mu      sync.RWMutex
	order   []string
	records map[string]T
	unique  []UniqueKey[T]
}

// NewStore creates an empty store enforcing the given unique keys.
func NewStore[T domain.Record](unique ...UniqueKey[T]) *Store[T] {
	return &Store[T]{
		records: make(map[string]T),
		unique:  unique,
	}
}

func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &record, nil
}

func (s *Store[T]) FindAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}

func (s *Store[T]) Save(ctx context.Context, record T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := record.GetID()
	if _, exists := s.records[id]; exists {
		return fmt.Errorf("id %s: %w", id, apperrors.ErrDuplicate)
	}
	if err := s.checkUnique(record); err != nil {
		return err
	}
	s.records[id] = record
	s.order = append(s.order, id)
	return nil
}

func (s *Store[T]) Update(ctx context.Context, record T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := record.GetID()
	if _, exists := s.records[id]; !exists {
		return apperrors.ErrNotFound
	}
	if err := s.checkUnique(record); err != nil {
		return err
	}
	s.records[id] = record
	return nil
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		return apperrors.ErrNotFound
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// checkUnique must be called with the write lock held.
func (s *Store[T]) checkUnique(record T) error {
	for _, u := range s.unique {
		key := u.Key(record)
		for id, other := range s.records {
			if id != record.GetID() && u.Key(other) == key {
				return fmt.Errorf("%s %q: %w", u.Name, key, apperrors.ErrDuplicate)
			}
		}
	}
	return nil
}
