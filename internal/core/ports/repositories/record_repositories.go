package repositories

import (
	"context"
)

// RecordReader defines read operations over a collection of records of type T.
type RecordReader[T any] interface {
	// FindByID retrieves a specific record by its unique identifier.
	// Returns apperrors.ErrNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*T, error)

	// FindAll retrieves every record in storage order.
	FindAll(ctx context.Context) ([]T, error)
}

// RecordWriter defines write operations over a collection of records of type T.
type RecordWriter[T any] interface {
	// Save persists a new record.
	// Returns apperrors.ErrDuplicate when a unique key is already taken.
	Save(ctx context.Context, record T) error

	// Update overwrites an existing record.
	// Returns apperrors.ErrNotFound when the record does not exist.
	Update(ctx context.Context, record T) error

	// Delete removes a record by its identifier.
	// Returns apperrors.ErrNotFound when the record does not exist.
	Delete(ctx context.Context, id string) error
}

// RecordRepositoryFacade combines read and write access to one collection.
type RecordRepositoryFacade[T any] interface {
	RecordReader[T]
	RecordWriter[T]
}
