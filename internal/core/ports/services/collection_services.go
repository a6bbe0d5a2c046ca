package services

import (
	"context"
)

// CollectionReaderSvc defines read operations on a resource collection.
type CollectionReaderSvc[T any] interface {
	// List returns every record, ordered by the collection's declared ordering.
	List(ctx context.Context) ([]T, error)

	// GetByID returns a single record.
	GetByID(ctx context.Context, id string) (*T, error)
}

// CollectionWriterSvc defines validated write operations on a resource collection.
// C is the full payload used by create and replace, P the partial payload.
type CollectionWriterSvc[T any, C any, P any] interface {
	// Create validates the payload and persists a new record.
	Create(ctx context.Context, req C, actorID string) (*T, error)

	// Replace overwrites every writable field of an existing record.
	Replace(ctx context.Context, id string, req C, actorID string) (*T, error)

	// PartialUpdate changes only the fields present in the payload.
	PartialUpdate(ctx context.Context, id string, req P, actorID string) (*T, error)
}

// CollectionLifecycleSvc defines removal of records.
type CollectionLifecycleSvc interface {
	// Delete removes a record permanently.
	Delete(ctx context.Context, id string) error
}

// CollectionSvcFacade combines all operations of a resource collection.
type CollectionSvcFacade[T any, C any, P any] interface {
	CollectionReaderSvc[T]
	CollectionWriterSvc[T, C, P]
	CollectionLifecycleSvc
}
