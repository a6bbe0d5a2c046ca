package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/apperrors"
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_attendance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/employee_attendance_app/internal/core/ports/services"
	"github.com/SscSPs/employee_attendance_app/internal/metrics"
	"github.com/google/uuid"
)

type collectionOptions struct {
	clock       func() time.Time
	idGenerator func() string
}

// CollectionOption is a functional option for configuring a collection service
type CollectionOption func(*collectionOptions)

// WithClock overrides the time source used for audit fields
func WithClock(clock func() time.Time) CollectionOption {
	return func(o *collectionOptions) {
		o.clock = clock
	}
}

// WithIDGenerator overrides how new record identifiers are assigned
func WithIDGenerator(gen func() string) CollectionOption {
	return func(o *collectionOptions) {
		o.idGenerator = gen
	}
}

// collectionService implements CollectionSvcFacade for any record type described by a Schema.
type collectionService[T domain.Record, C any, P any] struct {
	BaseService
	repo   portsrepo.RecordRepositoryFacade[T]
	schema Schema[T, C, P]
	now    func() time.Time
	newID  func() string
}

// NewCollectionService creates a resource collection over repo governed by schema.
func NewCollectionService[T domain.Record, C any, P any](
	repo portsrepo.RecordRepositoryFacade[T],
	schema Schema[T, C, P],
	options ...CollectionOption,
) portssvc.CollectionSvcFacade[T, C, P] {
	opts := collectionOptions{
		clock:       time.Now,
		idGenerator: uuid.NewString,
	}
	for _, option := range options {
		option(&opts)
	}

	return &collectionService[T, C, P]{
		repo:   repo,
		schema: schema,
		// Storage keeps microseconds; truncating here keeps returned and re-read records equal.
		now:   func() time.Time { return opts.clock().UTC().Truncate(time.Microsecond) },
		newID: opts.idGenerator,
	}
}

func (s *collectionService[T, C, P]) List(ctx context.Context) ([]T, error) {
	records, err := s.repo.FindAll(ctx)
	s.observe("list", err)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records", slog.String("collection", s.schema.Name))
		return nil, fmt.Errorf("failed to list %s: %w", s.schema.Name, err)
	}
	if records == nil {
		records = []T{}
	}
	if s.schema.Compare != nil {
		slices.SortStableFunc(records, s.schema.Compare)
	}
	s.LogDebug(ctx, "Records listed", slog.String("collection", s.schema.Name), slog.Int("count", len(records)))
	return records, nil
}

func (s *collectionService[T, C, P]) GetByID(ctx context.Context, id string) (*T, error) {
	record, err := s.find(ctx, id)
	s.observe("retrieve", err)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *collectionService[T, C, P]) Create(ctx context.Context, req C, actorID string) (*T, error) {
	record, err := s.create(ctx, req, actorID)
	s.observe("create", err)
	return record, err
}

func (s *collectionService[T, C, P]) create(ctx context.Context, req C, actorID string) (*T, error) {
	if err := validatePayload(req); err != nil {
		s.LogWarn(ctx, "Rejected invalid payload", slog.String("collection", s.schema.Name), slog.String("error", err.Error()))
		return nil, err
	}

	record, err := s.schema.Build(s.newID(), req, domain.NewAuditFields(s.now(), actor(actorID)))
	if err != nil {
		return nil, err
	}
	if err := s.check(record); err != nil {
		s.LogWarn(ctx, "Rejected invalid record", slog.String("collection", s.schema.Name), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logWriteError(ctx, err, "Failed to save record", record.GetID())
		return nil, fmt.Errorf("failed to create %s record: %w", s.schema.Name, err)
	}

	s.LogInfo(ctx, "Record created", slog.String("collection", s.schema.Name), slog.String("id", record.GetID()))
	return &record, nil
}

func (s *collectionService[T, C, P]) Replace(ctx context.Context, id string, req C, actorID string) (*T, error) {
	record, err := s.update(ctx, id, req, actorID, func(existing T, audit domain.AuditFields) (T, error) {
		return s.schema.Replace(existing, req, audit)
	})
	s.observe("replace", err)
	return record, err
}

func (s *collectionService[T, C, P]) PartialUpdate(ctx context.Context, id string, req P, actorID string) (*T, error) {
	record, err := s.update(ctx, id, req, actorID, func(existing T, audit domain.AuditFields) (T, error) {
		return s.schema.Patch(existing, req, audit)
	})
	s.observe("partial_update", err)
	return record, err
}

// update is the shared read-modify-write path of Replace and PartialUpdate.
func (s *collectionService[T, C, P]) update(ctx context.Context, id string, req any, actorID string, apply func(T, domain.AuditFields) (T, error)) (*T, error) {
	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validatePayload(req); err != nil {
		s.LogWarn(ctx, "Rejected invalid payload", slog.String("collection", s.schema.Name), slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	record, err := apply(*existing, (*existing).GetAuditFields().Touch(s.now(), actor(actorID)))
	if err != nil {
		return nil, err
	}
	if err := s.check(record); err != nil {
		s.LogWarn(ctx, "Rejected invalid record", slog.String("collection", s.schema.Name), slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.repo.Update(ctx, record); err != nil {
		s.logWriteError(ctx, err, "Failed to update record", id)
		return nil, fmt.Errorf("failed to update %s record %s: %w", s.schema.Name, id, err)
	}

	s.LogInfo(ctx, "Record updated", slog.String("collection", s.schema.Name), slog.String("id", id))
	return &record, nil
}

func (s *collectionService[T, C, P]) Delete(ctx context.Context, id string) error {
	err := s.delete(ctx, id)
	s.observe("delete", err)
	return err
}

func (s *collectionService[T, C, P]) delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return fmt.Errorf("%s record %q: %w", s.schema.Name, id, apperrors.ErrNotFound)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logWriteError(ctx, err, "Failed to delete record", id)
		return fmt.Errorf("failed to delete %s record %s: %w", s.schema.Name, id, err)
	}
	s.LogInfo(ctx, "Record deleted", slog.String("collection", s.schema.Name), slog.String("id", id))
	return nil
}

// find loads a record, treating identifiers that are not UUIDs as unknown.
func (s *collectionService[T, C, P]) find(ctx context.Context, id string) (*T, error) {
	if uuid.Validate(id) != nil {
		return nil, fmt.Errorf("%s record %q: %w", s.schema.Name, id, apperrors.ErrNotFound)
	}
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find record", slog.String("collection", s.schema.Name), slog.String("id", id))
		}
		return nil, fmt.Errorf("failed to get %s record %s: %w", s.schema.Name, id, err)
	}
	return record, nil
}

func (s *collectionService[T, C, P]) check(record T) error {
	if s.schema.Check == nil {
		return nil
	}
	if violations := s.schema.Check(record); len(violations) > 0 {
		return apperrors.NewValidationError(violations...)
	}
	return nil
}

func (s *collectionService[T, C, P]) logWriteError(ctx context.Context, err error, msg, id string) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrDuplicate) {
		s.LogWarn(ctx, msg, slog.String("collection", s.schema.Name), slog.String("id", id), slog.String("error", err.Error()))
		return
	}
	s.LogError(ctx, err, msg, slog.String("collection", s.schema.Name), slog.String("id", id))
}

func (s *collectionService[T, C, P]) observe(operation string, err error) {
	metrics.CollectionOperations.WithLabelValues(s.schema.Name, operation, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, apperrors.ErrValidation):
		return metrics.OutcomeValidation
	case errors.Is(err, apperrors.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return metrics.OutcomeDuplicate
	default:
		return metrics.OutcomeError
	}
}

func actor(actorID string) string {
	if actorID == "" {
		return domain.AnonymousActor
	}
	return actorID
}
