// Package sqlite persists records through gorm on an embedded SQLite database.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/apperrors"
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	"github.com/ncruces/go-sqlite3"
	"gorm.io/gorm"
)

const (
	maxRetries     = 10
	initialBackoff = 50 * time.Millisecond
)

// recordRepository stores domain records of type T as gorm models of type M.
type recordRepository[T domain.Record, M any] struct {
	name        string
	idColumn    string
	toModel     func(T) M
	toDomain    func(M) T
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

func (r *recordRepository[T, M]) FindByID(ctx context.Context, id string) (*T, error) {
	var m M
	err := r.withRetry(ctx, func(db *gorm.DB) error {
		return db.Where(r.idColumn+" = ?", id).Take(&m).Error
	})
	if err != nil {
		return nil, r.classify("failed to find "+r.name+" "+id, err)
	}
	record := r.toDomain(m)
	return &record, nil
}

func (r *recordRepository[T, M]) FindAll(ctx context.Context) ([]T, error) {
	var ms []M
	err := r.withRetry(ctx, func(db *gorm.DB) error {
		return db.Order("rowid").Find(&ms).Error
	})
	if err != nil {
		return nil, r.classify("failed to query "+r.name, err)
	}
	records := make([]T, len(ms))
	for i, m := range ms {
		records[i] = r.toDomain(m)
	}
	return records, nil
}

func (r *recordRepository[T, M]) Save(ctx context.Context, record T) error {
	m := r.toModel(record)
	err := r.withRetry(ctx, func(db *gorm.DB) error {
		return db.Create(&m).Error
	})
	if err != nil {
		return r.classify("failed to save "+r.name+" "+record.GetID(), err)
	}
	return nil
}

func (r *recordRepository[T, M]) Update(ctx context.Context, record T) error {
	m := r.toModel(record)
	err := r.withRetry(ctx, func(db *gorm.DB) error {
		res := db.Model(&m).
			Where(r.idColumn+" = ?", record.GetID()).
			Select("*").
			Omit(r.idColumn, "created_at", "created_by").
			Updates(&m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return r.classify("failed to update "+r.name+" "+record.GetID(), err)
	}
	return nil
}

func (r *recordRepository[T, M]) Delete(ctx context.Context, id string) error {
	err := r.withRetry(ctx, func(db *gorm.DB) error {
		res := db.Where(r.idColumn+" = ?", id).Delete(new(M))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return r.classify("failed to delete "+r.name+" "+id, err)
	}
	return nil
}

// withRetry runs fn in a transaction, retrying while SQLite reports the database busy or locked.
func (r *recordRepository[T, M]) withRetry(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, err := r.getDatabase(ctx)
	if err != nil {
		return err
	}

	backoff := initialBackoff
	for retries := 0; ; retries++ {
		err := db.WithContext(ctx).Transaction(fn)
		if err == nil {
			return nil
		}

		var sqliteErr *sqlite3.Error
		if retries >= maxRetries || !errors.As(err, &sqliteErr) || !slices.Contains([]sqlite3.ErrorCode{sqlite3.BUSY, sqlite3.LOCKED}, sqliteErr.Code()) {
			return err
		}

		slog.DebugContext(ctx, "transaction failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

// classify maps gorm and SQLite errors onto the application sentinels.
func (r *recordRepository[T, M]) classify(msg string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	var sqliteErr *sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode() {
		case sqlite3.CONSTRAINT_UNIQUE, sqlite3.CONSTRAINT_PRIMARYKEY:
			return apperrors.NewAppError(http.StatusConflict, msg, fmt.Errorf("%w: %s", apperrors.ErrDuplicate, sqliteErr.Error()))
		}
	}
	return apperrors.NewStorageError(msg, err)
}

// createGetDatabase migrates the given models the first time the database is used.
func createGetDatabase(db *gorm.DB, models ...any) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			if err := db.AutoMigrate(models...); err != nil {
				migrateErr = apperrors.NewStorageError("failed to migrate sqlite schema", err)
			}
		})
		if migrateErr != nil {
			return nil, migrateErr
		}
		return db, nil
	}
}
