package pgsql

import (
	"errors"
	"net/http"

	"github.com/SscSPs/employee_attendance_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// classify maps driver errors onto the application sentinels.
func (r *BaseRepository) classify(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.NewAppError(http.StatusConflict, msg+": "+pgErr.ConstraintName, apperrors.ErrDuplicate)
	}
	return apperrors.NewStorageError(msg, err)
}

// expectOneRow reports ErrNotFound when a write touched no row.
func expectOneRow(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
