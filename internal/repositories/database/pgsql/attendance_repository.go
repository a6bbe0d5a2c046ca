package pgsql

import (
	"context"

	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_attendance_app/internal/core/ports/repositories"
	"github.com/SscSPs/employee_attendance_app/internal/models"
	"github.com/SscSPs/employee_attendance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const attendanceColumns = `attendance_id, employee_id, attendance_date, status, check_in, check_out, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates a new repository for attendance data.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

// Save inserts a new attendance record.
func (r *PgxAttendanceRepository) Save(ctx context.Context, attendance domain.Attendance) error {
	m := mapping.ToModelAttendance(attendance)
	query := `
		INSERT INTO attendances (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AttendanceID, m.EmployeeID, m.Date, m.Status, m.CheckIn, m.CheckOut, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return r.classify("failed to save attendance "+m.AttendanceID, err)
	}
	return nil
}

// Update overwrites every mutable column of an attendance record.
func (r *PgxAttendanceRepository) Update(ctx context.Context, attendance domain.Attendance) error {
	m := mapping.ToModelAttendance(attendance)
	query := `
		UPDATE attendances
		SET employee_id = $2, attendance_date = $3, status = $4, check_in = $5, check_out = $6, notes = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE attendance_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AttendanceID, m.EmployeeID, m.Date, m.Status, m.CheckIn, m.CheckOut, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return r.classify("failed to update attendance "+m.AttendanceID, err)
	}
	return expectOneRow(tag)
}

// Delete removes an attendance record.
func (r *PgxAttendanceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM attendances WHERE attendance_id = $1;`, id)
	if err != nil {
		return r.classify("failed to delete attendance "+id, err)
	}
	return expectOneRow(tag)
}

// FindByID retrieves an attendance record by its ID.
func (r *PgxAttendanceRepository) FindByID(ctx context.Context, id string) (*domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE attendance_id = $1;`
	m, err := scanAttendance(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, r.classify("failed to find attendance "+id, err)
	}
	attendance := mapping.ToDomainAttendance(m)
	return &attendance, nil
}

// FindAll retrieves all attendance records in insertion order.
func (r *PgxAttendanceRepository) FindAll(ctx context.Context) ([]domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances ORDER BY seq;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, r.classify("failed to query attendance", err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Attendance, error) {
		return scanAttendance(row)
	})
	if err != nil {
		return nil, r.classify("failed to scan attendance", err)
	}
	return mapping.ToDomainAttendanceSlice(modelRecords), nil
}

func scanAttendance(row pgx.Row) (models.Attendance, error) {
	var m models.Attendance
	err := row.Scan(
		&m.AttendanceID,
		&m.EmployeeID,
		&m.Date,
		&m.Status,
		&m.CheckIn,
		&m.CheckOut,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
