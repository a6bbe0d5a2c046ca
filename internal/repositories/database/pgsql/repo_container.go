package pgsql

import (
	portsrepo "github.com/SscSPs/employee_attendance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:   newPgxEmployeeRepository(dbPool),
		AttendanceRepo: newPgxAttendanceRepository(dbPool),
	}
}
