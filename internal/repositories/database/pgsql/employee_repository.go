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

const employeeColumns = `employee_id, first_name, last_name, email, phone, position, department, salary, hired_at, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

// Save inserts a new employee.
func (r *PgxEmployeeRepository) Save(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.FirstName, m.LastName, m.Email, m.Phone, m.Position, m.Department,
		m.Salary, m.HiredAt, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return r.classify("failed to save employee "+m.EmployeeID, err)
	}
	return nil
}

// Update overwrites every mutable column of an employee.
func (r *PgxEmployeeRepository) Update(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, phone = $5, position = $6, department = $7,
			salary = $8, hired_at = $9, is_active = $10, last_updated_at = $11, last_updated_by = $12
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.FirstName, m.LastName, m.Email, m.Phone, m.Position, m.Department,
		m.Salary, m.HiredAt, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return r.classify("failed to update employee "+m.EmployeeID, err)
	}
	return expectOneRow(tag)
}

// Delete removes an employee.
func (r *PgxEmployeeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, id)
	if err != nil {
		return r.classify("failed to delete employee "+id, err)
	}
	return expectOneRow(tag)
}

// FindByID retrieves an employee by its ID.
func (r *PgxEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, r.classify("failed to find employee "+id, err)
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

// FindAll retrieves all employees in insertion order.
func (r *PgxEmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at, employee_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, r.classify("failed to query employees", err)
	}
	defer rows.Close()

	modelEmployees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		return nil, r.classify("failed to scan employees", err)
	}
	return mapping.ToDomainEmployeeSlice(modelEmployees), nil
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.Phone,
		&m.Position,
		&m.Department,
		&m.Salary,
		&m.HiredAt,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
