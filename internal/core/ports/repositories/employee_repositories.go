package repositories

import "github.com/SscSPs/employee_attendance_app/internal/core/domain"

// EmployeeRepositoryFacade provides persistence for employees.
type EmployeeRepositoryFacade = RecordRepositoryFacade[domain.Employee]
