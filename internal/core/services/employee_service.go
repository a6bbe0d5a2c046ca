package services

import (
	"strings"

	"github.com/SscSPs/employee_attendance_app/internal/apperrors"
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_attendance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/employee_attendance_app/internal/core/ports/services"
	"github.com/SscSPs/employee_attendance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// EmployeeSchema describes how employees are built, checked and ordered.
func EmployeeSchema() Schema[domain.Employee, dto.EmployeeRequest, dto.PatchEmployeeRequest] {
	return Schema[domain.Employee, dto.EmployeeRequest, dto.PatchEmployeeRequest]{
		Name: "employees",
		Build: func(id string, req dto.EmployeeRequest, audit domain.AuditFields) (domain.Employee, error) {
			return replaceEmployee(domain.Employee{EmployeeID: id, AuditFields: audit}, req)
		},
		Replace: func(existing domain.Employee, req dto.EmployeeRequest, audit domain.AuditFields) (domain.Employee, error) {
			existing.AuditFields = audit
			return replaceEmployee(existing, req)
		},
		Patch:   patchEmployee,
		Check:   checkEmployee,
		Compare: domain.NewestEmployeeFirst,
	}
}

// NewEmployeeService creates the employee resource collection.
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, options ...CollectionOption) portssvc.EmployeeSvcFacade {
	return NewCollectionService(repo, EmployeeSchema(), options...)
}

func replaceEmployee(e domain.Employee, req dto.EmployeeRequest) (domain.Employee, error) {
	hiredAt, err := parseDate("hiredAt", req.HiredAt)
	if err != nil {
		return domain.Employee{}, err
	}

	e.FirstName = strings.TrimSpace(req.FirstName)
	e.LastName = strings.TrimSpace(req.LastName)
	e.Email = normalizeEmail(req.Email)
	e.Phone = strings.TrimSpace(req.Phone)
	e.Position = strings.TrimSpace(req.Position)
	e.Department = strings.TrimSpace(req.Department)
	e.Salary = req.Salary
	e.HiredAt = hiredAt
	e.IsActive = true
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
	return e, nil
}

func patchEmployee(e domain.Employee, req dto.PatchEmployeeRequest, audit domain.AuditFields) (domain.Employee, error) {
	e.AuditFields = audit
	if req.FirstName != nil {
		e.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		e.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		e.Email = normalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		e.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Position != nil {
		e.Position = strings.TrimSpace(*req.Position)
	}
	if req.Department != nil {
		e.Department = strings.TrimSpace(*req.Department)
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
	if req.HiredAt != nil {
		hiredAt, err := parseDate("hiredAt", *req.HiredAt)
		if err != nil {
			return domain.Employee{}, err
		}
		e.HiredAt = hiredAt
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
	return e, nil
}

// Salary is stored as NUMERIC(12,2).
const salaryDecimalPlaces = 2

var maxSalary = decimal.New(1, 10)

func checkEmployee(e domain.Employee) []apperrors.FieldError {
	var violations []apperrors.FieldError
	// Whitespace-only names pass the payload "required" rule but are empty once trimmed.
	if e.FirstName == "" {
		violations = append(violations, apperrors.FieldError{Field: "firstName", Message: "This field may not be blank."})
	}
	if e.LastName == "" {
		violations = append(violations, apperrors.FieldError{Field: "lastName", Message: "This field may not be blank."})
	}
	switch {
	case e.Salary.IsNegative():
		violations = append(violations, apperrors.FieldError{Field: "salary", Message: "Ensure this value is greater than or equal to 0."})
	case !e.Salary.Equal(e.Salary.Truncate(salaryDecimalPlaces)):
		violations = append(violations, apperrors.FieldError{Field: "salary", Message: "Ensure that there are no more than 2 decimal places."})
	case e.Salary.GreaterThanOrEqual(maxSalary):
		violations = append(violations, apperrors.FieldError{Field: "salary", Message: "Ensure that there are no more than 12 digits in total."})
	}
	return violations
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
