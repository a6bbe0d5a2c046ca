package dto

import (
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmployeeRequest defines the full set of employee fields accepted on create and replace.
type EmployeeRequest struct {
	FirstName  string          `json:"firstName" validate:"required,max=120"`
	LastName   string          `json:"lastName" validate:"required,max=120"`
	Email      string          `json:"email" validate:"required,email,max=255"`
	Phone      string          `json:"phone" validate:"max=50"`
	Position   string          `json:"position" validate:"max=120"`
	Department string          `json:"department" validate:"max=120"`
	Salary     decimal.Decimal `json:"salary" swaggertype:"string" example:"52000.00"`
	HiredAt    string          `json:"hiredAt" validate:"required,datetime=2006-01-02" example:"2024-01-15"`
	IsActive   *bool           `json:"isActive"` // Optional, defaults to true
}

// PatchEmployeeRequest defines a partial employee update.
// Using pointers to differentiate between omitted fields and zero-value fields.
type PatchEmployeeRequest struct {
	FirstName  *string          `json:"firstName" validate:"omitnil,required,max=120"`
	LastName   *string          `json:"lastName" validate:"omitnil,required,max=120"`
	Email      *string          `json:"email" validate:"omitnil,required,email,max=255"`
	Phone      *string          `json:"phone" validate:"omitnil,max=50"`
	Position   *string          `json:"position" validate:"omitnil,max=120"`
	Department *string          `json:"department" validate:"omitnil,max=120"`
	Salary     *decimal.Decimal `json:"salary" swaggertype:"string"`
	HiredAt    *string          `json:"hiredAt" validate:"omitnil,required,datetime=2006-01-02"`
	IsActive   *bool            `json:"isActive"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID    string          `json:"employeeID"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	FullName      string          `json:"fullName"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Position      string          `json:"position"`
	Department    string          `json:"department"`
	Salary        decimal.Decimal `json:"salary" swaggertype:"string"`
	HiredAt       string          `json:"hiredAt"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		FullName:      e.FullName(),
		Email:         e.Email,
		Phone:         e.Phone,
		Position:      e.Position,
		Department:    e.Department,
		Salary:        e.Salary,
		HiredAt:       e.HiredAt.Format(domain.DateLayout),
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// ToListEmployeesResponse converts a slice of domain.Employee to ListEmployeesResponse
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: res}
}
