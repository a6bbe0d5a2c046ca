package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents a member of staff in the domain.
type Employee struct {
	EmployeeID string          `json:"employeeID"` // Primary Key (UUID)
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"` // Unique, stored lower-case
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	HiredAt    time.Time       `json:"hiredAt"` // Calendar date, UTC midnight
	IsActive   bool            `json:"isActive"`
	AuditFields
}

func (e Employee) GetID() string                { return e.EmployeeID }
func (e Employee) GetAuditFields() AuditFields { return e.AuditFields }

// FullName joins first and last name.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// NewestEmployeeFirst orders employees by descending creation time.
// Ties fall back to the employee ID so the order is total.
func NewestEmployeeFirst(a, b Employee) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	switch {
	case a.EmployeeID < b.EmployeeID:
		return -1
	case a.EmployeeID > b.EmployeeID:
		return 1
	}
	return 0
}
