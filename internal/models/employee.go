package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the persisted form of domain.Employee (table "employees").
type Employee struct {
	EmployeeID  string          `db:"employee_id" gorm:"column:employee_id;primaryKey;size:36"`
	FirstName   string          `db:"first_name" gorm:"column:first_name;size:120;not null"`
	LastName    string          `db:"last_name" gorm:"column:last_name;size:120;not null"`
	Email       string          `db:"email" gorm:"column:email;size:255;not null;uniqueIndex"`
	Phone       string          `db:"phone" gorm:"column:phone;size:50"`
	Position    string          `db:"position" gorm:"column:position;size:120"`
	Department  string          `db:"department" gorm:"column:department;size:120"`
	Salary      decimal.Decimal `db:"salary" gorm:"column:salary;type:numeric(12,2);not null"`
	HiredAt     time.Time       `db:"hired_at" gorm:"column:hired_at;not null"`
	IsActive    bool            `db:"is_active" gorm:"column:is_active;not null"`
	AuditFields `gorm:"embedded"`
}

// TableName pins the gorm table name.
func (Employee) TableName() string {
	return "employees"
}
