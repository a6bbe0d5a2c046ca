package models

import "time"

// Attendance is the persisted form of domain.Attendance (table "attendances").
type Attendance struct {
	AttendanceID string     `db:"attendance_id" gorm:"column:attendance_id;primaryKey;size:36"`
	EmployeeID   string     `db:"employee_id" gorm:"column:employee_id;size:36;not null;index"`
	Date         time.Time  `db:"attendance_date" gorm:"column:attendance_date;not null"`
	Status       string     `db:"status" gorm:"column:status;size:20;not null"`
	CheckIn      *time.Time `db:"check_in" gorm:"column:check_in"`
	CheckOut     *time.Time `db:"check_out" gorm:"column:check_out"`
	Notes        string     `db:"notes" gorm:"column:notes;size:500"`
	AuditFields  `gorm:"embedded"`
}

// TableName pins the gorm table name.
func (Attendance) TableName() string {
	return "attendances"
}
