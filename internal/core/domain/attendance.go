package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceStatus describes how an employee was recorded for a day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
	StatusLate    AttendanceStatus = "LATE"
	StatusOnLeave AttendanceStatus = "ON_LEAVE"
)

// Attendance is a single attendance entry for one employee on one date.
type Attendance struct {
	AttendanceID string           `json:"attendanceID"` // Primary Key (UUID)
	EmployeeID   string           `json:"employeeID"`   // Opaque reference, not enforced
	Date         time.Time        `json:"date"`         // Calendar date, UTC midnight
	Status       AttendanceStatus `json:"status"`
	CheckIn      *time.Time       `json:"checkIn,omitempty"`
	CheckOut     *time.Time       `json:"checkOut,omitempty"`
	Notes        string           `json:"notes"`
	AuditFields
}

func (a Attendance) GetID() string                { return a.AttendanceID }
func (a Attendance) GetAuditFields() AuditFields { return a.AuditFields }

// WorkedHours returns the hours between check-in and check-out rounded to two places.
// ok is false unless both timestamps are present.
func (a Attendance) WorkedHours() (hours decimal.Decimal, ok bool) {
	if a.CheckIn == nil || a.CheckOut == nil {
		return decimal.Zero, false
	}
	d := a.CheckOut.Sub(*a.CheckIn)
	return decimal.NewFromFloat(d.Hours()).Round(2), true
}
