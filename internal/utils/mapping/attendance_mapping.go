package mapping

import (
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	"github.com/SscSPs/employee_attendance_app/internal/models"
)

// ToModelAttendance converts a domain Attendance to a model Attendance
func ToModelAttendance(d domain.Attendance) models.Attendance {
	return models.Attendance{
		AttendanceID: d.AttendanceID,
		EmployeeID:   d.EmployeeID,
		Date:         d.Date,
		Status:       string(d.Status),
		CheckIn:      d.CheckIn,
		CheckOut:     d.CheckOut,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAttendance converts a model Attendance to a domain Attendance
func ToDomainAttendance(m models.Attendance) domain.Attendance {
	return domain.Attendance{
		AttendanceID: m.AttendanceID,
		EmployeeID:   m.EmployeeID,
		Date:         toDate(m.Date),
		Status:       domain.AttendanceStatus(m.Status),
		CheckIn:      utcPtr(m.CheckIn),
		CheckOut:     utcPtr(m.CheckOut),
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAttendanceSlice converts a slice of model Attendances to a slice of domain Attendances
func ToDomainAttendanceSlice(ms []models.Attendance) []domain.Attendance {
	ds := make([]domain.Attendance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAttendance(m)
	}
	return ds
}

// toDate normalises a stored date to UTC midnight; drivers return DATE columns in varying zones.
func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
