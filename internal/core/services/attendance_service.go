package services

import (
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/apperrors"
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_attendance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/employee_attendance_app/internal/core/ports/services"
	"github.com/SscSPs/employee_attendance_app/internal/dto"
)

// AttendanceSchema describes how attendance records are built and checked.
// Attendance has no declared ordering; List keeps storage order.
func AttendanceSchema() Schema[domain.Attendance, dto.AttendanceRequest, dto.PatchAttendanceRequest] {
	return Schema[domain.Attendance, dto.AttendanceRequest, dto.PatchAttendanceRequest]{
		Name: "attendance",
		Build: func(id string, req dto.AttendanceRequest, audit domain.AuditFields) (domain.Attendance, error) {
			return replaceAttendance(domain.Attendance{AttendanceID: id, AuditFields: audit}, req)
		},
		Replace: func(existing domain.Attendance, req dto.AttendanceRequest, audit domain.AuditFields) (domain.Attendance, error) {
			existing.AuditFields = audit
			return replaceAttendance(existing, req)
		},
		Patch: patchAttendance,
		Check: checkAttendance,
	}
}

// NewAttendanceService creates the attendance resource collection.
func NewAttendanceService(repo portsrepo.AttendanceRepositoryFacade, options ...CollectionOption) portssvc.AttendanceSvcFacade {
	return NewCollectionService(repo, AttendanceSchema(), options...)
}

func replaceAttendance(a domain.Attendance, req dto.AttendanceRequest) (domain.Attendance, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return domain.Attendance{}, err
	}

	a.EmployeeID = req.EmployeeID
	a.Date = date
	a.Status = domain.AttendanceStatus(req.Status)
	a.CheckIn = normalizeTimestamp(req.CheckIn)
	a.CheckOut = normalizeTimestamp(req.CheckOut)
	a.Notes = req.Notes
	return a, nil
}

func patchAttendance(a domain.Attendance, req dto.PatchAttendanceRequest, audit domain.AuditFields) (domain.Attendance, error) {
	a.AuditFields = audit
	if req.EmployeeID != nil {
		a.EmployeeID = *req.EmployeeID
	}
	if req.Date != nil {
		date, err := parseDate("date", *req.Date)
		if err != nil {
			return domain.Attendance{}, err
		}
		a.Date = date
	}
	if req.Status != nil {
		a.Status = domain.AttendanceStatus(*req.Status)
	}
	if req.CheckIn != nil {
		a.CheckIn = normalizeTimestamp(req.CheckIn)
	}
	if req.CheckOut != nil {
		a.CheckOut = normalizeTimestamp(req.CheckOut)
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}
	return a, nil
}

func checkAttendance(a domain.Attendance) []apperrors.FieldError {
	if a.CheckOut == nil {
		return nil
	}
	if a.CheckIn == nil {
		return []apperrors.FieldError{{Field: "checkOut", Message: "Check-out requires a check-in time."}}
	}
	if a.CheckOut.Before(*a.CheckIn) {
		return []apperrors.FieldError{{Field: "checkOut", Message: "Check-out must not be earlier than check-in."}}
	}
	return nil
}

// normalizeTimestamp stores client timestamps in UTC at the precision storage keeps.
func normalizeTimestamp(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := t.UTC().Truncate(time.Microsecond)
	return &n
}
