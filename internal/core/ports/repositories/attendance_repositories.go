package repositories

import "github.com/SscSPs/employee_attendance_app/internal/core/domain"

// AttendanceRepositoryFacade provides persistence for attendance records.
type AttendanceRepositoryFacade = RecordRepositoryFacade[domain.Attendance]
