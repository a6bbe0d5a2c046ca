package services

import (
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	"github.com/SscSPs/employee_attendance_app/internal/dto"
)

// EmployeeSvcFacade is the employee resource collection.
type EmployeeSvcFacade = CollectionSvcFacade[domain.Employee, dto.EmployeeRequest, dto.PatchEmployeeRequest]

// AttendanceSvcFacade is the attendance resource collection.
type AttendanceSvcFacade = CollectionSvcFacade[domain.Attendance, dto.AttendanceRequest, dto.PatchAttendanceRequest]
