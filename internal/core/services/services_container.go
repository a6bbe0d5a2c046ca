package services

import (
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_attendance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/employee_attendance_app/internal/core/ports/services"
	"github.com/SscSPs/employee_attendance_app/internal/dto"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...CollectionOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Employee:   NewEmployeeService(repos.EmployeeRepo, options...),
		Attendance: NewAttendanceService(repos.AttendanceRepo, options...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.EmployeeSvcFacade   = (*collectionService[domain.Employee, dto.EmployeeRequest, dto.PatchEmployeeRequest])(nil)
	_ portssvc.AttendanceSvcFacade = (*collectionService[domain.Attendance, dto.AttendanceRequest, dto.PatchAttendanceRequest])(nil)
)
