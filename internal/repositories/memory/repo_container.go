package memory

import (
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_attendance_app/internal/core/ports/repositories"
)

// NewRepositoryProvider returns empty in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo: NewStore(UniqueKey[domain.Employee]{
			Name: "email",
			Key:  func(e domain.Employee) string { return e.Email },
		}),
		AttendanceRepo: NewStore[domain.Attendance](),
	}
}
