package sqlite

import (
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_attendance_app/internal/core/ports/repositories"
	"github.com/SscSPs/employee_attendance_app/internal/models"
	"github.com/SscSPs/employee_attendance_app/internal/utils/mapping"
	"gorm.io/gorm"
)

// NewRepositoryProvider builds gorm repositories over db. The schema is
// auto-migrated on first use.
func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	getDatabase := createGetDatabase(db, &models.Employee{}, &models.Attendance{})

	return portsrepo.RepositoryProvider{
		EmployeeRepo: &recordRepository[domain.Employee, models.Employee]{
			name:        "employee",
			idColumn:    "employee_id",
			toModel:     mapping.ToModelEmployee,
			toDomain:    mapping.ToDomainEmployee,
			getDatabase: getDatabase,
		},
		AttendanceRepo: &recordRepository[domain.Attendance, models.Attendance]{
			name:        "attendance",
			idColumn:    "attendance_id",
			toModel:     mapping.ToModelAttendance,
			toDomain:    mapping.ToDomainAttendance,
			getDatabase: getDatabase,
		},
	}
}

var (
	_ portsrepo.EmployeeRepositoryFacade   = (*recordRepository[domain.Employee, models.Employee])(nil)
	_ portsrepo.AttendanceRepositoryFacade = (*recordRepository[domain.Attendance, models.Attendance])(nil)
)
