package sqlite

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/apperrors"
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_attendance_app/internal/core/ports/repositories"
	"github.com/SscSPs/employee_attendance_app/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) portsrepo.RepositoryProvider {
	t.Helper()
	db, err := database.NewSQLiteDB("file:"+filepath.Join(t.TempDir(), "test.db"), slog.LevelError)
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseSQLiteDB(db) })
	return NewRepositoryProvider(db)
}

func testEmployee(email string, createdAt time.Time) domain.Employee {
	return domain.Employee{
		EmployeeID:  uuid.NewString(),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       email,
		Salary:      decimal.RequireFromString("1234.50"),
		HiredAt:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
		AuditFields: domain.NewAuditFields(createdAt, "tester"),
	}
}

func TestEmployeeRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestProvider(t).EmployeeRepo
	now := time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC)

	emp := testEmployee("ada@example.com", now)
	require.NoError(t, repo.Save(ctx, emp))

	found, err := repo.FindByID(ctx, emp.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, emp.EmployeeID, found.EmployeeID)
	assert.Equal(t, emp.Email, found.Email)
	assert.True(t, emp.Salary.Equal(found.Salary))
	assert.True(t, emp.HiredAt.Equal(found.HiredAt))
	assert.True(t, emp.CreatedAt.Equal(found.CreatedAt))
	assert.True(t, found.IsActive)

	emp.Position = "Engineer"
	emp.IsActive = false
	emp.AuditFields = emp.AuditFields.Touch(now.Add(time.Hour), "editor")
	require.NoError(t, repo.Update(ctx, emp))

	found, err = repo.FindByID(ctx, emp.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", found.Position)
	assert.False(t, found.IsActive)
	assert.Equal(t, "editor", found.LastUpdatedBy)
	assert.Equal(t, "tester", found.CreatedBy)

	require.NoError(t, repo.Delete(ctx, emp.EmployeeID))
	assert.ErrorIs(t, repo.Delete(ctx, emp.EmployeeID), apperrors.ErrNotFound)
	_, err = repo.FindByID(ctx, emp.EmployeeID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEmployeeRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestProvider(t).EmployeeRepo
	now := time.Now().UTC()

	require.NoError(t, repo.Save(ctx, testEmployee("dup@example.com", now)))
	err := repo.Save(ctx, testEmployee("dup@example.com", now))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestEmployeeRepository_UpdateUnknown(t *testing.T) {
	repo := newTestProvider(t).EmployeeRepo
	err := repo.Update(context.Background(), testEmployee("ghost@example.com", time.Now().UTC()))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAttendanceRepository_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestProvider(t).AttendanceRepo
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	checkOut := base.Add(8 * time.Hour)

	var ids []string
	for i := range 3 {
		rec := domain.Attendance{
			AttendanceID: uuid.NewString(),
			EmployeeID:   uuid.NewString(),
			Date:         time.Date(2024, 3, 4+i, 0, 0, 0, 0, time.UTC),
			Status:       domain.StatusPresent,
			CheckIn:      &base,
			CheckOut:     &checkOut,
			// Later inserts carry earlier timestamps; storage order must win.
			AuditFields: domain.NewAuditFields(base.Add(-time.Duration(i)*time.Hour), "tester"),
		}
		require.NoError(t, repo.Save(ctx, rec))
		ids = append(ids, rec.AttendanceID)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, rec := range all {
		assert.Equal(t, ids[i], rec.AttendanceID)
	}
	require.NotNil(t, all[0].CheckOut)
	assert.True(t, all[0].CheckOut.Equal(checkOut))
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), all[0].Date)
}
