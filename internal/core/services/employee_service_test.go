package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/apperrors"
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portssvc "github.com/SscSPs/employee_attendance_app/internal/core/ports/services"
	"github.com/SscSPs/employee_attendance_app/internal/core/services"
	"github.com/SscSPs/employee_attendance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRecordRepository[domain.Employee]
	service  portssvc.EmployeeSvcFacade
	now      time.Time
	nextID   string
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecordRepository[domain.Employee])
	suite.now = time.Date(2024, 5, 1, 9, 30, 0, 123456789, time.FixedZone("CEST", 2*60*60))
	suite.nextID = uuid.NewString()
	suite.service = services.NewEmployeeService(
		suite.mockRepo,
		services.WithClock(func() time.Time { return suite.now }),
		services.WithIDGenerator(func() string { return suite.nextID }),
	)
}

func validEmployeeRequest() dto.EmployeeRequest {
	return dto.EmployeeRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      " Ada.Lovelace@Example.com ",
		Position:   "Engineer",
		Department: "R&D",
		Salary:     decimal.RequireFromString("52000.50"),
		HiredAt:    "2024-01-15",
	}
}

func existingEmployee(id string) *domain.Employee {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Employee{
		EmployeeID:  id,
		FirstName:   "Grace",
		LastName:    "Hopper",
		Email:       "grace@example.com",
		Phone:       "555-0100",
		Position:    "Admiral",
		Department:  "Navy",
		Salary:      decimal.NewFromInt(1000),
		HiredAt:     time.Date(2020, 2, 3, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
		AuditFields: domain.NewAuditFields(created, "creator"),
	}
}

// --- Test Cases ---

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	req := validEmployeeRequest()
	wantNow := suite.now.UTC().Truncate(time.Microsecond)

	suite.mockRepo.On("Save", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.EmployeeID == suite.nextID && e.Email == "ada.lovelace@example.com" && e.CreatedBy == actorID && e.CreatedAt.Equal(wantNow)
	})).Return(nil).Once()

	employee, err := suite.service.Create(ctx, req, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(employee)
	suite.Equal(suite.nextID, employee.EmployeeID)
	suite.Equal("Ada", employee.FirstName)
	suite.Equal("ada.lovelace@example.com", employee.Email)
	suite.True(employee.Salary.Equal(req.Salary))
	suite.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), employee.HiredAt)
	suite.True(employee.IsActive, "isActive defaults to true")
	suite.Equal(wantNow, employee.CreatedAt)
	suite.Equal(time.UTC, employee.CreatedAt.Location())
	suite.Equal(employee.CreatedAt, employee.LastUpdatedAt)
	suite.Equal(actorID, employee.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_AnonymousActor() {
	ctx := context.Background()
	suite.mockRepo.On("Save", ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Once()

	employee, err := suite.service.Create(ctx, validEmployeeRequest(), "")

	suite.Require().NoError(err)
	suite.Equal(domain.AnonymousActor, employee.CreatedBy)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_MissingRequiredFields() {
	ctx := context.Background()
	req := validEmployeeRequest()
	req.FirstName = ""
	req.Email = "not-an-email"
	req.HiredAt = ""

	employee, err := suite.service.Create(ctx, req, "actor")

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	fields := vErr.FieldMap()
	suite.Contains(fields, "firstName")
	suite.Contains(fields, "email")
	suite.Contains(fields, "hiredAt")
	suite.NotContains(fields, "lastName")
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_BadDateAndNegativeSalary() {
	ctx := context.Background()

	req := validEmployeeRequest()
	req.HiredAt = "15/01/2024"
	_, err := suite.service.Create(ctx, req, "actor")
	suite.ErrorIs(err, apperrors.ErrValidation)

	req = validEmployeeRequest()
	req.Salary = decimal.NewFromInt(-1)
	_, err = suite.service.Create(ctx, req, "actor")
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.FieldMap(), "salary")

	req = validEmployeeRequest()
	req.LastName = "   "
	_, err = suite.service.Create(ctx, req, "actor")
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.FieldMap(), "lastName")

	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_SalaryOutsideColumnPrecision() {
	ctx := context.Background()

	cases := map[string]string{
		"1.234":        "Ensure that there are no more than 2 decimal places.",
		"10000000000":  "Ensure that there are no more than 12 digits in total.",
		"123456789012": "Ensure that there are no more than 12 digits in total.",
	}
	for salary, message := range cases {
		req := validEmployeeRequest()
		req.Salary = decimal.RequireFromString(salary)

		employee, err := suite.service.Create(ctx, req, "actor")

		suite.Nil(employee, salary)
		var vErr *apperrors.ValidationError
		suite.Require().ErrorAs(err, &vErr, salary)
		suite.Equal(map[string]string{"salary": message}, vErr.FieldMap(), salary)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_SalaryAtColumnLimits() {
	ctx := context.Background()
	suite.mockRepo.On("Save", ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Twice()

	for _, salary := range []string{"9999999999.99", "1.230"} {
		req := validEmployeeRequest()
		req.Salary = decimal.RequireFromString(salary)

		employee, err := suite.service.Create(ctx, req, "actor")

		suite.Require().NoError(err, salary)
		suite.True(employee.Salary.Equal(req.Salary), salary)
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestPartialUpdate_SalaryPrecisionCheckedOnMergedRecord() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockRepo.On("FindByID", ctx, id).Return(existingEmployee(id), nil).Once()

	salary := decimal.RequireFromString("0.001")
	_, err := suite.service.PartialUpdate(ctx, id, dto.PatchEmployeeRequest{Salary: &salary}, "actor")

	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.FieldMap(), "salary")
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Duplicate() {
	ctx := context.Background()
	suite.mockRepo.On("Save", ctx, mock.AnythingOfType("domain.Employee")).Return(apperrors.ErrDuplicate).Once()

	employee, err := suite.service.Create(ctx, validEmployeeRequest(), "actor")

	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("Save", ctx, mock.AnythingOfType("domain.Employee")).Return(assert.AnError).Once()

	employee, err := suite.service.Create(ctx, validEmployeeRequest(), "actor")

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestGetByID_Success() {
	ctx := context.Background()
	id := uuid.NewString()
	expected := existingEmployee(id)
	suite.mockRepo.On("FindByID", ctx, id).Return(expected, nil).Once()

	employee, err := suite.service.GetByID(ctx, id)

	suite.Require().NoError(err)
	suite.Equal(expected, employee)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockRepo.On("FindByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	employee, err := suite.service.GetByID(ctx, id)

	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestMalformedID_IsNotFound() {
	ctx := context.Background()

	_, err := suite.service.GetByID(ctx, "42")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.Replace(ctx, "42", validEmployeeRequest(), "actor")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.PartialUpdate(ctx, "42", dto.PatchEmployeeRequest{}, "actor")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	err = suite.service.Delete(ctx, "42")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "FindByID", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestList_NewestFirst() {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	oldest := domain.Employee{EmployeeID: "a", AuditFields: domain.NewAuditFields(base, "x")}
	middle := domain.Employee{EmployeeID: "b", AuditFields: domain.NewAuditFields(base.Add(time.Hour), "x")}
	newest := domain.Employee{EmployeeID: "c", AuditFields: domain.NewAuditFields(base.Add(2*time.Hour), "x")}
	suite.mockRepo.On("FindAll", ctx).Return([]domain.Employee{oldest, newest, middle}, nil).Once()

	employees, err := suite.service.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(employees, 3)
	suite.Equal([]string{"c", "b", "a"}, []string{employees[0].EmployeeID, employees[1].EmployeeID, employees[2].EmployeeID})
}

func (suite *EmployeeServiceTestSuite) TestList_EmptyAndError() {
	ctx := context.Background()
	suite.mockRepo.On("FindAll", ctx).Return(nil, nil).Once()

	employees, err := suite.service.List(ctx)
	suite.Require().NoError(err)
	suite.NotNil(employees)
	suite.Empty(employees)

	storageErr := apperrors.NewStorageError("boom", assert.AnError)
	suite.mockRepo.On("FindAll", ctx).Return(nil, storageErr).Once()

	employees, err = suite.service.List(ctx)
	suite.Nil(employees)
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *EmployeeServiceTestSuite) TestReplace_FullOverwrite() {
	ctx := context.Background()
	id := uuid.NewString()
	existing := existingEmployee(id)
	suite.mockRepo.On("FindByID", ctx, id).Return(existing, nil).Once()
	suite.mockRepo.On("Update", ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Once()

	req := dto.EmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		HiredAt:   "2024-01-15",
		IsActive:  ptr(false),
	}
	employee, err := suite.service.Replace(ctx, id, req, "editor")

	suite.Require().NoError(err)
	suite.Equal(id, employee.EmployeeID)
	suite.Equal("Ada", employee.FirstName)
	suite.Empty(employee.Phone, "omitted optional fields are cleared")
	suite.Empty(employee.Position)
	suite.Empty(employee.Department)
	suite.True(employee.Salary.IsZero())
	suite.False(employee.IsActive)
	suite.Equal(existing.CreatedAt, employee.CreatedAt)
	suite.Equal("creator", employee.CreatedBy)
	suite.Equal("editor", employee.LastUpdatedBy)
	suite.Equal(suite.now.UTC().Truncate(time.Microsecond), employee.LastUpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestReplace_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockRepo.On("FindByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	employee, err := suite.service.Replace(ctx, id, validEmployeeRequest(), "editor")

	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestReplace_InvalidPayload() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockRepo.On("FindByID", ctx, id).Return(existingEmployee(id), nil).Once()

	req := validEmployeeRequest()
	req.Email = ""
	_, err := suite.service.Replace(ctx, id, req, "editor")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestPartialUpdate_OnlyGivenField() {
	ctx := context.Background()
	id := uuid.NewString()
	existing := existingEmployee(id)
	suite.mockRepo.On("FindByID", ctx, id).Return(existing, nil).Once()
	suite.mockRepo.On("Update", ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Once()

	employee, err := suite.service.PartialUpdate(ctx, id, dto.PatchEmployeeRequest{Position: ptr("Rear Admiral")}, "editor")

	suite.Require().NoError(err)
	suite.Equal("Rear Admiral", employee.Position)
	suite.Equal(existing.FirstName, employee.FirstName)
	suite.Equal(existing.LastName, employee.LastName)
	suite.Equal(existing.Email, employee.Email)
	suite.Equal(existing.Phone, employee.Phone)
	suite.Equal(existing.Department, employee.Department)
	suite.True(existing.Salary.Equal(employee.Salary))
	suite.Equal(existing.HiredAt, employee.HiredAt)
	suite.Equal(existing.IsActive, employee.IsActive)
	suite.Equal("editor", employee.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestPartialUpdate_BlankRequiredField() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockRepo.On("FindByID", ctx, id).Return(existingEmployee(id), nil).Once()

	_, err := suite.service.PartialUpdate(ctx, id, dto.PatchEmployeeRequest{FirstName: ptr("")}, "editor")

	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.FieldMap(), "firstName")
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestDelete() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockRepo.On("Delete", ctx, id).Return(nil).Once()
	suite.mockRepo.On("Delete", ctx, id).Return(apperrors.ErrNotFound).Once()

	suite.Require().NoError(suite.service.Delete(ctx, id))
	suite.ErrorIs(suite.service.Delete(ctx, id), apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
