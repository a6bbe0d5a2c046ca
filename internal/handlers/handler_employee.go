package handlers

import (
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portssvc "github.com/SscSPs/employee_attendance_app/internal/core/ports/services"
	"github.com/SscSPs/employee_attendance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	*collectionHandler[domain.Employee, dto.EmployeeRequest, dto.PatchEmployeeRequest]
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(svc portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{&collectionHandler[domain.Employee, dto.EmployeeRequest, dto.PatchEmployeeRequest]{
		label:      "Employee",
		idParam:    "employeeID",
		svc:        svc,
		toResponse: func(e *domain.Employee) any { return dto.ToEmployeeResponse(e) },
		toList:     func(es []domain.Employee) any { return dto.ToListEmployeesResponse(es) },
	}}
}

// registerEmployeeRoutes registers all employee-related routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, svc portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(svc)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.GET("/:employeeID", h.getEmployee)
		employees.PUT("/:employeeID", h.replaceEmployee)
		employees.PATCH("/:employeeID", h.updateEmployee)
		employees.DELETE("/:employeeID", h.deleteEmployee)
	}
}

// listEmployees godoc
// @Summary List employees
// @Description Returns every employee, newest first
// @Tags employees
// @Produce  json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 500 {object} ErrorResponse "Failed to list employees"
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) { h.list(c) }

// createEmployee godoc
// @Summary Create an employee
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.EmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) { h.create(c) }

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) { h.get(c) }

// replaceEmployee godoc
// @Summary Replace an employee
// @Description Overwrites every field; omitted optional fields are cleared
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   employee body dto.EmployeeRequest true "Employee details"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /employees/{employeeID} [put]
func (h *employeeHandler) replaceEmployee(c *gin.Context) { h.replace(c) }

// updateEmployee godoc
// @Summary Partially update an employee
// @Description Changes only the supplied fields
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   employee body dto.PatchEmployeeRequest true "Fields to change"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /employees/{employeeID} [patch]
func (h *employeeHandler) updateEmployee(c *gin.Context) { h.partialUpdate(c) }

// deleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Param   employeeID path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{employeeID} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) { h.remove(c) }
