package handlers

import (
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	portssvc "github.com/SscSPs/employee_attendance_app/internal/core/ports/services"
	"github.com/SscSPs/employee_attendance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// attendanceHandler handles HTTP requests related to attendance records.
type attendanceHandler struct {
	*collectionHandler[domain.Attendance, dto.AttendanceRequest, dto.PatchAttendanceRequest]
}

func newAttendanceHandler(svc portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{&collectionHandler[domain.Attendance, dto.AttendanceRequest, dto.PatchAttendanceRequest]{
		label:      "Attendance",
		idParam:    "attendanceID",
		svc:        svc,
		toResponse: func(a *domain.Attendance) any { return dto.ToAttendanceResponse(a) },
		toList:     func(as []domain.Attendance) any { return dto.ToListAttendanceResponse(as) },
	}}
}

func registerAttendanceRoutes(rg *gin.RouterGroup, svc portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(svc)

	attendance := rg.Group("/attendance")
	{
		attendance.GET("", h.listAttendance)
		attendance.POST("", h.createAttendance)
		attendance.GET("/:attendanceID", h.getAttendance)
		attendance.PUT("/:attendanceID", h.replaceAttendance)
		attendance.PATCH("/:attendanceID", h.updateAttendance)
		attendance.DELETE("/:attendanceID", h.deleteAttendance)
	}
}

// listAttendance godoc
// @Summary List attendance records
// @Tags attendance
// @Produce  json
// @Success 200 {object} dto.ListAttendanceResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance [get]
func (h *attendanceHandler) listAttendance(c *gin.Context) { h.list(c) }

// createAttendance godoc
// @Summary Record attendance
// @Tags attendance
// @Accept  json
// @Produce  json
// @Param   attendance body dto.AttendanceRequest true "Attendance details"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /attendance [post]
func (h *attendanceHandler) createAttendance(c *gin.Context) { h.create(c) }

// getAttendance godoc
// @Summary Get an attendance record
// @Tags attendance
// @Produce  json
// @Param   attendanceID path string true "Attendance ID"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 404 {object} ErrorResponse "Attendance not found"
// @Security BearerAuth
// @Router /attendance/{attendanceID} [get]
func (h *attendanceHandler) getAttendance(c *gin.Context) { h.get(c) }

// replaceAttendance godoc
// @Summary Replace an attendance record
// @Tags attendance
// @Accept  json
// @Produce  json
// @Param   attendanceID path string true "Attendance ID"
// @Param   attendance body dto.AttendanceRequest true "Attendance details"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Attendance not found"
// @Security BearerAuth
// @Router /attendance/{attendanceID} [put]
func (h *attendanceHandler) replaceAttendance(c *gin.Context) { h.replace(c) }

// updateAttendance godoc
// @Summary Partially update an attendance record
// @Tags attendance
// @Accept  json
// @Produce  json
// @Param   attendanceID path string true "Attendance ID"
// @Param   attendance body dto.PatchAttendanceRequest true "Fields to change"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Attendance not found"
// @Security BearerAuth
// @Router /attendance/{attendanceID} [patch]
func (h *attendanceHandler) updateAttendance(c *gin.Context) { h.partialUpdate(c) }

// deleteAttendance godoc
// @Summary Delete an attendance record
// @Tags attendance
// @Param   attendanceID path string true "Attendance ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Attendance not found"
// @Security BearerAuth
// @Router /attendance/{attendanceID} [delete]
func (h *attendanceHandler) deleteAttendance(c *gin.Context) { h.remove(c) }
