package dto

import (
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AttendanceRequest defines the full set of attendance fields accepted on create and replace.
type AttendanceRequest struct {
	EmployeeID string     `json:"employeeID" validate:"required,uuid"`
	Date       string     `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-04"`
	Status     string     `json:"status" validate:"required,oneof=PRESENT ABSENT LATE ON_LEAVE" enums:"PRESENT,ABSENT,LATE,ON_LEAVE"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	Notes      string     `json:"notes" validate:"max=500"`
}

// PatchAttendanceRequest defines a partial attendance update.
type PatchAttendanceRequest struct {
	EmployeeID *string    `json:"employeeID" validate:"omitnil,required,uuid"`
	Date       *string    `json:"date" validate:"omitnil,required,datetime=2006-01-02"`
	Status     *string    `json:"status" validate:"omitnil,required,oneof=PRESENT ABSENT LATE ON_LEAVE"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	Notes      *string    `json:"notes" validate:"omitnil,max=500"`
}

// AttendanceResponse defines the data returned for an attendance record.
type AttendanceResponse struct {
	AttendanceID  string                  `json:"attendanceID"`
	EmployeeID    string                  `json:"employeeID"`
	Date          string                  `json:"date"`
	Status        domain.AttendanceStatus `json:"status"`
	CheckIn       *time.Time              `json:"checkIn"`
	CheckOut      *time.Time              `json:"checkOut"`
	WorkedHours   *decimal.Decimal        `json:"workedHours" swaggertype:"string"`
	Notes         string                  `json:"notes"`
	CreatedAt     time.Time               `json:"createdAt"`
	CreatedBy     string                  `json:"createdBy"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy string                  `json:"lastUpdatedBy"`
}

// ListAttendanceResponse wraps the list of attendance records.
type ListAttendanceResponse struct {
	Attendance []AttendanceResponse `json:"attendance"`
}

// ToAttendanceResponse converts a domain.Attendance to AttendanceResponse DTO
func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		AttendanceID:  a.AttendanceID,
		EmployeeID:    a.EmployeeID,
		Date:          a.Date.Format(domain.DateLayout),
		Status:        a.Status,
		CheckIn:       a.CheckIn,
		CheckOut:      a.CheckOut,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
	if hours, ok := a.WorkedHours(); ok {
		resp.WorkedHours = &hours
	}
	return resp
}

// ToListAttendanceResponse converts a slice of domain.Attendance to ListAttendanceResponse
func ToListAttendanceResponse(records []domain.Attendance) ListAttendanceResponse {
	res := make([]AttendanceResponse, len(records))
	for i := range records {
		res[i] = ToAttendanceResponse(&records[i])
	}
	return ListAttendanceResponse{Attendance: res}
}
