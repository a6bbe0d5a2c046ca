package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/apperrors"
	"github.com/SscSPs/employee_attendance_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// Schema declares how one record type is built from payloads, checked and ordered.
// T is the record, C the full payload (create/replace) and P the partial payload.
type Schema[T domain.Record, C any, P any] struct {
	// Name identifies the collection in logs, metrics and error messages.
	Name string

	// Build creates a new record from a validated full payload.
	Build func(id string, req C, audit domain.AuditFields) (T, error)

	// Replace overwrites every writable field of existing from a validated full payload.
	Replace func(existing T, req C, audit domain.AuditFields) (T, error)

	// Patch applies the fields present in a validated partial payload to existing.
	Patch func(existing T, req P, audit domain.AuditFields) (T, error)

	// Check enforces record-level constraints that span several fields. Optional.
	Check func(record T) []apperrors.FieldError

	// Compare orders List results. Nil keeps storage order.
	Compare func(a, b T) int
}

var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so clients can map errors back to their payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validatePayload checks req against its struct tags and converts failures into
// an *apperrors.ValidationError listing every offending field.
func validatePayload(req any) error {
	err := payloadValidator.Struct(req)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return fmt.Errorf("failed to validate payload: %w", err)
	}

	fields := make([]apperrors.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return apperrors.NewValidationError(fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "uuid":
		return "Must be a valid UUID."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "datetime":
		return "Date has wrong format. Use YYYY-MM-DD."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}

// parseDate parses a calendar date in domain.DateLayout, reporting failures against field.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(apperrors.FieldError{
			Field:   field,
			Message: "Date has wrong format. Use YYYY-MM-DD.",
		})
	}
	return t.UTC(), nil
}
