package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"reflect"
	"slices"
	"time"

	"github.com/SscSPs/employee_attendance_app/internal/apperrors"
	portssvc "github.com/SscSPs/employee_attendance_app/internal/core/ports/services"
	"github.com/SscSPs/employee_attendance_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// collectionHandler serves the uniform CRUD contract for one resource collection.
type collectionHandler[T any, C any, P any] struct {
	label      string // singular, capitalised, used in messages
	idParam    string
	svc        portssvc.CollectionSvcFacade[T, C, P]
	toResponse func(*T) any
	toList     func([]T) any
}

func (h *collectionHandler[T, C, P]) list(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.respondError(c, logger, err)
		return
	}

	logger.Info(h.label+" records listed successfully", slog.Int("count", len(records)))
	c.JSON(http.StatusOK, h.toList(records))
}

func (h *collectionHandler[T, C, P]) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req C
	if !h.bind(c, logger, bindPayload(c, &req)) {
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	record, err := h.svc.Create(c.Request.Context(), req, actorID)
	if err != nil {
		h.respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, h.toResponse(record))
}

func (h *collectionHandler[T, C, P]) get(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param(h.idParam)

	record, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, logger.With(slog.String("id", id)), err)
		return
	}

	c.JSON(http.StatusOK, h.toResponse(record))
}

func (h *collectionHandler[T, C, P]) replace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param(h.idParam)

	var req C
	if !h.bind(c, logger, bindPayload(c, &req)) {
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	record, err := h.svc.Replace(c.Request.Context(), id, req, actorID)
	if err != nil {
		h.respondError(c, logger.With(slog.String("id", id)), err)
		return
	}

	c.JSON(http.StatusOK, h.toResponse(record))
}

func (h *collectionHandler[T, C, P]) partialUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param(h.idParam)

	var req P
	if !h.bind(c, logger, bindPayload(c, &req)) {
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	record, err := h.svc.PartialUpdate(c.Request.Context(), id, req, actorID)
	if err != nil {
		h.respondError(c, logger.With(slog.String("id", id)), err)
		return
	}

	c.JSON(http.StatusOK, h.toResponse(record))
}

func (h *collectionHandler[T, C, P]) remove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param(h.idParam)

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, logger.With(slog.String("id", id)), err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *collectionHandler[T, C, P]) bind(c *gin.Context, logger *slog.Logger, err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, apperrors.ErrValidation) {
		h.respondError(c, logger, err)
		return false
	}
	logger.Warn("Failed to bind JSON for "+h.label+" request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
	return false
}

// bindPayload decodes the JSON body into req. When the body is a well-formed object
// whose values do not fit the payload, the result is a ValidationError naming each
// offending field.
func bindPayload[V any](c *gin.Context, req *V) error {
	err := c.ShouldBindBodyWith(req, binding.JSON)
	if err == nil {
		return nil
	}
	body, _ := c.Get(gin.BodyBytesKey)
	raw, _ := body.([]byte)
	if fields := fieldDecodeErrors[V](raw); len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return err
}

// fieldDecodeErrors decodes every top-level member of body on its own and reports
// the members that fail. Bodies that are not JSON objects yield nothing.
func fieldDecodeErrors[V any](body []byte) []apperrors.FieldError {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return nil
	}

	var fields []apperrors.FieldError
	for _, key := range slices.Sorted(maps.Keys(members)) {
		single, err := json.Marshal(map[string]json.RawMessage{key: members[key]})
		if err != nil {
			continue
		}
		var target V
		if err := json.Unmarshal(single, &target); err != nil {
			fields = append(fields, apperrors.FieldError{Field: key, Message: decodeMessage(err)})
		}
	}
	return fields
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	var timeErr *time.ParseError
	switch {
	case errors.As(err, &typeErr):
		return fmt.Sprintf("Expected %s, got %s.", jsonTypeName(typeErr.Type), typeErr.Value)
	case errors.As(err, &timeErr):
		return "Datetime has wrong format. Use RFC 3339, e.g. 2024-03-04T09:00:00Z."
	default:
		return "Invalid value."
	}
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "a different type"
	}
	switch t.Kind() {
	case reflect.Pointer:
		return jsonTypeName(t.Elem())
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

// respondError maps service errors onto HTTP statuses.
func (h *collectionHandler[T, C, P]) respondError(c *gin.Context, logger *slog.Logger, err error) {
	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Fields: vErr.FieldMap()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: h.label + " not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate "+h.label, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: h.label + " already exists"})
	default:
		logger.Error("Failed to process "+h.label+" request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
