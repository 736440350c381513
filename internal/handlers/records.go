package handlers

import (
	"errors"
	"fmt"

	"github.com/dimitrije/kisan-api/internal/services"
	"github.com/dimitrije/kisan-api/internal/validation"
	"github.com/dimitrije/kisan-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

// RecordHandler serves list, get, create, update and delete for one record
// kind.
type RecordHandler[E any, C any, U any] struct {
	service RecordService[E, C, U]
	logger  *zap.Logger
}

func NewRecordHandler[E any, C any, U any](service RecordService[E, C, U], logger *zap.Logger) *RecordHandler[E, C, U] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordHandler[E, C, U]{service: service, logger: logger}
}

func (h *RecordHandler[E, C, U]) List(c *drift.Context) {
	params := make(map[string]string)
	for _, name := range h.service.Params() {
		if value := c.QueryParam(name); value != "" {
			params[name] = value
		}
	}

	records, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		h.fail(c, "list", err)
		return
	}

	_ = c.JSON(200, records)
}

func (h *RecordHandler[E, C, U]) Get(c *drift.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}

	_ = c.JSON(200, record)
}

func (h *RecordHandler[E, C, U]) Create(c *drift.Context) {
	var req C
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if err := validation.ValidateStruct(req); err != nil {
		c.BadRequest(err.Error())
		return
	}

	record, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	_ = c.JSON(201, record)
}

func (h *RecordHandler[E, C, U]) Update(c *drift.Context) {
	var req U
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if err := validation.ValidateStruct(req); err != nil {
		c.BadRequest(err.Error())
		return
	}

	record, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, "update", err)
		return
	}

	_ = c.JSON(200, record)
}

func (h *RecordHandler[E, C, U]) Delete(c *drift.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}

	_ = c.JSON(200, dto.MessageResponse{
		Message: fmt.Sprintf("%s deleted successfully", h.service.Title()),
	})
}

func (h *RecordHandler[E, C, U]) fail(c *drift.Context, op string, err error) {
	kind := h.service.Kind()

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.NotFound(fmt.Sprintf("%s not found", h.service.Title()))
	case errors.Is(err, services.ErrInvalidFilter):
		c.BadRequest(err.Error())
	default:
		h.logger.Error("record operation failed",
			zap.String("kind", kind),
			zap.String("operation", op),
			zap.Error(err),
		)
		c.InternalServerError(fmt.Sprintf("failed to %s %s", op, kind))
	}
}
