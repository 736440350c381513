package handlers

import (
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

type HealthHandler struct {
	store  Pinger
	logger *zap.Logger
}

func NewHealthHandler(store Pinger, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{store: store, logger: logger}
}

func (h *HealthHandler) Check(c *drift.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		_ = c.JSON(503, map[string]string{"status": "unavailable"})
		return
	}

	_ = c.JSON(200, map[string]string{"status": "ok"})
}
