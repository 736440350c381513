package handlers

import (
	"github.com/dimitrije/kisan-api/internal/validation"
	"github.com/dimitrije/kisan-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService ChatServiceInterface
	logger      *zap.Logger
}

func NewChatHandler(chatService ChatServiceInterface, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{chatService: chatService, logger: logger}
}

func (h *ChatHandler) Ask(c *drift.Context) {
	var req dto.ChatRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if err := validation.ValidateStruct(req); err != nil {
		c.BadRequest(err.Error())
		return
	}

	resp, err := h.chatService.Ask(c.Request.Context(), req.Question, req.Language)
	if err != nil {
		h.logger.Error("chat lookup failed", zap.Error(err))
		c.InternalServerError("failed to answer question")
		return
	}

	_ = c.JSON(200, resp)
}
