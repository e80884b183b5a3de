package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakhaanw/mindhaven/internal/services"
	"github.com/rakhaanw/mindhaven/internal/utils"
)

type ChatHandler struct {
	svc services.ChatService
}

func NewChatHandler(svc services.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

// GetThread returns the caller's chat thread, creating an empty one on first
// access.
func (h *ChatHandler) GetThread(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	thread, err := h.svc.GetOrCreateThread(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, thread)
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.SendMessage", "invalid request body", err))
		return
	}

	res, err := h.svc.SendMessage(c.Request.Context(), userID, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
