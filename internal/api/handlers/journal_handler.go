package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakhaanw/mindhaven/internal/services"
	"github.com/rakhaanw/mindhaven/internal/utils"
)

type JournalHandler struct {
	svc services.JournalService
}

func NewJournalHandler(svc services.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

type CreateEntryRequest struct {
	Content string `json:"content"`
}

// List returns the caller's entries, newest first.
func (h *JournalHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entries, err := h.svc.ListEntries(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *JournalHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JournalHandler.Create", "invalid request body", err))
		return
	}

	entry, err := h.svc.CreateEntry(c.Request.Context(), userID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *JournalHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := h.svc.DeleteEntry(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
