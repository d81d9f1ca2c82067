// File: handlers/chat.go
package handlers

import (
	"errors"
	"net/http"

	"roomdesk/models"
	"roomdesk/services/conversation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational booking pipeline.
type ChatHandler struct {
	Service conversation.Service
}

// NewChatHandler returns a ChatHandler backed by the given service.
func NewChatHandler(svc conversation.Service) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// StartSession creates a new conversation session for the caller.
func (h *ChatHandler) StartSession(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")

	session, greeting, err := h.Service.StartSession(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to start chat session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.SessionID,
		"state":     session.State,
		"details":   session.Details,
		"message":   greeting,
	})
}

// ProcessMessage runs one slot-filling turn on the session.
func (h *ChatHandler) ProcessMessage(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.ProcessMessage(c.Request.Context(), c.GetString("userID"), sessionID, input.Text)
	if err != nil {
		switch {
		case errors.Is(err, conversation.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, conversation.ErrSessionSubmitted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to process chat message", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateDetails replaces the accumulated record with the user's edits.
func (h *ChatHandler) UpdateDetails(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	var input struct {
		Details models.BookingRecord `json:"details"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.UpdateDetails(c.Request.Context(), c.GetString("userID"), sessionID, input.Details)
	if err != nil {
		switch {
		case errors.Is(err, conversation.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, conversation.ErrSessionSubmitted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update booking details", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update details"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.SessionID,
		"state":     session.State,
		"details":   session.Details,
	})
}

// Submit gates the reviewed record through validity assessment and, on a
// pass verdict, persists it.
func (h *ChatHandler) Submit(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	result, err := h.Service.Submit(c.Request.Context(), c.GetString("userID"), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, conversation.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, conversation.ErrSessionSubmitted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to submit booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit booking"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ResetSession discards the session's accumulated state.
func (h *ChatHandler) ResetSession(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	if err := h.Service.ResetSession(c.Request.Context(), c.GetString("userID"), sessionID); err != nil {
		if errors.Is(err, conversation.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to reset chat session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "state": models.SessionStateEmpty})
}
