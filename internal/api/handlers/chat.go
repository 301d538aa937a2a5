package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"app-builder-backend/internal/logger"
	"app-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles HTTP requests for project conversations
type ChatHandler struct {
	chatService service.ChatServiceInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService service.ChatServiceInterface) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// HistoryResponse wraps a conversation in chronological order
type HistoryResponse struct {
	Messages []service.ChatMessageResponse `json:"messages"`
}

// AcknowledgementEvent carries the model's short reply in the "reply" event
type AcknowledgementEvent struct {
	Content string `json:"content"`
}

// PostMessage handles POST /chat.
//
// A client that accepts text/event-stream gets the stored message as a
// "message" event followed by the model's acknowledgement as a "reply" event,
// or an "error" event when the model is unavailable.
// @Summary Post a user message
// @Tags chat
// @Accept json
// @Produce json,text/event-stream
// @Param message body service.PostMessageRequest true "Message"
// @Success 200 {object} AcknowledgementEvent "Event stream, when requested"
// @Success 201 {object} service.ChatMessageResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /chat [post]
func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	message, err := h.chatService.PostMessage(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if !strings.Contains(c.GetHeader("Accept"), "text/event-stream") {
		c.JSON(http.StatusCreated, message)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("message", message)
	c.Writer.Flush()

	reply, err := h.chatService.Acknowledge(c.Request.Context(), userID, message.ProjectID)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("Chat acknowledgement failed")
		c.SSEvent("error", ErrorResponse{Error: "Acknowledgement unavailable"})
		return
	}
	c.SSEvent("reply", AcknowledgementEvent{Content: reply})
}

// SaveAssistantMessage handles POST /chat/save-assistant
// @Summary Store an assistant reply
// @Tags chat
// @Accept json
// @Produce json
// @Param message body service.SaveAssistantMessageRequest true "Reply"
// @Success 201 {object} service.ChatMessageResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /chat/save-assistant [post]
func (h *ChatHandler) SaveAssistantMessage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.SaveAssistantMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	message, err := h.chatService.SaveAssistantMessage(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// GetHistory handles GET /chat/:projectId/history
// @Summary Get conversation history
// @Tags chat
// @Produce json
// @Param projectId path string true "Project ID"
// @Param limit query int false "Return only the most recent N messages"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /chat/{projectId}/history [get]
func (h *ChatHandler) GetHistory(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	messages, err := h.chatService.GetHistory(c.Request.Context(), userID, c.Param("projectId"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if messages == nil {
		messages = []service.ChatMessageResponse{}
	}

	c.JSON(http.StatusOK, HistoryResponse{Messages: messages})
}
