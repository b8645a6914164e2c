package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medilink/backend/internal/model"
	"github.com/medilink/backend/internal/service"
)

// ChatObserver counts replies by source.
type ChatObserver interface {
	ObserveChat(source string)
}

type ChatHandler struct {
	svc      *service.ChatService
	observer ChatObserver
}

// NewChatHandler builds the chat handler. observer may be nil.
func NewChatHandler(svc *service.ChatService, observer ChatObserver) *ChatHandler {
	return &ChatHandler{svc: svc, observer: observer}
}

// Chat godoc
// @Summary Health assistant chat
// @Description Answers from the LLM when available, otherwise from a local keyword table.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "Message and optional history"
// @Success 200 {object} model.ChatResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 429 {object} model.ErrorResponse
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest("invalid request body"))
		return
	}

	resp, err := h.svc.Chat(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	if h.observer != nil {
		h.observer.ObserveChat(string(resp.Source))
	}
	c.JSON(http.StatusOK, resp)
}
