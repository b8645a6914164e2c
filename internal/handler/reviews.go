package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medilink/backend/internal/model"
	"github.com/medilink/backend/internal/service"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// List godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Matches comment, user or medicine name"
// @Param status query string false "pending, approved or rejected"
// @Param medicine_id query int false "Medicine ID"
// @Success 200 {object} model.ListResponse[model.Review]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	var params model.ReviewListParams
	if !bindQuery(c, &params) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} model.Review
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	review, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// SetStatus godoc
// @Summary Moderate review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body model.UpdateStatusRequest true "pending, approved or rejected"
// @Success 200 {object} model.Review
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/reviews/{id}/status [patch]
func (h *ReviewHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.svc.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// Delete godoc
// @Summary Delete review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}
