package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medilink/backend/internal/model"
	"github.com/medilink/backend/internal/service"
)

type SearchHistoryHandler struct {
	svc *service.SearchHistoryService
}

func NewSearchHistoryHandler(svc *service.SearchHistoryService) *SearchHistoryHandler {
	return &SearchHistoryHandler{svc: svc}
}

// List godoc
// @Summary List search history
// @Tags search-history
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Matches query text"
// @Param user_id query int false "User ID"
// @Param search_type query string false "symptom, medicine or general"
// @Success 200 {object} model.ListResponse[model.SearchHistory]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/search-history [get]
func (h *SearchHistoryHandler) List(c *gin.Context) {
	var params model.SearchHistoryListParams
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

type topQueriesParams struct {
	Limit int `form:"limit"`
}

// Top godoc
// @Summary Most frequent search queries
// @Tags search-history
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of queries (default 10, max 50)"
// @Success 200 {array} model.TopQuery
// @Router /api/v1/search-history/top [get]
func (h *SearchHistoryHandler) Top(c *gin.Context) {
	var params topQueriesParams
	if !bindQuery(c, &params) {
		return
	}
	top, err := h.svc.TopQueries(c.Request.Context(), params.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, top)
}

// Delete godoc
// @Summary Delete search history entry
// @Tags search-history
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/search-history/{id} [delete]
func (h *SearchHistoryHandler) Delete(c *gin.Context) {
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

// ClearUser godoc
// @Summary Clear a user's search history
// @Tags search-history
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} model.DeletedResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/search-history/users/{user_id} [delete]
func (h *SearchHistoryHandler) ClearUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	n, err := h.svc.ClearUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.DeletedResponse{Status: "deleted", Deleted: n})
}

// DashboardStats godoc
// @Summary Dashboard counters
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats
// @Router /api/v1/dashboard/stats [get]
func (h *SearchHistoryHandler) DashboardStats(c *gin.Context) {
	stats, err := h.svc.DashboardStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
