package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medilink/backend/internal/model"
	"github.com/medilink/backend/internal/service"
)

type MedicineHandler struct {
	svc *service.MedicineService
}

func NewMedicineHandler(svc *service.MedicineService) *MedicineHandler {
	return &MedicineHandler{svc: svc}
}

// List godoc
// @Summary List medicines
// @Tags medicines
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Matches name, generic name or category"
// @Param category query string false "Exact category (case-insensitive)"
// @Success 200 {object} model.ListResponse[model.Medicine]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/medicines [get]
func (h *MedicineHandler) List(c *gin.Context) {
	var params model.MedicineListParams
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
// @Summary Get medicine
// @Tags medicines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Medicine ID"
// @Success 200 {object} model.Medicine
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/medicines/{id} [get]
func (h *MedicineHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	medicine, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, medicine)
}

// Create godoc
// @Summary Create medicine
// @Tags medicines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.MedicineRequest true "Medicine"
// @Success 201 {object} model.Medicine
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /api/v1/medicines [post]
func (h *MedicineHandler) Create(c *gin.Context) {
	var req model.MedicineRequest
	if !bindJSON(c, &req) {
		return
	}
	medicine, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, medicine)
}

// Update godoc
// @Summary Replace medicine
// @Tags medicines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Medicine ID"
// @Param request body model.MedicineRequest true "Medicine"
// @Success 200 {object} model.Medicine
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /api/v1/medicines/{id} [put]
func (h *MedicineHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.MedicineRequest
	if !bindJSON(c, &req) {
		return
	}
	medicine, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, medicine)
}

// Delete godoc
// @Summary Delete medicine
// @Tags medicines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Medicine ID"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/medicines/{id} [delete]
func (h *MedicineHandler) Delete(c *gin.Context) {
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
