package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medilink/backend/internal/model"
	"github.com/medilink/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Admin login
// @Description Accepts a username or email as identifier. Returns a bearer access token.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Identifier and password"
// @Success 200 {object} model.LoginResult
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 429 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest("invalid request body"))
		return
	}

	identifier := strings.TrimSpace(req.LoginName())
	if identifier == "" || req.Password == "" {
		writeError(c, badRequest("identifier and password are required"))
		return
	}

	result, err := h.svc.IssueToken(c.Request.Context(), identifier, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Logout godoc
// @Summary Logout
// @Description Tokens are stateless; the client discards its copy.
// @Tags admin
// @Produce json
// @Success 200 {object} model.AuthLogoutResponse
// @Router /api/v1/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, model.AuthLogoutResponse{Status: "logged_out"})
}

// Profile godoc
// @Summary Get current admin
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Admin
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/admin/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	admin := GetAuthAdmin(c)
	if admin == nil {
		writeError(c, service.ErrMissingToken)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// UpdateProfile godoc
// @Summary Update current admin profile
// @Description Only provided fields change. Username and email must stay unique.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.Admin
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/admin/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	admin := GetAuthAdmin(c)
	if admin == nil {
		writeError(c, service.ErrMissingToken)
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest("invalid request body"))
		return
	}

	updated, err := h.svc.UpdateProfile(c.Request.Context(), admin, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ChangePassword godoc
// @Summary Change current admin password
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/admin/change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	admin := GetAuthAdmin(c)
	if admin == nil {
		writeError(c, service.ErrMissingToken)
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest("invalid request body"))
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), admin, req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Status: "ok", Message: "password changed"})
}
