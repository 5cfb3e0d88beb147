package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"dacosta-backend/internal/domains/profile"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/internal/shared/middleware"
	"dacosta-backend/internal/shared/response"
)

type ProfileHandler struct {
	service profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{
		service: svc,
	}
}

func respondProfileError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationError(c, verrs)
		return
	}
	response.ErrorResponse(c, profile.ToHTTPStatus(err), "AUTH_ERROR", err.Error())
}

// ════════════════════════════════════════════════════════════════
// AUTH: Register - POST /auth/register
// ════════════════════════════════════════════════════════════════

func (h *ProfileHandler) Register(c *gin.Context) {
	var req profile.RegisterRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully", resp)
}

// ════════════════════════════════════════════════════════════════
// AUTH: Login - POST /auth/login
// ════════════════════════════════════════════════════════════════

func (h *ProfileHandler) Login(c *gin.Context) {
	var req profile.LoginRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in successfully", resp)
}

// ════════════════════════════════════════════════════════════════
// AUTH: Logout - POST /auth/logout
// ════════════════════════════════════════════════════════════════

// Logout is stateless: tokens expire on their own, the client drops its
// copy. The endpoint exists so clients have one call for the whole flow.
func (h *ProfileHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// ════════════════════════════════════════════════════════════════
// AUTH: Refresh - POST /auth/refresh
// ════════════════════════════════════════════════════════════════

func (h *ProfileHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed successfully", resp)
}

// ════════════════════════════════════════════════════════════════
// AUTH: Session - GET /auth/session
// ════════════════════════════════════════════════════════════════

// Session returns the authenticated account, or data: null when the
// request carries no valid token. The client uses this on page load to
// decide whether the admin links render.
func (h *ProfileHandler) Session(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Success(c, http.StatusOK, "No active session", nil)
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Session active", dto)
}

// ════════════════════════════════════════════════════════════════
// AUTH: UpdateProfile - PUT /auth/profile
// ════════════════════════════════════════════════════════════════

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", dto)
}

// ════════════════════════════════════════════════════════════════
// AUTH: ChangePassword - POST /auth/change-password
// ════════════════════════════════════════════════════════════════

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req profile.ChangePasswordRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req); err != nil {
		respondProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}

// ════════════════════════════════════════════════════════════════
// ADMIN: List - GET /admin/profiles
// ════════════════════════════════════════════════════════════════

func (h *ProfileHandler) List(c *gin.Context) {
	var p listing.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profiles, meta, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Get profiles successfully", profiles, meta)
}

// ════════════════════════════════════════════════════════════════
// ADMIN: UpdateRole - PUT /admin/profiles/:id/role
// ════════════════════════════════════════════════════════════════

func (h *ProfileHandler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req profile.UpdateRoleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.service.UpdateRole(c.Request.Context(), id, req)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Role updated successfully", dto)
}
