package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"dacosta-backend/internal/domains/liveset"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/internal/shared/response"
)

type LiveSetHandler struct {
	service liveset.Service
}

func NewLiveSetHandler(svc liveset.Service) *LiveSetHandler {
	return &LiveSetHandler{
		service: svc,
	}
}

func respondLiveSetError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationError(c, verrs)
		return
	}
	response.ErrorResponse(c, liveset.ToHTTPStatus(err), "LIVE_SET_ERROR", err.Error())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /admin/live-sets
// ════════════════════════════════════════════════════════════════

func (h *LiveSetHandler) Create(c *gin.Context) {
	var req liveset.CreateLiveSetRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondLiveSetError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Live set created successfully", created)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /admin/live-sets/:id
// ════════════════════════════════════════════════════════════════

func (h *LiveSetHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	s, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondLiveSetError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get live set successfully", s)
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /admin/live-sets
// ════════════════════════════════════════════════════════════════

func (h *LiveSetHandler) List(c *gin.Context) {
	var p listing.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	var f liveset.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sets, meta, err := h.service.List(c.Request.Context(), p, f)
	if err != nil {
		respondLiveSetError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Get live sets successfully", sets, meta)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /admin/live-sets/:id
// ════════════════════════════════════════════════════════════════

func (h *LiveSetHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req liveset.UpdateLiveSetRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondLiveSetError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Live set updated successfully", updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /admin/live-sets/:id
// ════════════════════════════════════════════════════════════════

func (h *LiveSetHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var p listing.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	var f liveset.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sets, meta, err := h.service.DeleteFromList(c.Request.Context(), id, p, f)
	if err != nil {
		respondLiveSetError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Live set deleted successfully", sets, meta)
}
