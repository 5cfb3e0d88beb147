package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"dacosta-backend/internal/domains/track"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/internal/shared/response"
)

type TrackHandler struct {
	service track.Service
}

func NewTrackHandler(svc track.Service) *TrackHandler {
	return &TrackHandler{
		service: svc,
	}
}

func respondTrackError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationError(c, verrs)
		return
	}
	response.ErrorResponse(c, track.ToHTTPStatus(err), "TRACK_ERROR", err.Error())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /admin/tracks
// ════════════════════════════════════════════════════════════════

func (h *TrackHandler) Create(c *gin.Context) {
	var req track.CreateTrackRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondTrackError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Track created successfully", created)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /admin/tracks/:id
// ════════════════════════════════════════════════════════════════

func (h *TrackHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondTrackError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get track successfully", t)
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /admin/tracks
// ════════════════════════════════════════════════════════════════

func (h *TrackHandler) List(c *gin.Context) {
	var p listing.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	var f track.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tracks, meta, err := h.service.List(c.Request.Context(), p, f)
	if err != nil {
		respondTrackError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Get tracks successfully", tracks, meta)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /admin/tracks/:id
// ════════════════════════════════════════════════════════════════

func (h *TrackHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req track.UpdateTrackRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondTrackError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Track updated successfully", updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /admin/tracks/:id
// ════════════════════════════════════════════════════════════════

func (h *TrackHandler) Delete(c *gin.Context) {
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
	var f track.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tracks, meta, err := h.service.DeleteFromList(c.Request.Context(), id, p, f)
	if err != nil {
		respondTrackError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Track deleted successfully", tracks, meta)
}
