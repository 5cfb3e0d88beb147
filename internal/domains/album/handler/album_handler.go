package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"dacosta-backend/internal/domains/album"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/internal/shared/response"
)

type AlbumHandler struct {
	service album.Service
}

func NewAlbumHandler(svc album.Service) *AlbumHandler {
	return &AlbumHandler{
		service: svc,
	}
}

func respondAlbumError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationError(c, verrs)
		return
	}
	response.ErrorResponse(c, album.ToHTTPStatus(err), "ALBUM_ERROR", err.Error())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /admin/albums
// ════════════════════════════════════════════════════════════════

func (h *AlbumHandler) Create(c *gin.Context) {
	var req album.CreateAlbumRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondAlbumError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Album created successfully", created)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /admin/albums/:id
// ════════════════════════════════════════════════════════════════

func (h *AlbumHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondAlbumError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get album successfully", a)
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /admin/albums
// ════════════════════════════════════════════════════════════════

func (h *AlbumHandler) List(c *gin.Context) {
	var p listing.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	var f album.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	albums, meta, err := h.service.List(c.Request.Context(), p, f)
	if err != nil {
		respondAlbumError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Get albums successfully", albums, meta)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /admin/albums/:id
// ════════════════════════════════════════════════════════════════

func (h *AlbumHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req album.UpdateAlbumRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondAlbumError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Album updated successfully", updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /admin/albums/:id
// ════════════════════════════════════════════════════════════════

func (h *AlbumHandler) Delete(c *gin.Context) {
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
	var f album.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	albums, meta, err := h.service.DeleteFromList(c.Request.Context(), id, p, f)
	if err != nil {
		respondAlbumError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Album deleted successfully", albums, meta)
}

// ════════════════════════════════════════════════════════════════
// READ: Options - GET /admin/albums/options
// ════════════════════════════════════════════════════════════════

// Options feeds the album selector in the track form, narrowed by
// ?artist_id= when the form already has an artist picked.
func (h *AlbumHandler) Options(c *gin.Context) {
	var artistID *uuid.UUID
	if raw := c.Query("artist_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid artist_id")
			return
		}
		artistID = &id
	}

	opts, err := h.service.Options(c.Request.Context(), artistID)
	if err != nil {
		respondAlbumError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get album options successfully", opts)
}
