package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"dacosta-backend/internal/domains/artist"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/internal/shared/response"
)

// MaxImportSize caps the uploaded roster workbook at 2 MB.
const MaxImportSize = 2 << 20

type ArtistHandler struct {
	service artist.Service
}

func NewArtistHandler(svc artist.Service) *ArtistHandler {
	return &ArtistHandler{
		service: svc,
	}
}

func respondArtistError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationError(c, verrs)
		return
	}
	response.ErrorResponse(c, artist.ToHTTPStatus(err), "ARTIST_ERROR", err.Error())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /admin/artists
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) Create(c *gin.Context) {
	var req artist.CreateArtistRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondArtistError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Artist created successfully", created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /admin/artists/:id
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondArtistError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get artist successfully", a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GetBySlug - GET /api/v1/artists/:slug (public)
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) GetBySlug(c *gin.Context) {
	detail, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondArtistError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get artist successfully", detail)
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /admin/artists
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) List(c *gin.Context) {
	var p listing.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	artists, meta, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		respondArtistError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Get artists successfully", artists, meta)
}

// ════════════════════════════════════════════════════════════════
// READ: ListPublic - GET /api/v1/artists (public roster)
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) ListPublic(c *gin.Context) {
	roster, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		respondArtistError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get artists successfully", roster)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /admin/artists/:id
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req artist.UpdateArtistRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondArtistError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Artist updated successfully", updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /admin/artists/:id
// ════════════════════════════════════════════════════════════════

// Delete removes the artist and returns the refreshed page the admin
// table was looking at, so the client re-renders without a second call.
func (h *ArtistHandler) Delete(c *gin.Context) {
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

	artists, meta, err := h.service.DeleteFromList(c.Request.Context(), id, p)
	if err != nil {
		respondArtistError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Artist deleted successfully", artists, meta)
}

// ════════════════════════════════════════════════════════════════
// READ: Options - GET /admin/artists/options
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) Options(c *gin.Context) {
	opts, err := h.service.Options(c.Request.Context())
	if err != nil {
		respondArtistError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get artist options successfully", opts)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: Stats - PUT /admin/artists/:id/stats
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) UpdateStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req artist.UpdateStatsRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	stats, err := h.service.UpdateStats(c.Request.Context(), id, req)
	if err != nil {
		respondArtistError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Artist stats updated successfully", stats)
}

// ════════════════════════════════════════════════════════════════
// CREATE: Import - POST /admin/artists/import
// ════════════════════════════════════════════════════════════════

// Import bulk-creates artists from an uploaded .xlsx roster.
func (h *ArtistHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > MaxImportSize {
		response.BadRequest(c, "file exceeds the 2MB limit")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImportSize+1))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	result, err := h.service.ImportWorkbook(c.Request.Context(), data)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Roster import finished", result)
}
