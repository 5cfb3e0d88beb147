package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"dacosta-backend/internal/domains/upload"
	"dacosta-backend/internal/shared/response"
)

// readLimit caps how much of a multipart file is read into memory.
const readLimit = 64 << 20

type UploadHandler struct {
	service upload.Service
}

func NewUploadHandler(svc upload.Service) *UploadHandler {
	return &UploadHandler{
		service: svc,
	}
}

func respondUploadError(c *gin.Context, err error) {
	response.ErrorResponse(c, upload.ToHTTPStatus(err), "UPLOAD_ERROR", err.Error())
}

// allowedFolders keeps object keys inside the buckets layout instead of
// whatever the client typed.
var allowedFolders = map[string]bool{
	"artists":  true,
	"albums":   true,
	"events":   true,
	"tracks":   true,
	"livesets": true,
	"misc":     true,
}

func folderParam(c *gin.Context) string {
	folder := c.PostForm("folder")
	if !allowedFolders[folder] {
		return "misc"
	}
	return folder
}

func readUpload(c *gin.Context) (string, []byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return "", nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, readLimit))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return "", nil, false
	}

	return fileHeader.Filename, data, true
}

// ════════════════════════════════════════════════════════════════
// CREATE: Image - POST /admin/uploads/images
// ════════════════════════════════════════════════════════════════

func (h *UploadHandler) Image(c *gin.Context) {
	filename, data, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := h.service.UploadImage(c.Request.Context(), folderParam(c), filename, data)
	if err != nil {
		respondUploadError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Image uploaded successfully", result)
}

// ════════════════════════════════════════════════════════════════
// CREATE: Audio - POST /admin/uploads/audio
// ════════════════════════════════════════════════════════════════

func (h *UploadHandler) Audio(c *gin.Context) {
	filename, data, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := h.service.UploadAudio(c.Request.Context(), folderParam(c), filename, data)
	if err != nil {
		respondUploadError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Audio uploaded successfully", result)
}
