package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analytics/internal/extract"
	"resume-analytics/internal/shared/server/middleware"
	"resume-analytics/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/resumes", h.list)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	maxBytes := h.Svc.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	// room for multipart framing around the file
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	res, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "No file selected", nil)
		case errors.Is(err, extract.ErrUnsupportedFileType):
			respond.Error(c, http.StatusBadRequest, "unsupported_file_type", "File must be PDF or DOCX", nil)
		case errors.Is(err, ErrTooLarge):
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "File is too large", gin.H{"maxBytes": maxBytes})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Error processing file", nil)
		}
		return
	}
	c.Set("resumeId", res.ID)
	respond.Created(c, toUploadResponse(res))
}

func (h *Handler) list(c *gin.Context) {
	limit, offset := respond.Page(c, 20, 50)
	items, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}
	out := make([]ResumeResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toResponse(r))
	}
	respond.OK(c, out)
}
