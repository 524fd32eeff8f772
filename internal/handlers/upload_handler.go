package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PiotrPlachta/JobApp/internal/services"
)

// UploadHandler serves POST /api/upload-file.
type UploadHandler struct {
	Uploads *services.UploadService
}

func NewUploadHandler(uploads *services.UploadService) *UploadHandler {
	return &UploadHandler{Uploads: uploads}
}

// Upload takes a multipart form with "file" and an optional "type"
// (cv or cover_letter, default cv) and answers with the relative path
// to store on the application record.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer src.Close()

	relPath, err := h.Uploads.Save(src, fileHeader.Filename, c.PostForm("type"))
	if err != nil {
		if isUploadValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file_path": relPath,
		"message":   "File uploaded successfully",
	})
}

func isUploadValidationError(err error) bool {
	return errors.Is(err, services.ErrNoFilename) ||
		errors.Is(err, services.ErrBadExtension) ||
		errors.Is(err, services.ErrFileTooLarge) ||
		errors.Is(err, services.ErrBadCategory)
}
