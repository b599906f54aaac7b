package handler

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/usecase"
	"campuslink/pkg/errors"
	"campuslink/pkg/logger"
	"campuslink/pkg/response"
)

type FileHandler struct {
	uploader    usecase.Uploader
	maxFileSize int64
}

var fileHandler *FileHandler

func SetupFileHandler(uploader usecase.Uploader) {
	fileHandler = &FileHandler{
		uploader:    uploader,
		maxFileSize: 5 * 1024 * 1024,
	}
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

// Upload stores one multipart image and returns its public URL. The upload
// is all-or-nothing: any failure leaves no partial object behind.
func (h *FileHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest("File exceeds the 5MB limit", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}

	url, err := h.uploader.UploadImage(c.Request().Context(), src, file.Header.Get("Content-Type"), folder)
	if err != nil {
		logger.Error("upload failed: %v", err)
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"url": url})
}
