package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
)

// UploadHandler stores profile images under a local upload directory.
type UploadHandler struct {
	dir      string
	maxBytes int64
	allowed  map[string]struct{}
}

func NewUploadHandler(dir string, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		dir:      dir,
		maxBytes: maxBytes,
		allowed: map[string]struct{}{
			"image/jpeg": {},
			"image/jpg":  {},
			"image/png":  {},
			"image/gif":  {},
		},
	}
}

type uploadResponse struct {
	FileURL  string `json:"file_url"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

// ProfileImage handles POST /v1/upload/profile-image.
//
// @Summary      Upload a profile image
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file (JPEG, PNG, or GIF, max 4MB)"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/upload/profile-image [post]
func (h *UploadHandler) ProfileImage(c echo.Context) error {
	account, err := principal(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}

	if fileHeader.Size > h.maxBytes {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file size exceeds 4MB limit"})
	}
	if _, ok := h.allowed[fileHeader.Header.Get("Content-Type")]; !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "only image files (JPEG, PNG, GIF) are allowed"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return err
	}

	filename := fmt.Sprintf("%d_%d%s", account.ID, time.Now().Unix(), filepath.Ext(fileHeader.Filename))
	dst, err := os.Create(filepath.Join(h.dir, filename))
	if err != nil {
		return err
	}
	defer dst.Close()

	// Size was validated from the multipart header; LimitReader backstops a
	// lying Content-Length.
	if _, err := io.Copy(dst, io.LimitReader(src, h.maxBytes)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, uploadResponse{
		FileURL:  "/" + filepath.ToSlash(filepath.Join(h.dir, filename)),
		Filename: filename,
		Message:  "File uploaded successfully",
	})
}
