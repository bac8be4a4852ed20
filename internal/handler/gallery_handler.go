package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sportshub/internal/auth"
	"sportshub/internal/model"
	"sportshub/internal/service"
)

// allowedImageExts are the upload types the gallery accepts.
var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// GalleryHandler handles gallery endpoints, including the image upload.
type GalleryHandler struct {
	galleryService service.GalleryService
	uploadDir      string
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(galleryService service.GalleryService, uploadDir string) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService, uploadDir: uploadDir}
}

// List godoc
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Success 200 {array} model.GalleryImage
// @Router /gallery [get]
func (h *GalleryHandler) List(c echo.Context) error {
	images, err := h.galleryService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, images)
}

// Upload godoc
// @Summary Upload a gallery image
// @Tags gallery
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param image formData file true "Image file (jpeg, jpg, png or gif)"
// @Success 201 {object} model.GalleryImage
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/gallery [post]
func (h *GalleryHandler) Upload(c echo.Context) error {
	title := c.FormValue("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no image file uploaded")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return echo.NewHTTPError(http.StatusBadRequest, "images only (jpeg, jpg, png, gif)")
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	filename := uuid.New().String() + ext
	dstPath := filepath.Join(h.uploadDir, filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write upload file: %w", err)
	}

	image := &model.GalleryImage{
		Title:       title,
		Description: c.FormValue("description"),
		ImageURL:    "/uploads/" + filename,
	}
	if claims, err := auth.ClaimsFromContext(c); err == nil {
		image.UploadedBy = claims.UserID
	}

	if err := h.galleryService.Create(c.Request().Context(), image); err != nil {
		os.Remove(dstPath)
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, image)
}

// Delete godoc
// @Summary Delete a gallery image
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery image ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid gallery image id")
	}

	image, err := h.galleryService.Delete(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	// Remove the file from disk; the record is already gone, so a failure
	// here only leaves an orphaned file behind.
	filename := strings.TrimPrefix(image.ImageURL, "/uploads/")
	if filename != "" && filename != image.ImageURL {
		if err := os.Remove(filepath.Join(h.uploadDir, filename)); err != nil && !os.IsNotExist(err) {
			c.Logger().Warnf("remove gallery file %s: %v", filename, err)
		}
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "gallery image deleted successfully"})
}
