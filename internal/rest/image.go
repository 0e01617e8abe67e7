package rest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/daniilsolovey/cms/internal/cms"
	"github.com/daniilsolovey/cms/internal/metrics"
)

const (
	imageFormField = "image"
	sniffLen       = 512

	// room for multipart boundaries and part headers around the file
	multipartOverhead = 64 << 10
)

var imageExtensions = map[string]string{
	"image/gif":  ".gif",
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// uploadLimit rejects upload bodies larger than the configured image size
// before the multipart form is parsed.
func (h *Handler) uploadLimit() []echo.MiddlewareFunc {
	if h.uploads.MaxSize <= 0 {
		return nil
	}

	return []echo.MiddlewareFunc{
		middleware.BodyLimit(fmt.Sprintf("%dB", h.uploads.MaxSize+multipartOverhead)),
	}
}

// UploadImage handles POST /api/v1/admin/articles/:id/image
// @Summary Upload article image
// @Description Stores a gif, jpeg or png image under a random name and replaces the previous image of the article
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param image formData file true "Image file"
// @Success 200 {object} rest.ImageResponse
// @Failure 400,401,404,413,415,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id}/image [post]
func (h *Handler) UploadImage(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.cms.ByID(ctx, id, cms.ProjectionFull)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if article == nil {
		return h.notFound(c)
	}

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "no file uploaded")
	}

	if h.uploads.MaxSize > 0 && fileHeader.Size > h.uploads.MaxSize {
		return h.handleError(c, nil, http.StatusRequestEntityTooLarge, "file is too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "unable to open uploaded file")
	}
	defer src.Close()

	filename, err := h.saveImage(src)
	if errors.Is(err, errUnsupportedImage) {
		return h.handleError(c, err, http.StatusUnsupportedMediaType, "invalid file type")
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "unable to save file")
	}

	if err := h.cms.SetImageFile(ctx, id, &filename); err != nil {
		h.removeImage(filename)
		metrics.RecordArticleMutation(metrics.OpImage, metrics.StatusFailure)
		if errors.Is(err, cms.ErrArticleNotFound) {
			return h.notFound(c)
		}
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	if article.ImageFile != nil && *article.ImageFile != filename {
		h.removeImage(*article.ImageFile)
	}

	metrics.RecordArticleMutation(metrics.OpImage, metrics.StatusSuccess)
	return c.JSON(http.StatusOK, ImageResponse{
		ImageFile: filename,
		URL:       path.Join(uploadsPrefix, filename),
	})
}

// DeleteImage handles DELETE /api/v1/admin/articles/:id/image
// @Summary Delete article image
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 204
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id}/image [delete]
func (h *Handler) DeleteImage(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.cms.ByID(ctx, id, cms.ProjectionFull)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if article == nil {
		return h.notFound(c)
	}

	if err := h.cms.SetImageFile(ctx, id, nil); err != nil {
		metrics.RecordArticleMutation(metrics.OpImage, metrics.StatusFailure)
		if errors.Is(err, cms.ErrArticleNotFound) {
			return h.notFound(c)
		}
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	if article.ImageFile != nil {
		h.removeImage(*article.ImageFile)
	}

	metrics.RecordArticleMutation(metrics.OpImage, metrics.StatusSuccess)
	return c.NoContent(http.StatusNoContent)
}

var errUnsupportedImage = errors.New("unsupported image type")

// saveImage sniffs the content type and writes the image under a uuid name
// into the uploads directory.
func (h *Handler) saveImage(src io.Reader) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read image header: %w", err)
	}
	head = head[:n]

	ext, ok := imageExtensions[http.DetectContentType(head)]
	if !ok {
		return "", errUnsupportedImage
	}

	if err := os.MkdirAll(h.uploads.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.uploads.Dir, filename))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.MultiReader(bytes.NewReader(head), src)); err != nil {
		h.removeImage(filename)
		return "", fmt.Errorf("write image: %w", err)
	}

	return filename, nil
}

func (h *Handler) removeImage(filename string) {
	err := os.Remove(filepath.Join(h.uploads.Dir, filepath.Base(filename)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		h.log.Warn("failed to remove image file", "file", filename, "error", err)
	}
}
