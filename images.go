package portfolio

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxUploadSize = 10 << 20
	maxImageWidth = 800
	jpegQuality   = 80
)

// apiUpload accepts a multipart image, recompresses it as a bounded-width
// JPEG under the static uploads directory, and returns its public URL.
func (a *App) apiUpload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "missing file field")
	}
	if fh.Size > maxUploadSize {
		return apiError(c, http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "not a supported image")
	}

	name := uploadName(fh.Filename)
	dir := filepath.Join(a.Config.StaticDir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer out.Close()

	if err := jpeg.Encode(out, shrinkImage(img, maxImageWidth), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{"url": "/public/uploads/" + name})
}

// uploadName builds a collision-free filename from the original upload name.
func uploadName(original string) string {
	base := Slugify(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original)))
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%s-%s.jpg", base, uuid.NewString()[:8])
}

// shrinkImage scales img down to at most width pixels wide, preserving the
// aspect ratio. Images already within bounds pass through untouched.
func shrinkImage(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Dx() <= width {
		return img
	}
	h := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
