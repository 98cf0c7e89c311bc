package portfolio

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShrinkImage(t *testing.T) {
	wide := image.NewRGBA(image.Rect(0, 0, 1600, 400))
	out := shrinkImage(wide, 800)
	if got := out.Bounds().Dx(); got != 800 {
		t.Errorf("width = %d, want 800", got)
	}
	if got := out.Bounds().Dy(); got != 100 {
		t.Errorf("height = %d, want 100 (aspect preserved)", got)
	}

	small := image.NewRGBA(image.Rect(0, 0, 200, 200))
	if shrinkImage(small, 800) != image.Image(small) {
		t.Error("images within bounds should pass through untouched")
	}
}

func TestUploadName(t *testing.T) {
	a := uploadName("My Screenshot (1).PNG")
	b := uploadName("My Screenshot (1).PNG")

	if !strings.HasPrefix(a, "my-screenshot-1-") {
		t.Errorf("name = %q, want slug prefix", a)
	}
	if !strings.HasSuffix(a, ".jpg") {
		t.Errorf("name = %q, want .jpg suffix", a)
	}
	if a == b {
		t.Error("names should not collide")
	}
	if got := uploadName("...."); !strings.HasPrefix(got, "image-") {
		t.Errorf("unusable original name should fall back, got %q", got)
	}
}

func TestAPIUpload(t *testing.T) {
	app := newTestApp(t)

	var imgBuf bytes.Buffer
	require.NoError(t, png.Encode(&imgBuf, image.NewRGBA(image.Rect(0, 0, 1200, 600))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "banner.png")
	require.NoError(t, err)
	_, err = part.Write(imgBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := doRequest(app, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	url := resp["url"]
	require.True(t, strings.HasPrefix(url, "/public/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The processed file landed under the static dir.
	name := strings.TrimPrefix(url, "/public/uploads/")
	_, err = os.Stat(filepath.Join(app.Config.StaticDir, "uploads", name))
	assert.NoError(t, err)
}

func TestAPIUploadRejectsGarbage(t *testing.T) {
	app := newTestApp(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", "notes.txt")
	part.Write([]byte("this is not an image"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := doRequest(app, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader("no multipart"))
	rec = doRequest(app, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
