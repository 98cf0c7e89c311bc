package portfolio

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicPages(t *testing.T) {
	app := newTestApp(t)

	cases := map[string]string{
		"/":                "view:home",
		"/about/":          "view:about",
		"/projects/":       "view:projects",
		"/certifications/": "view:certifications",
		"/education/":      "view:education",
		"/contact/":        "view:contact",
	}
	for path, marker := range cases {
		rec := doRequest(app, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), marker, path)
	}
}

func TestHomeSurvivesEmptyStore(t *testing.T) {
	app := newTestApp(t)

	// No profile, no projects: the page still renders from the default
	// profile instead of erroring.
	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProjectsPartialSwap(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/projects/?partial=grid&category=web", nil)
	req.Header.Set("HX-Request", "true")
	rec := doRequest(app, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "view:projects-grid")

	// Without the HTMX header the full page renders.
	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/projects/?partial=grid&category=web", nil))
	assert.Contains(t, rec.Body.String(), "view:projects")
	assert.NotContains(t, rec.Body.String(), "view:projects-grid")
}

func TestNotFoundPage(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/no-such-page/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "view:not-found")
}

func TestRobotsTxt(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Disallow: /admin/")
	assert.Contains(t, body, "Sitemap: "+app.Config.URL+"/sitemap.xml")
}

func TestSitemap(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<?xml"))
	for _, p := range []string{"/about/", "/projects/", "/certifications/", "/education/", "/contact/"} {
		assert.Contains(t, rec.Body.String(), p)
	}
	assert.NotContains(t, rec.Body.String(), "/admin/")
}

func TestTrailingSlashRedirect(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/projects", nil))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/projects/", rec.Header().Get("Location"))

	// API paths are exempt so REST verbs keep their canonical form.
	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
