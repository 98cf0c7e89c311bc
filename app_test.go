package portfolio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

// stub emits an HTML comment marker so tests can assert which view the
// handler picked without pulling in the real templates.
func stub(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<!--view:"+name+"-->")
		return err
	})
}

func stubViews() ViewFuncs {
	return ViewFuncs{
		Home:        func(SiteConfig, Profile, []Project, Stats) templ.Component { return stub("home") },
		ProfileCard: func(Profile) templ.Component { return stub("profile-card") },
		About:       func(SiteConfig, Profile) templ.Component { return stub("about") },

		Projects:     func(SiteConfig, []Project, string, string) templ.Component { return stub("projects") },
		ProjectsGrid: func([]Project) templ.Component { return stub("projects-grid") },

		Certifications: func(SiteConfig, []Certification) templ.Component { return stub("certifications") },
		Education:      func(SiteConfig, []Education) templ.Component { return stub("education") },

		Contact: func(cfg SiteConfig, form Message, errs FieldErrors, result, csrf string) templ.Component {
			return stub("contact:" + result)
		},

		AdminLogin: func(cfg SiteConfig, showError bool, csrf string) templ.Component {
			if showError {
				return stub("admin-login:error")
			}
			return stub("admin-login")
		},
		AdminDashboard: func(SiteConfig, Stats, int, string, string) templ.Component { return stub("admin-dashboard") },
		AdminProfile: func(SiteConfig, Profile, FieldErrors, string, string) templ.Component {
			return stub("admin-profile")
		},

		AdminProjects: func(SiteConfig, []Project, Project, FieldErrors, string, string) templ.Component {
			return stub("admin-projects")
		},
		AdminProjectForm: func(Project, FieldErrors, string) templ.Component { return stub("admin-project-form") },
		AdminCertifications: func(SiteConfig, []Certification, Certification, FieldErrors, string, string) templ.Component {
			return stub("admin-certifications")
		},
		AdminCertificationForm: func(Certification, FieldErrors, string) templ.Component {
			return stub("admin-certification-form")
		},
		AdminEducation: func(SiteConfig, []Education, Education, FieldErrors, string, string) templ.Component {
			return stub("admin-education")
		},
		AdminEducationForm: func(Education, FieldErrors, string) templ.Component { return stub("admin-education-form") },
		AdminMessages:      func(SiteConfig, []Message, string, string) templ.Component { return stub("admin-messages") },

		NotFound:    func(SiteConfig) templ.Component { return stub("not-found") },
		ServerError: func(SiteConfig) templ.Component { return stub("server-error") },
	}
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	cfg := SiteConfig{
		SessionSecret:  "test-session-secret",
		AdminPassword:  "test-admin-pass",
		DatabasePath:   filepath.Join(t.TempDir(), "test.db"),
		StaticDir:      t.TempDir(),
		MetricsEnabled: false,
	}
	app := New(cfg, stubViews(), opts...)
	if err := app.bootstrap(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func doRequest(app *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

// csrfPair primes the CSRF cookie via a GET and returns the cookie header
// plus the token value a subsequent form POST must echo.
func csrfPair(t *testing.T, app *App) (cookie *http.Cookie, token string) {
	t.Helper()
	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/contact/", nil))
	for _, c := range rec.Result().Cookies() {
		if c.Name == "_csrf" {
			return c, c.Value
		}
	}
	t.Fatal("no _csrf cookie issued")
	return nil, ""
}

func postForm(app *App, target string, form map[string]string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return doRequest(app, req)
}
