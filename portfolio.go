// Package portfolio is a personal portfolio site engine built with Go, Echo,
// and templ: public pages (home, about, projects, certifications, education,
// contact) backed by a password-protected admin panel and a document-store
// REST API over embedded SQLite. Point STORE_URL at an external document
// store to run the site against someone else's backend instead.
package portfolio

import (
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds the templ components the engine calls when rendering
// pages. The views package provides the standard set via views.Funcs();
// embedders can swap in their own templates.
type ViewFuncs struct {
	Home        func(cfg SiteConfig, p Profile, featured []Project, st Stats) templ.Component
	ProfileCard func(p Profile) templ.Component
	About       func(cfg SiteConfig, p Profile) templ.Component

	Projects     func(cfg SiteConfig, projects []Project, activeCategory, query string) templ.Component
	ProjectsGrid func(projects []Project) templ.Component

	Certifications func(cfg SiteConfig, certs []Certification) templ.Component
	Education      func(cfg SiteConfig, entries []Education) templ.Component

	Contact func(cfg SiteConfig, form Message, errs FieldErrors, result, csrf string) templ.Component

	AdminLogin     func(cfg SiteConfig, showError bool, csrf string) templ.Component
	AdminDashboard func(cfg SiteConfig, st Stats, unread int, msg, csrf string) templ.Component
	AdminProfile   func(cfg SiteConfig, p Profile, errs FieldErrors, msg, csrf string) templ.Component

	AdminProjects          func(cfg SiteConfig, list []Project, form Project, errs FieldErrors, msg, csrf string) templ.Component
	AdminProjectForm       func(form Project, errs FieldErrors, csrf string) templ.Component
	AdminCertifications    func(cfg SiteConfig, list []Certification, form Certification, errs FieldErrors, msg, csrf string) templ.Component
	AdminCertificationForm func(form Certification, errs FieldErrors, csrf string) templ.Component
	AdminEducation         func(cfg SiteConfig, list []Education, form Education, errs FieldErrors, msg, csrf string) templ.Component
	AdminEducationForm     func(form Education, errs FieldErrors, csrf string) templ.Component
	AdminMessages          func(cfg SiteConfig, msgs []Message, msg, csrf string) templ.Component

	NotFound    func(cfg SiteConfig) templ.Component
	ServerError func(cfg SiteConfig) templ.Component
}

// App is the central application. It wires together the store, handlers,
// middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  Store
	Views  ViewFuncs

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
}

// New creates a new App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, middleware, and routes, then starts the
// server. It blocks until the server exits.
func (a *App) Start() error {
	if err := a.bootstrap(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// bootstrap validates config and wires everything short of binding a socket.
func (a *App) bootstrap() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("portfolio: SessionSecret is required")
	}

	if a.Store == nil {
		if a.Config.StoreURL != "" {
			a.Store = NewRemoteStore(a.Config.StoreURL)
		} else {
			store, err := NewSQLiteStore(a.Config.DatabasePath)
			if err != nil {
				return fmt.Errorf("portfolio: init store: %w", err)
			}
			a.Store = store
		}
	}

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/projects/", a.handleProjects)
	e.GET("/certifications/", a.handleCertifications)
	e.GET("/education/", a.handleEducation)
	e.GET("/contact/", a.handleContactPage)
	e.POST("/contact/", a.handleContactSubmit)
	e.GET("/partials/profile-card/", a.handleProfileCard)

	// Admin panel
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)

	e.GET("/admin/profile/", a.handleAdminProfile)
	e.POST("/admin/profile/save/", a.handleAdminProfileSave)

	e.GET("/admin/projects/", a.handleAdminProjects)
	e.GET("/admin/projects/:id/edit/", a.handleAdminProjectEdit)
	e.POST("/admin/projects/save/", a.handleAdminProjectSave)
	e.DELETE("/admin/projects/:id/", a.handleAdminProjectDelete)

	e.GET("/admin/certifications/", a.handleAdminCertifications)
	e.GET("/admin/certifications/:id/edit/", a.handleAdminCertificationEdit)
	e.POST("/admin/certifications/save/", a.handleAdminCertificationSave)
	e.DELETE("/admin/certifications/:id/", a.handleAdminCertificationDelete)

	e.GET("/admin/education/", a.handleAdminEducation)
	e.GET("/admin/education/:id/edit/", a.handleAdminEducationEdit)
	e.POST("/admin/education/save/", a.handleAdminEducationSave)
	e.DELETE("/admin/education/:id/", a.handleAdminEducationDelete)

	e.GET("/admin/messages/", a.handleAdminMessages)
	e.POST("/admin/messages/:id/read/", a.handleAdminMessageRead)
	e.DELETE("/admin/messages/:id/", a.handleAdminMessageDelete)

	// Document store REST surface (JSON, no auth header: the admin UI
	// session gate is the only authorization layer, as in the original
	// deployment this mirrors).
	api := e.Group("/api")
	api.GET("/profile", a.apiGetProfile)
	api.PUT("/profile", a.apiPutProfile)

	api.GET("/projects", a.apiListProjects)
	api.POST("/projects", a.apiCreateProject)
	api.GET("/projects/:id", a.apiGetProject)
	api.PUT("/projects/:id", a.apiUpdateProject)
	api.DELETE("/projects/:id", a.apiDeleteProject)

	api.GET("/certifications", a.apiListCertifications)
	api.POST("/certifications", a.apiCreateCertification)
	api.GET("/certifications/:id", a.apiGetCertification)
	api.PUT("/certifications/:id", a.apiUpdateCertification)
	api.DELETE("/certifications/:id", a.apiDeleteCertification)

	api.GET("/education", a.apiListEducation)
	api.POST("/education", a.apiCreateEducation)
	api.GET("/education/:id", a.apiGetEducation)
	api.PUT("/education/:id", a.apiUpdateEducation)
	api.DELETE("/education/:id", a.apiDeleteEducation)

	api.GET("/messages", a.apiListMessages)
	api.POST("/messages", a.apiCreateMessage)
	api.GET("/messages/:id", a.apiGetMessage)
	api.PATCH("/messages/:id", a.apiPatchMessage)
	api.DELETE("/messages/:id", a.apiDeleteMessage)

	api.GET("/stats", a.apiStats)
	api.POST("/upload", a.apiUpload)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
