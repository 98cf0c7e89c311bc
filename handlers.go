package portfolio

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// profileOrDefault loads the profile, falling back to the bundled default
// when the store has none or is unreachable. Public pages never surface a
// profile fetch failure.
func (a *App) profileOrDefault() Profile {
	p, err := a.Store.GetProfile()
	if err != nil {
		return DefaultProfile()
	}
	return p
}

// handleHome serves the landing page: profile card, featured projects, and
// the summary stats. The profile card re-polls on an interval so admin edits
// made in another tab show up without a reload.
func (a *App) handleHome(c echo.Context) error {
	p := a.profileOrDefault()
	projects, err := a.Store.ListProjects("")
	if err != nil {
		projects = nil
	}
	st, err := a.Store.Stats()
	if err != nil {
		st = Stats{}
	}
	return Render(c, a.Views.Home(a.Config, p, FeaturedProjects(projects, 3), st))
}

// handleProfileCard is the polling target for the home page profile card.
func (a *App) handleProfileCard(c echo.Context) error {
	return Render(c, a.Views.ProfileCard(a.profileOrDefault()))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About(a.Config, a.profileOrDefault()))
}

// handleProjects serves the project listing with category filter and search,
// with HTMX partial support for in-place filtering.
func (a *App) handleProjects(c echo.Context) error {
	category := c.QueryParam("category")
	query := c.QueryParam("q")
	if !ValidCategory(category) {
		category = ""
	}
	projects, err := a.Store.ListProjects("")
	if err != nil {
		return err
	}
	filtered := FilterProjects(projects, category, query)
	if c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == "grid" {
		return Render(c, a.Views.ProjectsGrid(filtered))
	}
	return Render(c, a.Views.Projects(a.Config, filtered, category, query))
}

func (a *App) handleCertifications(c echo.Context) error {
	certs, err := a.Store.ListCertifications()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Certifications(a.Config, certs))
}

func (a *App) handleEducation(c echo.Context) error {
	entries, err := a.Store.ListEducation()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Education(a.Config, entries))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && a.Views.NotFound != nil {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 && a.Views.ServerError != nil {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.Config))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
