package portfolio

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.Config, false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if a.checkPassword(pass) {
		email := a.profileOrDefault().Email
		if err := setAdminSession(c, email); err != nil {
			return err
		}
		adminLogins.WithLabelValues("ok").Inc()
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(c.RealIP())
	adminLogins.WithLabelValues("fail").Inc()
	return Render(c, a.Views.AdminLogin(a.Config, true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	st, err := a.Store.Stats()
	if err != nil {
		st = Stats{}
	}
	unread := 0
	if msgs, err := a.Store.ListMessages(); err == nil {
		for _, m := range msgs {
			if !m.Read {
				unread++
			}
		}
	}
	return Render(c, a.Views.AdminDashboard(a.Config, st, unread, msg, CsrfToken(c)))
}

// --- Profile panel ---

func (a *App) handleAdminProfile(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	p, err := a.Store.GetProfile()
	if err != nil {
		p = Profile{}
	}
	return Render(c, a.Views.AdminProfile(a.Config, p, FieldErrors{}, c.QueryParam("msg"), CsrfToken(c)))
}

func (a *App) handleAdminProfileSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	p := Profile{
		Name:          strings.TrimSpace(c.FormValue("name")),
		Title:         strings.TrimSpace(c.FormValue("title")),
		Bio:           c.FormValue("bio"),
		AboutMe:       c.FormValue("aboutMe"),
		Email:         strings.TrimSpace(c.FormValue("email")),
		Phone:         strings.TrimSpace(c.FormValue("phone")),
		Location:      strings.TrimSpace(c.FormValue("location")),
		Avatar:        strings.TrimSpace(c.FormValue("avatar")),
		SocialLinks:   parseSocialLinks(c.FormValue("socialLinks")),
		AdminPassword: c.FormValue("adminPassword"),
	}
	if ac := parseAboutContent(c); ac != nil {
		p.AboutContent = ac
	}
	if fe := ValidateProfile(p); !fe.Ok() {
		return Render(c, a.Views.AdminProfile(a.Config, p, fe, "", CsrfToken(c)))
	}
	saved, err := a.Store.SaveProfile(p)
	if err != nil {
		c.Logger().Errorf("admin: save profile: %v", err)
		return Render(c, a.Views.AdminProfile(a.Config, p, FieldErrors{}, "error: profile was not saved", CsrfToken(c)))
	}
	return Render(c, a.Views.AdminProfile(a.Config, saved, FieldErrors{}, "saved", CsrfToken(c)))
}

// parseSocialLinks reads one "platform | url" pair per line.
func parseSocialLinks(raw string) []SocialLink {
	var out []SocialLink
	for _, line := range strings.Split(raw, "\n") {
		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			continue
		}
		platform := strings.TrimSpace(parts[0])
		url := strings.TrimSpace(parts[1])
		if platform != "" && url != "" {
			out = append(out, SocialLink{Platform: platform, URL: url})
		}
	}
	return out
}

// parseAboutContent assembles the nested about page content from its form
// fields. Returns nil when every field was left blank.
func parseAboutContent(c echo.Context) *AboutContent {
	ac := AboutContent{
		Title:    strings.TrimSpace(c.FormValue("aboutTitle")),
		Subtitle: strings.TrimSpace(c.FormValue("aboutSubtitle")),
		WhoAmI:   c.FormValue("whoAmI"),
		Approach: c.FormValue("approach"),
		Hobby:    c.FormValue("hobby"),
	}
	ac.Stats.Projects, _ = strconv.Atoi(c.FormValue("statsProjects"))
	ac.Stats.Clients, _ = strconv.Atoi(c.FormValue("statsClients"))
	ac.Stats.Experience, _ = strconv.Atoi(c.FormValue("statsExperience"))
	for _, line := range strings.Split(c.FormValue("values"), "\n") {
		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			continue
		}
		ac.Values = append(ac.Values, ValueItem{
			Title:       strings.TrimSpace(parts[0]),
			Description: strings.TrimSpace(parts[1]),
		})
	}
	for _, line := range strings.Split(c.FormValue("skills"), "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		category := strings.TrimSpace(parts[0])
		items := SplitList(parts[1])
		if category != "" && len(items) > 0 {
			ac.Skills = append(ac.Skills, SkillGroup{Category: category, Items: items})
		}
	}
	if ac.Title == "" && ac.WhoAmI == "" && ac.Approach == "" && ac.Hobby == "" &&
		ac.Stats == (AboutStats{}) && len(ac.Values) == 0 && len(ac.Skills) == 0 {
		return nil
	}
	return &ac
}

// --- Projects panel ---

func (a *App) renderAdminProjects(c echo.Context, form Project, errs FieldErrors, msg string) error {
	list, err := a.Store.ListProjects("")
	if err != nil {
		list = nil
		msg = "error: could not load projects"
	}
	return Render(c, a.Views.AdminProjects(a.Config, list, form, errs, msg, CsrfToken(c)))
}

func (a *App) handleAdminProjects(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return a.renderAdminProjects(c, Project{}, FieldErrors{}, c.QueryParam("msg"))
}

func (a *App) handleAdminProjectEdit(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := idParam(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	p, err := a.Store.GetProject(id)
	if err == ErrNotFound {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminProjectForm(p, FieldErrors{}, CsrfToken(c)))
}

func (a *App) handleAdminProjectSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	id, _ := strconv.ParseInt(c.FormValue("id"), 10, 64)
	p := Project{
		ID:           id,
		Title:        strings.TrimSpace(c.FormValue("title")),
		Description:  c.FormValue("description"),
		Image:        strings.TrimSpace(c.FormValue("image")),
		Technologies: SplitList(c.FormValue("technologies")),
		GithubURL:    strings.TrimSpace(c.FormValue("githubUrl")),
		LiveURL:      strings.TrimSpace(c.FormValue("liveUrl")),
		Category:     c.FormValue("category"),
		Featured:     c.FormValue("featured") != "",
		CreatedAt:    c.FormValue("createdAt"),
	}
	if fe := ValidateProject(p); !fe.Ok() {
		return a.renderAdminProjects(c, p, fe, "")
	}

	var err error
	if id == 0 {
		_, err = a.Store.CreateProject(p)
	} else {
		_, err = a.Store.UpdateProject(id, p)
	}
	if err != nil {
		c.Logger().Errorf("admin: save project: %v", err)
		return a.renderAdminProjects(c, p, FieldErrors{}, "error: project was not saved")
	}
	return a.renderAdminProjects(c, Project{}, FieldErrors{}, "saved")
}

func (a *App) handleAdminProjectDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := idParam(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := a.Store.DeleteProject(id); err != nil {
		c.Logger().Errorf("admin: delete project: %v", err)
		return a.renderAdminProjects(c, Project{}, FieldErrors{}, "error: project was not deleted")
	}
	return a.renderAdminProjects(c, Project{}, FieldErrors{}, "deleted")
}

// --- Certifications panel ---

func (a *App) renderAdminCertifications(c echo.Context, form Certification, errs FieldErrors, msg string) error {
	list, err := a.Store.ListCertifications()
	if err != nil {
		list = nil
		msg = "error: could not load certifications"
	}
	return Render(c, a.Views.AdminCertifications(a.Config, list, form, errs, msg, CsrfToken(c)))
}

func (a *App) handleAdminCertifications(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return a.renderAdminCertifications(c, Certification{}, FieldErrors{}, c.QueryParam("msg"))
}

func (a *App) handleAdminCertificationEdit(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := idParam(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	ct, err := a.Store.GetCertification(id)
	if err == ErrNotFound {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminCertificationForm(ct, FieldErrors{}, CsrfToken(c)))
}

func (a *App) handleAdminCertificationSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	id, _ := strconv.ParseInt(c.FormValue("id"), 10, 64)
	ct := Certification{
		ID:            id,
		Title:         strings.TrimSpace(c.FormValue("title")),
		Issuer:        strings.TrimSpace(c.FormValue("issuer")),
		IssueDate:     strings.TrimSpace(c.FormValue("issueDate")),
		ExpiryDate:    strings.TrimSpace(c.FormValue("expiryDate")),
		Image:         strings.TrimSpace(c.FormValue("image")),
		CredentialURL: strings.TrimSpace(c.FormValue("credentialUrl")),
		Skills:        SplitList(c.FormValue("skills")),
	}
	if fe := ValidateCertification(ct); !fe.Ok() {
		return a.renderAdminCertifications(c, ct, fe, "")
	}

	var err error
	if id == 0 {
		_, err = a.Store.CreateCertification(ct)
	} else {
		_, err = a.Store.UpdateCertification(id, ct)
	}
	if err != nil {
		c.Logger().Errorf("admin: save certification: %v", err)
		return a.renderAdminCertifications(c, ct, FieldErrors{}, "error: certification was not saved")
	}
	return a.renderAdminCertifications(c, Certification{}, FieldErrors{}, "saved")
}

func (a *App) handleAdminCertificationDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := idParam(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := a.Store.DeleteCertification(id); err != nil {
		c.Logger().Errorf("admin: delete certification: %v", err)
		return a.renderAdminCertifications(c, Certification{}, FieldErrors{}, "error: certification was not deleted")
	}
	return a.renderAdminCertifications(c, Certification{}, FieldErrors{}, "deleted")
}

// --- Education panel ---

func (a *App) renderAdminEducation(c echo.Context, form Education, errs FieldErrors, msg string) error {
	list, err := a.Store.ListEducation()
	if err != nil {
		list = nil
		msg = "error: could not load education entries"
	}
	return Render(c, a.Views.AdminEducation(a.Config, list, form, errs, msg, CsrfToken(c)))
}

func (a *App) handleAdminEducation(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return a.renderAdminEducation(c, Education{}, FieldErrors{}, c.QueryParam("msg"))
}

func (a *App) handleAdminEducationEdit(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := idParam(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	e, err := a.Store.GetEducation(id)
	if err == ErrNotFound {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminEducationForm(e, FieldErrors{}, CsrfToken(c)))
}

func (a *App) handleAdminEducationSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	id, _ := strconv.ParseInt(c.FormValue("id"), 10, 64)
	e := Education{
		ID:          id,
		School:      strings.TrimSpace(c.FormValue("school")),
		Degree:      strings.TrimSpace(c.FormValue("degree")),
		Field:       strings.TrimSpace(c.FormValue("field")),
		StartDate:   strings.TrimSpace(c.FormValue("startDate")),
		EndDate:     strings.TrimSpace(c.FormValue("endDate")),
		Description: c.FormValue("description"),
	}
	if fe := ValidateEducation(e); !fe.Ok() {
		return a.renderAdminEducation(c, e, fe, "")
	}

	var err error
	if id == 0 {
		_, err = a.Store.CreateEducation(e)
	} else {
		_, err = a.Store.UpdateEducation(id, e)
	}
	if err != nil {
		c.Logger().Errorf("admin: save education: %v", err)
		return a.renderAdminEducation(c, e, FieldErrors{}, "error: education entry was not saved")
	}
	return a.renderAdminEducation(c, Education{}, FieldErrors{}, "saved")
}

func (a *App) handleAdminEducationDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := idParam(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := a.Store.DeleteEducation(id); err != nil {
		c.Logger().Errorf("admin: delete education: %v", err)
		return a.renderAdminEducation(c, Education{}, FieldErrors{}, "error: education entry was not deleted")
	}
	return a.renderAdminEducation(c, Education{}, FieldErrors{}, "deleted")
}

// --- Messages panel ---

func (a *App) renderAdminMessages(c echo.Context, msg string) error {
	msgs, err := a.Store.ListMessages()
	if err != nil {
		msgs = nil
		msg = "error: could not load messages"
	}
	return Render(c, a.Views.AdminMessages(a.Config, msgs, msg, CsrfToken(c)))
}

func (a *App) handleAdminMessages(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return a.renderAdminMessages(c, c.QueryParam("msg"))
}

// handleAdminMessageRead toggles a message's read flag.
func (a *App) handleAdminMessageRead(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := idParam(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	read := c.FormValue("read") != "false"
	if _, err := a.Store.SetMessageRead(id, read); err != nil && err != ErrNotFound {
		c.Logger().Errorf("admin: mark message: %v", err)
		return a.renderAdminMessages(c, "error: message was not updated")
	}
	return a.renderAdminMessages(c, "")
}

func (a *App) handleAdminMessageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := idParam(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := a.Store.DeleteMessage(id); err != nil {
		c.Logger().Errorf("admin: delete message: %v", err)
		return a.renderAdminMessages(c, "error: message was not deleted")
	}
	return a.renderAdminMessages(c, "deleted")
}
