package portfolio

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// apiError writes the JSON error shape the API uses everywhere.
func apiError(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg})
}

func idParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// listEnvelope is the paginated response shape, mirroring the envelope some
// document-store backends produce. List endpoints answer with a bare array
// unless the client asks for a page, so both consumer-visible shapes occur.
type listEnvelope struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

const defaultPageSize = 10

// pageWindow is a resolved pagination request: the page and size the client
// asked for plus the slice bounds they select.
type pageWindow struct {
	page, size, lo, hi int
}

// pageBounds resolves the requested page to a window over n items. paged is
// false when the client did not ask for pagination.
func pageBounds(c echo.Context, n int) (w pageWindow, paged bool) {
	raw := c.QueryParam("page")
	if raw == "" {
		return pageWindow{}, false
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		page = 1
	}
	size := defaultPageSize
	if v, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && v > 0 {
		size = v
	}
	w = pageWindow{page: page, size: size, lo: (page - 1) * size, hi: page * size}
	if w.lo > n {
		w.lo = n
	}
	if w.hi > n {
		w.hi = n
	}
	return w, true
}

// envelope writes a paginated response with next/previous links derived from
// the request URL.
func envelope(c echo.Context, w pageWindow, count int, results any) error {
	pageURL := func(p int) *string {
		u := *c.Request().URL
		q := u.Query()
		q.Set("page", strconv.Itoa(p))
		u.RawQuery = q.Encode()
		s := u.String()
		return &s
	}

	env := listEnvelope{Count: count, Results: results}
	if w.page*w.size < count {
		env.Next = pageURL(w.page + 1)
	}
	if w.page > 1 {
		env.Previous = pageURL(w.page - 1)
	}
	return c.JSON(http.StatusOK, env)
}

// --- Profile ---

func (a *App) apiGetProfile(c echo.Context) error {
	p, err := a.Store.GetProfile()
	if err == ErrNotFound {
		return apiError(c, http.StatusNotFound, "profile not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (a *App) apiPutProfile(c echo.Context) error {
	var p Profile
	if err := c.Bind(&p); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid profile body")
	}
	if fe := ValidateProfile(p); !fe.Ok() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}
	saved, err := a.Store.SaveProfile(p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

// --- Projects ---

func (a *App) apiListProjects(c echo.Context) error {
	ps, err := a.Store.ListProjects(c.QueryParam("category"))
	if err != nil {
		return err
	}
	if ps == nil {
		ps = []Project{}
	}
	w, paged := pageBounds(c, len(ps))
	if !paged {
		return c.JSON(http.StatusOK, ps)
	}
	return envelope(c, w, len(ps), ps[w.lo:w.hi])
}

func (a *App) apiGetProject(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	p, err := a.Store.GetProject(id)
	if err == ErrNotFound {
		return apiError(c, http.StatusNotFound, "project not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (a *App) apiCreateProject(c echo.Context) error {
	var p Project
	if err := c.Bind(&p); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid project body")
	}
	if fe := ValidateProject(p); !fe.Ok() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}
	created, err := a.Store.CreateProject(p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (a *App) apiUpdateProject(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	var p Project
	if err := c.Bind(&p); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid project body")
	}
	if fe := ValidateProject(p); !fe.Ok() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}
	updated, err := a.Store.UpdateProject(id, p)
	if err == ErrNotFound {
		return apiError(c, http.StatusNotFound, "project not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (a *App) apiDeleteProject(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	if err := a.Store.DeleteProject(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Certifications ---

func (a *App) apiListCertifications(c echo.Context) error {
	cts, err := a.Store.ListCertifications()
	if err != nil {
		return err
	}
	if cts == nil {
		cts = []Certification{}
	}
	w, paged := pageBounds(c, len(cts))
	if !paged {
		return c.JSON(http.StatusOK, cts)
	}
	return envelope(c, w, len(cts), cts[w.lo:w.hi])
}

func (a *App) apiGetCertification(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	ct, err := a.Store.GetCertification(id)
	if err == ErrNotFound {
		return apiError(c, http.StatusNotFound, "certification not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ct)
}

func (a *App) apiCreateCertification(c echo.Context) error {
	var ct Certification
	if err := c.Bind(&ct); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid certification body")
	}
	if fe := ValidateCertification(ct); !fe.Ok() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}
	created, err := a.Store.CreateCertification(ct)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (a *App) apiUpdateCertification(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	var ct Certification
	if err := c.Bind(&ct); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid certification body")
	}
	if fe := ValidateCertification(ct); !fe.Ok() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}
	updated, err := a.Store.UpdateCertification(id, ct)
	if err == ErrNotFound {
		return apiError(c, http.StatusNotFound, "certification not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (a *App) apiDeleteCertification(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	if err := a.Store.DeleteCertification(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Education ---

func (a *App) apiListEducation(c echo.Context) error {
	es, err := a.Store.ListEducation()
	if err != nil {
		return err
	}
	if es == nil {
		es = []Education{}
	}
	w, paged := pageBounds(c, len(es))
	if !paged {
		return c.JSON(http.StatusOK, es)
	}
	return envelope(c, w, len(es), es[w.lo:w.hi])
}

func (a *App) apiGetEducation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	e, err := a.Store.GetEducation(id)
	if err == ErrNotFound {
		return apiError(c, http.StatusNotFound, "education entry not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

func (a *App) apiCreateEducation(c echo.Context) error {
	var e Education
	if err := c.Bind(&e); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid education body")
	}
	if fe := ValidateEducation(e); !fe.Ok() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}
	created, err := a.Store.CreateEducation(e)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (a *App) apiUpdateEducation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	var e Education
	if err := c.Bind(&e); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid education body")
	}
	if fe := ValidateEducation(e); !fe.Ok() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}
	updated, err := a.Store.UpdateEducation(id, e)
	if err == ErrNotFound {
		return apiError(c, http.StatusNotFound, "education entry not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (a *App) apiDeleteEducation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	if err := a.Store.DeleteEducation(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Messages ---

func (a *App) apiListMessages(c echo.Context) error {
	ms, err := a.Store.ListMessages()
	if err != nil {
		return err
	}
	if ms == nil {
		ms = []Message{}
	}
	w, paged := pageBounds(c, len(ms))
	if !paged {
		return c.JSON(http.StatusOK, ms)
	}
	return envelope(c, w, len(ms), ms[w.lo:w.hi])
}

func (a *App) apiGetMessage(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	m, err := a.Store.GetMessage(id)
	if err == ErrNotFound {
		return apiError(c, http.StatusNotFound, "message not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (a *App) apiCreateMessage(c echo.Context) error {
	var m Message
	if err := c.Bind(&m); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid message body")
	}
	if fe := ValidateMessage(m); !fe.Ok() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}
	created, err := a.Store.CreateMessage(m)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// apiPatchMessage supports partial updates; in practice the only mutable
// field is the read flag.
func (a *App) apiPatchMessage(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	var patch struct {
		Read *bool `json:"read"`
	}
	if err := c.Bind(&patch); err != nil || patch.Read == nil {
		return apiError(c, http.StatusBadRequest, "patch body must set read")
	}
	m, err := a.Store.SetMessageRead(id, *patch.Read)
	if err == ErrNotFound {
		return apiError(c, http.StatusNotFound, "message not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (a *App) apiDeleteMessage(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}
	if err := a.Store.DeleteMessage(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Stats ---

func (a *App) apiStats(c echo.Context) error {
	st, err := a.Store.Stats()
	if err != nil {
		return err
	}
	if st.Technologies == nil {
		st.Technologies = []TechCount{}
	}
	return c.JSON(http.StatusOK, st)
}
