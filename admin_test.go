package portfolio

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginAdmin(t *testing.T, app *App) (sess, csrf *http.Cookie, token string) {
	t.Helper()
	csrf, token = csrfPair(t, app)
	rec := postForm(app, "/admin/login/", map[string]string{"password": "test-admin-pass", "_csrf": token}, csrf)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	return sessionCookie(t, rec), csrf, token
}

func TestAdminProjectSaveAndDelete(t *testing.T) {
	app := newTestApp(t)
	sess, csrf, token := loginAdmin(t, app)

	form := map[string]string{
		"id":           "0",
		"title":        "Tracker",
		"description":  "Tracks things end to end.",
		"technologies": "Go, SQLite",
		"category":     "web",
		"featured":     "1",
		"_csrf":        token,
	}
	rec := postForm(app, "/admin/projects/save/", form, csrf, sess)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "view:admin-projects")

	projects, err := app.Store.ListProjects("")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"Go", "SQLite"}, projects[0].Technologies)
	assert.True(t, projects[0].Featured)

	// Editing by id updates in place.
	form["id"] = fmt.Sprintf("%d", projects[0].ID)
	form["title"] = "Tracker v2"
	rec = postForm(app, "/admin/projects/save/", form, csrf, sess)
	require.Equal(t, http.StatusOK, rec.Code)
	projects, _ = app.Store.ListProjects("")
	require.Len(t, projects, 1)
	assert.Equal(t, "Tracker v2", projects[0].Title)

	// Delete over HTMX with the CSRF header.
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/admin/projects/%d/", projects[0].ID), nil)
	req.Header.Set("X-CSRF-Token", token)
	req.AddCookie(csrf)
	req.AddCookie(sess)
	rec = doRequest(app, req)
	require.Equal(t, http.StatusOK, rec.Code)

	projects, _ = app.Store.ListProjects("")
	assert.Empty(t, projects)
}

func TestAdminProjectSaveValidation(t *testing.T) {
	app := newTestApp(t)
	sess, csrf, token := loginAdmin(t, app)

	form := map[string]string{
		"id":          "0",
		"title":       "Tracker",
		"description": "short",
		"category":    "web",
		"_csrf":       token,
	}
	rec := postForm(app, "/admin/projects/save/", form, csrf, sess)
	require.Equal(t, http.StatusOK, rec.Code)

	projects, err := app.Store.ListProjects("")
	require.NoError(t, err)
	assert.Empty(t, projects, "invalid submission must not persist")
}

func TestAdminProfileSavePreservesSecret(t *testing.T) {
	app := newTestApp(t)

	_, err := app.Store.SaveProfile(Profile{
		Name: "Ada", Title: "Engineer", Bio: "Builds analytical engines.",
		Email: "ada@example.com", Location: "London",
		AdminPassword: "profile-secret",
	})
	require.NoError(t, err)

	csrf, token := csrfPair(t, app)
	rec := postForm(app, "/admin/login/", map[string]string{"password": "profile-secret", "_csrf": token}, csrf)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	sess := sessionCookie(t, rec)

	// Saving the profile with a blank password field keeps the old secret.
	form := map[string]string{
		"name": "Ada Lovelace", "title": "Engineer", "bio": "Builds analytical engines.",
		"email": "ada@example.com", "location": "London",
		"adminPassword": "",
		"_csrf":         token,
	}
	rec = postForm(app, "/admin/profile/save/", form, csrf, sess)
	require.Equal(t, http.StatusOK, rec.Code)

	p, err := app.Store.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.Name)
	assert.Equal(t, "profile-secret", p.AdminPassword)
	assert.True(t, app.checkPassword("profile-secret"), "old secret still logs in")
}

func TestAdminMessageReadToggle(t *testing.T) {
	app := newTestApp(t)
	sess, csrf, token := loginAdmin(t, app)

	m, err := app.Store.CreateMessage(Message{Name: "V", Email: "v@example.com", Subject: "Hello there", Body: "A long enough body."})
	require.NoError(t, err)

	rec := postForm(app, fmt.Sprintf("/admin/messages/%d/read/", m.ID), map[string]string{"read": "true", "_csrf": token}, csrf, sess)
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := app.Store.GetMessage(m.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	rec = postForm(app, fmt.Sprintf("/admin/messages/%d/read/", m.ID), map[string]string{"read": "false", "_csrf": token}, csrf, sess)
	require.Equal(t, http.StatusOK, rec.Code)
	got, _ = app.Store.GetMessage(m.ID)
	assert.False(t, got.Read)
}
