package portfolio

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionName {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func TestAdminLoginFlow(t *testing.T) {
	app := newTestApp(t)

	// Anonymous visitors get the login prompt.
	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/admin/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "view:admin-login")

	csrf, token := csrfPair(t, app)

	// Wrong password re-renders the prompt with the error flag.
	rec = postForm(app, "/admin/login/", map[string]string{"password": "nope", "_csrf": token}, csrf)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "view:admin-login:error")

	// Right password sets the session and redirects to the dashboard.
	rec = postForm(app, "/admin/login/", map[string]string{"password": "test-admin-pass", "_csrf": token}, csrf)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	sess := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.AddCookie(sess)
	rec = doRequest(app, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "view:admin-dashboard")

	// The cookie is self-contained: a fresh process with the same session
	// secret accepts it, so a restart does not log the admin out.
	restarted := newTestApp(t)
	req = httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.AddCookie(sess)
	rec = doRequest(restarted, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "view:admin-dashboard")
}

func TestMalformedSessionCookieIsAnonymous(t *testing.T) {
	app := newTestApp(t)

	// Garbage and wrongly-signed cookies fail decoding and read as logged
	// out, never as an error page.
	for _, value := range []string{"garbage", "MTIzNDU2Nzg5MA=="} {
		req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
		req.AddCookie(&http.Cookie{Name: sessionName, Value: value})
		rec := doRequest(app, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "view:admin-login")
		assert.NotContains(t, rec.Body.String(), "view:admin-dashboard")
	}
}

func TestAdminLogout(t *testing.T) {
	app := newTestApp(t)
	csrf, token := csrfPair(t, app)

	rec := postForm(app, "/admin/login/", map[string]string{"password": "test-admin-pass", "_csrf": token}, csrf)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	sess := sessionCookie(t, rec)

	rec = postForm(app, "/admin/logout/", map[string]string{"_csrf": token}, csrf, sess)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cleared := sessionCookie(t, rec)
	assert.True(t, cleared.MaxAge < 0, "logout should expire the session cookie")
}

func TestProfileSecretTakesPrecedence(t *testing.T) {
	app := newTestApp(t)

	_, err := app.Store.SaveProfile(Profile{
		Name: "Ada", Title: "Engineer", Bio: "Builds analytical engines.",
		Email: "ada@example.com", Location: "London",
		AdminPassword: "profile-secret",
	})
	require.NoError(t, err)

	assert.False(t, app.checkPassword("test-admin-pass"), "config fallback must lose to the stored secret")
	assert.True(t, app.checkPassword("profile-secret"))
}

func TestCheckPasswordEmptySecret(t *testing.T) {
	app := newTestApp(t)
	app.Config.AdminPassword = ""

	assert.False(t, app.checkPassword(""), "empty secret never matches, even an empty submission")
	assert.False(t, app.checkPassword("anything"))
}

func TestLoginRateLimit(t *testing.T) {
	app := newTestApp(t)
	csrf, token := csrfPair(t, app)

	for i := 0; i < 5; i++ {
		rec := postForm(app, "/admin/login/", map[string]string{"password": "wrong", "_csrf": token}, csrf)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := postForm(app, "/admin/login/", map[string]string{"password": "wrong", "_csrf": token}, csrf)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Even the correct password is refused while the IP is limited.
	rec = postForm(app, "/admin/login/", map[string]string{"password": "test-admin-pass", "_csrf": token}, csrf)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLoginLimiterWindow(t *testing.T) {
	l := NewLoginLimiter(2, 50*time.Millisecond)

	ip := "203.0.113.7"
	assert.True(t, l.Check(ip))
	l.Record(ip)
	l.Record(ip)
	assert.False(t, l.Check(ip))

	// Attempts age out of the window.
	time.Sleep(60 * time.Millisecond)
	assert.True(t, l.Check(ip))

	// Other IPs are unaffected.
	assert.True(t, l.Check("203.0.113.8"))
}

func TestAdminRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/admin/profile/", "/admin/projects/", "/admin/certifications/", "/admin/education/", "/admin/messages/"} {
		rec := doRequest(app, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code, "%s should bounce anonymous users", path)
		assert.Equal(t, "/admin/", rec.Header().Get("Location"))
	}
}
