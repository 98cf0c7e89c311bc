package portfolio

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyStore counts writes so tests can prove a handler never touched the
// store.
type spyStore struct {
	Store
	createMessageCalls int
}

func (s *spyStore) CreateMessage(m Message) (Message, error) {
	s.createMessageCalls++
	return s.Store.CreateMessage(m)
}

func newContactApp(t *testing.T) (*App, *spyStore) {
	t.Helper()
	inner := setupTestStore(t)
	spy := &spyStore{Store: inner}
	app := newTestApp(t, WithStore(spy))
	return app, spy
}

func validContactForm(token string) map[string]string {
	return map[string]string{
		"name":    "Visitor",
		"email":   "v@example.com",
		"subject": "Hello there",
		"message": "I would like to talk about a project.",
		"_csrf":   token,
	}
}

func TestContactSubmitStoresMessage(t *testing.T) {
	app, spy := newContactApp(t)
	csrf, token := csrfPair(t, app)

	rec := postForm(app, "/contact/", validContactForm(token), csrf)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "view:contact:ok")
	assert.Equal(t, 1, spy.createMessageCalls)

	msgs, err := app.Store.ListMessages()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hello there", msgs[0].Subject)
	assert.False(t, msgs[0].Read)
	assert.NotEmpty(t, msgs[0].CreatedAt)
}

func TestContactHoneypotSilentlyDiscards(t *testing.T) {
	app, spy := newContactApp(t)
	csrf, token := csrfPair(t, app)

	form := validContactForm(token)
	form["website"] = "https://spam.example.com"

	rec := postForm(app, "/contact/", form, csrf)

	// The bot sees exactly what a real submitter sees.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "view:contact:ok")

	// But nothing was written.
	assert.Zero(t, spy.createMessageCalls)
	msgs, err := app.Store.ListMessages()
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestContactValidationRejects(t *testing.T) {
	app, spy := newContactApp(t)
	csrf, token := csrfPair(t, app)

	form := validContactForm(token)
	form["subject"] = "Hi" // below the 5 character minimum
	form["message"] = "short"

	rec := postForm(app, "/contact/", form, csrf)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "view:contact:ok")
	assert.Zero(t, spy.createMessageCalls)
}

func TestContactSubmitIsNotDeduplicated(t *testing.T) {
	app, spy := newContactApp(t)
	csrf, token := csrfPair(t, app)

	for i := 0; i < 2; i++ {
		rec := postForm(app, "/contact/", validContactForm(token), csrf)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// Identical payloads become two distinct messages.
	assert.Equal(t, 2, spy.createMessageCalls)
	msgs, err := app.Store.ListMessages()
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}
