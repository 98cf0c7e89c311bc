package portfolio

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// The honeypot field is named to look like a real input to automated form
// fillers. Humans never see it.
const honeypotField = "website"

func (a *App) handleContactPage(c echo.Context) error {
	return Render(c, a.Views.Contact(a.Config, Message{}, FieldErrors{}, "", CsrfToken(c)))
}

// handleContactSubmit validates and stores an inbound message. A non-empty
// honeypot value acknowledges success without ever touching the store, so
// bots get no signal that they were dropped.
func (a *App) handleContactSubmit(c echo.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	form := Message{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Subject: strings.TrimSpace(c.FormValue("subject")),
		Body:    strings.TrimSpace(c.FormValue("message")),
	}

	if c.FormValue(honeypotField) != "" {
		contactSubmissions.WithLabelValues("honeypot").Inc()
		return Render(c, a.Views.Contact(a.Config, Message{}, FieldErrors{}, "ok", CsrfToken(c)))
	}

	if fe := ValidateMessage(form); !fe.Ok() {
		return Render(c, a.Views.Contact(a.Config, form, fe, "", CsrfToken(c)))
	}

	if _, err := a.Store.CreateMessage(form); err != nil {
		c.Logger().Errorf("contact: store message: %v", err)
		contactSubmissions.WithLabelValues("error").Inc()
		return Render(c, a.Views.Contact(a.Config, form, FieldErrors{}, "fail", CsrfToken(c)))
	}
	contactSubmissions.WithLabelValues("ok").Inc()
	return Render(c, a.Views.Contact(a.Config, Message{}, FieldErrors{}, "ok", CsrfToken(c)))
}
