// Package views renders the portfolio site's HTML. Components are built as
// templ.ComponentFunc values writing escaped markup into a buffer, so the
// whole site ships as plain Go with no template files to load at runtime.
package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/meiq/portfolio"
)

func esc(s string) string { return html.EscapeString(s) }

// component wraps a buffer-writing function as a templ.Component.
func component(fn func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

type navItem struct {
	Label string
	Path  string
}

var navItems = []navItem{
	{"Home", "/"},
	{"About", "/about/"},
	{"Projects", "/projects/"},
	{"Certifications", "/certifications/"},
	{"Education", "/education/"},
	{"Contact", "/contact/"},
}

// page writes the outer document shell and calls body for the main content.
// activePath highlights the matching nav link.
func page(buf *bytes.Buffer, cfg portfolio.SiteConfig, title, activePath string, body func(*bytes.Buffer)) {
	fullTitle := cfg.Name
	if title != "" {
		fullTitle = title + " | " + cfg.Name
	}
	buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
	fmt.Fprintf(buf, "<title>%s</title>", esc(fullTitle))
	if cfg.Description != "" {
		fmt.Fprintf(buf, "<meta name=\"description\" content=\"%s\">", esc(cfg.Description))
	}
	fmt.Fprintf(buf, "<meta property=\"og:title\" content=\"%s\">", esc(fullTitle))
	fmt.Fprintf(buf, "<meta property=\"og:type\" content=\"website\">")
	fmt.Fprintf(buf, "<link rel=\"canonical\" href=\"%s\">", esc(portfolio.BuildURL(cfg.URL, activePath)))
	buf.WriteString("<link rel=\"icon\" href=\"/favicon.svg\" type=\"image/svg+xml\">")
	buf.WriteString("<link rel=\"stylesheet\" href=\"/public/styles.css\">")
	buf.WriteString("<script src=\"https://unpkg.com/htmx.org@1.9.12\" defer></script>")
	buf.WriteString("</head><body>")

	buf.WriteString("<header class=\"site-header\"><nav class=\"site-nav\">")
	fmt.Fprintf(buf, "<a class=\"brand\" href=\"/\">%s</a><ul>", esc(cfg.Name))
	for _, item := range navItems {
		cls := ""
		if item.Path == activePath {
			cls = " class=\"active\""
		}
		fmt.Fprintf(buf, "<li><a%s href=\"%s\">%s</a></li>", cls, item.Path, esc(item.Label))
	}
	buf.WriteString("</ul></nav></header><main class=\"site-main\">")

	body(buf)

	buf.WriteString("</main><footer class=\"site-footer\">")
	fmt.Fprintf(buf, "<p>&copy; %s</p>", esc(cfg.Author))
	buf.WriteString("</footer></body></html>")
}

// notice renders a dismissible admin flash message. Messages prefixed with
// "error:" get the error styling.
func notice(buf *bytes.Buffer, msg string) {
	if msg == "" {
		return
	}
	cls := "notice"
	if len(msg) > 6 && msg[:6] == "error:" {
		cls = "notice notice-error"
	}
	fmt.Fprintf(buf, "<div class=\"%s\" onclick=\"this.remove()\">%s</div>", cls, esc(msg))
}

// fieldError renders the validation error for a field, if any.
func fieldError(buf *bytes.Buffer, errs portfolio.FieldErrors, field string) {
	if msg, ok := errs[field]; ok {
		fmt.Fprintf(buf, "<p class=\"field-error\">%s</p>", esc(msg))
	}
}

func csrfInput(buf *bytes.Buffer, csrf string) {
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", esc(csrf))
}
