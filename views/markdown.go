package views

import (
	"regexp"
	"strings"
)

// Long-form profile text (bio, about sections) supports a trimmed inline
// markdown: bold, italic, and links. Block constructs would be overkill for
// portfolio copy.
var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic = regexp.MustCompile(`\*([^*]+)\*`)
	reLink   = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// renderInline escapes s and then applies the inline markdown subset. Links
// must be absolute http(s) URLs or local paths; anything else renders as
// plain text.
func renderInline(s string) string {
	out := esc(s)
	out = reBold.ReplaceAllString(out, "<strong>$1</strong>")
	out = reItalic.ReplaceAllString(out, "<em>$1</em>")
	out = reLink.ReplaceAllStringFunc(out, func(m string) string {
		parts := reLink.FindStringSubmatch(m)
		label, href := parts[1], parts[2]
		if !strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return label
		}
		return `<a href="` + href + `" rel="noopener">` + label + `</a>`
	})
	return out
}
