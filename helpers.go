package portfolio

import (
	"net/url"
	"path"
	"strings"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SplitList parses a comma-separated form field into trimmed values.
func SplitList(raw string) []string {
	return FilterEmpty(strings.Split(raw, ","))
}

// FilterProjects narrows a project list by category and free-text query.
// The query matches case-insensitively against title, description and any
// technology name. Empty arguments leave that dimension unfiltered.
func FilterProjects(projects []Project, category, query string) []Project {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Project
	for _, p := range projects {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" && !projectMatches(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func projectMatches(p Project, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, t := range p.Technologies {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

// FeaturedProjects returns only projects with the featured flag, capped at n.
func FeaturedProjects(projects []Project, n int) []Project {
	var out []Project
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
			if len(out) == n {
				break
			}
		}
	}
	return out
}
