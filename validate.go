package portfolio

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// FieldErrors maps a form field name to its validation message. Empty map
// means the document is valid.
type FieldErrors map[string]string

// Ok reports whether no field failed validation.
func (fe FieldErrors) Ok() bool { return len(fe) == 0 }

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(s string) bool {
	return emailRe.MatchString(s)
}

// validURL accepts absolute http(s) URLs and local absolute paths, the two
// forms image references take (hosted URL or /public/uploads/... path).
func validURL(s string) bool {
	if strings.HasPrefix(s, "/") {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func checkLen(fe FieldErrors, field, value string, min, max int) {
	n := len(strings.TrimSpace(value))
	switch {
	case n < min:
		if min == 1 {
			fe[field] = field + " is required"
		} else {
			fe[field] = fmt.Sprintf("%s must be at least %d characters", field, min)
		}
	case max > 0 && n > max:
		fe[field] = fmt.Sprintf("%s must be at most %d characters", field, max)
	}
}

// ValidateProject checks an admin project submission.
func ValidateProject(p Project) FieldErrors {
	fe := FieldErrors{}
	checkLen(fe, "title", p.Title, 1, 100)
	checkLen(fe, "description", p.Description, 10, 1000)
	if len(p.Technologies) == 0 {
		fe["technologies"] = "at least one technology is required"
	}
	if !ValidCategory(p.Category) {
		fe["category"] = "category must be one of: " + strings.Join(Categories, ", ")
	}
	if p.Image != "" && !validURL(p.Image) {
		fe["image"] = "image must be a valid URL"
	}
	if p.GithubURL != "" && !validURL(p.GithubURL) {
		fe["githubUrl"] = "invalid repository URL"
	}
	if p.LiveURL != "" && !validURL(p.LiveURL) {
		fe["liveUrl"] = "invalid live demo URL"
	}
	return fe
}

// ValidateCertification checks an admin certification submission.
func ValidateCertification(ct Certification) FieldErrors {
	fe := FieldErrors{}
	checkLen(fe, "title", ct.Title, 1, 100)
	checkLen(fe, "issuer", ct.Issuer, 1, 0)
	if len(ct.Skills) == 0 {
		fe["skills"] = "at least one skill is required"
	}
	if ct.Image != "" && !validURL(ct.Image) {
		fe["image"] = "image must be a valid URL"
	}
	if ct.CredentialURL != "" && !validURL(ct.CredentialURL) {
		fe["credentialUrl"] = "invalid credential URL"
	}
	return fe
}

// ValidateEducation checks an admin education submission.
func ValidateEducation(e Education) FieldErrors {
	fe := FieldErrors{}
	checkLen(fe, "school", e.School, 1, 0)
	checkLen(fe, "degree", e.Degree, 1, 0)
	checkLen(fe, "field", e.Field, 1, 0)
	checkLen(fe, "description", e.Description, 10, 0)
	return fe
}

// ValidateMessage checks a contact form submission.
func ValidateMessage(m Message) FieldErrors {
	fe := FieldErrors{}
	checkLen(fe, "name", m.Name, 2, 100)
	if !validEmail(m.Email) {
		fe["email"] = "invalid email address"
	}
	checkLen(fe, "subject", m.Subject, 5, 100)
	checkLen(fe, "message", m.Body, 10, 5000)
	return fe
}

// ValidateProfile checks an admin profile submission.
func ValidateProfile(p Profile) FieldErrors {
	fe := FieldErrors{}
	checkLen(fe, "name", p.Name, 1, 0)
	checkLen(fe, "title", p.Title, 1, 0)
	checkLen(fe, "bio", p.Bio, 10, 0)
	if !validEmail(p.Email) {
		fe["email"] = "invalid email address"
	}
	checkLen(fe, "location", p.Location, 1, 0)
	if p.Avatar != "" && !validURL(p.Avatar) {
		fe["avatar"] = "avatar must be a valid URL"
	}
	for i, l := range p.SocialLinks {
		if !validURL(l.URL) {
			fe["socialLinks"] = fmt.Sprintf("social link %d has an invalid URL", i+1)
			break
		}
	}
	return fe
}
