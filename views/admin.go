package views

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/meiq/portfolio"
)

var adminNavItems = []navItem{
	{"Dashboard", "/admin/"},
	{"Profile", "/admin/profile/"},
	{"Projects", "/admin/projects/"},
	{"Certifications", "/admin/certifications/"},
	{"Education", "/admin/education/"},
	{"Messages", "/admin/messages/"},
}

// adminPage wraps admin panel content in the panel shell with its own nav
// and a logout button.
func adminPage(buf *bytes.Buffer, cfg portfolio.SiteConfig, title, activePath, csrf string, body func(*bytes.Buffer)) {
	page(buf, cfg, title, "", func(buf *bytes.Buffer) {
		buf.WriteString("<div class=\"admin\"><nav class=\"admin-nav\"><ul>")
		for _, item := range adminNavItems {
			cls := ""
			if item.Path == activePath {
				cls = " class=\"active\""
			}
			fmt.Fprintf(buf, "<li><a%s href=\"%s\">%s</a></li>", cls, item.Path, esc(item.Label))
		}
		buf.WriteString("</ul><form method=\"post\" action=\"/admin/logout/\">")
		csrfInput(buf, csrf)
		buf.WriteString("<button type=\"submit\" class=\"link\">Log out</button></form></nav>")
		buf.WriteString("<section class=\"admin-content\">")
		body(buf)
		buf.WriteString("</section></div>")
	})
}

// deleteButton emits an HTMX delete trigger that swaps in the refreshed
// panel page.
func deleteButton(buf *bytes.Buffer, path, label, csrf string) {
	fmt.Fprintf(buf, "<button class=\"danger\" hx-delete=\"%s\" hx-confirm=\"Delete this %s?\" "+
		"hx-headers='{\"X-CSRF-Token\":\"%s\"}' hx-target=\"body\" hx-swap=\"outerHTML\">Delete</button>",
		path, label, esc(csrf))
}

// AdminLogin renders the password prompt that fronts the whole panel.
func AdminLogin(cfg portfolio.SiteConfig, showError bool, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Admin", "", func(buf *bytes.Buffer) {
			buf.WriteString("<section class=\"admin-login\"><h1>Admin</h1>")
			if showError {
				buf.WriteString("<div class=\"notice notice-error\">Wrong password.</div>")
			}
			buf.WriteString("<form method=\"post\" action=\"/admin/login/\">")
			csrfInput(buf, csrf)
			buf.WriteString("<label>Password<input type=\"password\" name=\"password\" autofocus required></label>")
			buf.WriteString("<button type=\"submit\">Log in</button></form></section>")
		})
	})
}

// AdminDashboard shows headline counts and shortcuts into each panel.
func AdminDashboard(cfg portfolio.SiteConfig, st portfolio.Stats, unread int, msg, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		adminPage(buf, cfg, "Dashboard", "/admin/", csrf, func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Dashboard</h1>")
			notice(buf, msg)
			buf.WriteString("<ul class=\"stat-cards\">")
			fmt.Fprintf(buf, "<li><a href=\"/admin/projects/\"><strong>%d</strong> projects</a></li>", st.TotalProjects)
			fmt.Fprintf(buf, "<li><a href=\"/admin/certifications/\"><strong>%d</strong> certifications</a></li>", st.TotalCertifications)
			fmt.Fprintf(buf, "<li><a href=\"/admin/education/\"><strong>%d</strong> education entries</a></li>", st.TotalEducation)
			fmt.Fprintf(buf, "<li><a href=\"/admin/messages/\"><strong>%d</strong> messages, %d unread</a></li>", st.TotalMessages, unread)
			buf.WriteString("</ul>")
			if len(st.Technologies) > 0 {
				buf.WriteString("<h2>Technologies in use</h2><ul class=\"tags\">")
				for _, tc := range st.Technologies {
					fmt.Fprintf(buf, "<li>%s (%d)</li>", esc(tc.Name), tc.Count)
				}
				buf.WriteString("</ul>")
			}
		})
	})
}

// AdminProfile renders the profile editor.
func AdminProfile(cfg portfolio.SiteConfig, p portfolio.Profile, errs portfolio.FieldErrors, msg, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		adminPage(buf, cfg, "Profile", "/admin/profile/", csrf, func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Profile</h1>")
			notice(buf, msg)
			buf.WriteString("<form method=\"post\" action=\"/admin/profile/save/\" class=\"admin-form\">")
			csrfInput(buf, csrf)

			textInput(buf, "Name", "name", p.Name, errs)
			textInput(buf, "Title", "title", p.Title, errs)
			textArea(buf, "Bio", "bio", p.Bio, 3, errs)
			textArea(buf, "About me", "aboutMe", p.AboutMe, 6, errs)
			textInput(buf, "Email", "email", p.Email, errs)
			textInput(buf, "Phone", "phone", p.Phone, errs)
			textInput(buf, "Location", "location", p.Location, errs)
			textInput(buf, "Avatar URL", "avatar", p.Avatar, errs)
			textArea(buf, "Social links (one \"platform | url\" per line)", "socialLinks", joinSocialLinks(p.SocialLinks), 4, errs)

			buf.WriteString("<fieldset><legend>About page</legend>")
			ac := p.AboutContent
			if ac == nil {
				ac = &portfolio.AboutContent{}
			}
			textInput(buf, "Heading", "aboutTitle", ac.Title, errs)
			textInput(buf, "Subheading", "aboutSubtitle", ac.Subtitle, errs)
			textArea(buf, "Who am I", "whoAmI", ac.WhoAmI, 4, errs)
			textArea(buf, "My approach", "approach", ac.Approach, 4, errs)
			textArea(buf, "Hobby", "hobby", ac.Hobby, 4, errs)
			numberInput(buf, "Projects delivered", "statsProjects", ac.Stats.Projects)
			numberInput(buf, "Happy clients", "statsClients", ac.Stats.Clients)
			numberInput(buf, "Years of experience", "statsExperience", ac.Stats.Experience)
			textArea(buf, "Values (one \"title | description\" per line)", "values", joinValues(ac.Values), 4, errs)
			textArea(buf, "Skills (one \"category: a, b, c\" per line)", "skills", joinSkills(ac.Skills), 4, errs)
			buf.WriteString("</fieldset>")

			buf.WriteString("<label>New admin password (leave blank to keep current)")
			buf.WriteString("<input type=\"password\" name=\"adminPassword\" autocomplete=\"new-password\"></label>")

			buf.WriteString("<button type=\"submit\">Save profile</button></form>")
		})
	})
}

func textInput(buf *bytes.Buffer, label, name, value string, errs portfolio.FieldErrors) {
	fmt.Fprintf(buf, "<label>%s<input type=\"text\" name=\"%s\" value=\"%s\"></label>", esc(label), name, esc(value))
	fieldError(buf, errs, name)
}

func numberInput(buf *bytes.Buffer, label, name string, value int) {
	fmt.Fprintf(buf, "<label>%s<input type=\"number\" name=\"%s\" value=\"%d\" min=\"0\"></label>", esc(label), name, value)
}

func textArea(buf *bytes.Buffer, label, name, value string, rows int, errs portfolio.FieldErrors) {
	fmt.Fprintf(buf, "<label>%s<textarea name=\"%s\" rows=\"%d\">%s</textarea></label>", esc(label), name, rows, esc(value))
	fieldError(buf, errs, name)
}

func joinSocialLinks(links []portfolio.SocialLink) string {
	var lines []string
	for _, l := range links {
		lines = append(lines, l.Platform+" | "+l.URL)
	}
	return strings.Join(lines, "\n")
}

func joinValues(values []portfolio.ValueItem) string {
	var lines []string
	for _, v := range values {
		lines = append(lines, v.Title+" | "+v.Description)
	}
	return strings.Join(lines, "\n")
}

func joinSkills(groups []portfolio.SkillGroup) string {
	var lines []string
	for _, g := range groups {
		lines = append(lines, g.Category+": "+strings.Join(g.Items, ", "))
	}
	return strings.Join(lines, "\n")
}

// JoinList formats a string slice for a comma-separated form field.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// AdminProjects renders the project panel: form on top, list below. Edit
// buttons swap the stored record into the form over HTMX.
func AdminProjects(cfg portfolio.SiteConfig, list []portfolio.Project, form portfolio.Project, errs portfolio.FieldErrors, msg, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		adminPage(buf, cfg, "Projects", "/admin/projects/", csrf, func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Projects</h1>")
			notice(buf, msg)
			buf.WriteString("<div id=\"project-form\">")
			writeProjectForm(buf, form, errs, csrf)
			buf.WriteString("</div>")

			buf.WriteString("<table class=\"admin-table\"><thead><tr><th>Title</th><th>Category</th><th>Featured</th><th></th></tr></thead><tbody>")
			for _, p := range list {
				buf.WriteString("<tr>")
				fmt.Fprintf(buf, "<td>%s</td><td>%s</td><td>%s</td><td>", esc(p.Title), esc(p.Category), yesNo(p.Featured))
				fmt.Fprintf(buf, "<button hx-get=\"/admin/projects/%d/edit/\" hx-target=\"#project-form\" hx-swap=\"innerHTML\">Edit</button> ", p.ID)
				deleteButton(buf, fmt.Sprintf("/admin/projects/%d/", p.ID), "project", csrf)
				buf.WriteString("</td></tr>")
			}
			buf.WriteString("</tbody></table>")
		})
	})
}

// AdminProjectForm is the bare form partial, for HTMX edit swaps.
func AdminProjectForm(form portfolio.Project, errs portfolio.FieldErrors, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeProjectForm(buf, form, errs, csrf)
	})
}

func writeProjectForm(buf *bytes.Buffer, form portfolio.Project, errs portfolio.FieldErrors, csrf string) {
	heading := "New project"
	if form.ID != 0 {
		heading = "Edit project"
	}
	fmt.Fprintf(buf, "<form method=\"post\" action=\"/admin/projects/save/\" class=\"admin-form\"><h2>%s</h2>", heading)
	csrfInput(buf, csrf)
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"id\" value=\"%d\">", form.ID)
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"createdAt\" value=\"%s\">", esc(form.CreatedAt))

	textInput(buf, "Title", "title", form.Title, errs)
	textArea(buf, "Description", "description", form.Description, 4, errs)
	textInput(buf, "Image URL", "image", form.Image, errs)
	textInput(buf, "Technologies (comma separated)", "technologies", JoinList(form.Technologies), errs)
	textInput(buf, "GitHub URL", "githubUrl", form.GithubURL, errs)
	textInput(buf, "Live URL", "liveUrl", form.LiveURL, errs)

	buf.WriteString("<label>Category<select name=\"category\">")
	for _, cat := range portfolio.Categories {
		sel := ""
		if cat == form.Category {
			sel = " selected"
		}
		fmt.Fprintf(buf, "<option value=\"%s\"%s>%s</option>", cat, sel, esc(titleCase(cat)))
	}
	buf.WriteString("</select></label>")
	fieldError(buf, errs, "category")

	checked := ""
	if form.Featured {
		checked = " checked"
	}
	fmt.Fprintf(buf, "<label class=\"checkbox\"><input type=\"checkbox\" name=\"featured\" value=\"1\"%s> Featured</label>", checked)

	buf.WriteString("<button type=\"submit\">Save project</button></form>")
}

// AdminCertifications renders the certification panel.
func AdminCertifications(cfg portfolio.SiteConfig, list []portfolio.Certification, form portfolio.Certification, errs portfolio.FieldErrors, msg, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		adminPage(buf, cfg, "Certifications", "/admin/certifications/", csrf, func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Certifications</h1>")
			notice(buf, msg)
			buf.WriteString("<div id=\"certification-form\">")
			writeCertificationForm(buf, form, errs, csrf)
			buf.WriteString("</div>")

			buf.WriteString("<table class=\"admin-table\"><thead><tr><th>Title</th><th>Issuer</th><th>Issued</th><th></th></tr></thead><tbody>")
			for _, ct := range list {
				buf.WriteString("<tr>")
				fmt.Fprintf(buf, "<td>%s</td><td>%s</td><td>%s</td><td>", esc(ct.Title), esc(ct.Issuer), esc(ct.IssueDate))
				fmt.Fprintf(buf, "<button hx-get=\"/admin/certifications/%d/edit/\" hx-target=\"#certification-form\" hx-swap=\"innerHTML\">Edit</button> ", ct.ID)
				deleteButton(buf, fmt.Sprintf("/admin/certifications/%d/", ct.ID), "certification", csrf)
				buf.WriteString("</td></tr>")
			}
			buf.WriteString("</tbody></table>")
		})
	})
}

// AdminCertificationForm is the bare form partial, for HTMX edit swaps.
func AdminCertificationForm(form portfolio.Certification, errs portfolio.FieldErrors, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeCertificationForm(buf, form, errs, csrf)
	})
}

func writeCertificationForm(buf *bytes.Buffer, form portfolio.Certification, errs portfolio.FieldErrors, csrf string) {
	heading := "New certification"
	if form.ID != 0 {
		heading = "Edit certification"
	}
	fmt.Fprintf(buf, "<form method=\"post\" action=\"/admin/certifications/save/\" class=\"admin-form\"><h2>%s</h2>", heading)
	csrfInput(buf, csrf)
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"id\" value=\"%d\">", form.ID)

	textInput(buf, "Title", "title", form.Title, errs)
	textInput(buf, "Issuer", "issuer", form.Issuer, errs)
	textInput(buf, "Issue date", "issueDate", form.IssueDate, errs)
	textInput(buf, "Expiry date (optional)", "expiryDate", form.ExpiryDate, errs)
	textInput(buf, "Image URL", "image", form.Image, errs)
	textInput(buf, "Credential URL", "credentialUrl", form.CredentialURL, errs)
	textInput(buf, "Skills (comma separated)", "skills", JoinList(form.Skills), errs)

	buf.WriteString("<button type=\"submit\">Save certification</button></form>")
}

// AdminEducation renders the education panel.
func AdminEducation(cfg portfolio.SiteConfig, list []portfolio.Education, form portfolio.Education, errs portfolio.FieldErrors, msg, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		adminPage(buf, cfg, "Education", "/admin/education/", csrf, func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Education</h1>")
			notice(buf, msg)
			buf.WriteString("<div id=\"education-form\">")
			writeEducationForm(buf, form, errs, csrf)
			buf.WriteString("</div>")

			buf.WriteString("<table class=\"admin-table\"><thead><tr><th>School</th><th>Degree</th><th>Years</th><th></th></tr></thead><tbody>")
			for _, e := range list {
				buf.WriteString("<tr>")
				fmt.Fprintf(buf, "<td>%s</td><td>%s</td><td>%s &ndash; %s</td><td>", esc(e.School), esc(e.Degree), esc(e.StartDate), esc(e.EndDate))
				fmt.Fprintf(buf, "<button hx-get=\"/admin/education/%d/edit/\" hx-target=\"#education-form\" hx-swap=\"innerHTML\">Edit</button> ", e.ID)
				deleteButton(buf, fmt.Sprintf("/admin/education/%d/", e.ID), "education entry", csrf)
				buf.WriteString("</td></tr>")
			}
			buf.WriteString("</tbody></table>")
		})
	})
}

// AdminEducationForm is the bare form partial, for HTMX edit swaps.
func AdminEducationForm(form portfolio.Education, errs portfolio.FieldErrors, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeEducationForm(buf, form, errs, csrf)
	})
}

func writeEducationForm(buf *bytes.Buffer, form portfolio.Education, errs portfolio.FieldErrors, csrf string) {
	heading := "New entry"
	if form.ID != 0 {
		heading = "Edit entry"
	}
	fmt.Fprintf(buf, "<form method=\"post\" action=\"/admin/education/save/\" class=\"admin-form\"><h2>%s</h2>", heading)
	csrfInput(buf, csrf)
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"id\" value=\"%d\">", form.ID)

	textInput(buf, "School", "school", form.School, errs)
	textInput(buf, "Degree", "degree", form.Degree, errs)
	textInput(buf, "Field of study", "field", form.Field, errs)
	textInput(buf, "Start date", "startDate", form.StartDate, errs)
	textInput(buf, "End date", "endDate", form.EndDate, errs)
	textArea(buf, "Description", "description", form.Description, 3, errs)

	buf.WriteString("<button type=\"submit\">Save entry</button></form>")
}

// AdminMessages renders the inbox. Unread rows are highlighted; the toggle
// flips the read flag in place.
func AdminMessages(cfg portfolio.SiteConfig, msgs []portfolio.Message, msg, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		adminPage(buf, cfg, "Messages", "/admin/messages/", csrf, func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Messages</h1>")
			notice(buf, msg)
			if len(msgs) == 0 {
				buf.WriteString("<p class=\"empty\">No messages yet.</p>")
				return
			}
			buf.WriteString("<ul class=\"message-list\">")
			for _, m := range msgs {
				cls := "message"
				if !m.Read {
					cls = "message unread"
				}
				fmt.Fprintf(buf, "<li class=\"%s\">", cls)
				fmt.Fprintf(buf, "<h3>%s</h3>", esc(m.Subject))
				fmt.Fprintf(buf, "<p class=\"meta\">%s &lt;%s&gt; &middot; %s</p>", esc(m.Name), esc(m.Email), esc(m.CreatedAt))
				fmt.Fprintf(buf, "<p>%s</p>", esc(m.Body))

				toggle := "Mark read"
				readVal := "true"
				if m.Read {
					toggle = "Mark unread"
					readVal = "false"
				}
				fmt.Fprintf(buf, "<button hx-post=\"/admin/messages/%d/read/\" hx-vals='{\"read\":\"%s\"}' "+
					"hx-headers='{\"X-CSRF-Token\":\"%s\"}' hx-target=\"body\" hx-swap=\"outerHTML\">%s</button> ",
					m.ID, readVal, esc(csrf), toggle)
				deleteButton(buf, fmt.Sprintf("/admin/messages/%d/", m.ID), "message", csrf)
				buf.WriteString("</li>")
			}
			buf.WriteString("</ul>")
		})
	})
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
