package views

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/meiq/portfolio"
)

// Home renders the landing page: profile card, headline stats, and up to
// three featured projects.
func Home(cfg portfolio.SiteConfig, p portfolio.Profile, featured []portfolio.Project, st portfolio.Stats) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "", "/", func(buf *bytes.Buffer) {
			buf.WriteString("<section class=\"hero\">")
			// The card refreshes itself so edits from the admin panel
			// appear without a page reload.
			buf.WriteString("<div id=\"profile-card\" hx-get=\"/partials/profile-card/\" hx-trigger=\"every 5s\" hx-swap=\"innerHTML\">")
			writeProfileCard(buf, p)
			buf.WriteString("</div></section>")

			buf.WriteString("<section class=\"stats\"><ul>")
			fmt.Fprintf(buf, "<li><strong>%d</strong> projects</li>", st.TotalProjects)
			fmt.Fprintf(buf, "<li><strong>%d</strong> certifications</li>", st.TotalCertifications)
			fmt.Fprintf(buf, "<li><strong>%d</strong> education entries</li>", st.TotalEducation)
			buf.WriteString("</ul></section>")

			if len(featured) > 0 {
				buf.WriteString("<section class=\"featured\"><h2>Featured Projects</h2>")
				writeProjectsGrid(buf, featured)
				buf.WriteString("<p><a class=\"button\" href=\"/projects/\">All projects</a></p></section>")
			}
		})
	})
}

// ProfileCard renders the bare profile card for HTMX polling.
func ProfileCard(p portfolio.Profile) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeProfileCard(buf, p)
	})
}

func writeProfileCard(buf *bytes.Buffer, p portfolio.Profile) {
	buf.WriteString("<article class=\"profile-card\">")
	if p.Avatar != "" {
		fmt.Fprintf(buf, "<img class=\"avatar\" src=\"%s\" alt=\"%s\">", esc(p.Avatar), esc(p.Name))
	}
	fmt.Fprintf(buf, "<h1>%s</h1>", esc(p.Name))
	fmt.Fprintf(buf, "<p class=\"tagline\">%s</p>", esc(p.Title))
	if p.Bio != "" {
		fmt.Fprintf(buf, "<p class=\"bio\">%s</p>", esc(p.Bio))
	}
	if p.Location != "" {
		fmt.Fprintf(buf, "<p class=\"location\">%s</p>", esc(p.Location))
	}
	if len(p.SocialLinks) > 0 {
		buf.WriteString("<ul class=\"social\">")
		for _, l := range p.SocialLinks {
			fmt.Fprintf(buf, "<li><a href=\"%s\" rel=\"me noopener\" target=\"_blank\">%s</a></li>", esc(l.URL), esc(l.Platform))
		}
		buf.WriteString("</ul>")
	}
	buf.WriteString("</article>")
}

// About renders the about page from the profile's nested about content,
// falling back to the plain bio when no structured content is set.
func About(cfg portfolio.SiteConfig, p portfolio.Profile) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "About", "/about/", func(buf *bytes.Buffer) {
			ac := p.AboutContent
			if ac == nil {
				fmt.Fprintf(buf, "<h1>About %s</h1>", esc(p.Name))
				if p.AboutMe != "" {
					writeParagraphs(buf, p.AboutMe)
				} else {
					writeParagraphs(buf, p.Bio)
				}
				return
			}

			fmt.Fprintf(buf, "<h1>%s</h1>", esc(ac.Title))
			if ac.Subtitle != "" {
				fmt.Fprintf(buf, "<p class=\"subtitle\">%s</p>", esc(ac.Subtitle))
			}

			writeAboutSection(buf, "Who am I", ac.WhoAmI)
			writeAboutSection(buf, "My approach", ac.Approach)
			writeAboutSection(buf, "Beyond the keyboard", ac.Hobby)

			if ac.Stats != (portfolio.AboutStats{}) {
				buf.WriteString("<section class=\"stats\"><ul>")
				fmt.Fprintf(buf, "<li><strong>%d</strong> projects delivered</li>", ac.Stats.Projects)
				fmt.Fprintf(buf, "<li><strong>%d</strong> happy clients</li>", ac.Stats.Clients)
				fmt.Fprintf(buf, "<li><strong>%d</strong> years of experience</li>", ac.Stats.Experience)
				buf.WriteString("</ul></section>")
			}

			if len(ac.Values) > 0 {
				buf.WriteString("<section class=\"values\"><h2>What I value</h2><dl>")
				for _, v := range ac.Values {
					fmt.Fprintf(buf, "<dt>%s</dt><dd>%s</dd>", esc(v.Title), esc(v.Description))
				}
				buf.WriteString("</dl></section>")
			}

			if len(ac.Skills) > 0 {
				buf.WriteString("<section class=\"skills\"><h2>Skills</h2>")
				for _, g := range ac.Skills {
					fmt.Fprintf(buf, "<h3>%s</h3><ul class=\"tags\">", esc(g.Category))
					for _, item := range g.Items {
						fmt.Fprintf(buf, "<li>%s</li>", esc(item))
					}
					buf.WriteString("</ul>")
				}
				buf.WriteString("</section>")
			}
		})
	})
}

func writeAboutSection(buf *bytes.Buffer, heading, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Fprintf(buf, "<section><h2>%s</h2>", esc(heading))
	writeParagraphs(buf, body)
	buf.WriteString("</section>")
}

// writeParagraphs splits text on blank lines into <p> blocks, applying the
// inline markdown subset.
func writeParagraphs(buf *bytes.Buffer, text string) {
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para != "" {
			fmt.Fprintf(buf, "<p>%s</p>", renderInline(para))
		}
	}
}

// Projects renders the project listing with a category filter bar and search
// box. The grid itself swaps in place over HTMX as filters change.
func Projects(cfg portfolio.SiteConfig, projects []portfolio.Project, activeCategory, query string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Projects", "/projects/", func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Projects</h1>")

			buf.WriteString("<nav class=\"filter-bar\"><ul>")
			writeCategoryLink(buf, "All", "", activeCategory)
			for _, cat := range portfolio.Categories {
				writeCategoryLink(buf, titleCase(cat), cat, activeCategory)
			}
			buf.WriteString("</ul>")
			fmt.Fprintf(buf, "<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search projects\" "+
				"hx-get=\"/projects/?partial=grid&amp;category=%s\" hx-trigger=\"input changed delay:300ms\" "+
				"hx-target=\"#projects-grid\" hx-swap=\"innerHTML\">",
				esc(query), esc(activeCategory))
			buf.WriteString("</nav>")

			buf.WriteString("<div id=\"projects-grid\">")
			writeProjectsGrid(buf, projects)
			buf.WriteString("</div>")
		})
	})
}

func writeCategoryLink(buf *bytes.Buffer, label, cat, active string) {
	cls := ""
	if cat == active {
		cls = " class=\"active\""
	}
	href := "/projects/"
	hxGet := "/projects/?partial=grid"
	if cat != "" {
		href = "/projects/?category=" + cat
		hxGet = "/projects/?partial=grid&amp;category=" + cat
	}
	fmt.Fprintf(buf, "<li><a%s href=\"%s\" hx-get=\"%s\" hx-target=\"#projects-grid\" hx-swap=\"innerHTML\" hx-push-url=\"%s\">%s</a></li>",
		cls, href, hxGet, href, esc(label))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ProjectsGrid renders only the card grid, for HTMX partial swaps.
func ProjectsGrid(projects []portfolio.Project) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeProjectsGrid(buf, projects)
	})
}

func writeProjectsGrid(buf *bytes.Buffer, projects []portfolio.Project) {
	if len(projects) == 0 {
		buf.WriteString("<p class=\"empty\">No projects match.</p>")
		return
	}
	buf.WriteString("<ul class=\"card-grid\">")
	for _, p := range projects {
		buf.WriteString("<li class=\"card\">")
		if p.Image != "" {
			fmt.Fprintf(buf, "<img src=\"%s\" alt=\"%s\" loading=\"lazy\">", esc(p.Image), esc(p.Title))
		}
		fmt.Fprintf(buf, "<h3>%s</h3>", esc(p.Title))
		if p.Featured {
			buf.WriteString("<span class=\"badge\">Featured</span>")
		}
		fmt.Fprintf(buf, "<p>%s</p>", esc(p.Description))
		if len(p.Technologies) > 0 {
			buf.WriteString("<ul class=\"tags\">")
			for _, t := range p.Technologies {
				fmt.Fprintf(buf, "<li>%s</li>", esc(t))
			}
			buf.WriteString("</ul>")
		}
		buf.WriteString("<p class=\"card-links\">")
		if p.GithubURL != "" {
			fmt.Fprintf(buf, "<a href=\"%s\" rel=\"noopener\" target=\"_blank\">Source</a> ", esc(p.GithubURL))
		}
		if p.LiveURL != "" {
			fmt.Fprintf(buf, "<a href=\"%s\" rel=\"noopener\" target=\"_blank\">Live</a>", esc(p.LiveURL))
		}
		buf.WriteString("</p></li>")
	}
	buf.WriteString("</ul>")
}

// Certifications renders the certification list.
func Certifications(cfg portfolio.SiteConfig, certs []portfolio.Certification) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Certifications", "/certifications/", func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Certifications</h1>")
			if len(certs) == 0 {
				buf.WriteString("<p class=\"empty\">Nothing here yet.</p>")
				return
			}
			buf.WriteString("<ul class=\"card-grid\">")
			for _, ct := range certs {
				buf.WriteString("<li class=\"card\">")
				if ct.Image != "" {
					fmt.Fprintf(buf, "<img src=\"%s\" alt=\"%s\" loading=\"lazy\">", esc(ct.Image), esc(ct.Title))
				}
				fmt.Fprintf(buf, "<h3>%s</h3>", esc(ct.Title))
				fmt.Fprintf(buf, "<p class=\"issuer\">%s</p>", esc(ct.Issuer))
				fmt.Fprintf(buf, "<p class=\"dates\">Issued %s", esc(ct.IssueDate))
				if ct.ExpiryDate != "" {
					fmt.Fprintf(buf, " &middot; expires %s", esc(ct.ExpiryDate))
				}
				buf.WriteString("</p>")
				if len(ct.Skills) > 0 {
					buf.WriteString("<ul class=\"tags\">")
					for _, s := range ct.Skills {
						fmt.Fprintf(buf, "<li>%s</li>", esc(s))
					}
					buf.WriteString("</ul>")
				}
				if ct.CredentialURL != "" {
					fmt.Fprintf(buf, "<p class=\"card-links\"><a href=\"%s\" rel=\"noopener\" target=\"_blank\">Verify credential</a></p>", esc(ct.CredentialURL))
				}
				buf.WriteString("</li>")
			}
			buf.WriteString("</ul>")
		})
	})
}

// Education renders the education timeline in stored order.
func Education(cfg portfolio.SiteConfig, entries []portfolio.Education) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Education", "/education/", func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Education</h1>")
			if len(entries) == 0 {
				buf.WriteString("<p class=\"empty\">Nothing here yet.</p>")
				return
			}
			buf.WriteString("<ol class=\"timeline\">")
			for _, e := range entries {
				buf.WriteString("<li>")
				fmt.Fprintf(buf, "<h3>%s</h3>", esc(e.School))
				fmt.Fprintf(buf, "<p class=\"degree\">%s, %s</p>", esc(e.Degree), esc(e.Field))
				fmt.Fprintf(buf, "<p class=\"dates\">%s &ndash; %s</p>", esc(e.StartDate), esc(e.EndDate))
				if e.Description != "" {
					fmt.Fprintf(buf, "<p>%s</p>", esc(e.Description))
				}
				buf.WriteString("</li>")
			}
			buf.WriteString("</ol>")
		})
	})
}

// Contact renders the contact form. result is "" (fresh form), "ok"
// (acknowledged), or "fail" (store error, form preserved).
func Contact(cfg portfolio.SiteConfig, form portfolio.Message, errs portfolio.FieldErrors, result, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Contact", "/contact/", func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Get in touch</h1>")
			switch result {
			case "ok":
				buf.WriteString("<div class=\"notice\">Thanks! Your message has been sent.</div>")
				return
			case "fail":
				buf.WriteString("<div class=\"notice notice-error\">Something went wrong. Please try again in a moment.</div>")
			}

			buf.WriteString("<form class=\"contact-form\" method=\"post\" action=\"/contact/\">")
			csrfInput(buf, csrf)

			// Hidden from humans, irresistible to bots.
			buf.WriteString("<div class=\"hp-field\" aria-hidden=\"true\">")
			buf.WriteString("<label>Website<input type=\"text\" name=\"website\" tabindex=\"-1\" autocomplete=\"off\"></label>")
			buf.WriteString("</div>")

			fmt.Fprintf(buf, "<label>Name<input type=\"text\" name=\"name\" value=\"%s\" required></label>", esc(form.Name))
			fieldError(buf, errs, "name")
			fmt.Fprintf(buf, "<label>Email<input type=\"email\" name=\"email\" value=\"%s\" required></label>", esc(form.Email))
			fieldError(buf, errs, "email")
			fmt.Fprintf(buf, "<label>Subject<input type=\"text\" name=\"subject\" value=\"%s\" required></label>", esc(form.Subject))
			fieldError(buf, errs, "subject")
			fmt.Fprintf(buf, "<label>Message<textarea name=\"message\" rows=\"8\" required>%s</textarea></label>", esc(form.Body))
			fieldError(buf, errs, "message")

			buf.WriteString("<button type=\"submit\">Send message</button></form>")
		})
	})
}

// NotFound is the 404 page.
func NotFound(cfg portfolio.SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Not Found", "", func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Page not found</h1><p>The page you were looking for does not exist.</p><p><a href=\"/\">Back home</a></p>")
		})
	})
}

// ServerError is the 500 page.
func ServerError(cfg portfolio.SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Server Error", "", func(buf *bytes.Buffer) {
			buf.WriteString("<h1>Something broke</h1><p>An unexpected error occurred. Please try again later.</p><p><a href=\"/\">Back home</a></p>")
		})
	})
}
