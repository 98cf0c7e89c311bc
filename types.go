package portfolio

// SocialLink is one entry in the profile's ordered social link list.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// AboutStats is the headline numbers triple shown on the about page.
type AboutStats struct {
	Projects   int `json:"projects"`
	Clients    int `json:"clients"`
	Experience int `json:"experience"`
}

// ValueItem is a single value statement on the about page.
type ValueItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SkillGroup is a named group of skills on the about page.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// AboutContent holds the long-form about page sections nested inside Profile.
type AboutContent struct {
	Title    string       `json:"title,omitempty"`
	Subtitle string       `json:"subtitle,omitempty"`
	WhoAmI   string       `json:"whoAmI"`
	Approach string       `json:"approach"`
	Hobby    string       `json:"hobby"`
	Stats    AboutStats   `json:"stats"`
	Values   []ValueItem  `json:"values"`
	Skills   []SkillGroup `json:"skills"`
}

// Profile is the singleton owner document: identity, contact fields and the
// nested about page content. AdminPassword is the stored shared secret the
// login handler verifies against; it is never serialized to the API.
type Profile struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Title         string        `json:"title"`
	Bio           string        `json:"bio"`
	AboutMe       string        `json:"aboutMe,omitempty"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Location      string        `json:"location"`
	Avatar        string        `json:"avatar"`
	SocialLinks   []SocialLink  `json:"socialLinks"`
	AboutContent  *AboutContent `json:"aboutContent,omitempty"`
	AdminPassword string        `json:"-"`
}

// Categories is the fixed project category enumeration.
var Categories = []string{"web", "mobile", "data", "other"}

// ValidCategory reports whether c is one of the fixed project categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Project is a portfolio project document.
type Project struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
	CreatedAt    string   `json:"createdAt"`
}

// Certification is an earned certification document.
type Certification struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Issuer        string   `json:"issuer"`
	IssueDate     string   `json:"issueDate"`
	ExpiryDate    string   `json:"expiryDate,omitempty"`
	Image         string   `json:"image"`
	CredentialURL string   `json:"credentialUrl,omitempty"`
	Skills        []string `json:"skills"`
}

// Education is a schooling entry. Display order follows insertion order.
type Education struct {
	ID          int64  `json:"id"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Message is an inbound contact message. CreatedAt is assigned by the store
// when the caller leaves it empty.
type Message struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"message"`
	CreatedAt string `json:"createdAt"`
	Read      bool   `json:"read"`
}

// TechCount is one bar of the technology usage histogram.
type TechCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats is the derived summary served at /api/stats.
type Stats struct {
	TotalProjects       int         `json:"totalProjects"`
	TotalCertifications int         `json:"totalCertifications"`
	TotalEducation      int         `json:"totalEducation"`
	TotalMessages       int         `json:"totalMessages"`
	Technologies        []TechCount `json:"technologies"`
}

// DefaultProfile is the bundled placeholder rendered when the store has no
// profile yet (or, in remote mode, is unreachable). Public pages fall back
// to it silently instead of erroring.
func DefaultProfile() Profile {
	return Profile{
		Name:     "Your Name",
		Title:    "Software Engineer",
		Bio:      "I build web applications and data tools. This profile has not been configured yet; log in to the admin panel to edit it.",
		Email:    "hello@example.com",
		Location: "Earth",
		SocialLinks: []SocialLink{
			{Platform: "github", URL: "https://github.com"},
		},
	}
}
