package portfolio

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = sql.ErrNoRows

// Store is the document store boundary: five collections with CRUD plus the
// derived stats summary. The embedded SQLiteStore and the RemoteStore both
// satisfy it, so handlers never know which backend they are talking to.
type Store interface {
	GetProfile() (Profile, error)
	SaveProfile(p Profile) (Profile, error)

	ListProjects(category string) ([]Project, error)
	GetProject(id int64) (Project, error)
	CreateProject(p Project) (Project, error)
	UpdateProject(id int64, p Project) (Project, error)
	DeleteProject(id int64) error

	ListCertifications() ([]Certification, error)
	GetCertification(id int64) (Certification, error)
	CreateCertification(ct Certification) (Certification, error)
	UpdateCertification(id int64, ct Certification) (Certification, error)
	DeleteCertification(id int64) error

	ListEducation() ([]Education, error)
	GetEducation(id int64) (Education, error)
	CreateEducation(e Education) (Education, error)
	UpdateEducation(id int64, e Education) (Education, error)
	DeleteEducation(id int64) error

	ListMessages() ([]Message, error)
	GetMessage(id int64) (Message, error)
	CreateMessage(m Message) (Message, error)
	SetMessageRead(id int64, read bool) (Message, error)
	DeleteMessage(id int64) error

	Stats() (Stats, error)
	Close() error
}

// SQLiteStore is the embedded document store. Collections live in one table
// each; list-valued fields (technologies, skills, social links, the nested
// about content) are stored as JSON text columns.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and runs schema migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access, set a busy timeout
	// so writers wait instead of returning SQLITE_BUSY immediately, and tune
	// performance: synchronous=NORMAL is safe with WAL and avoids an fsync
	// per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS profile (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    name TEXT NOT NULL,
    title TEXT NOT NULL,
    bio TEXT NOT NULL,
    about_me TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    avatar TEXT NOT NULL DEFAULT '',
    social_links TEXT NOT NULL DEFAULT '[]',
    about_content TEXT NOT NULL DEFAULT '',
    admin_password TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT '',
    technologies TEXT NOT NULL DEFAULT '[]',
    github_url TEXT NOT NULL DEFAULT '',
    live_url TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT 'other',
    featured INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS certifications (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    issuer TEXT NOT NULL,
    issue_date TEXT NOT NULL DEFAULT '',
    expiry_date TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    credential_url TEXT NOT NULL DEFAULT '',
    skills TEXT NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS education (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    school TEXT NOT NULL,
    degree TEXT NOT NULL,
    field TEXT NOT NULL DEFAULT '',
    start_date TEXT NOT NULL DEFAULT '',
    end_date TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    subject TEXT NOT NULL,
    body TEXT NOT NULL,
    created_at TEXT NOT NULL,
    read INTEGER NOT NULL DEFAULT 0
);
`)
	return err
}

func encodeJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// --- Profile (singleton) ---

// GetProfile returns the single profile document, or ErrNotFound when the
// store has never been configured.
func (s *SQLiteStore) GetProfile() (Profile, error) {
	var p Profile
	var socialLinks, aboutContent string
	err := s.db.QueryRow(`SELECT id, name, title, bio, about_me, email, phone, location, avatar, social_links, about_content, admin_password FROM profile WHERE id = 1`).
		Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &p.AboutMe, &p.Email, &p.Phone, &p.Location, &p.Avatar, &socialLinks, &aboutContent, &p.AdminPassword)
	if err != nil {
		return Profile{}, err
	}
	if socialLinks != "" {
		_ = json.Unmarshal([]byte(socialLinks), &p.SocialLinks)
	}
	if aboutContent != "" {
		var ac AboutContent
		if err := json.Unmarshal([]byte(aboutContent), &ac); err == nil {
			p.AboutContent = &ac
		}
	}
	return p, nil
}

// SaveProfile upserts the singleton profile. An empty AdminPassword on the
// incoming document preserves the stored secret so a profile edit can never
// silently clear the login credential.
func (s *SQLiteStore) SaveProfile(p Profile) (Profile, error) {
	if p.AdminPassword == "" {
		if existing, err := s.GetProfile(); err == nil {
			p.AdminPassword = existing.AdminPassword
		}
	}
	aboutContent := ""
	if p.AboutContent != nil {
		aboutContent = encodeJSON(p.AboutContent)
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO profile (id, name, title, bio, about_me, email, phone, location, avatar, social_links, about_content, admin_password)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Title, p.Bio, p.AboutMe, p.Email, p.Phone, p.Location, p.Avatar, encodeJSON(p.SocialLinks), aboutContent, p.AdminPassword)
	if err != nil {
		return Profile{}, err
	}
	p.ID = 1
	return p, nil
}

// --- Projects ---

const projectCols = `id, title, description, image, technologies, github_url, live_url, category, featured, created_at`

func scanProject(row interface{ Scan(...any) error }) (Project, error) {
	var p Project
	var techs string
	var featured int
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &techs, &p.GithubURL, &p.LiveURL, &p.Category, &featured, &p.CreatedAt)
	if err != nil {
		return Project{}, err
	}
	p.Technologies = decodeStrings(techs)
	p.Featured = featured == 1
	return p, nil
}

// ListProjects returns projects newest first. A non-empty category narrows
// the result to that category.
func (s *SQLiteStore) ListProjects(category string) ([]Project, error) {
	var rows *sql.Rows
	var err error
	if category == "" {
		rows, err = s.db.Query(`SELECT ` + projectCols + ` FROM projects ORDER BY created_at DESC, id DESC`)
	} else {
		rows, err = s.db.Query(`SELECT `+projectCols+` FROM projects WHERE category = ? ORDER BY created_at DESC, id DESC`, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *SQLiteStore) GetProject(id int64) (Project, error) {
	row := s.db.QueryRow(`SELECT `+projectCols+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

// CreateProject inserts a project, assigning the creation timestamp when the
// caller did not supply one.
func (s *SQLiteStore) CreateProject(p Project) (Project, error) {
	if p.CreatedAt == "" {
		p.CreatedAt = nowStamp()
	}
	res, err := s.db.Exec(`INSERT INTO projects (title, description, image, technologies, github_url, live_url, category, featured, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, p.Image, encodeJSON(p.Technologies), p.GithubURL, p.LiveURL, p.Category, boolInt(p.Featured), p.CreatedAt)
	if err != nil {
		return Project{}, err
	}
	p.ID, err = res.LastInsertId()
	return p, err
}

// UpdateProject replaces the stored project. The original creation timestamp
// is preserved when the incoming document omits it. Last write wins.
func (s *SQLiteStore) UpdateProject(id int64, p Project) (Project, error) {
	if p.CreatedAt == "" {
		if existing, err := s.GetProject(id); err == nil {
			p.CreatedAt = existing.CreatedAt
		} else {
			p.CreatedAt = nowStamp()
		}
	}
	res, err := s.db.Exec(`UPDATE projects SET title = ?, description = ?, image = ?, technologies = ?, github_url = ?, live_url = ?, category = ?, featured = ?, created_at = ? WHERE id = ?`,
		p.Title, p.Description, p.Image, encodeJSON(p.Technologies), p.GithubURL, p.LiveURL, p.Category, boolInt(p.Featured), p.CreatedAt, id)
	if err != nil {
		return Project{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Project{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (s *SQLiteStore) DeleteProject(id int64) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	return err
}

// --- Certifications ---

const certCols = `id, title, issuer, issue_date, expiry_date, image, credential_url, skills`

func scanCertification(row interface{ Scan(...any) error }) (Certification, error) {
	var ct Certification
	var skills string
	err := row.Scan(&ct.ID, &ct.Title, &ct.Issuer, &ct.IssueDate, &ct.ExpiryDate, &ct.Image, &ct.CredentialURL, &skills)
	if err != nil {
		return Certification{}, err
	}
	ct.Skills = decodeStrings(skills)
	return ct, nil
}

// ListCertifications returns certifications newest first.
func (s *SQLiteStore) ListCertifications() ([]Certification, error) {
	rows, err := s.db.Query(`SELECT ` + certCols + ` FROM certifications ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []Certification
	for rows.Next() {
		ct, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, ct)
	}
	return certs, rows.Err()
}

func (s *SQLiteStore) GetCertification(id int64) (Certification, error) {
	row := s.db.QueryRow(`SELECT `+certCols+` FROM certifications WHERE id = ?`, id)
	return scanCertification(row)
}

func (s *SQLiteStore) CreateCertification(ct Certification) (Certification, error) {
	res, err := s.db.Exec(`INSERT INTO certifications (title, issuer, issue_date, expiry_date, image, credential_url, skills) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ct.Title, ct.Issuer, ct.IssueDate, ct.ExpiryDate, ct.Image, ct.CredentialURL, encodeJSON(ct.Skills))
	if err != nil {
		return Certification{}, err
	}
	ct.ID, err = res.LastInsertId()
	return ct, err
}

func (s *SQLiteStore) UpdateCertification(id int64, ct Certification) (Certification, error) {
	res, err := s.db.Exec(`UPDATE certifications SET title = ?, issuer = ?, issue_date = ?, expiry_date = ?, image = ?, credential_url = ?, skills = ? WHERE id = ?`,
		ct.Title, ct.Issuer, ct.IssueDate, ct.ExpiryDate, ct.Image, ct.CredentialURL, encodeJSON(ct.Skills), id)
	if err != nil {
		return Certification{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Certification{}, ErrNotFound
	}
	ct.ID = id
	return ct, nil
}

func (s *SQLiteStore) DeleteCertification(id int64) error {
	_, err := s.db.Exec(`DELETE FROM certifications WHERE id = ?`, id)
	return err
}

// --- Education ---

const eduCols = `id, school, degree, field, start_date, end_date, description`

func scanEducation(row interface{ Scan(...any) error }) (Education, error) {
	var e Education
	err := row.Scan(&e.ID, &e.School, &e.Degree, &e.Field, &e.StartDate, &e.EndDate, &e.Description)
	return e, err
}

// ListEducation returns entries in insertion order. The display order is the
// order the admin created them in, never re-sorted.
func (s *SQLiteStore) ListEducation() ([]Education, error) {
	rows, err := s.db.Query(`SELECT ` + eduCols + ` FROM education ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) GetEducation(id int64) (Education, error) {
	row := s.db.QueryRow(`SELECT `+eduCols+` FROM education WHERE id = ?`, id)
	return scanEducation(row)
}

func (s *SQLiteStore) CreateEducation(e Education) (Education, error) {
	res, err := s.db.Exec(`INSERT INTO education (school, degree, field, start_date, end_date, description) VALUES (?, ?, ?, ?, ?, ?)`,
		e.School, e.Degree, e.Field, e.StartDate, e.EndDate, e.Description)
	if err != nil {
		return Education{}, err
	}
	e.ID, err = res.LastInsertId()
	return e, err
}

func (s *SQLiteStore) UpdateEducation(id int64, e Education) (Education, error) {
	res, err := s.db.Exec(`UPDATE education SET school = ?, degree = ?, field = ?, start_date = ?, end_date = ?, description = ? WHERE id = ?`,
		e.School, e.Degree, e.Field, e.StartDate, e.EndDate, e.Description, id)
	if err != nil {
		return Education{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Education{}, ErrNotFound
	}
	e.ID = id
	return e, nil
}

func (s *SQLiteStore) DeleteEducation(id int64) error {
	_, err := s.db.Exec(`DELETE FROM education WHERE id = ?`, id)
	return err
}

// --- Messages ---

const messageCols = `id, name, email, subject, body, created_at, read`

func scanMessage(row interface{ Scan(...any) error }) (Message, error) {
	var m Message
	var read int
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.CreatedAt, &read)
	if err != nil {
		return Message{}, err
	}
	m.Read = read == 1
	return m, nil
}

// ListMessages returns messages newest first.
func (s *SQLiteStore) ListMessages() ([]Message, error) {
	rows, err := s.db.Query(`SELECT ` + messageCols + ` FROM messages ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (s *SQLiteStore) GetMessage(id int64) (Message, error) {
	row := s.db.QueryRow(`SELECT `+messageCols+` FROM messages WHERE id = ?`, id)
	return scanMessage(row)
}

// CreateMessage inserts a message. The creation timestamp is assigned when
// the caller did not carry one, so fixture imports keep their original
// timestamps and read flags. Contact intake builds its message from the form
// fields alone and therefore always gets the assigned timestamp and
// read=false.
func (s *SQLiteStore) CreateMessage(m Message) (Message, error) {
	if m.CreatedAt == "" {
		m.CreatedAt = nowStamp()
	}
	res, err := s.db.Exec(`INSERT INTO messages (name, email, subject, body, created_at, read) VALUES (?, ?, ?, ?, ?, ?)`,
		m.Name, m.Email, m.Subject, m.Body, m.CreatedAt, boolInt(m.Read))
	if err != nil {
		return Message{}, err
	}
	m.ID, err = res.LastInsertId()
	return m, err
}

// SetMessageRead toggles the read flag and returns the updated message.
func (s *SQLiteStore) SetMessageRead(id int64, read bool) (Message, error) {
	res, err := s.db.Exec(`UPDATE messages SET read = ? WHERE id = ?`, boolInt(read), id)
	if err != nil {
		return Message{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Message{}, ErrNotFound
	}
	return s.GetMessage(id)
}

func (s *SQLiteStore) DeleteMessage(id int64) error {
	_, err := s.db.Exec(`DELETE FROM messages WHERE id = ?`, id)
	return err
}

// Stats computes the derived summary from the live collections.
func (s *SQLiteStore) Stats() (Stats, error) {
	return ComputeStats(s), nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
