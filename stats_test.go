package portfolio

import (
	"errors"
	"testing"
)

func TestTechHistogram(t *testing.T) {
	projects := []Project{
		{Technologies: []string{"Go", "SQLite"}},
		{Technologies: []string{"Go", "HTMX"}},
		{Technologies: []string{"Go", "SQLite", ""}},
	}

	hist := TechHistogram(projects)
	if len(hist) != 3 {
		t.Fatalf("len = %d, want 3 (empty strings skipped)", len(hist))
	}
	if hist[0].Name != "Go" || hist[0].Count != 3 {
		t.Errorf("hist[0] = %+v, want Go x3", hist[0])
	}
	// SQLite (2) beats HTMX (1); ties keep first-encounter order.
	if hist[1].Name != "SQLite" || hist[1].Count != 2 {
		t.Errorf("hist[1] = %+v, want SQLite x2", hist[1])
	}
	if hist[2].Name != "HTMX" || hist[2].Count != 1 {
		t.Errorf("hist[2] = %+v, want HTMX x1", hist[2])
	}
}

func TestTechHistogramTieOrder(t *testing.T) {
	projects := []Project{
		{Technologies: []string{"B", "A"}},
	}
	hist := TechHistogram(projects)
	if len(hist) != 2 || hist[0].Name != "B" || hist[1].Name != "A" {
		t.Errorf("hist = %+v, want first-encounter order on ties", hist)
	}
}

func TestComputeStats(t *testing.T) {
	s := setupTestStore(t)

	for i := 0; i < 2; i++ {
		if _, err := s.CreateProject(Project{Title: "p", Description: "d", Technologies: []string{"Go"}, Category: "web"}); err != nil {
			t.Fatalf("CreateProject failed: %v", err)
		}
	}
	if _, err := s.CreateCertification(Certification{Title: "c", Issuer: "i", Skills: []string{"s"}}); err != nil {
		t.Fatalf("CreateCertification failed: %v", err)
	}
	if _, err := s.CreateMessage(Message{Name: "n", Email: "n@example.com", Subject: "subject", Body: "body body body"}); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	st := ComputeStats(s)
	if st.TotalProjects != 2 {
		t.Errorf("TotalProjects = %d, want 2", st.TotalProjects)
	}
	if st.TotalCertifications != 1 {
		t.Errorf("TotalCertifications = %d, want 1", st.TotalCertifications)
	}
	if st.TotalEducation != 0 {
		t.Errorf("TotalEducation = %d, want 0", st.TotalEducation)
	}
	if st.TotalMessages != 1 {
		t.Errorf("TotalMessages = %d, want 1", st.TotalMessages)
	}
	if len(st.Technologies) != 1 || st.Technologies[0].Count != 2 {
		t.Errorf("Technologies = %+v, want Go x2", st.Technologies)
	}
}

// failStore wraps a working store and fails selected collection fetches.
type failStore struct {
	Store
	failProjects bool
	failCerts    bool
}

func (f *failStore) ListProjects(category string) ([]Project, error) {
	if f.failProjects {
		return nil, errors.New("store unavailable")
	}
	return f.Store.ListProjects(category)
}

func (f *failStore) ListCertifications() ([]Certification, error) {
	if f.failCerts {
		return nil, errors.New("store unavailable")
	}
	return f.Store.ListCertifications()
}

func TestComputeStatsPartialFailure(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.CreateProject(Project{Title: "p", Description: "a description", Technologies: []string{"Go"}, Category: "web"}); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if _, err := s.CreateEducation(Education{School: "MIT", Degree: "BSc", Field: "CS"}); err != nil {
		t.Fatalf("CreateEducation failed: %v", err)
	}
	if _, err := s.CreateMessage(Message{Name: "n", Email: "n@example.com", Subject: "subject", Body: "body body body"}); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	// Failing collections contribute zero; the rest still count.
	st := ComputeStats(&failStore{Store: s, failProjects: true, failCerts: true})
	if st.TotalProjects != 0 {
		t.Errorf("TotalProjects = %d, want 0 on fetch failure", st.TotalProjects)
	}
	if len(st.Technologies) != 0 {
		t.Errorf("Technologies = %+v, want empty on fetch failure", st.Technologies)
	}
	if st.TotalEducation != 1 {
		t.Errorf("TotalEducation = %d, want 1", st.TotalEducation)
	}
	if st.TotalMessages != 1 {
		t.Errorf("TotalMessages = %d, want 1", st.TotalMessages)
	}
}
