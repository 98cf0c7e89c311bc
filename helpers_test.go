package portfolio

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":        "hello-world",
		"  Spaces  Around  ": "spaces-around",
		"Crème Brûlée!":      "cr-me-br-l-e",
		"already-slugged":    "already-slugged",
		"Trailing---":        "trailing",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilterProjects(t *testing.T) {
	projects := []Project{
		{Title: "Weather App", Description: "Forecasts", Technologies: []string{"Go", "HTMX"}, Category: "web"},
		{Title: "Pipeline", Description: "ETL for weather data", Technologies: []string{"Python"}, Category: "data"},
		{Title: "Mobile Game", Description: "A game", Technologies: []string{"Swift"}, Category: "mobile"},
	}

	if got := FilterProjects(projects, "", ""); len(got) != 3 {
		t.Errorf("no filter: len = %d, want 3", len(got))
	}
	if got := FilterProjects(projects, "web", ""); len(got) != 1 || got[0].Title != "Weather App" {
		t.Errorf("category filter = %v, want [Weather App]", got)
	}
	// Query matches title, description, and technologies, case-insensitively.
	if got := FilterProjects(projects, "", "WEATHER"); len(got) != 2 {
		t.Errorf("query filter: len = %d, want 2", len(got))
	}
	if got := FilterProjects(projects, "", "htmx"); len(got) != 1 || got[0].Title != "Weather App" {
		t.Errorf("tech query = %v, want [Weather App]", got)
	}
	if got := FilterProjects(projects, "data", "weather"); len(got) != 1 || got[0].Title != "Pipeline" {
		t.Errorf("combined filter = %v, want [Pipeline]", got)
	}
	if got := FilterProjects(projects, "web", "swift"); got != nil {
		t.Errorf("contradictory filter = %v, want nil", got)
	}
}

func TestFeaturedProjects(t *testing.T) {
	projects := []Project{
		{Title: "A", Featured: true},
		{Title: "B"},
		{Title: "C", Featured: true},
		{Title: "D", Featured: true},
		{Title: "E", Featured: true},
	}

	got := FeaturedProjects(projects, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Title != "A" || got[1].Title != "C" || got[2].Title != "D" {
		t.Errorf("order = [%s %s %s], want [A C D]", got[0].Title, got[1].Title, got[2].Title)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" Go,  SQLite ,,HTMX, ")
	want := []string{"Go", "SQLite", "HTMX"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildURL(t *testing.T) {
	if got := BuildURL("https://example.com", "projects"); got != "https://example.com/projects/" {
		t.Errorf("BuildURL = %q", got)
	}
	if got := BuildURL("https://example.com/base", "a", "b"); got != "https://example.com/base/a/b/" {
		t.Errorf("BuildURL = %q", got)
	}
}
