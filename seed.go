package portfolio

import (
	"encoding/json"
	"fmt"
	"os"
)

// seedFile mirrors the JSON fixture layout used by document-store backends:
// one key per collection. The profile key may hold either a single object or
// a one-element list.
type seedFile struct {
	Profile        json.RawMessage `json:"profile"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Education      []Education     `json:"education"`
	Messages       []Message       `json:"messages"`
}

// Seed imports a JSON fixture into the store. Collections are appended, not
// replaced; run it against a fresh database for a clean import.
func Seed(s Store, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed: read %s: %w", path, err)
	}
	var f seedFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("seed: parse %s: %w", path, err)
	}

	if len(f.Profile) > 0 {
		p, err := decodeSeedProfile(f.Profile)
		if err != nil {
			return err
		}
		if p != nil {
			if _, err := s.SaveProfile(*p); err != nil {
				return fmt.Errorf("seed: profile: %w", err)
			}
		}
	}

	for _, p := range f.Projects {
		if _, err := s.CreateProject(p); err != nil {
			return fmt.Errorf("seed: project %q: %w", p.Title, err)
		}
	}
	for _, ct := range f.Certifications {
		if _, err := s.CreateCertification(ct); err != nil {
			return fmt.Errorf("seed: certification %q: %w", ct.Title, err)
		}
	}
	for _, e := range f.Education {
		if _, err := s.CreateEducation(e); err != nil {
			return fmt.Errorf("seed: education %q: %w", e.School, err)
		}
	}
	for _, m := range f.Messages {
		if _, err := s.CreateMessage(m); err != nil {
			return fmt.Errorf("seed: message %q: %w", m.Subject, err)
		}
	}
	return nil
}

func decodeSeedProfile(raw json.RawMessage) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(raw, &p); err == nil {
		return &p, nil
	}
	var list []Profile
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("seed: profile is neither object nor list: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}
