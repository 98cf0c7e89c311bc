package portfolio

import "sort"

// ComputeStats derives the summary counts and the technology usage histogram
// from the raw collections. A failing collection fetch contributes a zero
// count instead of an error, so a partially unavailable store still yields a
// usable summary.
func ComputeStats(s Store) Stats {
	var st Stats

	projects, err := s.ListProjects("")
	if err == nil {
		st.TotalProjects = len(projects)
		st.Technologies = TechHistogram(projects)
	}
	if certs, err := s.ListCertifications(); err == nil {
		st.TotalCertifications = len(certs)
	}
	if edu, err := s.ListEducation(); err == nil {
		st.TotalEducation = len(edu)
	}
	if msgs, err := s.ListMessages(); err == nil {
		st.TotalMessages = len(msgs)
	}
	return st
}

// TechHistogram counts, for each distinct technology string, the number of
// projects referencing it. The result is sorted by descending count; ties
// keep first-encounter order.
func TechHistogram(projects []Project) []TechCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range projects {
		for _, tech := range p.Technologies {
			if tech == "" {
				continue
			}
			if _, seen := counts[tech]; !seen {
				order = append(order, tech)
			}
			counts[tech]++
		}
	}

	out := make([]TechCount, 0, len(order))
	for _, name := range order {
		out = append(out, TechCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
