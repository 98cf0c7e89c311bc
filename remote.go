package portfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RemoteStore talks to an external document store over its REST surface.
// It is used when STORE_URL is configured, in which case the site runs
// against someone else's backend instead of the embedded SQLite store.
//
// List endpoints in the wild answer in two shapes: a bare JSON array, or a
// pagination envelope wrapping the array under "results". Normalization of
// both shapes is centralized here; nothing above this layer ever sees an
// envelope.
type RemoteStore struct {
	base   string
	client *http.Client
}

// NewRemoteStore creates a RemoteStore for the given base URL.
func NewRemoteStore(base string) *RemoteStore {
	return &RemoteStore{
		base:   strings.TrimSuffix(base, "/"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Close satisfies Store; there is nothing to release.
func (r *RemoteStore) Close() error { return nil }

// normalizeList returns the JSON array carried by body, which may be the
// bare array itself or a {"results": [...]} pagination envelope.
func normalizeList(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil
	}
	var env struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("list response: %w", err)
	}
	if env.Results == nil {
		return nil, fmt.Errorf("list response is neither an array nor a results envelope")
	}
	return env.Results, nil
}

// normalizeSingle returns the JSON object carried by body. Singleton
// resources sometimes come back as a one-element list (bare or enveloped);
// the first element is authoritative.
func normalizeSingle(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var probe struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &probe); err == nil && probe.Results != nil {
			trimmed = bytes.TrimSpace(probe.Results)
		} else {
			return json.RawMessage(trimmed), nil
		}
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("single response has unexpected shape")
	}
	var list []json.RawMessage
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("single response: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrNotFound
	}
	return list[0], nil
}

func (r *RemoteStore) url(path string) string {
	return r.base + path
}

func (r *RemoteStore) get(path string) ([]byte, error) {
	resp, err := r.client.Get(r.url(path))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// send issues a write verb with a JSON body and decodes the JSON answer into
// out when out is non-nil.
func (r *RemoteStore) send(method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, r.url(path), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// --- Profile ---

func (r *RemoteStore) GetProfile() (Profile, error) {
	body, err := r.get("/profile")
	if err != nil {
		return Profile{}, err
	}
	doc, err := normalizeSingle(body)
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

func (r *RemoteStore) SaveProfile(p Profile) (Profile, error) {
	var out Profile
	if err := r.send(http.MethodPut, "/profile", p, &out); err != nil {
		return Profile{}, err
	}
	return out, nil
}

// --- Projects ---

func (r *RemoteStore) ListProjects(category string) ([]Project, error) {
	path := "/projects"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	body, err := r.get(path)
	if err != nil {
		return nil, err
	}
	arr, err := normalizeList(body)
	if err != nil {
		return nil, err
	}
	var out []Project
	if err := json.Unmarshal(arr, &out); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return out, nil
}

func (r *RemoteStore) GetProject(id int64) (Project, error) {
	var out Project
	err := r.send(http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, &out)
	return out, err
}

func (r *RemoteStore) CreateProject(p Project) (Project, error) {
	var out Project
	err := r.send(http.MethodPost, "/projects", p, &out)
	return out, err
}

func (r *RemoteStore) UpdateProject(id int64, p Project) (Project, error) {
	var out Project
	err := r.send(http.MethodPut, fmt.Sprintf("/projects/%d", id), p, &out)
	return out, err
}

func (r *RemoteStore) DeleteProject(id int64) error {
	err := r.send(http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil)
	if err == ErrNotFound {
		return nil
	}
	return err
}

// --- Certifications ---

func (r *RemoteStore) ListCertifications() ([]Certification, error) {
	body, err := r.get("/certifications")
	if err != nil {
		return nil, err
	}
	arr, err := normalizeList(body)
	if err != nil {
		return nil, err
	}
	var out []Certification
	if err := json.Unmarshal(arr, &out); err != nil {
		return nil, fmt.Errorf("decode certifications: %w", err)
	}
	return out, nil
}

func (r *RemoteStore) GetCertification(id int64) (Certification, error) {
	var out Certification
	err := r.send(http.MethodGet, fmt.Sprintf("/certifications/%d", id), nil, &out)
	return out, err
}

func (r *RemoteStore) CreateCertification(ct Certification) (Certification, error) {
	var out Certification
	err := r.send(http.MethodPost, "/certifications", ct, &out)
	return out, err
}

func (r *RemoteStore) UpdateCertification(id int64, ct Certification) (Certification, error) {
	var out Certification
	err := r.send(http.MethodPut, fmt.Sprintf("/certifications/%d", id), ct, &out)
	return out, err
}

func (r *RemoteStore) DeleteCertification(id int64) error {
	err := r.send(http.MethodDelete, fmt.Sprintf("/certifications/%d", id), nil, nil)
	if err == ErrNotFound {
		return nil
	}
	return err
}

// --- Education ---

func (r *RemoteStore) ListEducation() ([]Education, error) {
	body, err := r.get("/education")
	if err != nil {
		return nil, err
	}
	arr, err := normalizeList(body)
	if err != nil {
		return nil, err
	}
	var out []Education
	if err := json.Unmarshal(arr, &out); err != nil {
		return nil, fmt.Errorf("decode education: %w", err)
	}
	return out, nil
}

func (r *RemoteStore) GetEducation(id int64) (Education, error) {
	var out Education
	err := r.send(http.MethodGet, fmt.Sprintf("/education/%d", id), nil, &out)
	return out, err
}

func (r *RemoteStore) CreateEducation(e Education) (Education, error) {
	var out Education
	err := r.send(http.MethodPost, "/education", e, &out)
	return out, err
}

func (r *RemoteStore) UpdateEducation(id int64, e Education) (Education, error) {
	var out Education
	err := r.send(http.MethodPut, fmt.Sprintf("/education/%d", id), e, &out)
	return out, err
}

func (r *RemoteStore) DeleteEducation(id int64) error {
	err := r.send(http.MethodDelete, fmt.Sprintf("/education/%d", id), nil, nil)
	if err == ErrNotFound {
		return nil
	}
	return err
}

// --- Messages ---

func (r *RemoteStore) ListMessages() ([]Message, error) {
	body, err := r.get("/messages")
	if err != nil {
		return nil, err
	}
	arr, err := normalizeList(body)
	if err != nil {
		return nil, err
	}
	var out []Message
	if err := json.Unmarshal(arr, &out); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return out, nil
}

func (r *RemoteStore) GetMessage(id int64) (Message, error) {
	var out Message
	err := r.send(http.MethodGet, fmt.Sprintf("/messages/%d", id), nil, &out)
	return out, err
}

func (r *RemoteStore) CreateMessage(m Message) (Message, error) {
	var out Message
	err := r.send(http.MethodPost, "/messages", m, &out)
	return out, err
}

func (r *RemoteStore) SetMessageRead(id int64, read bool) (Message, error) {
	var out Message
	err := r.send(http.MethodPatch, fmt.Sprintf("/messages/%d", id), map[string]bool{"read": read}, &out)
	return out, err
}

func (r *RemoteStore) DeleteMessage(id int64) error {
	err := r.send(http.MethodDelete, fmt.Sprintf("/messages/%d", id), nil, nil)
	if err == ErrNotFound {
		return nil
	}
	return err
}

// Stats fetches the precomputed summary, recomputing locally from the raw
// collections when the endpoint is missing or unreachable.
func (r *RemoteStore) Stats() (Stats, error) {
	body, err := r.get("/stats")
	if err == nil {
		var st Stats
		if err := json.Unmarshal(body, &st); err == nil {
			return st, nil
		}
	}
	return ComputeStats(r), nil
}
