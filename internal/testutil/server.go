// Package testutil provides an in-memory candidate service for tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/zjrosen/talentdb/internal/candidate"
)

// ErrRequiredFields is the error body returned for a create without name or contact.
const ErrRequiredFields = "name and contact are required"

const (
	candidatesPath = "/api/candidates"
	searchPath     = "/api/candidates/search"
	timestampFmt   = "2006-01-02 15:04:05"
)

// failure is a canned response for every request with a given method.
type failure struct {
	status int
	body   string
}

// Server mimics the candidate REST service on top of httptest.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	records  []candidate.Record
	nextID   int
	now      func() time.Time
	failures map[string]failure
	requests []string
}

func newServer(t *testing.T, records []candidate.Record, now func() time.Time) *Server {
	t.Helper()
	s := &Server{
		records:  records,
		now:      now,
		failures: map[string]failure{},
	}
	for _, rec := range records {
		if n, err := strconv.Atoi(rec.ID.String()); err == nil && n > s.nextID {
			s.nextID = n
		}
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	t.Cleanup(s.srv.Close)
	return s
}

// URL is the base URL to hand to api.New.
func (s *Server) URL() string {
	return s.srv.URL
}

// Close stops the server early, e.g. to simulate an unreachable service.
func (s *Server) Close() {
	s.srv.Close()
}

// Records returns a copy of the stored records.
func (s *Server) Records() []candidate.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]candidate.Record(nil), s.records...)
}

// Requests returns every request seen so far as "METHOD path".
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// FailWith makes every request with method answer status and body.
// A status of 0 clears the failure.
func (s *Server) FailWith(method string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, method)
		return
	}
	s.failures[method] = failure{status: status, body: body}
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, r.Method+" "+r.URL.Path)
	w.Header().Set("Content-Type", "application/json")

	if f, ok := s.failures[r.Method]; ok {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == candidatesPath:
		s.writeJSON(w, http.StatusOK, s.records)
	case r.Method == http.MethodPost && r.URL.Path == candidatesPath:
		s.create(w, r)
	case r.Method == http.MethodGet && r.URL.Path == searchPath:
		s.search(w, r.URL.Query().Get("keyword"))
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, candidatesPath+"/"):
		s.delete(w, candidate.ID(strings.TrimPrefix(r.URL.Path, candidatesPath+"/")))
	default:
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	}
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var c candidate.Candidate
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	rec := candidate.Record{
		Name:       strings.TrimSpace(c.Name),
		Contact:    strings.TrimSpace(c.Contact),
		Skills:     strings.TrimSpace(c.Skills),
		Experience: strings.TrimSpace(c.Experience),
	}
	if rec.Name == "" || rec.Contact == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": ErrRequiredFields})
		return
	}

	s.nextID++
	rec.ID = candidate.ID(strconv.Itoa(s.nextID))
	rec.CreatedAt = s.now().Format(timestampFmt)
	s.records = append(s.records, rec)

	s.writeJSON(w, http.StatusCreated, map[string]any{"message": "registered", "candidate": rec})
}

// search matches the keyword case-insensitively against name and skills.
// A blank keyword matches nothing.
func (s *Server) search(w http.ResponseWriter, keyword string) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	results := make([]candidate.Record, 0)
	if keyword != "" {
		for _, rec := range s.records {
			if strings.Contains(strings.ToLower(rec.Name), keyword) ||
				strings.Contains(strings.ToLower(rec.Skills), keyword) {
				results = append(results, rec)
			}
		}
	}
	s.writeJSON(w, http.StatusOK, results)
}

// delete removes the record if present. Unknown ids still succeed.
func (s *Server) delete(w http.ResponseWriter, id candidate.ID) {
	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
