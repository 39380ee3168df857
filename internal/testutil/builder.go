package testutil

import (
	"testing"
	"time"

	"github.com/zjrosen/talentdb/internal/candidate"
)

// Builder accumulates seed data for a Server.
type Builder struct {
	t          *testing.T
	candidates []candidateData
	now        func() time.Time
}

// NewBuilder creates a builder for a test server.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, now: time.Now}
}

// WithCandidate adds a candidate with optional configuration.
func (b *Builder) WithCandidate(id string, opts ...CandidateOption) *Builder {
	c := defaultCandidate(id)
	for _, opt := range opts {
		opt(&c)
	}
	b.candidates = append(b.candidates, c)
	return b
}

// WithClock fixes the timestamp given to newly created candidates.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build starts the server with the accumulated candidates. It is closed
// when the test ends.
func (b *Builder) Build() *Server {
	b.t.Helper()
	records := make([]candidate.Record, 0, len(b.candidates))
	for _, c := range b.candidates {
		records = append(records, candidate.Record{
			ID:         candidate.ID(c.id),
			Name:       c.name,
			Contact:    c.contact,
			Skills:     c.skills,
			Experience: c.experience,
			CreatedAt:  c.createdAt.Format(timestampFmt),
		})
	}
	return newServer(b.t, records, b.now)
}
