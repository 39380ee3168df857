package testutil

import "time"

// candidateData holds all data for a seeded candidate.
type candidateData struct {
	id         string
	name       string
	contact    string
	skills     string
	experience string
	createdAt  time.Time
}

// defaultCandidate returns a candidateData with sensible defaults.
func defaultCandidate(id string) candidateData {
	return candidateData{
		id:        id,
		name:      id, // Default name is the ID
		contact:   id + "@example.com",
		createdAt: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
	}
}

// CandidateOption configures a candidate during builder setup.
type CandidateOption func(*candidateData)

// Name sets the candidate name.
func Name(name string) CandidateOption {
	return func(c *candidateData) { c.name = name }
}

// Contact sets the phone number or email.
func Contact(contact string) CandidateOption {
	return func(c *candidateData) { c.contact = contact }
}

// Skills sets the free-text skills.
func Skills(skills string) CandidateOption {
	return func(c *candidateData) { c.skills = skills }
}

// Experience sets the free-text experience.
func Experience(exp string) CandidateOption {
	return func(c *candidateData) { c.experience = exp }
}

// CreatedAt sets the registration timestamp.
func CreatedAt(t time.Time) CandidateOption {
	return func(c *candidateData) { c.createdAt = t }
}
