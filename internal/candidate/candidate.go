// Package candidate defines the candidate record served by the talent API.
package candidate

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is the server-assigned identifier of a record. The server may encode it
// as a JSON string or a JSON number; both decode to the same opaque text.
type ID string

// String returns the identifier text.
func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts a string, a number, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
		*id = ID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
		*id = ID(n.String())
		return nil
	}
}

// MarshalJSON always encodes the identifier as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// Record is a registered candidate as returned by the server.
type Record struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	CreatedAt  string `json:"created_at"` // server-formatted, shown verbatim
}

// Candidate is the create payload. Name and Contact are required by the
// server; the client sends values as typed and lets the server decide.
type Candidate struct {
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
}

// NewCandidate builds a create payload from raw form values.
func NewCandidate(name, contact, skills, experience string) Candidate {
	return Candidate{
		Name:       name,
		Contact:    contact,
		Skills:     skills,
		Experience: experience,
	}
}

// HasSkills reports whether the optional skills field should be displayed.
func (r Record) HasSkills() bool { return r.Skills != "" }

// HasExperience reports whether the optional experience field should be displayed.
func (r Record) HasExperience() bool { return r.Experience != "" }

// HasCreatedAt reports whether the creation timestamp should be displayed.
func (r Record) HasCreatedAt() bool { return r.CreatedAt != "" }
