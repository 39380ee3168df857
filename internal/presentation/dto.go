package presentation

import (
	"github.com/zjrosen/talentdb/internal/candidate"
)

// CandidateDTO represents a candidate record for presentation
type CandidateDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// ResultDTO reports the outcome of a create or delete.
type ResultDTO struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// FromRecord converts a record to a DTO.
func FromRecord(r candidate.Record) CandidateDTO {
	return CandidateDTO{
		ID:         r.ID.String(),
		Name:       r.Name,
		Contact:    r.Contact,
		Skills:     r.Skills,
		Experience: r.Experience,
		CreatedAt:  r.CreatedAt,
	}
}

// FromRecords converts records to DTOs, preserving order.
// A nil slice yields an empty (non-nil) slice so the output is always an array.
func FromRecords(records []candidate.Record) []CandidateDTO {
	dtos := make([]CandidateDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, FromRecord(r))
	}
	return dtos
}
