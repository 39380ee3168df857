package candidatelist

import "github.com/zjrosen/talentdb/internal/candidate"

// Row labels in display order.
const (
	LabelContact    = "Contact"
	LabelSkills     = "Skills"
	LabelExperience = "Experience"
	LabelRegistered = "Registered"
)

// Fixed empty-state text.
const (
	EmptyTitle = "No candidates registered yet."
	EmptyHint  = "Register a new candidate with the form above!"
)

// DeleteZonePrefix prefixes the bubblezone id of each card's delete control.
const DeleteZonePrefix = "delete:"

// Row is one labelled line of a card.
type Row struct {
	Label string
	Value string
}

// Card is the view-model of one record. Values are plain text.
type Card struct {
	ID   candidate.ID
	Name string
	// Rows always starts with Contact; Skills, Experience and Registered
	// appear only when the record has them.
	Rows []Row
}

// DeleteZone returns the zone id of the card's delete control.
func (c Card) DeleteZone() string {
	return DeleteZonePrefix + c.ID.String()
}

// BuildCards projects records to cards, one per record, in order.
func BuildCards(records []candidate.Record) []Card {
	cards := make([]Card, len(records))
	for i, r := range records {
		rows := []Row{{Label: LabelContact, Value: r.Contact}}
		if r.HasSkills() {
			rows = append(rows, Row{Label: LabelSkills, Value: r.Skills})
		}
		if r.HasExperience() {
			rows = append(rows, Row{Label: LabelExperience, Value: r.Experience})
		}
		if r.HasCreatedAt() {
			rows = append(rows, Row{Label: LabelRegistered, Value: r.CreatedAt})
		}
		cards[i] = Card{ID: r.ID, Name: r.Name, Rows: rows}
	}
	return cards
}
