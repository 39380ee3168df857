package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/talentdb/internal/api"
	"github.com/zjrosen/talentdb/internal/candidate"
	"github.com/zjrosen/talentdb/internal/log"
)

// Notification texts.
const (
	msgLoadFailed    = "Failed to load the list."
	fmtCreated       = "'%s' registered!"
	fmtFound         = "Found %d candidate(s)."
	fmtNoResults     = "No results for '%s'."
	msgSearchFailed  = "Search failed."
	fmtConfirmDelete = "Really delete '%s'?"
	fmtDeleted       = "'%s' deleted."
	msgDeleteFailed  = "Delete failed."
)

// candidatesLoadedMsg carries the result of a full list fetch.
type candidatesLoadedMsg struct {
	records []candidate.Record
	err     error
}

// candidateCreatedMsg carries the result of a registration.
type candidateCreatedMsg struct {
	name string
	err  error
}

// searchResultsMsg carries the result of a keyword search.
type searchResultsMsg struct {
	keyword string
	records []candidate.Record
	err     error
}

// candidateDeletedMsg carries the result of a delete.
type candidateDeletedMsg struct {
	name string
	ok   bool
	err  error
}

func loadCandidates(ctx context.Context, svc api.Service) tea.Cmd {
	return func() tea.Msg {
		log.Debug(log.CatApp, "Loading candidates")
		records, err := svc.List(ctx)
		return candidatesLoadedMsg{records: records, err: err}
	}
}

func createCandidate(ctx context.Context, svc api.Service, c candidate.Candidate) tea.Cmd {
	return func() tea.Msg {
		log.Debug(log.CatApp, "Registering candidate", "name", c.Name)
		return candidateCreatedMsg{name: c.Name, err: svc.Create(ctx, c)}
	}
}

func searchCandidates(ctx context.Context, svc api.Service, keyword string) tea.Cmd {
	return func() tea.Msg {
		log.Debug(log.CatApp, "Searching candidates", "keyword", keyword)
		records, err := svc.Search(ctx, keyword)
		return searchResultsMsg{keyword: keyword, records: records, err: err}
	}
}

func deleteCandidate(ctx context.Context, svc api.Service, r candidate.Record) tea.Cmd {
	return func() tea.Msg {
		log.Debug(log.CatApp, "Deleting candidate", "id", r.ID, "name", r.Name)
		ok, err := svc.Delete(ctx, r.ID)
		return candidateDeletedMsg{name: r.Name, ok: ok, err: err}
	}
}

// createFailureText picks the notification for a failed registration: the
// server's message when it sent one, the generic text otherwise.
func createFailureText(err error) string {
	var appErr *api.ApplicationError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return api.DefaultCreateFailure
}
