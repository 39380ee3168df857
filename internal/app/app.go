// Package app contains the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/talentdb/internal/api"
	"github.com/zjrosen/talentdb/internal/candidate"
	"github.com/zjrosen/talentdb/internal/flags"
	"github.com/zjrosen/talentdb/internal/keys"
	"github.com/zjrosen/talentdb/internal/log"
	"github.com/zjrosen/talentdb/internal/ui/candidateform"
	"github.com/zjrosen/talentdb/internal/ui/candidatelist"
	"github.com/zjrosen/talentdb/internal/ui/help"
	"github.com/zjrosen/talentdb/internal/ui/modal"
	"github.com/zjrosen/talentdb/internal/ui/styles"
	"github.com/zjrosen/talentdb/internal/ui/toaster"
)

// Focus identifies the region receiving key input.
type Focus int

const (
	FocusForm Focus = iota
	FocusSearch
	FocusList
)

func (f Focus) String() string {
	switch f {
	case FocusForm:
		return "form"
	case FocusSearch:
		return "search"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}

// Overlay identifies what is drawn over the main view.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayConfirm
	OverlayHelp
)

const (
	appTitle     = "talentdb"
	searchTitle  = "Search"
	formHeight   = 6 // four fields plus borders
	searchHeight = 3
)

// Config holds everything the root model needs from the outside.
type Config struct {
	Service       api.Service
	Flags         *flags.Registry
	ToastDuration time.Duration
	ShowStats     bool
	// MarkdownStyle is the glamour style for the help screen; empty means auto.
	MarkdownStyle string
	// Context bounds every request issued by the UI.
	Context context.Context
}

// Model is the root application state.
type Model struct {
	ctx           context.Context
	svc           api.Service
	flags         *flags.Registry
	keys          keys.KeyMap
	toastDuration time.Duration
	showStats     bool

	form    candidateform.Model
	search  textinput.Model
	list    candidatelist.Model
	toaster toaster.Model
	confirm modal.Model
	help    help.Model

	focus         Focus
	overlay       Overlay
	pendingDelete *candidate.Record

	width  int
	height int
}

// New creates the root model with the registration form focused.
func New(cfg Config) Model {
	// Mark and Scan panic until the global zone manager exists.
	zone.NewGlobal()

	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	d := cfg.ToastDuration
	if d <= 0 {
		d = toaster.DefaultDuration
	}

	search := textinput.New()
	search.Prompt = " "
	search.Placeholder = "keyword (empty shows all)"
	search.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)

	km := keys.DefaultKeyMap()
	m := Model{
		ctx:           ctx,
		svc:           cfg.Service,
		flags:         cfg.Flags,
		keys:          km,
		toastDuration: d,
		showStats:     cfg.ShowStats,
		form:          candidateform.New(),
		search:        search,
		list:          candidatelist.New(),
		toaster:       toaster.New(),
		help:          help.New(km, cfg.MarkdownStyle),
		focus:         FocusForm,
	}
	m.form, _ = m.form.Focus(candidateform.FieldName)
	return m
}

// Init fetches the initial list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCandidates(m.ctx, m.svc), textinput.Blink)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case candidateform.SubmitMsg:
		return m, createCandidate(m.ctx, m.svc, msg.Candidate)

	case candidateform.LeaveMsg:
		if msg.Forward {
			return m.setFocus(FocusSearch)
		}
		return m.setFocus(FocusList)

	case modal.SubmitMsg:
		m.overlay = OverlayNone
		pending := m.pendingDelete
		m.pendingDelete = nil
		if pending == nil {
			return m, nil
		}
		return m, deleteCandidate(m.ctx, m.svc, *pending)

	case modal.CancelMsg:
		m.overlay = OverlayNone
		m.pendingDelete = nil
		return m, nil

	case candidatesLoadedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatApp, "Loading candidates failed", msg.err)
			return m.showToast(msgLoadFailed, toaster.StyleError)
		}
		m.list = m.list.SetRecords(msg.records)
		m.search.SetValue("")
		log.Info(log.CatApp, "Candidates loaded", "count", len(msg.records))
		return m, nil

	case candidateCreatedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatApp, "Registration failed", msg.err, "name", msg.name)
			return m.showToast(createFailureText(msg.err), toaster.StyleError)
		}
		var toastCmd, resetCmd tea.Cmd
		m, toastCmd = m.showToast(fmt.Sprintf(fmtCreated, msg.name), toaster.StyleSuccess)
		m.form, resetCmd = m.form.Reset()
		return m, tea.Batch(toastCmd, resetCmd, loadCandidates(m.ctx, m.svc))

	case searchResultsMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatApp, "Search failed", msg.err, "keyword", msg.keyword)
			return m.showToast(msgSearchFailed, toaster.StyleError)
		}
		m.list = m.list.SetRecords(msg.records)
		if len(msg.records) == 0 {
			return m.showToast(fmt.Sprintf(fmtNoResults, msg.keyword), toaster.StyleError)
		}
		return m.showToast(fmt.Sprintf(fmtFound, len(msg.records)), toaster.StyleSuccess)

	case candidateDeletedMsg:
		if msg.err != nil || !msg.ok {
			log.ErrorErr(log.CatApp, "Delete failed", msg.err, "name", msg.name)
			return m.showToast(msgDeleteFailed, toaster.StyleError)
		}
		var toastCmd tea.Cmd
		m, toastCmd = m.showToast(fmt.Sprintf(fmtDeleted, msg.name), toaster.StyleSuccess)
		return m, tea.Batch(toastCmd, loadCandidates(m.ctx, m.svc))

	case toaster.DismissMsg:
		m.toaster = m.toaster.Dismiss(msg, m.flags.Enabled(flags.FlagToastKeepLatest))
		return m, nil
	}

	// Cursor blink and other input-internal messages.
	var cmd tea.Cmd
	switch m.focus {
	case FocusForm:
		m.form, cmd = m.form.Update(msg)
	case FocusSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.overlay {
	case OverlayConfirm:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	case OverlayHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Escape, m.keys.Quit) {
			m.overlay = OverlayNone
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Refresh) {
		return m, loadCandidates(m.ctx, m.svc)
	}

	switch m.focus {
	case FocusForm:
		if key.Matches(msg, m.keys.Escape) {
			return m.setFocus(FocusList)
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case FocusSearch:
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m, m.submitSearch()
		case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.Escape):
			return m.setFocus(FocusList)
		case key.Matches(msg, m.keys.PrevField):
			return m.focusForm(candidateform.FieldExperience)
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd

	default:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.overlay = OverlayHelp
		case key.Matches(msg, m.keys.Down):
			m.list = m.list.MoveDown()
		case key.Matches(msg, m.keys.Up):
			m.list = m.list.MoveUp()
		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.list.Selected(); ok {
				m.openConfirm(r)
			}
		case key.Matches(msg, m.keys.FocusSearch), key.Matches(msg, m.keys.PrevField):
			return m.setFocus(FocusSearch)
		case key.Matches(msg, m.keys.NextField):
			return m.focusForm(candidateform.FieldName)
		}
		return m, nil
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case OverlayConfirm:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	case OverlayHelp:
		return m, nil
	}
	if r, ok := m.list.ClickedDelete(msg); ok {
		m.openConfirm(r)
	}
	return m, nil
}

// submitSearch issues a search, or a full reload when the keyword is blank.
func (m Model) submitSearch() tea.Cmd {
	keyword := strings.TrimSpace(m.search.Value())
	if keyword == "" {
		return loadCandidates(m.ctx, m.svc)
	}
	return searchCandidates(m.ctx, m.svc, keyword)
}

func (m *Model) openConfirm(r candidate.Record) {
	m.pendingDelete = &r
	m.confirm = modal.New(modal.Config{
		Title:          "Delete Candidate",
		Message:        fmt.Sprintf(fmtConfirmDelete, r.Name),
		ConfirmLabel:   "Delete",
		ConfirmVariant: modal.ButtonDanger,
	})
	m.confirm.SetSize(m.width, m.height)
	m.overlay = OverlayConfirm
	log.Debug(log.CatApp, "Confirming delete", "id", r.ID, "name", r.Name)
}

func (m Model) setFocus(f Focus) (tea.Model, tea.Cmd) {
	if f == FocusForm {
		return m.focusForm(candidateform.FieldName)
	}
	log.Debug(log.CatApp, "Focus change", "from", m.focus, "to", f)
	m.focus = f
	m.form = m.form.Blur()
	m.list = m.list.SetFocused(f == FocusList)
	if f == FocusSearch {
		return m, m.search.Focus()
	}
	m.search.Blur()
	return m, nil
}

func (m Model) focusForm(field candidateform.Field) (tea.Model, tea.Cmd) {
	log.Debug(log.CatApp, "Focus change", "from", m.focus, "to", FocusForm)
	m.focus = FocusForm
	m.search.Blur()
	m.list = m.list.SetFocused(false)
	var cmd tea.Cmd
	m.form, cmd = m.form.Focus(field)
	return m, cmd
}

// showToast displays a notification and schedules its dismissal.
func (m Model) showToast(text string, style toaster.Style) (Model, tea.Cmd) {
	m.toaster = m.toaster.Show(text, style)
	return m, toaster.ScheduleDismiss(m.toastDuration, m.toaster.Seq())
}

func (m *Model) resize() {
	m.form = m.form.SetWidth(m.width)
	m.search.Width = max(m.width-4, 4)
	m.list = m.list.SetSize(m.width, max(m.height-m.chromeHeight(), 0))
	m.confirm.SetSize(m.width, m.height)
	m.help = m.help.SetSize(m.width, m.height)
}

// chromeHeight is the number of rows used by everything except the list.
func (m Model) chromeHeight() int {
	h := 1 + formHeight + searchHeight + 1 // title, form, search, status bar
	if m.showStats {
		h++
	}
	return h
}

// View renders the application.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{
		styles.CardNameStyle.Render(appTitle),
		m.form.View(),
		m.searchView(),
	}
	if m.showStats {
		sections = append(sections, candidatelist.StatsView(m.list.Len()))
	}
	sections = append(sections, m.list.View())

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	bodyHeight := max(m.height-1, 0)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	view := body + "\n" + m.statusBar()

	switch m.overlay {
	case OverlayConfirm:
		view = m.confirm.Overlay(view)
	case OverlayHelp:
		view = m.help.Overlay(view)
	}
	view = m.toaster.Overlay(view, m.width, m.height)

	return zone.Scan(view)
}

func (m Model) searchView() string {
	hint := ""
	if m.focus == FocusSearch {
		hint = "enter to search"
	}
	section := styles.Section{Title: searchTitle, Hint: hint, Width: m.width, Focused: m.focus == FocusSearch}
	return section.Render(m.search.View())
}

func (m Model) statusBar() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	text := styles.TruncateString(strings.Join(parts, " • "), max(m.width-2, 0))
	return styles.StatusBarStyle.Render(text)
}

// Focus returns the region receiving key input.
func (m Model) Focus() Focus {
	return m.focus
}

// Overlay returns what is drawn over the main view.
func (m Model) Overlay() Overlay {
	return m.overlay
}

// Records returns the records currently displayed.
func (m Model) Records() []candidate.Record {
	return m.list.Records()
}

// Toast returns the notification state.
func (m Model) Toast() toaster.Model {
	return m.toaster
}
