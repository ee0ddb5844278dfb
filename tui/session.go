// Package tui drives the interactive session: a single event loop that
// routes input to focus-managed components, broadcasts the resulting
// Actions, and folds background refresh results back into the store.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newshub/adaptors"
	"newshub/db"
	"newshub/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// AppState tracks the refresh lifecycle. A refresh request is honored only
// when Idle; at most one fetch is in flight at any time.
type AppState int

const (
	StateIdle AppState = iota
	StateLoading
)

// Focus points at the component receiving input. Search is modal and only
// entered through its shortcut; StatusHistory joins the Tab cycle while the
// history view is open.
type Focus int

const (
	FocusList Focus = iota
	FocusDetail
	FocusStatusHistory
	FocusSearch
)

const (
	searchHeight  = 4
	statusHeight  = 3
	historyHeight = 12
	tickInterval  = 250 * time.Millisecond
)

type tickMsg time.Time

type refreshDoneMsg struct {
	result models.FetchResult
}

type refreshFailedMsg struct {
	err error
}

// Session owns all components, the focus pointer, the refresh state machine
// and the store handle. The store is only ever touched from the main loop;
// fetches run in the background and report back as messages.
type Session struct {
	store    *db.DB
	adaptors []adaptors.Adaptor

	list   *List
	detail *Detail
	search *Search
	status *Status

	state  AppState
	focus  Focus
	width  int
	height int
}

func NewSession(store *db.DB, adaptorSet []adaptors.Adaptor, initial []models.NewsItem) *Session {
	s := &Session{
		store:    store,
		adaptors: adaptorSet,
		list:     NewList(initial),
		detail:   NewDetail(),
		search:   NewSearch(),
		status:   NewStatus(),
		state:    StateIdle,
		focus:    FocusList,
	}
	s.detail.SetArticle(s.list.SelectedItem())
	return s
}

// components returns the broadcast order. Detail last so it never acts on a
// selection that has not settled yet.
func (s *Session) components() []Component {
	return []Component{s.search, s.list, s.status, s.detail}
}

func (s *Session) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.layout()
		return s, nil

	case tickMsg:
		s.status.Tick()
		return s, tick()

	case refreshDoneMsg:
		s.handleRefreshDone(msg.result)
		return s, nil

	case refreshFailedMsg:
		s.status.Set(ErrorMessage(fmt.Sprintf("Refresh failed: %v", msg.err)))
		s.state = StateIdle
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// handleKey routes one input event to exactly one Action producer: global
// shortcuts first, then the focused component. Search mode swallows
// everything except escape, enter and interrupt.
func (s *Session) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return s.dispatch(Quit{})
	}

	if s.focus == FocusSearch {
		switch msg.String() {
		case "esc":
			s.search.Clear()
			s.setFocus(FocusList)
			return s.dispatch(SearchQueryChanged{Query: ""})
		case "enter":
			s.setFocus(FocusList)
			return s, nil
		default:
			return s.dispatch(s.search.HandleKey(msg))
		}
	}

	switch msg.String() {
	case "h":
		return s.dispatch(ShowStatusHistory{})
	case "esc":
		return s.dispatch(DismissStatus{})
	case "/":
		s.setFocus(FocusSearch)
		return s, nil
	case "tab":
		s.cycleFocus()
		return s, nil
	case "r":
		return s.dispatch(RefreshRequested{})
	case "q":
		return s.dispatch(Quit{})
	}

	return s.dispatch(s.focusedComponent().HandleKey(msg))
}

// dispatch broadcasts the Action to every component, runs the
// cross-component data pull, then performs session-level side effects.
func (s *Session) dispatch(action Action) (tea.Model, tea.Cmd) {
	if action == nil {
		return s, nil
	}

	for _, component := range s.components() {
		component.Update(action)
	}

	// Detail needs the full item, not just an index, so the session pulls
	// the settled selection out of the list and pushes it in.
	switch action.(type) {
	case SelectionChanged, SearchQueryChanged:
		s.detail.SetArticle(s.list.SelectedItem())
	}

	switch a := action.(type) {
	case Quit:
		return s, tea.Quit

	case ArticleOpened:
		if err := openURL(a.URL); err != nil {
			log.Errorf("Failed to open browser: %v", err)
			return s.dispatch(ShowStatus{Message: ErrorMessage(fmt.Sprintf("Failed to open browser: %v", err))})
		}

	case RefreshRequested:
		return s, s.startRefresh()

	case ShowStatusHistory:
		// Closing the history while it holds focus hands focus back.
		if !s.status.HistoryOpen() && s.focus == FocusStatusHistory {
			s.setFocus(FocusList)
		}
		s.layout()
	}

	return s, nil
}

// startRefresh transitions to Loading and spawns the aggregator run. A
// request while already Loading is silently ignored.
func (s *Session) startRefresh() tea.Cmd {
	if s.state != StateIdle {
		return nil
	}

	s.state = StateLoading
	s.status.Set(LoadingMessage("Refreshing sources..."))

	adaptorSet := s.adaptors
	return func() tea.Msg {
		result := adaptors.FetchAll(context.Background(), adaptorSet)
		if len(result.Diagnostics) == 0 {
			return refreshFailedMsg{err: errors.New("no sources enabled")}
		}
		return refreshDoneMsg{result: result}
	}
}

// handleRefreshDone persists the fetched items and reloads the displayed set
// from the store, which stays the single source of truth: dedup happens
// before display, never after.
func (s *Session) handleRefreshDone(result models.FetchResult) {
	dbErrors := 0
	for _, item := range result.Items {
		if err := s.store.Upsert(item); err != nil {
			log.WithFields(log.Fields{
				"id": item.Id,
			}).Errorf("Failed to store item: %v", err)
			dbErrors++
		}
	}

	items, err := s.store.LoadAll()
	if err != nil {
		log.Errorf("Failed to reload items: %v", err)
	} else {
		s.list.SetNews(items)
		s.detail.SetArticle(s.list.SelectedItem())
	}

	s.status.Set(refreshStatus(result.Diagnostics, len(result.Items), dbErrors))
	s.state = StateIdle
}

// refreshStatus composes the one aggregate message per refresh cycle, tiered
// by whether all, some or no sources succeeded.
func refreshStatus(diagnostics []models.FetchDiagnostic, itemCount int, dbErrors int) StatusMessage {
	succeeded := lo.CountBy(diagnostics, func(d models.FetchDiagnostic) bool {
		return d.Success
	})
	warnings := lo.SumBy(diagnostics, func(d models.FetchDiagnostic) int {
		return len(d.Warnings)
	})
	total := len(diagnostics)

	switch {
	case succeeded == 0:
		return ErrorMessage(fmt.Sprintf("Refresh failed: all %d sources failed", total))
	case succeeded < total || warnings > 0 || dbErrors > 0:
		text := fmt.Sprintf("Refreshed %d/%d sources, %d articles", succeeded, total, itemCount)
		if warnings > 0 {
			text += fmt.Sprintf(", %d warnings", warnings)
		}
		if dbErrors > 0 {
			text += fmt.Sprintf(", %d database errors", dbErrors)
		}
		return WarningMessage(text)
	default:
		return SuccessMessage(fmt.Sprintf("Refreshed %d sources, %d articles", total, itemCount))
	}
}

func (s *Session) focusedComponent() Component {
	switch s.focus {
	case FocusSearch:
		return s.search
	case FocusDetail:
		return s.detail
	case FocusStatusHistory:
		return s.status
	default:
		return s.list
	}
}

func (s *Session) setFocus(focus Focus) {
	for _, component := range s.components() {
		component.SetFocus(false)
	}
	s.focus = focus
	s.focusedComponent().SetFocus(true)
}

// cycleFocus rotates List → Detail → StatusHistory (when open) → List.
// Search never participates; it is entered through its own shortcut.
func (s *Session) cycleFocus() {
	switch s.focus {
	case FocusList:
		s.setFocus(FocusDetail)
	case FocusDetail:
		if s.status.HistoryOpen() {
			s.setFocus(FocusStatusHistory)
		} else {
			s.setFocus(FocusList)
		}
	default:
		s.setFocus(FocusList)
	}
}

func (s *Session) layout() {
	if s.width == 0 || s.height == 0 {
		return
	}

	bottomHeight := statusHeight
	if s.status.HistoryOpen() {
		bottomHeight = historyHeight
	}

	mainHeight := s.height - searchHeight - bottomHeight
	listWidth := s.width * 3 / 5

	s.search.SetSize(s.width)
	s.list.SetSize(listWidth, mainHeight)
	s.detail.SetSize(s.width-listWidth, mainHeight)
	s.status.SetSize(s.width, bottomHeight)
}

func (s *Session) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, s.list.View(), s.detail.View())
	return lipgloss.JoinVertical(lipgloss.Left, s.search.View(), main, s.status.View())
}
