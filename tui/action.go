package tui

import "newshub/models"

// Action is a discrete event value used to coordinate the UI components
// without direct references between them. Exactly one component (or a global
// shortcut) produces an Action per input event; the session then broadcasts
// it to every component. A nil Action means nothing happened.
type Action interface {
	isAction()
}

// SelectionChanged reports that the list selection moved to Index.
type SelectionChanged struct {
	Index int
}

// ArticleOpened requests opening URL in the external browser.
type ArticleOpened struct {
	URL string
}

// SearchQueryChanged carries the current live search text.
type SearchQueryChanged struct {
	Query string
}

// FilterApplied carries a new filter state for the list.
type FilterApplied struct {
	Filter models.FilterState
}

// RefreshRequested asks the session to start a background refresh.
type RefreshRequested struct{}

// Quit asks the session to shut down.
type Quit struct{}

// ShowStatus sets a new current status message.
type ShowStatus struct {
	Message StatusMessage
}

// DismissStatus clears the current status message into history.
type DismissStatus struct{}

// ShowStatusHistory toggles the status history view.
type ShowStatusHistory struct{}

func (SelectionChanged) isAction()   {}
func (ArticleOpened) isAction()      {}
func (SearchQueryChanged) isAction() {}
func (FilterApplied) isAction()      {}
func (RefreshRequested) isAction()   {}
func (Quit) isAction()               {}
func (ShowStatus) isAction()         {}
func (DismissStatus) isAction()      {}
func (ShowStatusHistory) isAction()  {}
