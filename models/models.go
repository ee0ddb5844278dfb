package models

import "time"

// NewsItem is the canonical news record shared by all sources. Items are
// treated as immutable values once fetched; copies are handed around freely.
type NewsItem struct {
	Id        string    `json:"id"`
	Source    string    `json:"source"`
	Title     string    `json:"title"`
	Url       string    `json:"url"`
	Summary   string    `json:"summary"`
	Published time.Time `json:"published"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FetchDiagnostic summarizes one adaptor invocation for one fetch cycle.
// Built by the aggregator, consumed once for the status message, not persisted.
type FetchDiagnostic struct {
	Source   string   `json:"source"`
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

// FetchResult is the merged output of one refresh across all enabled adaptors.
type FetchResult struct {
	Items       []NewsItem
	Diagnostics []FetchDiagnostic
}

// DateRange bounds a filter to items published between From and To.
type DateRange struct {
	From time.Time
	To   time.Time
}

// FilterState narrows the visible item set. Only the source set is evaluated
// today; the date range is carried for forward compatibility.
type FilterState struct {
	Sources   []string
	DateRange *DateRange
}
