package tui

import (
	"fmt"
	"strings"
	"time"

	"newshub/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

// List shows the filtered news items and owns the selection. It re-filters
// whenever the search query or filter state changes.
type List struct {
	allNews  []models.NewsItem
	filtered []models.NewsItem
	query    string
	filter   models.FilterState
	selected int
	focused  bool
	width    int
	height   int
}

func NewList(news []models.NewsItem) *List {
	l := &List{focused: true}
	l.SetNews(news)
	return l
}

// SetNews replaces the item set wholesale and rebuilds the filtered view.
func (l *List) SetNews(news []models.NewsItem) {
	l.allNews = news
	l.applyFilter()
	l.selected = 0
}

func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// SelectedItem returns a copy of the currently selected item, or nil when
// the filtered view is empty.
func (l *List) SelectedItem() *models.NewsItem {
	if l.selected >= len(l.filtered) {
		return nil
	}
	item := l.filtered[l.selected]
	return &item
}

func (l *List) applyFilter() {
	query := strings.ToLower(l.query)
	l.filtered = lo.Filter(l.allNews, func(item models.NewsItem, _ int) bool {
		return l.matchesSources(item) && matchesQuery(item, query)
	})

	if l.selected >= len(l.filtered) {
		l.selected = 0
	}
}

func (l *List) matchesSources(item models.NewsItem) bool {
	if len(l.filter.Sources) == 0 {
		return true
	}
	return lo.Contains(l.filter.Sources, item.Source)
}

func matchesQuery(item models.NewsItem, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title), query) ||
		strings.Contains(strings.ToLower(item.Summary), query) ||
		strings.Contains(strings.ToLower(item.Source), query)
}

func (l *List) HandleKey(msg tea.KeyMsg) Action {
	if !l.focused {
		return nil
	}

	switch msg.String() {
	case "down", "j":
		if l.selected < len(l.filtered)-1 {
			l.selected++
			return SelectionChanged{Index: l.selected}
		}
	case "up", "k":
		if l.selected > 0 {
			l.selected--
			return SelectionChanged{Index: l.selected}
		}
	case "enter", "o":
		if item := l.SelectedItem(); item != nil {
			return ArticleOpened{URL: item.Url}
		}
	}

	return nil
}

func (l *List) Update(action Action) {
	switch a := action.(type) {
	case SelectionChanged:
		if a.Index < len(l.filtered) {
			l.selected = a.Index
		}
	case SearchQueryChanged:
		l.query = a.Query
		l.applyFilter()
	case FilterApplied:
		l.filter = a.Filter
		l.applyFilter()
	}
}

func (l *List) View() string {
	title := fmt.Sprintf("News Feed (%d articles)", len(l.filtered))
	if l.query != "" {
		title = fmt.Sprintf("News Feed (%d/%d filtered)", len(l.filtered), len(l.allNews))
	}

	innerWidth := l.width - 2
	innerHeight := l.height - 2
	if innerWidth < 1 || innerHeight < 2 {
		return ""
	}

	lines := make([]string, 0, innerHeight)
	lines = append(lines, dimStyle.Render(truncate(title, innerWidth)))

	visible := innerHeight - 1
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}

	for i := start; i < len(l.filtered) && i < start+visible; i++ {
		item := l.filtered[i]
		line := truncate(fmt.Sprintf("%-8s %s — %s", age(item.Published), item.Title, item.Source), innerWidth)
		if i == l.selected {
			line = selectedItemStyle.Render(line)
		}
		lines = append(lines, line)
	}

	content := strings.Join(lines, "\n")
	return borderStyle(l.focused).Width(innerWidth).Height(innerHeight).Render(content)
}

func (l *List) Focused() bool {
	return l.focused
}

func (l *List) SetFocus(focused bool) {
	l.focused = focused
}

// age renders a compact relative timestamp like "5m ago" or "2d ago".
func age(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	return string(runes[:width-1]) + "…"
}
