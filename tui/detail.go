package tui

import (
	"fmt"
	"strings"

	"newshub/models"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Detail shows the full selected article. The session pushes the selected
// item in after every selection or search change, since Detail needs the
// whole item rather than an index.
type Detail struct {
	article  *models.NewsItem
	viewport viewport.Model
	focused  bool
	width    int
	height   int
}

func NewDetail() *Detail {
	d := &Detail{
		viewport: viewport.New(0, 0),
	}
	d.setContent()
	return d
}

// SetArticle replaces the displayed article and resets scroll position.
// A nil article shows the empty-state hint.
func (d *Detail) SetArticle(article *models.NewsItem) {
	d.article = article
	d.setContent()
	d.viewport.GotoTop()
}

func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.Width = width - 2
	d.viewport.Height = height - 2
	d.setContent()
}

func (d *Detail) setContent() {
	if d.article == nil {
		d.viewport.SetContent("No article selected\n\nSelect an article from the list to view details.")
		return
	}

	d.viewport.SetContent(fmt.Sprintf(
		"Title: %s\n\nSource: %s\nPublished: %s\n\nURL: %s\n\n%s\n\nSummary:\n%s",
		d.article.Title,
		d.article.Source,
		d.article.Published.Format("2006-01-02 15:04 UTC"),
		d.article.Url,
		strings.Repeat("─", 50),
		d.article.Summary,
	))
}

func (d *Detail) HandleKey(msg tea.KeyMsg) Action {
	if !d.focused {
		return nil
	}

	switch msg.String() {
	case "down", "j":
		d.viewport.LineDown(1)
	case "up", "k":
		d.viewport.LineUp(1)
	case "pgdown":
		d.viewport.LineDown(10)
	case "pgup":
		d.viewport.LineUp(10)
	case "enter", "o":
		if d.article != nil {
			return ArticleOpened{URL: d.article.Url}
		}
	}

	return nil
}

func (d *Detail) Update(action Action) {
	// Selection data arrives via SetArticle from the session's second
	// dispatch pass; no action carries the full item.
}

func (d *Detail) View() string {
	innerWidth := d.width - 2
	innerHeight := d.height - 2
	if innerWidth < 1 || innerHeight < 1 {
		return ""
	}
	return borderStyle(d.focused).Width(innerWidth).Height(innerHeight).Render(d.viewport.View())
}

func (d *Detail) Focused() bool {
	return d.focused
}

func (d *Detail) SetFocus(focused bool) {
	d.focused = focused
}
