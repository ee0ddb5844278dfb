package adaptors

import (
	"context"
	"errors"
	"testing"
	"time"

	"newshub/config"
	"newshub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdaptor struct {
	name     string
	enabled  bool
	items    []models.NewsItem
	warnings []string
	err      error
	delay    time.Duration
}

func (f *fakeAdaptor) Name() string  { return f.name }
func (f *fakeAdaptor) Enabled() bool { return f.enabled }

func (f *fakeAdaptor) Fetch(ctx context.Context) ([]models.NewsItem, []string, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.items, f.warnings, f.err
}

func item(id string) models.NewsItem {
	return models.NewsItem{Id: id, Source: "fake", Title: id, Url: "https://x/" + id}
}

func TestFetchAllIsolatesFailures(t *testing.T) {
	adaptors := []Adaptor{
		&fakeAdaptor{name: "a", enabled: true, items: []models.NewsItem{item("a1"), item("a2")}},
		&fakeAdaptor{name: "b", enabled: true, err: errors.New("connection refused")},
		&fakeAdaptor{name: "c", enabled: true, items: []models.NewsItem{item("c1")}},
	}

	result := FetchAll(context.Background(), adaptors)

	require.Len(t, result.Diagnostics, 3)
	assert.True(t, result.Diagnostics[0].Success)
	assert.False(t, result.Diagnostics[1].Success)
	assert.Contains(t, result.Diagnostics[1].Message, "connection refused")
	assert.True(t, result.Diagnostics[2].Success)

	ids := make([]string, 0, len(result.Items))
	for _, it := range result.Items {
		ids = append(ids, it.Id)
	}
	assert.ElementsMatch(t, []string{"a1", "a2", "c1"}, ids)
}

func TestFetchAllSkipsDisabled(t *testing.T) {
	adaptors := []Adaptor{
		&fakeAdaptor{name: "a", enabled: true, items: []models.NewsItem{item("a1")}},
		&fakeAdaptor{name: "b", enabled: false, items: []models.NewsItem{item("b1")}},
	}

	result := FetchAll(context.Background(), adaptors)

	// Disabled adaptors are skipped silently, not reported as failures.
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "a", result.Diagnostics[0].Source)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "a1", result.Items[0].Id)
}

func TestFetchAllDiagnosticsKeepInvocationOrder(t *testing.T) {
	// The slowest adaptor comes first; its diagnostic must still come first.
	adaptors := []Adaptor{
		&fakeAdaptor{name: "slow", enabled: true, delay: 50 * time.Millisecond},
		&fakeAdaptor{name: "fast", enabled: true},
	}

	result := FetchAll(context.Background(), adaptors)

	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, "slow", result.Diagnostics[0].Source)
	assert.Equal(t, "fast", result.Diagnostics[1].Source)
}

func TestFetchAllCarriesWarnings(t *testing.T) {
	adaptors := []Adaptor{
		&fakeAdaptor{name: "a", enabled: true, items: []models.NewsItem{item("a1")}, warnings: []string{"Dropped 3 unparsable items"}},
	}

	result := FetchAll(context.Background(), adaptors)

	require.Len(t, result.Diagnostics, 1)
	assert.True(t, result.Diagnostics[0].Success)
	assert.Equal(t, []string{"Dropped 3 unparsable items"}, result.Diagnostics[0].Warnings)
}

func TestBuildAdaptors(t *testing.T) {
	tests := []struct {
		name         string
		cfg          *config.Config
		totalCount   int
		enabledCount int
	}{
		{
			name:         "feeds only",
			cfg:          &config.Config{Feeds: []config.TomlFeed{{Url: "https://x/rss", Name: "X"}}},
			totalCount:   2,
			enabledCount: 1,
		},
		{
			name:         "feeds and api key",
			cfg:          &config.Config{Feeds: []config.TomlFeed{{Url: "https://x/rss", Name: "X"}}, BenzingaKey: "secret"},
			totalCount:   2,
			enabledCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adaptors := BuildAdaptors(tt.cfg)
			assert.Len(t, adaptors, tt.totalCount)

			enabled := 0
			for _, a := range adaptors {
				if a.Enabled() {
					enabled++
				}
			}
			assert.Equal(t, tt.enabledCount, enabled)
		})
	}
}
