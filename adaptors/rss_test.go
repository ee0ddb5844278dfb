package adaptors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>MarketWatch</title>
    <link>https://www.marketwatch.com</link>
    <item>
      <title>Fed Holds Rates</title>
      <link>https://x/1</link>
      <description>The Fed held rates steady.</description>
      <pubDate>Mon, 06 Jan 2025 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Markets Rally</title>
      <link>https://x/2</link>
      <guid isPermaLink="false">mw-2025-2</guid>
      <pubDate>Mon, 06 Jan 2025 13:00:00 GMT</pubDate>
    </item>
    <item>
      <title>No Date Here</title>
      <link>https://x/3</link>
    </item>
  </channel>
</rss>`

func TestRSSAdaptorFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	adaptor := NewRSSAdaptor(server.URL, "MarketWatch")
	assert.True(t, adaptor.Enabled())
	assert.Equal(t, "MarketWatch", adaptor.Name())

	items, warnings, err := adaptor.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	// No guid means the id comes from the url hash.
	assert.Equal(t, "marketwatch-hash-8cfc4bebe4e75b65", items[0].Id)
	assert.Equal(t, "MarketWatch", items[0].Source)
	assert.Equal(t, "Fed Holds Rates", items[0].Title)
	assert.Equal(t, "https://x/1", items[0].Url)
	assert.Equal(t, "The Fed held rates steady.", items[0].Summary)
	assert.Equal(t, 2025, items[0].Published.Year())

	// Short non-permalink guid is reused verbatim.
	assert.Equal(t, "marketwatch-guid-mw-2025-2", items[1].Id)

	// The dateless entry is dropped and counted.
	require.Len(t, warnings, 1)
	assert.Equal(t, "Dropped 1 unparsable items", warnings[0])
}

func TestRSSAdaptorFetchDeterministicIds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	adaptor := NewRSSAdaptor(server.URL, "MarketWatch")
	first, _, err := adaptor.Fetch(context.Background())
	require.NoError(t, err)
	second, _, err := adaptor.Fetch(context.Background())
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Id, second[i].Id)
	}
}

func TestRSSAdaptorFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	adaptor := NewRSSAdaptor(server.URL, "MarketWatch")
	items, _, err := adaptor.Fetch(context.Background())
	assert.Error(t, err)
	assert.Empty(t, items)
}

func TestRSSAdaptorFetchMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	adaptor := NewRSSAdaptor(server.URL, "MarketWatch")
	items, _, err := adaptor.Fetch(context.Background())
	assert.Error(t, err)
	assert.Empty(t, items)
}
