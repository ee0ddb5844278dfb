package adaptors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenzingaAdaptorEnabled(t *testing.T) {
	assert.False(t, NewBenzingaAdaptor("").Enabled())
	assert.True(t, NewBenzingaAdaptor("secret").Enabled())
}

func TestBenzingaAdaptorFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("token"))
		assert.Equal(t, "50", r.URL.Query().Get("pagesize"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"articles": [
				{"id": 101, "title": "Earnings Beat", "url": "https://bz/101", "description": "Beat estimates.", "updated": 1736164800},
				{"id": 102, "title": "", "url": "https://bz/102", "updated": 1736164800}
			]
		}`))
	}))
	defer server.Close()

	adaptor := NewBenzingaAdaptor("secret")
	adaptor.baseURL = server.URL

	items, warnings, err := adaptor.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "benzinga-guid-101", items[0].Id)
	assert.Equal(t, "Benzinga", items[0].Source)
	assert.Equal(t, "Earnings Beat", items[0].Title)
	assert.Equal(t, "https://bz/101", items[0].Url)
	assert.Equal(t, "Beat estimates.", items[0].Summary)
	assert.Equal(t, int64(1736164800), items[0].Published.Unix())

	require.Len(t, warnings, 1)
	assert.Equal(t, "Dropped 1 incomplete articles", warnings[0])
}

func TestBenzingaAdaptorFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	adaptor := NewBenzingaAdaptor("secret")
	adaptor.baseURL = server.URL

	_, _, err := adaptor.Fetch(context.Background())
	assert.Error(t, err)
}

func TestBenzingaAdaptorFetchMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	adaptor := NewBenzingaAdaptor("secret")
	adaptor.baseURL = server.URL

	_, _, err := adaptor.Fetch(context.Background())
	assert.Error(t, err)
}
