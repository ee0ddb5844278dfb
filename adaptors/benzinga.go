package adaptors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"newshub/identity"
	"newshub/models"
)

const benzingaURL = "https://api.benzinga.com/api/v2/news"

const benzingaPageSize = "50"

type benzingaArticle struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Url         string `json:"url"`
	Description string `json:"description"`
	Updated     int64  `json:"updated"`
}

type benzingaResponse struct {
	Articles []benzingaArticle `json:"articles"`
}

// BenzingaAdaptor fetches news from the Benzinga JSON API. It is enabled
// only when an API key is configured.
type BenzingaAdaptor struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewBenzingaAdaptor(apiKey string) *BenzingaAdaptor {
	return &BenzingaAdaptor{
		apiKey:  apiKey,
		baseURL: benzingaURL,
		client:  newHTTPClient(),
	}
}

func (a *BenzingaAdaptor) Name() string {
	return "Benzinga"
}

func (a *BenzingaAdaptor) Enabled() bool {
	return a.apiKey != ""
}

func (a *BenzingaAdaptor) Fetch(ctx context.Context) ([]models.NewsItem, []string, error) {
	query := url.Values{}
	query.Set("token", a.apiKey)
	query.Set("pagesize", benzingaPageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Benzinga API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, fmt.Errorf("Benzinga API returned status %d", resp.StatusCode)
	}

	var payload benzingaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, nil, fmt.Errorf("failed to parse Benzinga response: %w", err)
	}

	now := time.Now().UTC()
	items := make([]models.NewsItem, 0, len(payload.Articles))
	for _, article := range payload.Articles {
		if article.Title == "" || article.Url == "" {
			continue
		}

		published := now
		if article.Updated > 0 {
			published = time.Unix(article.Updated, 0).UTC()
		}

		guid := &identity.GUID{Value: strconv.FormatInt(article.Id, 10)}
		items = append(items, models.NewsItem{
			Id:        identity.Derive(a.Name(), guid, article.Url),
			Source:    a.Name(),
			Title:     article.Title,
			Url:       article.Url,
			Summary:   article.Description,
			Published: published,
			UpdatedAt: now,
		})
	}

	var warnings []string
	if dropped := len(payload.Articles) - len(items); dropped > 0 {
		warnings = append(warnings, fmt.Sprintf("Dropped %d incomplete articles", dropped))
	}

	return items, warnings, nil
}
