// Package adaptors fetches and normalizes news from heterogeneous sources
// into the canonical item shape.
package adaptors

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"newshub/config"
	"newshub/models"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// Adaptor is a source-specific fetch-and-normalize unit. Fetch performs one
// network round trip and returns canonical items plus non-fatal warnings.
// The adaptor set is closed and fixed at configuration time.
type Adaptor interface {
	// Name is the human-readable origin name for this source.
	Name() string

	// Enabled reports whether the adaptor is configured to run. Disabled
	// adaptors are skipped silently, not reported as failures.
	Enabled() bool

	// Fetch retrieves and normalizes records from the source. Records
	// missing required fields are dropped and summarized in the warnings;
	// transport or payload-level failures return an error with no items.
	Fetch(ctx context.Context) ([]models.NewsItem, []string, error)
}

const fetchTimeout = 30 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: fetchTimeout}
}

// BuildAdaptors assembles the adaptor set from the configuration: one RSS
// adaptor per configured feed, plus API adaptors for each present credential.
func BuildAdaptors(cfg *config.Config) []Adaptor {
	adaptors := make([]Adaptor, 0, len(cfg.Feeds)+1)

	for _, feed := range cfg.Feeds {
		adaptors = append(adaptors, NewRSSAdaptor(feed.Url, feed.Name))
	}

	adaptors = append(adaptors, NewBenzingaAdaptor(cfg.BenzingaKey))

	return adaptors
}

// FetchAll invokes Fetch on every enabled adaptor concurrently and merges
// the results. One adaptor's failure never aborts or blocks another's
// completion. Diagnostics are returned in adaptor-invocation order; merged
// item ordering across sources is unspecified.
func FetchAll(ctx context.Context, adaptors []Adaptor) models.FetchResult {
	enabled := lo.Filter(adaptors, func(a Adaptor, _ int) bool {
		return a.Enabled()
	})

	diagnostics := make([]models.FetchDiagnostic, len(enabled))
	itemLists := make([][]models.NewsItem, len(enabled))

	var wg sync.WaitGroup
	for i, adaptor := range enabled {
		wg.Add(1)
		go func(i int, adaptor Adaptor) {
			defer wg.Done()

			items, warnings, err := adaptor.Fetch(ctx)
			if err != nil {
				log.WithFields(log.Fields{
					"source": adaptor.Name(),
				}).Errorf("Fetch failed: %v", err)
				diagnostics[i] = models.FetchDiagnostic{
					Source:   adaptor.Name(),
					Success:  false,
					Message:  fmt.Sprintf("Failed: %v", err),
					Warnings: warnings,
				}
				return
			}

			log.WithFields(log.Fields{
				"source": adaptor.Name(),
				"items":  len(items),
			}).Info("Fetched source")
			diagnostics[i] = models.FetchDiagnostic{
				Source:   adaptor.Name(),
				Success:  true,
				Message:  fmt.Sprintf("Fetched %d items", len(items)),
				Warnings: warnings,
			}
			itemLists[i] = items
		}(i, adaptor)
	}
	wg.Wait()

	return models.FetchResult{
		Items:       lo.Flatten(itemLists),
		Diagnostics: diagnostics,
	}
}
