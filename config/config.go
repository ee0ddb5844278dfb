package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// TomlFeed is a single RSS feed entry from the config file.
type TomlFeed struct {
	Url  string `toml:"url"`
	Name string `toml:"name"`
}

// TomlConfig is the top-level config file structure.
type TomlConfig struct {
	Feeds []TomlFeed `toml:"feeds"`
}

// Config is the resolved runtime configuration: the feed list plus any
// credentials picked up from flags or the environment.
type Config struct {
	Feeds       []TomlFeed
	BenzingaKey string
}

// DefaultFeeds is the built-in feed list used when no config file is present.
func DefaultFeeds() []TomlFeed {
	return []TomlFeed{
		{Url: "https://www.marketwatch.com/rss/topstories", Name: "MarketWatch"},
		{Url: "https://feeds.bloomberg.com/markets/news.rss", Name: "Bloomberg"},
		{Url: "https://www.cnbc.com/id/100003114/device/rss/rss.html", Name: "CNBC"},
		{Url: "https://www.barrons.com/rss/topstories", Name: "Barrons"},
		{Url: "https://www.ft.com/rss/home/world", Name: "Financial Times"},
		{Url: "https://www.wsj.com/news/world", Name: "Wall Street Journal"},
		{Url: "https://www.nytimes.com/rss/world", Name: "New York Times"},
		{Url: "https://www.investing.com/rss/news_25.rss", Name: "Investing.com Stocks"},
		{Url: "https://www.investing.com/rss/news_301.rss", Name: "Investing.com Crypto"},
		{Url: "https://www.investing.com/rss/news_1.rss", Name: "Investing.com Forex"},
		{Url: "https://www.investing.com/rss/news_1062.rss", Name: "Investing.com Earnings"},
		{Url: "https://www.investing.com/rss/news.rss", Name: "Investing.com Latest"},
	}
}

// LoadConfig reads the TOML config at path and merges in the credential.
// A missing config file is not an error; the default feed list is used.
// Having neither feeds nor a credential is fatal since there would be
// nothing to fetch.
func LoadConfig(path string, benzingaKey string) (*Config, error) {
	config := &Config{
		Feeds:       DefaultFeeds(),
		BenzingaKey: benzingaKey,
	}

	data, err := os.ReadFile(path)
	if err == nil {
		var tomlConfig TomlConfig
		if err := toml.Unmarshal(data, &tomlConfig); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
		config.Feeds = tomlConfig.Feeds
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if len(config.Feeds) == 0 && config.BenzingaKey == "" {
		return nil, fmt.Errorf("no sources configured: add feeds to %s or set a Benzinga API key", path)
	}

	return config, nil
}
