package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the env-driven service configuration. Provider base URLs are
// overridable so tests and staging can point at stand-ins.
type Config struct {
	Port     string
	LogLevel string

	// Counter store for the video quota governor; empty disables counting.
	RedisURL string

	// Evidence providers
	NewsSearchURL      string
	EncycSearchURL     string
	SearchClientID     string
	SearchClientSecret string
	FactCheckSearchURL string
	FactCheckAPIKey    string
	VideoSearchURL     string
	VideoChannelsURL   string
	VideoAPIKey        string
	VideoMinAudience   int64
	VideoDailyLimit    int64

	// Judgment providers
	OpenAIKey        string
	OpenAIModel      string
	GeminiKey        string
	GeminiModel      string
	EnableCrossCheck bool

	RequestTimeoutSeconds int
}

func Load() Config {
	return Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		RedisURL: os.Getenv("REDIS_URL"),

		NewsSearchURL:      getEnv("NEWS_SEARCH_URL", "https://openapi.naver.com/v1/search/news.json"),
		EncycSearchURL:     getEnv("ENCYC_SEARCH_URL", "https://openapi.naver.com/v1/search/encyc.json"),
		SearchClientID:     os.Getenv("NAVER_CLIENT_ID"),
		SearchClientSecret: os.Getenv("NAVER_CLIENT_SECRET"),
		FactCheckSearchURL: getEnv("FACTCHECK_SEARCH_URL", "https://factchecktools.googleapis.com/v1alpha1/claims:search"),
		FactCheckAPIKey:    os.Getenv("FACTCHECK_API_KEY"),
		VideoSearchURL:     getEnv("VIDEO_SEARCH_URL", "https://www.googleapis.com/youtube/v3/search"),
		VideoChannelsURL:   getEnv("VIDEO_CHANNELS_URL", "https://www.googleapis.com/youtube/v3/channels"),
		VideoAPIKey:        os.Getenv("YOUTUBE_API_KEY"),
		VideoMinAudience:   getEnvInt64("VIDEO_MIN_AUDIENCE", 0),
		VideoDailyLimit:    getEnvInt64("VIDEO_DAILY_LIMIT", 99),

		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		EnableCrossCheck: getEnv("ENABLE_CROSS_CHECK", "1") == "1",

		RequestTimeoutSeconds: int(getEnvInt64("REQUEST_TIMEOUT_SECONDS", 120)),
	}
}

// Validate rejects configurations that would fail on the first request.
// Mandatory providers are the news search and the primary judgment provider.
func (c Config) Validate() error {
	if c.SearchClientID == "" || c.SearchClientSecret == "" {
		return fmt.Errorf("config: NAVER_CLIENT_ID / NAVER_CLIENT_SECRET not set")
	}
	if c.OpenAIKey == "" {
		return fmt.Errorf("config: OPENAI_API_KEY not set")
	}
	if c.EnableCrossCheck && c.GeminiKey == "" {
		return fmt.Errorf("config: GEMINI_API_KEY not set (required while ENABLE_CROSS_CHECK=1)")
	}
	return nil
}

func getEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func getEnvInt64(name string, def int64) int64 {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
