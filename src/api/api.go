package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/factlens/factscore/src/ai/core"
	_ "github.com/factlens/factscore/src/ai/providers"
	"github.com/factlens/factscore/src/api/config"
	"github.com/factlens/factscore/src/api/webserver"
	"github.com/factlens/factscore/src/factcheck/components/evidence"
	"github.com/factlens/factscore/src/factcheck/components/judgment"
	"github.com/factlens/factscore/src/factcheck/components/quota"
	"github.com/factlens/factscore/src/factcheck/pipeline"
	"github.com/factlens/factscore/src/logging"
	"github.com/factlens/factscore/src/shared/data"
	"github.com/factlens/factscore/src/webclient"

	"github.com/go-resty/resty/v2"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.Init(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Counter store is optional; without it the governor admits everything.
	var rdb *redis.Client
	var store quota.CounterStore
	if cfg.RedisURL != "" {
		rdb = data.MustRedis(cfg.RedisURL)
		store = quota.NewRedisStore(rdb)
	}
	governor := quota.NewGovernor(store, cfg.VideoDailyLimit, logger)

	rc := resty.NewWithClient(webclient.NewDefault(30 * time.Second))
	newsClient := evidence.NewNewsClient(rc, cfg.NewsSearchURL, cfg.SearchClientID, cfg.SearchClientSecret)
	encycClient := evidence.NewEncyclopediaClient(rc, cfg.EncycSearchURL, cfg.SearchClientID, cfg.SearchClientSecret)
	var registryClient *evidence.RegistryClient
	if cfg.FactCheckAPIKey != "" {
		registryClient = evidence.NewRegistryClient(rc, cfg.FactCheckSearchURL, cfg.FactCheckAPIKey)
	}
	var videoClient *evidence.VideoClient
	if cfg.VideoAPIKey != "" {
		videoClient = evidence.NewVideoClient(rc, cfg.VideoSearchURL, cfg.VideoChannelsURL, cfg.VideoAPIKey, cfg.VideoMinAudience)
	}
	collector := evidence.NewCollector(newsClient, encycClient, registryClient, videoClient, governor, logger)

	primary, err := core.NewClient(core.FactoryConfig{
		Provider:  "openai",
		Model:     cfg.OpenAIModel,
		OpenAIKey: cfg.OpenAIKey,
	})
	if err != nil {
		log.Fatalf("judgment provider: %v", err)
	}
	var crossCheck core.Client
	if cfg.EnableCrossCheck {
		crossCheck, err = core.NewClient(core.FactoryConfig{
			Provider:  "gemini",
			Model:     cfg.GeminiModel,
			GeminiKey: cfg.GeminiKey,
		})
		if err != nil {
			log.Fatalf("cross-check provider: %v", err)
		}
	}
	requester := judgment.NewRequester(primary, crossCheck, logger)

	pipe := pipeline.New(collector, requester, logger)
	router := webserver.New(cfg, pipe, governor)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: time.Duration(cfg.RequestTimeoutSeconds+10) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infow("factscore API listening", "port", cfg.Port, "crossCheck", cfg.EnableCrossCheck)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(shutCtx)
	if rdb != nil {
		_ = rdb.Close()
	}
}
