// go_skillgap — CV Skill Gap Analysis MCP server.
//
// Exposes four MCP tools: cv_gap_analyze, cv_parse, skill_infer,
// market_lookup. Runs as HTTP MCP server or stdio transport.
//
// The analysis pipeline itself lives in internal/engine/analysis; this
// binary wires configuration, datasets, cache, and the tool surface.
package main

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dleonov/go_skillgap/internal/engine"
	"github.com/dleonov/go_skillgap/internal/engine/dataset"
	"github.com/dleonov/go_skillgap/internal/gapserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_skillgap",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_skillgap",
		Version: version,
	}, nil)

	gapserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 4))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_skillgap",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	if dir := env.Str("DATASET_DIR", ""); dir != "" {
		dataset.SetDir(dir)
	}

	c := engine.Config{
		RapidAPIKey:          env.Str("RAPIDAPI_KEY", ""),
		JSearchBaseURL:       env.Str("JSEARCH_BASE_URL", "https://jsearch.p.rapidapi.com"),
		UseLiveMarket:        strings.EqualFold(env.Str("USE_LIVE_MARKET", "false"), "true"),
		MaxSearchTries:       env.Int("MAX_SEARCH_TRIES", 5),
		NERServiceURL:        env.Str("NER_SERVICE_URL", ""),
		NERServiceSecret:     env.Str("INTERNAL_SERVICE_SECRET", ""),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 30*time.Second),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		ReportDir:            env.Str("REPORT_DIR", ""),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
