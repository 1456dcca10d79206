// Package market resolves a free-form target role into market intelligence.
// The resolver runs a fallback chain: a live job-search API when enabled,
// then the static role table, then generic role-keyword data. It always
// returns something; source tags record which rung answered.
package market

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
	"github.com/dleonov/go_skillgap/internal/engine/dataset"
)

// Resolver maps target roles to market data. Whether the live API rung is
// in the chain is decided at construction, not per call.
type Resolver struct {
	data *dataset.MarketData
	live *jsearchClient // nil = static only
}

// New builds a Resolver. The live rung activates only when a RapidAPI key
// is configured and live lookups are switched on.
func New() *Resolver {
	r := &Resolver{data: dataset.Market()}
	if engine.Cfg.UseLiveMarket && engine.Cfg.RapidAPIKey != "" {
		r.live = newJSearchClient(engine.Cfg.RapidAPIKey, engine.Cfg.JSearchBaseURL)
	}
	return r
}

// Resolve returns market intelligence for a role. Never returns nil: every
// failure falls through to the next rung and the last rung is total.
func (r *Resolver) Resolve(ctx context.Context, targetRole string) *engine.MarketIntelligence {
	engine.IncrMarketLookups()

	key := engine.CacheKey("market:" + normalizeRole(targetRole))
	if data, ok := engine.CacheGet(ctx, key); ok {
		var cached engine.MarketIntelligence
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached
		}
	}

	intel := r.resolve(ctx, targetRole)

	if data, err := json.Marshal(intel); err == nil {
		engine.CacheSet(ctx, key, data)
	}
	return intel
}

func (r *Resolver) resolve(ctx context.Context, targetRole string) *engine.MarketIntelligence {
	if r.live != nil {
		if intel := r.live.lookup(ctx, targetRole); intel != nil {
			return intel
		}
		slog.Warn("live market lookup failed, using static data", slog.String("role", targetRole))
	}
	if intel := r.staticLookup(targetRole); intel != nil {
		engine.IncrStaticLookups()
		return intel
	}
	slog.Warn("role not in static table, using generic data", slog.String("role", targetRole))
	engine.IncrFallbackLookups()
	return genericFallback(targetRole)
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
