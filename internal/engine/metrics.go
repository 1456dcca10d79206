package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	AnalysisRequests atomic.Int64
	ParseRequests    atomic.Int64
	InferRequests    atomic.Int64
	MarketLookups    atomic.Int64
	ReportBuilds     atomic.Int64
	JSearchRequests  atomic.Int64
	JSearchErrors    atomic.Int64
	NERRequests      atomic.Int64
	NERErrors        atomic.Int64
	StaticLookups    atomic.Int64
	FallbackLookups  atomic.Int64
	FileLoads        atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"analysis_requests": metrics.AnalysisRequests.Load(),
		"parse_requests":    metrics.ParseRequests.Load(),
		"infer_requests":    metrics.InferRequests.Load(),
		"market_lookups":    metrics.MarketLookups.Load(),
		"report_builds":     metrics.ReportBuilds.Load(),
		"jsearch_requests":  metrics.JSearchRequests.Load(),
		"jsearch_errors":    metrics.JSearchErrors.Load(),
		"ner_requests":      metrics.NERRequests.Load(),
		"ner_errors":        metrics.NERErrors.Load(),
		"static_lookups":    metrics.StaticLookups.Load(),
		"fallback_lookups":  metrics.FallbackLookups.Load(),
		"file_loads":        metrics.FileLoads.Load(),
		"cache_hits":        hits,
		"cache_misses":      misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"analysis_requests", "parse_requests", "infer_requests",
		"market_lookups", "report_builds",
		"jsearch_requests", "jsearch_errors",
		"ner_requests", "ner_errors",
		"static_lookups", "fallback_lookups", "file_loads",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for stage sub-packages.
func IncrAnalysisRequests() { metrics.AnalysisRequests.Add(1) }
func IncrParseRequests()    { metrics.ParseRequests.Add(1) }
func IncrInferRequests()    { metrics.InferRequests.Add(1) }
func IncrMarketLookups()    { metrics.MarketLookups.Add(1) }
func IncrReportBuilds()     { metrics.ReportBuilds.Add(1) }
func IncrJSearchRequests()  { metrics.JSearchRequests.Add(1) }
func IncrJSearchErrors()    { metrics.JSearchErrors.Add(1) }
func IncrNERRequests()      { metrics.NERRequests.Add(1) }
func IncrNERErrors()        { metrics.NERErrors.Add(1) }
func IncrStaticLookups()    { metrics.StaticLookups.Add(1) }
func IncrFallbackLookups()  { metrics.FallbackLookups.Add(1) }
func IncrFileLoads()        { metrics.FileLoads.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
