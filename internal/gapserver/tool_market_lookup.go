package gapserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dleonov/go_skillgap/internal/engine"
	"github.com/dleonov/go_skillgap/internal/toolutil"
)

func registerMarketLookup(server *mcp.Server, ts *toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "market_lookup",
		Description: "Look up market requirements for a job role: core and preferred skills, emerging trends, tech stack popularity, salary range, and demand level. Resolves from live job posting data when configured, otherwise from the built-in market table, with a generic fallback for unknown roles.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.MarketLookupInput) (*mcp.CallToolResult, engine.MarketIntelligence, error) {
		if strings.TrimSpace(input.Role) == "" {
			return nil, engine.MarketIntelligence{}, fmt.Errorf("role is required")
		}

		cacheKey := engine.CacheKey("market_lookup", strings.ToLower(strings.TrimSpace(input.Role)))
		if out, ok := toolutil.CacheLoadJSON[engine.MarketIntelligence](ctx, cacheKey); ok {
			return nil, out, nil
		}

		intel := ts.resolver.Resolve(ctx, input.Role)
		toolutil.CacheStoreJSON(ctx, cacheKey, *intel)
		return nil, *intel, nil
	})
}
