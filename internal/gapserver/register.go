// Package gapserver exposes the CV gap analysis pipeline as MCP tools:
// cv_gap_analyze, cv_parse, skill_infer, market_lookup.
package gapserver

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dleonov/go_skillgap/internal/cvfile"
	"github.com/dleonov/go_skillgap/internal/engine"
	"github.com/dleonov/go_skillgap/internal/engine/analysis"
	"github.com/dleonov/go_skillgap/internal/engine/cvparse"
	"github.com/dleonov/go_skillgap/internal/engine/market"
	"github.com/dleonov/go_skillgap/internal/engine/skills"
)

// toolset bundles the stage instances shared by all tools. Built once at
// registration, after engine.Init has run.
type toolset struct {
	runner    *analysis.Runner
	extractor *cvparse.Extractor
	analyst   *skills.Analyst
	resolver  *market.Resolver
}

// RegisterTools registers all gap analysis tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	var ner cvparse.EntityRecognizer
	if engine.Cfg.NERServiceURL != "" {
		ner = cvparse.NewHTTPRecognizer(engine.Cfg.NERServiceURL, engine.Cfg.NERServiceSecret)
	}
	ts := &toolset{
		runner:    analysis.NewRunner(),
		extractor: cvparse.New(ner),
		analyst:   skills.New(),
		resolver:  market.New(),
	}

	registerGapAnalyze(server, ts)
	registerCVParse(server, ts)
	registerSkillInfer(server, ts)
	registerMarketLookup(server, ts)
}

// loadCVText resolves the cv_text / cv_path pair every CV-consuming tool
// accepts. Exactly one of them must be set.
func loadCVText(cvText, cvPath string) (string, error) {
	if cvText != "" {
		return cvText, nil
	}
	if cvPath == "" {
		return "", fmt.Errorf("either cv_text or cv_path is required")
	}
	text, err := cvfile.Load(cvPath)
	if err != nil {
		return "", fmt.Errorf("load cv file: %w", err)
	}
	return text, nil
}
