// Package analysis runs the four-stage CV gap analysis pipeline over one
// shared state: parse, skill inference, market resolution, report. Stages
// run strictly in order; each records its problems on the state and never
// stops the run. A finished state always comes back, report or not.
package analysis

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dleonov/go_skillgap/internal/engine"
	"github.com/dleonov/go_skillgap/internal/engine/cvparse"
	"github.com/dleonov/go_skillgap/internal/engine/market"
	"github.com/dleonov/go_skillgap/internal/engine/report"
	"github.com/dleonov/go_skillgap/internal/engine/skills"
)

// Runner owns one instance of each stage. Strategy decisions (NER on or
// off, live market on or off) are made here at construction from Config,
// not per request. Safe for concurrent use; every request gets its own
// state.
type Runner struct {
	extractor *cvparse.Extractor
	analyst   *skills.Analyst
	resolver  *market.Resolver
	composer  *report.Composer
}

func NewRunner() *Runner {
	var ner cvparse.EntityRecognizer
	if engine.Cfg.NERServiceURL != "" {
		ner = cvparse.NewHTTPRecognizer(engine.Cfg.NERServiceURL, engine.Cfg.NERServiceSecret)
	}
	return &Runner{
		extractor: cvparse.New(ner),
		analyst:   skills.New(),
		resolver:  market.New(),
		composer:  report.New(),
	}
}

// RunAnalysis executes the full pipeline for one CV and target role.
func (r *Runner) RunAnalysis(ctx context.Context, cvText, targetRole string) *engine.AnalysisState {
	engine.IncrAnalysisRequests()
	start := time.Now()
	slog.Info("starting analysis pipeline",
		slog.String("target_role", targetRole),
		slog.Int("cv_chars", len(cvText)))

	state := engine.NewAnalysisState(cvText, targetRole)
	r.parseStage(ctx, state)
	r.skillsStage(ctx, state)
	r.marketStage(ctx, state)
	r.reportStage(ctx, state)

	slog.Info("analysis pipeline done",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("errors", len(state.Errors)),
		slog.Bool("report", state.FinalReport != ""))
	return state
}

func (r *Runner) parseStage(ctx context.Context, state *engine.AnalysisState) {
	_ = engine.TrackOperation(ctx, "cv parse", func(ctx context.Context) error {
		if strings.TrimSpace(state.CVRaw) == "" {
			state.AddError("Empty CV content provided")
			state.StructuredCV = engine.NewStructuredCV()
			return nil
		}
		cv, warnings := r.extractor.Extract(ctx, state.CVRaw)
		state.StructuredCV = cv
		for _, w := range warnings {
			state.AddError(w)
		}
		if cv.Personal.Name == "" {
			slog.Warn("no candidate name extracted")
		}
		return nil
	})
}

func (r *Runner) skillsStage(ctx context.Context, state *engine.AnalysisState) {
	_ = engine.TrackOperation(ctx, "skill inference", func(ctx context.Context) error {
		if state.StructuredCV == nil {
			state.AddError("Prerequisites missing: structured CV data required")
			return nil
		}
		analysis, warnings := r.analyst.Infer(state.StructuredCV)
		state.SkillsAnalysis = analysis
		for _, w := range warnings {
			state.AddError(w)
		}
		return nil
	})
}

func (r *Runner) marketStage(ctx context.Context, state *engine.AnalysisState) {
	_ = engine.TrackOperation(ctx, "market resolve", func(ctx context.Context) error {
		if strings.TrimSpace(state.TargetRole) == "" {
			state.AddError("Prerequisites missing: target role required")
			return nil
		}
		state.MarketIntelligence = r.resolver.Resolve(ctx, state.TargetRole)
		return nil
	})
}

func (r *Runner) reportStage(ctx context.Context, state *engine.AnalysisState) {
	_ = engine.TrackOperation(ctx, "report compose", func(ctx context.Context) error {
		doc, warnings := r.composer.Compose(state)
		state.FinalReport = doc
		for _, w := range warnings {
			state.AddError(w)
		}
		return nil
	})
}
