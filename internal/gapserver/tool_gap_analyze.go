package gapserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dleonov/go_skillgap/internal/engine"
)

func registerGapAnalyze(server *mcp.Server, ts *toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "cv_gap_analyze",
		Description: "Run the full CV skill gap analysis: parse the CV, infer explicit and implicit skills, resolve market requirements for the target role, and compose a Markdown gap report with an upskilling roadmap. Accepts raw CV text or a file path (.txt, .md, .pdf, .docx, .html). Optionally writes the report to a file.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: false},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.GapAnalyzeInput) (*mcp.CallToolResult, engine.GapAnalyzeOutput, error) {
		if input.TargetRole == "" {
			return nil, engine.GapAnalyzeOutput{}, fmt.Errorf("target_role is required")
		}
		cvText, err := loadCVText(input.CVText, input.CVPath)
		if err != nil {
			return nil, engine.GapAnalyzeOutput{}, err
		}

		state := ts.runner.RunAnalysis(ctx, cvText, input.TargetRole)

		out := engine.GapAnalyzeOutput{
			TargetRole: state.TargetRole,
			Report:     state.FinalReport,
			Errors:     state.Errors,
		}
		if state.StructuredCV != nil {
			out.Candidate = state.StructuredCV.Personal.Name
		}
		if state.SkillsAnalysis != nil {
			out.YearsExp = state.SkillsAnalysis.SeniorityIndicators.YearsExp
		}
		if state.MarketIntelligence != nil {
			out.MarketSource = state.MarketIntelligence.Source
		}

		if input.ReportPath != "" && state.FinalReport != "" {
			path := input.ReportPath
			if engine.Cfg.ReportDir != "" && !filepath.IsAbs(path) {
				path = filepath.Join(engine.Cfg.ReportDir, path)
			}
			if err := os.WriteFile(path, []byte(state.FinalReport), 0o644); err != nil {
				out.Errors = append(out.Errors, fmt.Sprintf("write report: %v", err))
			} else {
				out.ReportWritten = path
			}
		}

		return nil, out, nil
	})
}
