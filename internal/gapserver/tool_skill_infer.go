package gapserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dleonov/go_skillgap/internal/engine"
)

func registerSkillInfer(server *mcp.Server, ts *toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_infer",
		Description: "Parse a CV and infer the candidate's skill profile: explicit tech/domain/soft skills, implicit skills with evidence and confidence, transferable skills, and seniority indicators (years of experience, leadership, architecture). Accepts raw CV text or a file path.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SkillInferInput) (*mcp.CallToolResult, engine.SkillInferOutput, error) {
		cvText, err := loadCVText(input.CVText, input.CVPath)
		if err != nil {
			return nil, engine.SkillInferOutput{}, err
		}

		cv, warnings := ts.extractor.Extract(ctx, cvText)
		skillsAnalysis, inferWarnings := ts.analyst.Infer(cv)
		warnings = append(warnings, inferWarnings...)
		if warnings == nil {
			warnings = []string{}
		}

		return nil, engine.SkillInferOutput{
			Candidate: cv.Personal.Name,
			Analysis:  skillsAnalysis,
			Warnings:  warnings,
		}, nil
	})
}
