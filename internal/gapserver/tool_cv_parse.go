package gapserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dleonov/go_skillgap/internal/engine"
)

func registerCVParse(server *mcp.Server, ts *toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "cv_parse",
		Description: "Parse a CV into structured fields: personal info and contacts, experience entries with bullets, categorized skills, education, and projects. Accepts raw CV text or a file path (.txt, .md, .pdf, .docx, .html).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.CVParseInput) (*mcp.CallToolResult, engine.CVParseOutput, error) {
		cvText, err := loadCVText(input.CVText, input.CVPath)
		if err != nil {
			return nil, engine.CVParseOutput{}, err
		}

		cv, warnings := ts.extractor.Extract(ctx, cvText)
		if warnings == nil {
			warnings = []string{}
		}
		return nil, engine.CVParseOutput{CV: cv, Warnings: warnings}, nil
	})
}
