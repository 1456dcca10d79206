package engine

// --- MCP tool types ---

type GapAnalyzeInput struct {
	CVText     string `json:"cv_text,omitempty" jsonschema:"Raw CV text. Either cv_text or cv_path is required."`
	CVPath     string `json:"cv_path,omitempty" jsonschema:"Path to a CV file (.txt, .md, .pdf, .docx, .html)"`
	TargetRole string `json:"target_role" jsonschema:"Target job role to analyze against (e.g. AI Engineer, Backend Developer)"`
	ReportPath string `json:"report_path,omitempty" jsonschema:"Optional path to write the rendered Markdown report to"`
}

// GapAnalyzeOutput is the structured output for cv_gap_analyze.
type GapAnalyzeOutput struct {
	TargetRole    string   `json:"target_role"`
	Candidate     string   `json:"candidate"`
	YearsExp      int      `json:"years_exp"`
	MarketSource  string   `json:"market_source"`
	Report        string   `json:"report"`
	ReportWritten string   `json:"report_written,omitempty"`
	Errors        []string `json:"errors"`
}

type CVParseInput struct {
	CVText string `json:"cv_text,omitempty" jsonschema:"Raw CV text. Either cv_text or cv_path is required."`
	CVPath string `json:"cv_path,omitempty" jsonschema:"Path to a CV file (.txt, .md, .pdf, .docx, .html)"`
}

// CVParseOutput is the structured output for cv_parse.
type CVParseOutput struct {
	CV       *StructuredCV `json:"cv"`
	Warnings []string      `json:"warnings"`
}

type MarketLookupInput struct {
	Role string `json:"role" jsonschema:"Job role to look up market requirements for (e.g. Data Scientist, DevOps Engineer)"`
}

type SkillInferInput struct {
	CVText string `json:"cv_text,omitempty" jsonschema:"Raw CV text. Either cv_text or cv_path is required."`
	CVPath string `json:"cv_path,omitempty" jsonschema:"Path to a CV file (.txt, .md, .pdf, .docx, .html)"`
}

// SkillInferOutput is the structured output for skill_infer.
type SkillInferOutput struct {
	Candidate string          `json:"candidate"`
	Analysis  *SkillsAnalysis `json:"analysis"`
	Warnings  []string        `json:"warnings"`
}
