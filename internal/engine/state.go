package engine

// Market intelligence provenance.
const (
	SourceSimulation      = "simulation"
	SourceJSearchAPI      = "jsearch_api"
	SourceGenericFallback = "generic_fallback"
)

// AnalysisState threads a single CV analysis through the four pipeline stages.
// One state per request; each stage owns exactly one field and only appends
// to Errors after that.
type AnalysisState struct {
	CVRaw              string              `json:"cv_raw"`
	TargetRole         string              `json:"target_role"`
	StructuredCV       *StructuredCV       `json:"cv_structured,omitempty"`
	SkillsAnalysis     *SkillsAnalysis     `json:"skills_analysis,omitempty"`
	MarketIntelligence *MarketIntelligence `json:"market_intelligence,omitempty"`
	FinalReport        string              `json:"final_report,omitempty"`
	Errors             []string            `json:"errors"`
}

// NewAnalysisState creates a fresh state for one analysis request.
func NewAnalysisState(cvRaw, targetRole string) *AnalysisState {
	return &AnalysisState{
		CVRaw:      cvRaw,
		TargetRole: targetRole,
		Errors:     []string{},
	}
}

// AddError appends a non-fatal error. Existing entries are never removed.
func (s *AnalysisState) AddError(msg string) {
	s.Errors = append(s.Errors, msg)
}

// --- Stage 1: structured CV ---

// StructuredCV is the normalized form of a parsed CV.
type StructuredCV struct {
	Personal   PersonalInfo `json:"personal"`
	Experience []Experience `json:"experience"`
	Skills     CVSkills     `json:"skills"`
	Education  []Education  `json:"education"`
	Projects   []Project    `json:"projects"`
}

// NewStructuredCV returns a StructuredCV with all collections non-nil.
func NewStructuredCV() *StructuredCV {
	return &StructuredCV{
		Personal:   PersonalInfo{Contact: map[string]string{}},
		Experience: []Experience{},
		Skills:     CVSkills{Languages: []string{}, Frameworks: []string{}, Tools: []string{}},
		Education:  []Education{},
		Projects:   []Project{},
	}
}

type PersonalInfo struct {
	Name    string            `json:"name"`
	Contact map[string]string `json:"contact"`
}

type Experience struct {
	Company string   `json:"company"`
	Title   string   `json:"title"`
	Dates   string   `json:"dates"`
	Bullets []string `json:"bullets"`
}

// CVSkills groups normalized technology mentions by category.
type CVSkills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Field       string `json:"field"`
}

type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
}

// --- Stage 2: skills analysis ---

type SkillsAnalysis struct {
	ExplicitSkills      ExplicitSkills      `json:"explicit_skills"`
	ImplicitSkills      []ImplicitSkill     `json:"implicit_skills"`
	TransferableSkills  []TransferableSkill `json:"transferable_skills"`
	SeniorityIndicators SeniorityIndicators `json:"seniority_indicators"`
}

// NewSkillsAnalysis returns a SkillsAnalysis with all collections non-nil.
func NewSkillsAnalysis() *SkillsAnalysis {
	return &SkillsAnalysis{
		ExplicitSkills:     ExplicitSkills{Tech: []string{}, Domain: []string{}, Soft: []string{}},
		ImplicitSkills:     []ImplicitSkill{},
		TransferableSkills: []TransferableSkill{},
	}
}

type ExplicitSkills struct {
	Tech   []string `json:"tech"`
	Domain []string `json:"domain"`
	Soft   []string `json:"soft"`
}

// ImplicitSkill is a competency inferred from technology usage,
// backed by a CV snippet and a rule confidence in [0,1].
type ImplicitSkill struct {
	Skill      string  `json:"skill"`
	Evidence   string  `json:"evidence"`
	Confidence float64 `json:"confidence"`
}

type TransferableSkill struct {
	Skill      string `json:"skill"`
	FromDomain string `json:"from_domain"`
	Relevance  string `json:"relevance"`
}

type SeniorityIndicators struct {
	YearsExp     int  `json:"years_exp"`
	Leadership   bool `json:"leadership"`
	Architecture bool `json:"architecture"`
}

// --- Stage 3: market intelligence ---

type MarketIntelligence struct {
	RoleRequirements RoleRequirements    `json:"role_requirements"`
	TechStack        TechStackPopularity `json:"tech_stack_popularity"`
	Insights         MarketInsights      `json:"market_insights"`
	Source           string              `json:"source"`
}

type RoleRequirements struct {
	CoreSkills      []string `json:"core_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	EmergingTrends  []string `json:"emerging_trends"`
}

type TechStackPopularity struct {
	Language  []string `json:"language"`
	Framework []string `json:"framework"`
	Tools     []string `json:"tools"`
}

type MarketInsights struct {
	SalaryRange string   `json:"salary_range"`
	DemandLevel string   `json:"demand_level"`
	GrowthAreas []string `json:"growth_areas"`
}
