// Package dataset holds the static analysis data: section patterns and
// technology word lists for CV extraction, skill inference rules, the
// simulated market role table, and curated learning resources.
//
// Data ships embedded as YAML. A directory override (DATASET_DIR) lets
// deployments swap in their own tables without rebuilding.
package dataset

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed parser.yaml inference.yaml market.yaml resources.yaml
var embedded embed.FS

// overrideDir, when set before first use, takes priority over embedded files.
var overrideDir string

// SetDir points the loader at an external data directory. Must be called
// before the first accessor; files missing from the directory fall back
// to the embedded copies.
func SetDir(dir string) { overrideDir = dir }

// ParserData configures the CV text segmenter and field extractor.
type ParserData struct {
	// Ordered header patterns per section; first match wins.
	SectionPatterns struct {
		Experience []string `yaml:"experience"`
		Skills     []string `yaml:"skills"`
		Education  []string `yaml:"education"`
		Projects   []string `yaml:"projects"`
	} `yaml:"section_patterns"`

	Languages  []string `yaml:"languages"`
	Frameworks []string `yaml:"frameworks"`
	Tools      []string `yaml:"tools"`

	// Canonical spellings for technology variants (node.js -> nodejs).
	Normalizations map[string]string `yaml:"normalizations"`

	DegreePatterns      []string `yaml:"degree_patterns"`
	InstitutionPatterns []string `yaml:"institution_patterns"`
	CorporateSuffixes   []string `yaml:"corporate_suffixes"`
	TitleKeywords       []string `yaml:"title_keywords"`
}

// InferenceRule maps a technology to the competencies it implies.
type InferenceRule struct {
	Skills     []string `yaml:"skills"`
	Confidence float64  `yaml:"confidence"`
}

// ProjectSignal flags a class of project descriptions implying a skill.
type ProjectSignal struct {
	Keywords   []string `yaml:"keywords"`
	Skill      string   `yaml:"skill"`
	Confidence float64  `yaml:"confidence"`
}

// TransferableRule maps a background keyword to skills carried over from
// another domain.
type TransferableRule struct {
	Skills []string `yaml:"skills"`
	Domain string   `yaml:"domain"`
}

// InferenceData configures the skill inference stage.
type InferenceData struct {
	Rules                map[string]InferenceRule    `yaml:"rules"`
	ProjectSignals       []ProjectSignal             `yaml:"project_signals"`
	Transferable         map[string]TransferableRule `yaml:"transferable"`
	Relevance            map[string]string           `yaml:"relevance"`
	DefaultRelevance     string                      `yaml:"default_relevance"`
	LeadershipKeywords   []string                    `yaml:"leadership_keywords"`
	ArchitectureKeywords []string                    `yaml:"architecture_keywords"`
}

// MarketRole is one row of the simulated market table.
type MarketRole struct {
	CoreSkills      []string `yaml:"core_skills"`
	PreferredSkills []string `yaml:"preferred_skills"`
	EmergingTrends  []string `yaml:"emerging_trends"`
	Languages       []string `yaml:"languages"`
	Frameworks      []string `yaml:"frameworks"`
	Tools           []string `yaml:"tools"`
	SalaryRange     string   `yaml:"salary_range"`
	DemandLevel     string   `yaml:"demand_level"`
	GrowthAreas     []string `yaml:"growth_areas"`
}

// MarketData holds the role table and the alias map used to normalize
// free-form role names onto table keys.
type MarketData struct {
	Aliases map[string]string     `yaml:"aliases"`
	Roles   map[string]MarketRole `yaml:"roles"`
}

// ResourceData maps skill -> level -> curated learning resources.
type ResourceData struct {
	Skills map[string]map[string][]string `yaml:"skills"`
}

var (
	parserOnce sync.Once
	parserData ParserData

	inferOnce sync.Once
	inferData InferenceData

	marketOnce sync.Once
	marketData MarketData

	resOnce sync.Once
	resData ResourceData
)

// Parser returns the CV extraction data.
func Parser() *ParserData {
	parserOnce.Do(func() { load("parser.yaml", &parserData) })
	return &parserData
}

// Inference returns the skill inference data.
func Inference() *InferenceData {
	inferOnce.Do(func() { load("inference.yaml", &inferData) })
	return &inferData
}

// Market returns the simulated market role table.
func Market() *MarketData {
	marketOnce.Do(func() { load("market.yaml", &marketData) })
	return &marketData
}

// Resources returns the curated learning resource table.
func Resources() *ResourceData {
	resOnce.Do(func() { load("resources.yaml", &resData) })
	return &resData
}

func load(name string, out any) {
	data, err := read(name)
	if err != nil {
		slog.Error("dataset: load failed", slog.String("file", name), slog.Any("error", err))
		return
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		slog.Error("dataset: parse failed", slog.String("file", name), slog.Any("error", err))
	}
}

func read(name string) ([]byte, error) {
	if overrideDir != "" {
		path := filepath.Join(overrideDir, name)
		if data, err := os.ReadFile(path); err == nil {
			slog.Info("dataset: using override", slog.String("file", path))
			return data, nil
		}
	}
	data, err := embedded.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", name, err)
	}
	return data, nil
}
