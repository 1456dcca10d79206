package dataset

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserData(t *testing.T) {
	p := Parser()

	require.NotEmpty(t, p.SectionPatterns.Experience)
	require.NotEmpty(t, p.SectionPatterns.Skills)
	require.NotEmpty(t, p.SectionPatterns.Education)
	require.NotEmpty(t, p.SectionPatterns.Projects)

	assert.NotEmpty(t, p.Languages)
	assert.NotEmpty(t, p.Frameworks)
	assert.NotEmpty(t, p.Tools)
	assert.Equal(t, "nodejs", p.Normalizations["node.js"])
	assert.Equal(t, "cpp", p.Normalizations["c++"])

	// Every shipped pattern must compile.
	all := append([]string{}, p.SectionPatterns.Experience...)
	all = append(all, p.SectionPatterns.Skills...)
	all = append(all, p.SectionPatterns.Education...)
	all = append(all, p.SectionPatterns.Projects...)
	all = append(all, p.DegreePatterns...)
	all = append(all, p.InstitutionPatterns...)
	for _, pattern := range all {
		_, err := regexp.Compile(pattern)
		assert.NoError(t, err, "pattern %q", pattern)
	}
}

func TestInferenceData(t *testing.T) {
	d := Inference()

	require.NotEmpty(t, d.Rules)
	for tech, rule := range d.Rules {
		assert.NotEmpty(t, rule.Skills, "rule %q has no skills", tech)
		assert.Greater(t, rule.Confidence, 0.0, "rule %q", tech)
		assert.LessOrEqual(t, rule.Confidence, 1.0, "rule %q", tech)
	}

	docker, ok := d.Rules["docker"]
	require.True(t, ok)
	assert.Contains(t, docker.Skills, "containerization")

	assert.Len(t, d.ProjectSignals, 3)
	assert.NotEmpty(t, d.Transferable)
	assert.NotEmpty(t, d.Relevance)
	assert.NotEmpty(t, d.DefaultRelevance)
	assert.NotEmpty(t, d.LeadershipKeywords)
	assert.NotEmpty(t, d.ArchitectureKeywords)
}

func TestMarketData(t *testing.T) {
	m := Market()

	require.NotEmpty(t, m.Roles)
	require.NotEmpty(t, m.Aliases)

	// Every alias must point at an existing role.
	for alias, key := range m.Aliases {
		_, ok := m.Roles[key]
		assert.True(t, ok, "alias %q points at missing role %q", alias, key)
	}
	for key, role := range m.Roles {
		assert.NotEmpty(t, role.CoreSkills, "role %q", key)
		assert.NotEmpty(t, role.SalaryRange, "role %q", key)
		assert.NotEmpty(t, role.DemandLevel, "role %q", key)
	}
}

func TestResourceData(t *testing.T) {
	r := Resources()

	require.NotEmpty(t, r.Skills)
	for skill, levels := range r.Skills {
		for level, entries := range levels {
			assert.NotEmpty(t, entries, "skill %q level %q", skill, level)
		}
	}
	require.Contains(t, r.Skills, "docker")
	assert.Contains(t, r.Skills["docker"], "beginner")
}
