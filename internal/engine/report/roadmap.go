package report

import (
	"fmt"
	"strings"
)

func (c *Composer) roadmap(gaps []Gap) string {
	critical := filterPriority(gaps, "Critical")
	important := filterPriority(gaps, "Important")

	phase1Deliverable := "core skills"
	if len(critical) > 0 {
		phase1Deliverable = critical[0].Skill
	}
	phase2 := important
	if len(critical) > 2 {
		phase2 = critical[2:]
	}

	var sb strings.Builder
	sb.WriteString("## Upskilling Roadmap (6-Week Plan)\n\n")
	sb.WriteString("### Phase 1 (Weeks 1-2): Foundation Building\n")
	sb.WriteString("**Focus**: Critical technical skills\n\n")
	sb.WriteString("**Learning Goals:**\n")
	sb.WriteString(learningGoals(critical))
	fmt.Fprintf(&sb, "\n\n**Deliverable**: Build a simple project demonstrating %s\n\n", phase1Deliverable)
	sb.WriteString("### Phase 2 (Weeks 3-4): Skill Integration\n")
	sb.WriteString("**Focus**: Combining foundational skills with practical application\n\n")
	sb.WriteString("**Learning Goals:**\n")
	sb.WriteString(learningGoals(phase2))
	sb.WriteString("\n\n**Deliverable**: Extend Phase 1 project with new technologies and deploy to cloud platform\n\n")
	sb.WriteString("### Phase 3 (Weeks 5-6): Advanced Concepts & Portfolio\n")
	sb.WriteString("**Focus**: Advanced skills and portfolio development\n\n")
	sb.WriteString("**Learning Goals:**\n")
	sb.WriteString(learningGoals(important))
	sb.WriteString("\n\n**Deliverable**: Complete portfolio project showcasing multiple skills, write technical blog post\n\n")
	sb.WriteString("### Success Metrics\n")
	sb.WriteString("- [ ] Complete all hands-on projects\n")
	fmt.Fprintf(&sb, "- [ ] Demonstrate proficiency in %d critical skills\n", len(critical))
	sb.WriteString("- [ ] Build portfolio with 2-3 substantial projects\n")
	sb.WriteString("- [ ] Contribute to open source project (optional)\n")
	sb.WriteString("- [ ] Network with professionals in target role")
	return sb.String()
}

// learningGoals renders up to two goals per roadmap phase.
func learningGoals(gaps []Gap) string {
	if len(gaps) == 0 {
		return "- Continue strengthening existing skills\n- Explore advanced concepts in current tech stack"
	}
	if len(gaps) > 2 {
		gaps = gaps[:2]
	}
	goals := make([]string, len(gaps))
	for i, gap := range gaps {
		goals[i] = fmt.Sprintf("- Master %s fundamentals and complete hands-on project", gap.Skill)
	}
	return strings.Join(goals, "\n")
}

func (c *Composer) resourceRecommendations(gaps []Gap) string {
	critical := filterPriority(gaps, "Critical")
	if len(critical) > 5 {
		critical = critical[:5]
	}

	var sb strings.Builder
	sb.WriteString(`## Recommended Resources

### Free Learning Platforms
- **Coursera**: Audit courses for free, certificates available for fee
- **edX**: MIT and Harvard courses, free audit option
- **freeCodeCamp**: Comprehensive web development curriculum
- **Kaggle Learn**: Micro-courses in data science and ML
- **YouTube**: Channels like Traversy Media, Tech with Tim, Sentdex

### Hands-On Practice
- **GitHub**: Build portfolio, contribute to open source
- **LeetCode/HackerRank**: Algorithm and coding practice
- **Kaggle**: Data science competitions and datasets
- **AWS Free Tier**: Cloud platform experimentation
- **Docker Hub**: Container experimentation

### Skill-Specific Resources`)

	for _, gap := range critical {
		skill := strings.ToLower(gap.Skill)
		levels, ok := c.resources.Skills[skill]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "\n\n#### %s\n", titleWords(skill))
		for _, level := range []string{"beginner", "intermediate", "advanced"} {
			if entries, ok := levels[level]; ok {
				fmt.Fprintf(&sb, "**%s**: %s\n", titleWords(level), strings.Join(entries, ", "))
			}
		}
	}

	sb.WriteString(`

### Professional Development
- **LinkedIn Learning**: Professional skills and networking
- **Meetup.com**: Local tech meetups and networking events
- **Dev.to**: Technical articles and community
- **Stack Overflow**: Problem-solving and community support
- **Podcasts**: Software Engineering Daily, Talk Python to Me

### Certification Paths (Optional)
- **AWS Certified Solutions Architect**: Cloud architecture
- **Google Cloud Professional**: GCP expertise
- **Certified Kubernetes Administrator (CKA)**: Container orchestration
- **TensorFlow Developer Certificate**: Machine learning`)

	return sb.String()
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
