package advisor

import (
	"fmt"
	"strings"

	"github.com/gradmap/gradmap/core/course"
)

const maxFallbackCourses = 6

// Fallback builds a keyword-matched recommendation set without any model
// involvement. Quality is deliberately rough; its job is to keep the panel
// populated when the advisor is down.
func Fallback(goal string, courses []course.Course) Result {
	goalLower := strings.ToLower(goal)

	recs := make([]Recommendation, 0, maxFallbackCourses)
	for _, c := range courses {
		if len(recs) == maxFallbackCourses {
			break
		}
		subject := strings.ToUpper(c.Subject)
		var relevance string
		switch {
		case subject == "CS":
			relevance = fmt.Sprintf("Computer Science course for %s", goal)
		case subject == "ENG" || strings.HasPrefix(subject, "EC"):
			relevance = fmt.Sprintf("Engineering course for %s", goal)
		case matchesGoal(c, goalLower):
			relevance = fmt.Sprintf("Relevant course for %s", goal)
		default:
			continue
		}
		recs = append(recs, Recommendation{
			Code:      c.Code,
			Title:     c.Title,
			Relevance: relevance,
			Skills:    []string{"Technical skills", "Problem-solving"},
			Priority:  "Medium",
		})
	}

	return Result{
		CareerAnalysis:  fmt.Sprintf("Careers in %s typically require a mix of foundational and specialized coursework.", goal),
		RequiredSkills:  []string{"Problem-solving", "Analysis", "Communication"},
		Recommendations: recs,
		CoveragePercent: 65,
		Advice:          "Build real projects and talk to an academic advisor to refine this plan.",
	}
}

func matchesGoal(c course.Course, goalLower string) bool {
	for _, word := range strings.Fields(goalLower) {
		if len(word) < 4 {
			continue
		}
		if strings.Contains(strings.ToLower(c.Title), word) ||
			strings.Contains(strings.ToLower(c.Description), word) {
			return true
		}
	}
	return false
}
