package course

import "strings"

// Degree levels
const (
	LevelIntroductory = "Introductory"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelGraduate     = "Graduate"
)

type (
	// Prerequisites declares the course codes expected before taking a course.
	Prerequisites struct {
		Required    []string `json:"required"`
		Recommended []string `json:"recommended"`
	}

	// Course is a catalog record. It is immutable once fetched: the plan
	// references courses, it never mutates them.
	Course struct {
		ID              string        `json:"id"`
		Code            string        `json:"code"`
		School          string        `json:"school"`
		Subject         string        `json:"subject"`
		CatalogNumber   string        `json:"catalog_number"`
		Title           string        `json:"title"`
		Description     string        `json:"description"`
		Credits         int           `json:"credits"`
		Level           string        `json:"level"`
		Prerequisites   Prerequisites `json:"prerequisites"`
		HubRequirements []string      `json:"hub_requirements"`
	}

	School struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}

	Department struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
)

// CodeParts splits "CAS CS 112" into school, subject and catalog number.
// Partial codes yield empty trailing parts.
func CodeParts(code string) (school, subject, number string) {
	parts := strings.Fields(code)
	switch len(parts) {
	case 0:
	case 1:
		school = parts[0]
	case 2:
		school, subject = parts[0], parts[1]
	default:
		school, subject, number = parts[0], parts[1], parts[2]
	}
	return
}

// QueryFilter narrows a catalog search. All present fields apply (AND).
type QueryFilter struct {
	Search  string `query:"q"`
	School  string `query:"school"`
	HubArea string `query:"hub_area"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.School == "" && qf.HubArea == ""
}
