package advisor

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/gradmap/gradmap/core"
)

type (
	// RecommendationRequest carries a free-text career goal and an optional
	// school filter.
	RecommendationRequest struct {
		Goal    string   `json:"goal" validate:"required,min=3"`
		Schools []string `json:"schools" validate:"omitempty,dive,required"`
	}

	Recommendation struct {
		Code      string   `json:"code"`
		Title     string   `json:"title"`
		Relevance string   `json:"relevance"`
		Skills    []string `json:"skills_taught"`
		Priority  string   `json:"priority"`
	}

	// Result is display-only: it never feeds back into planning invariants.
	Result struct {
		CareerAnalysis  string           `json:"career_analysis"`
		RequiredSkills  []string         `json:"required_skills"`
		Recommendations []Recommendation `json:"recommended_courses"`
		CoveragePercent int              `json:"skill_coverage_percentage"`
		Advice          string           `json:"additional_advice"`

		// set when the model could not answer and a canned result was substituted
		Fallback bool   `json:"fallback,omitempty"`
		Notice   string `json:"notice,omitempty"`
	}
)

func (r *RecommendationRequest) Validate(validate *validator.Validate, _ ut.Translator) error {
	r.Goal = core.CleanString(r.Goal)
	for i, s := range r.Schools {
		r.Schools[i] = core.CleanString(s)
	}
	return validate.Struct(r)
}
