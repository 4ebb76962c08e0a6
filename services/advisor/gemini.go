package advisorsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/gradmap/gradmap/core"
	"github.com/gradmap/gradmap/core/advisor"
	"github.com/gradmap/gradmap/core/course"
)

// keep prompts small: a few hundred course lines is plenty for the model
const maxPromptCourses = 200

// GeminiClient implements advisor.Client on Google's Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ advisor.Client = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, conf *core.Config) (*GeminiClient, error) {
	if conf.Advisor.APIKey == "" {
		return nil, errors.New("advisor API key is not configured")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: conf.Advisor.APIKey})
	if err != nil {
		return nil, errors.Wrap(err, "creating genai client")
	}
	return &GeminiClient{client: client, model: conf.Advisor.Model}, nil
}

func (gc *GeminiClient) Recommend(ctx context.Context, goal string, courses []course.Course) (advisor.Result, error) {
	res, err := gc.client.Models.GenerateContent(
		ctx,
		gc.model,
		genai.Text(buildPrompt(goal, courses)),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return advisor.Result{}, errors.Wrap(err, "generating recommendations")
	}

	var result advisor.Result
	if err = json.Unmarshal([]byte(res.Text()), &result); err != nil {
		return advisor.Result{}, errors.Wrap(err, "decoding model response")
	}
	return result, nil
}

func buildPrompt(goal string, courses []course.Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recommend 3-6 courses for this career goal: %s\n\nAvailable courses:\n", goal)

	n := len(courses)
	if n > maxPromptCourses {
		n = maxPromptCourses
	}
	for _, c := range courses[:n] {
		desc := c.Description
		if len(desc) > 160 {
			desc = desc[:160]
		}
		fmt.Fprintf(&b, "- %s: %s - %s\n", c.Code, c.Title, desc)
	}

	b.WriteString(`
Return JSON with:
- career_analysis: brief analysis of required skills
- required_skills: list of key skills needed
- recommended_courses: array of {code, title, relevance, skills_taught, priority}
- skill_coverage_percentage: estimated integer percentage
- additional_advice: practical advice

Only use course codes from the provided list.
`)
	return b.String()
}
