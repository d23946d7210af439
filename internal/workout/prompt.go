package workout

import (
	"bytes"
	"strings"
	"text/template"
)

// planPromptTemplate asks the model for the exact JSON shape the response
// parser expects. Parsed once at package init; reused on every call.
var planPromptTemplate = template.Must(template.New("plan_prompt").Parse(`
Generate a detailed {{.DaysPerWeek}}-day workout plan for a {{.Level}} level person focusing on {{.Goal}} with the following equipment: {{.Equipment}}.
The person wants to focus on these areas: {{.FocusAreas}}.
Each workout should last approximately {{.DurationMin}} minutes.

For each exercise, provide:
1. A descriptive name
2. A brief explanation of how to perform it
3. Number of sets and reps (or duration in seconds for timed exercises)
4. Required equipment (or specify "bodyweight" if none needed)
5. Which body part it targets

Be specific and provide exercises that are appropriate for the {{.Level}} level and will help achieve the {{.Goal}} goal.

Return ONLY a JSON object with the following structure:
{
  "name": "A descriptive name for the plan",
  "days": [
    {
      "day": "Monday",
      "exercises": [
        {
          "id": "1",
          "name": "Exercise Name",
          "description": "Brief description of the exercise and how to perform it",
          "sets": 3,
          "reps": 10,
          "duration": null,
          "equipment": "equipment type or 'none' if bodyweight"
        }
      ]
    }
  ]
}

For time-based exercises like planks or cardio, use "duration" (in seconds) instead of "reps".
Include {{.DaysPerWeek}} days in the plan.
Make sure the exercises are appropriate for the specified fitness goal and experience level.
`))

type promptData struct {
	Goal        Goal
	Level       Level
	Equipment   string
	DaysPerWeek int
	FocusAreas  string
	DurationMin int
}

// buildPlanPrompt renders the preferences into the model prompt.
func buildPlanPrompt(form FormData) (string, error) {
	focus := "full body"
	if len(form.FocusAreas) > 0 {
		focus = strings.Join(form.FocusAreas, ", ")
	}

	var buf bytes.Buffer
	err := planPromptTemplate.Execute(&buf, promptData{
		Goal:        form.Goal,
		Level:       form.Level,
		Equipment:   strings.Join(form.Equipment, ", "),
		DaysPerWeek: form.DaysPerWeek,
		FocusAreas:  focus,
		DurationMin: form.DurationMin,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
