package workout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Source tags where a generated plan came from. Fallback sources name the
// failure that forced the template path, so the cause stays observable even
// though the caller only sees a plan.
type Source string

const (
	SourceModel            Source = "model"
	SourceFallbackUpstream Source = "fallback_upstream"
	SourceFallbackParse    Source = "fallback_parse"
	SourceFallbackShape    Source = "fallback_shape"
)

var (
	errNoModelKey = errors.New("model API key not configured")
)

// ModelClient talks to an OpenAI-style chat-completions endpoint.
type ModelClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

func NewModelClient(apiKey, baseURL, model string, timeout time.Duration) *ModelClient {
	return &ModelClient{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt and returns the raw text of the first choice.
func (c *ModelClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errNoModelKey
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("model HTTP %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decode model response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("no choices in model response")
	}

	return cr.Choices[0].Message.Content, nil
}

// ModelGenerator is the model-backed plan path with an unconditional
// template fallback.
type ModelGenerator struct {
	client   *ModelClient
	fallback *Generator
}

func NewModelGenerator(client *ModelClient, fallback *Generator) *ModelGenerator {
	return &ModelGenerator{client: client, fallback: fallback}
}

// Generate asks the model for a plan and falls back to the template
// generator on any failure. It never surfaces a model error to the caller;
// the Source tag and log line record which path produced the plan and why.
func (g *ModelGenerator) Generate(ctx context.Context, form FormData) (*Plan, Source, error) {
	plan, source, err := g.fromModel(ctx, form)
	if err == nil {
		return plan, source, nil
	}

	slog.Warn("model plan generation failed, using template fallback",
		"source", source, "error", err, "goal", form.Goal, "level", form.Level)

	plan, fbErr := g.fallback.Generate(form)
	if fbErr != nil {
		return nil, source, fbErr
	}
	return plan, source, nil
}

// fromModel runs the model round trip and maps each failure to its source
// tag: upstream (network/HTTP), parse (bad JSON), shape (days missing).
func (g *ModelGenerator) fromModel(ctx context.Context, form FormData) (*Plan, Source, error) {
	prompt, err := buildPlanPrompt(form)
	if err != nil {
		return nil, SourceFallbackUpstream, err
	}

	text, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return nil, SourceFallbackUpstream, err
	}

	parsed, err := parseModelPlan(text)
	if err != nil {
		return nil, SourceFallbackParse, err
	}

	if parsed.Days == nil {
		return nil, SourceFallbackShape, errors.New("model response has no days array")
	}

	return buildPlan(parsed, form), SourceModel, nil
}

type modelPlanResponse struct {
	Name string             `json:"name"`
	Days []modelDayResponse `json:"days"`
}

type modelDayResponse struct {
	Day       string                  `json:"day"`
	Exercises []modelExerciseResponse `json:"exercises"`
}

type modelExerciseResponse struct {
	ID          any    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	Duration    int    `json:"duration"`
	Equipment   string `json:"equipment"`
	ImageURL    string `json:"imageUrl"`
}

// parseModelPlan extracts the substring between the first '{' and the last
// '}' and decodes it, tolerating prose the model wraps around the JSON.
func parseModelPlan(text string) (*modelPlanResponse, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, errors.New("no JSON object in model response")
	}

	var parsed modelPlanResponse
	err := json.Unmarshal([]byte(text[start:end+1]), &parsed)
	if err != nil {
		return nil, fmt.Errorf("unmarshal model plan: %w", err)
	}
	return &parsed, nil
}

// buildPlan normalizes the decoded response into a Plan: day labels are
// validated against the weekday names and missing exercise fields are
// backfilled.
func buildPlan(parsed *modelPlanResponse, form FormData) *Plan {
	name := parsed.Name
	if name == "" {
		name = planName(form.Goal, form.Level)
	}

	days := make([]Day, 0, len(parsed.Days))
	for _, d := range parsed.Days {
		exercises := make([]Exercise, 0, len(d.Exercises))
		for _, ex := range d.Exercises {
			exercises = append(exercises, normalizeExercise(ex))
		}
		days = append(days, Day{
			Day:       normalizeWeekday(d.Day),
			Exercises: exercises,
		})
	}

	return &Plan{
		ID:        uuid.New().String(),
		Name:      name,
		Goal:      form.Goal,
		Level:     form.Level,
		Days:      days,
		CreatedAt: time.Now(),
	}
}

// normalizeWeekday case-normalizes the label and validates it against the
// seven weekday names, defaulting to Monday when invalid.
func normalizeWeekday(label string) string {
	formatted := title(strings.ToLower(strings.TrimSpace(label)))
	for _, day := range Weekdays {
		if day == formatted {
			return day
		}
	}
	return "Monday"
}

func normalizeExercise(ex modelExerciseResponse) Exercise {
	id := ""
	if ex.ID != nil {
		id = strings.TrimSpace(fmt.Sprint(ex.ID))
	}
	if id == "" {
		id = uuid.New().String()
	}

	name := ex.Name
	if name == "" {
		name = "Unknown Exercise"
	}

	description := ex.Description
	if description == "" {
		description = "No description provided"
	}

	imageURL := ex.ImageURL
	if imageURL == "" {
		imageURL = defaultImageForExercise(name)
	}

	equipment := ex.Equipment
	if equipment == "" || strings.EqualFold(equipment, "bodyweight") {
		equipment = EquipmentNone
	}

	return Exercise{
		ID:          id,
		Name:        name,
		Description: description,
		Sets:        ex.Sets,
		Reps:        ex.Reps,
		DurationSec: ex.Duration,
		Equipment:   equipment,
		ImageURL:    imageURL,
	}
}
