package workout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// newChatServer serves an OpenAI-style chat completion whose message
// content is the given text.
func newChatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: content}})
		json.NewEncoder(w).Encode(resp)
	}))
}

func newModelGenerator(serverURL string) *ModelGenerator {
	client := NewModelClient("test-key", serverURL, "test-model", 5*time.Second)
	fallback := NewGenerator(DefaultCatalog(), testRNG())
	return NewModelGenerator(client, fallback)
}

const validModelContent = `Here is your plan:
{
  "name": "Custom Strength Builder",
  "days": [
    {
      "day": "TUESDAY",
      "exercises": [
        {"id": 1, "name": "Diamond Push-ups", "sets": 3, "reps": 12, "equipment": "bodyweight"},
        {"name": "Goblet Squats", "description": "Hold a dumbbell at chest height and squat.", "sets": 3, "reps": 10, "equipment": "dumbbells", "imageUrl": "https://example.com/goblet.jpg"}
      ]
    },
    {
      "day": "someday",
      "exercises": [
        {"id": "p1", "name": "Plank", "description": "Hold it.", "sets": 3, "duration": 45, "equipment": "none"}
      ]
    }
  ]
}
Enjoy!`

func TestModelGenerateSuccess(t *testing.T) {
	server := newChatServer(t, validModelContent)
	defer server.Close()

	g := newModelGenerator(server.URL)
	form := FormData{Goal: GoalStrength, Level: LevelIntermediate, DaysPerWeek: 2}

	plan, source, err := g.Generate(context.Background(), form)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if source != SourceModel {
		t.Fatalf("source = %s, want %s", source, SourceModel)
	}

	if plan.Name != "Custom Strength Builder" {
		t.Errorf("plan name = %q", plan.Name)
	}
	if len(plan.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(plan.Days))
	}

	// Day labels are case-normalized, unknown ones default to Monday
	if plan.Days[0].Day != "Tuesday" {
		t.Errorf("day label = %q, want Tuesday", plan.Days[0].Day)
	}
	if plan.Days[1].Day != "Monday" {
		t.Errorf("invalid day label = %q, want Monday", plan.Days[1].Day)
	}

	first := plan.Days[0].Exercises[0]
	if first.ID != "1" {
		t.Errorf("numeric id = %q, want \"1\"", first.ID)
	}
	if first.Description != "No description provided" {
		t.Errorf("missing description = %q", first.Description)
	}
	if first.Equipment != EquipmentNone {
		t.Errorf("bodyweight equipment = %q, want %q", first.Equipment, EquipmentNone)
	}
	if !strings.Contains(first.ImageURL, "1571019613454") {
		t.Errorf("push-up image not keyword-matched: %q", first.ImageURL)
	}

	second := plan.Days[0].Exercises[1]
	if second.ID == "" {
		t.Error("missing id was not backfilled")
	}
	if second.ImageURL != "https://example.com/goblet.jpg" {
		t.Errorf("provided image was replaced: %q", second.ImageURL)
	}

	timed := plan.Days[1].Exercises[0]
	if timed.DurationSec != 45 {
		t.Errorf("duration = %d, want 45", timed.DurationSec)
	}
}

func TestModelGenerateFallsBackOnBadJSON(t *testing.T) {
	server := newChatServer(t, "Sorry, I can only answer questions about cooking.")
	defer server.Close()

	g := newModelGenerator(server.URL)
	form := FormData{Goal: GoalStrength, Level: LevelBeginner, DaysPerWeek: 3}

	plan, source, err := g.Generate(context.Background(), form)
	if err != nil {
		t.Fatalf("fallback should not surface an error, got %v", err)
	}
	if source != SourceFallbackParse {
		t.Errorf("source = %s, want %s", source, SourceFallbackParse)
	}
	if len(plan.Days) != 3 {
		t.Errorf("fallback plan has %d days, want 3", len(plan.Days))
	}
}

func TestModelGenerateFallsBackOnWrongShape(t *testing.T) {
	server := newChatServer(t, `{"name": "Plan", "exercises": []}`)
	defer server.Close()

	g := newModelGenerator(server.URL)
	form := FormData{Goal: GoalCardio, Level: LevelBeginner, DaysPerWeek: 2}

	plan, source, err := g.Generate(context.Background(), form)
	if err != nil {
		t.Fatalf("fallback should not surface an error, got %v", err)
	}
	if source != SourceFallbackShape {
		t.Errorf("source = %s, want %s", source, SourceFallbackShape)
	}
	if len(plan.Days) != 2 {
		t.Errorf("fallback plan has %d days, want 2", len(plan.Days))
	}
}

func TestModelGenerateFallsBackOnHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer server.Close()

	g := newModelGenerator(server.URL)
	form := FormData{Goal: GoalYoga, Level: LevelAdvanced, DaysPerWeek: 4}

	plan, source, err := g.Generate(context.Background(), form)
	if err != nil {
		t.Fatalf("fallback should not surface an error, got %v", err)
	}
	if source != SourceFallbackUpstream {
		t.Errorf("source = %s, want %s", source, SourceFallbackUpstream)
	}
	if len(plan.Days) != 4 {
		t.Errorf("fallback plan has %d days, want 4", len(plan.Days))
	}
}

func TestModelGenerateFallsBackWithoutAPIKey(t *testing.T) {
	client := NewModelClient("", "http://localhost:0", "test-model", time.Second)
	g := NewModelGenerator(client, NewGenerator(DefaultCatalog(), testRNG()))

	plan, source, err := g.Generate(context.Background(), FormData{
		Goal: GoalStrength, Level: LevelBeginner, DaysPerWeek: 3,
	})
	if err != nil {
		t.Fatalf("fallback should not surface an error, got %v", err)
	}
	if source != SourceFallbackUpstream {
		t.Errorf("source = %s, want %s", source, SourceFallbackUpstream)
	}
	if plan == nil {
		t.Fatal("no plan returned")
	}
}

func TestBuildPlanPrompt(t *testing.T) {
	prompt, err := buildPlanPrompt(FormData{
		Goal:        GoalStrength,
		Level:       LevelIntermediate,
		Equipment:   []string{EquipmentDumbbells, EquipmentKettlebell},
		DaysPerWeek: 4,
		FocusAreas:  []string{"core", "upper body"},
		DurationMin: 45,
	})
	if err != nil {
		t.Fatalf("buildPlanPrompt failed: %v", err)
	}

	for _, want := range []string{
		"4-day workout plan",
		"intermediate level",
		"focusing on strength",
		"dumbbells, kettlebell",
		"core, upper body",
		"approximately 45 minutes",
		`"days"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Focus defaults to full body
	prompt, err = buildPlanPrompt(FormData{Goal: GoalYoga, Level: LevelBeginner, DaysPerWeek: 2})
	if err != nil {
		t.Fatalf("buildPlanPrompt failed: %v", err)
	}
	if !strings.Contains(prompt, "full body") {
		t.Error("prompt missing default focus area")
	}
}

func TestNormalizeWeekday(t *testing.T) {
	cases := map[string]string{
		"monday":     "Monday",
		"  FRIDAY  ": "Friday",
		"Sunday":     "Sunday",
		"Day 1":      "Monday",
		"":           "Monday",
	}
	for in, want := range cases {
		if got := normalizeWeekday(in); got != want {
			t.Errorf("normalizeWeekday(%q) = %q, want %q", in, got, want)
		}
	}
}
