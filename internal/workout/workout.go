// Package workout generates weekly workout plans from user preferences,
// either locally from a fixed exercise catalog or through an external
// language model with a local fallback.
package workout

import (
	"math"
	"strings"
	"time"
)

type Goal string

const (
	GoalStrength    Goal = "strength"
	GoalCardio      Goal = "cardio"
	GoalEndurance   Goal = "endurance"
	GoalYoga        Goal = "yoga"
	GoalFlexibility Goal = "flexibility"
	GoalBalance     Goal = "balance"
)

// Goals lists the supported fitness goals.
var Goals = []Goal{GoalStrength, GoalCardio, GoalEndurance, GoalYoga, GoalFlexibility, GoalBalance}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Equipment options offered on the preferences form. EquipmentNone marks a
// bodyweight exercise, which is always eligible regardless of selection.
const (
	EquipmentNone       = "none"
	EquipmentDumbbells  = "dumbbells"
	EquipmentBands      = "resistance bands"
	EquipmentKettlebell = "kettlebell"
	EquipmentGym        = "gym"
)

var EquipmentOptions = []string{EquipmentNone, EquipmentDumbbells, EquipmentBands, EquipmentKettlebell, EquipmentGym}

// Weekdays are the valid day labels, in calendar order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// FormData is the user's submitted workout preferences.
type FormData struct {
	Goal        Goal     `json:"fitnessGoal"`
	Level       Level    `json:"experienceLevel"`
	Equipment   []string `json:"equipment"`
	DaysPerWeek int      `json:"daysPerWeek"`
	FocusAreas  []string `json:"focusAreas"`
	DurationMin int      `json:"duration"`
}

// Exercise is immutable once placed in a plan. Sets, Reps, DurationSec and
// Equipment are optional; zero values mean "not set".
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Sets        int    `json:"sets,omitempty"`
	Reps        int    `json:"reps,omitempty"`
	DurationSec int    `json:"duration,omitempty"`
	Equipment   string `json:"equipment,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Day is one scheduled weekday in a plan. Only Completed is mutated after
// generation.
type Day struct {
	Day       string     `json:"day"`
	Exercises []Exercise `json:"exercises"`
	Completed bool       `json:"completed"`
}

type Plan struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Goal                 Goal      `json:"goal"`
	Level                Level     `json:"level"`
	Days                 []Day     `json:"days"`
	CreatedAt            time.Time `json:"createdAt"`
	CompletionPercentage int       `json:"completionPercentage"`
}

// CompletionPercentage returns round(100 * completed days / total days).
func CompletionPercentage(plan *Plan) int {
	if len(plan.Days) == 0 {
		return 0
	}

	completed := 0
	for _, day := range plan.Days {
		if day.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(plan.Days)) * 100))
}

// SetDayCompleted toggles the named day and re-derives the completion
// percentage. Returns false when the plan has no such day.
func (p *Plan) SetDayCompleted(label string, completed bool) bool {
	for i := range p.Days {
		if strings.EqualFold(p.Days[i].Day, label) {
			p.Days[i].Completed = completed
			p.CompletionPercentage = CompletionPercentage(p)
			return true
		}
	}
	return false
}

func ValidGoal(g Goal) bool {
	for _, goal := range Goals {
		if goal == g {
			return true
		}
	}
	return false
}

func ValidLevel(l Level) bool {
	for _, level := range Levels {
		if level == l {
			return true
		}
	}
	return false
}

// planName builds the default plan title, e.g. "Beginner Strength Plan".
func planName(goal Goal, level Level) string {
	return title(string(level)) + " " + title(string(goal)) + " Plan"
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
