package workout

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
)

// levelMultipliers scale baseline sets/reps/durations per experience tier.
var levelMultipliers = map[Level]float64{
	LevelBeginner:     0.75,
	LevelIntermediate: 1.0,
	LevelAdvanced:     1.25,
}

// Generator assembles workout plans from a catalog by randomized
// template-filling. It is the deterministic local path and the fallback for
// the model-backed path.
type Generator struct {
	catalog Catalog
	rng     *rand.Rand
}

// NewGenerator builds a Generator over the given catalog. A nil rng gets a
// time-seeded source; tests pass a fixed seed.
func NewGenerator(catalog Catalog, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{catalog: catalog, rng: rng}
}

// Generate builds a plan for the submitted preferences: filter the catalog
// by goal and equipment, scale by experience tier, then fill the requested
// number of weekdays with 2-5 random exercises each.
func (g *Generator) Generate(form FormData) (*Plan, error) {
	if !ValidGoal(form.Goal) {
		return nil, fmt.Errorf("unknown fitness goal %q", form.Goal)
	}
	if !ValidLevel(form.Level) {
		return nil, fmt.Errorf("unknown experience level %q", form.Level)
	}

	days := form.DaysPerWeek
	if days < 1 {
		days = 1
	}
	if days > len(Weekdays) {
		days = len(Weekdays)
	}

	pool, err := g.eligibleExercises(form)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		ID:        uuid.New().String(),
		Name:      planName(form.Goal, form.Level),
		Goal:      form.Goal,
		Level:     form.Level,
		Days:      make([]Day, 0, days),
		CreatedAt: time.Now(),
	}

	for _, label := range g.pickWeekdays(days) {
		count := g.rng.Intn(4) + 2 // 2-5 exercises per day
		if count > len(pool) {
			count = len(pool)
		}
		plan.Days = append(plan.Days, Day{
			Day:       label,
			Exercises: g.sample(pool, count),
		})
	}

	return plan, nil
}

// eligibleExercises filters the goal's catalog bucket by the user's
// equipment. An empty post-filter set falls back to the bodyweight subset
// rather than producing a plan of empty days.
func (g *Generator) eligibleExercises(form FormData) ([]Exercise, error) {
	all := g.catalog.Exercises(form.Goal)
	if len(all) == 0 {
		return nil, fmt.Errorf("catalog has no exercises for goal %q", form.Goal)
	}

	selected := make(map[string]bool, len(form.Equipment))
	for _, eq := range form.Equipment {
		selected[eq] = true
	}

	var eligible, bodyweight []Exercise
	for _, ex := range all {
		scaled := scaleExercise(ex, levelMultipliers[form.Level])
		if ex.Equipment == "" || ex.Equipment == EquipmentNone {
			bodyweight = append(bodyweight, scaled)
			eligible = append(eligible, scaled)
			continue
		}
		if selected[ex.Equipment] {
			eligible = append(eligible, scaled)
		}
	}

	if len(eligible) == 0 {
		eligible = bodyweight
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("no eligible exercises for goal %q", form.Goal)
	}

	return eligible, nil
}

// scaleExercise applies the tier multiplier to the optional volume fields,
// never dropping a set value below 1.
func scaleExercise(ex Exercise, multiplier float64) Exercise {
	if multiplier == 0 {
		multiplier = 1.0
	}
	ex.Sets = scaleValue(ex.Sets, multiplier)
	ex.Reps = scaleValue(ex.Reps, multiplier)
	ex.DurationSec = scaleValue(ex.DurationSec, multiplier)
	return ex
}

func scaleValue(v int, multiplier float64) int {
	if v == 0 {
		return 0
	}
	scaled := int(math.Round(float64(v) * multiplier))
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

// pickWeekdays samples n distinct weekdays and presents them in calendar
// order.
func (g *Generator) pickWeekdays(n int) []string {
	indexes := g.rng.Perm(len(Weekdays))[:n]
	sort.Ints(indexes)

	days := make([]string, 0, n)
	for _, i := range indexes {
		days = append(days, Weekdays[i])
	}
	return days
}

// sample picks count random exercises without replacement.
func (g *Generator) sample(pool []Exercise, count int) []Exercise {
	picked := make([]Exercise, 0, count)
	for _, i := range g.rng.Perm(len(pool))[:count] {
		picked = append(picked, pool[i])
	}
	return picked
}
