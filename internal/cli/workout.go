package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/trackfit/trackfit/internal/client"
	"github.com/trackfit/trackfit/internal/workout"
)

type WorkoutGenerateCmd struct {
	Goal      string   `help:"Fitness goal (strength, cardio, endurance, yoga, flexibility, balance)."`
	Level     string   `help:"Experience level (beginner, intermediate, advanced)."`
	Equipment []string `help:"Available equipment." placeholder:"dumbbells,..."`
	Days      int      `help:"Workout days per week (1-7)."`
	Focus     []string `help:"Focus areas." placeholder:"core,..."`
	Duration  int      `help:"Session duration in minutes."`
	AI        bool     `help:"Generate the plan with the configured model, falling back to the local generator." name:"ai"`
}

func (c *WorkoutGenerateCmd) Run(ctx *Context) error {
	form := workout.FormData{
		Goal:        workout.Goal(strings.ToLower(c.Goal)),
		Level:       workout.Level(strings.ToLower(c.Level)),
		Equipment:   c.Equipment,
		DaysPerWeek: c.Days,
		FocusAreas:  c.Focus,
		DurationMin: c.Duration,
	}
	if c.Goal == "" {
		if err := runPreferencesForm(&form); err != nil {
			return err
		}
	}
	if !workout.ValidGoal(form.Goal) {
		return fmt.Errorf("invalid goal %q", form.Goal)
	}
	if form.Level == "" {
		form.Level = workout.LevelBeginner
	}
	if !workout.ValidLevel(form.Level) {
		return fmt.Errorf("invalid level %q", form.Level)
	}
	if form.DaysPerWeek == 0 {
		form.DaysPerWeek = 3
	}

	local := workout.NewGenerator(workout.DefaultCatalog(), nil)

	var plan *workout.Plan
	var err error
	if c.AI {
		model := workout.NewModelClient(ctx.ModelAPIKey, ctx.ModelBaseURL, ctx.ModelName, 30*time.Second)
		generator := workout.NewModelGenerator(model, local)
		var source workout.Source
		plan, source, err = generator.Generate(context.Background(), form)
		if err == nil && source != workout.SourceModel {
			fmt.Println(dimStyle.Render("Model unavailable, generated locally"))
		}
	} else {
		plan, err = local.Generate(form)
	}
	if err != nil {
		return err
	}

	if err := ctx.Store.SavePlan(plan); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	fmt.Println(renderPlan(plan))
	return nil
}

func runPreferencesForm(form *workout.FormData) error {
	days := "3"
	duration := "30"
	focus := ""

	goalOptions := make([]huh.Option[workout.Goal], 0, len(workout.Goals))
	for _, goal := range workout.Goals {
		goalOptions = append(goalOptions, huh.NewOption(string(goal), goal))
	}
	levelOptions := make([]huh.Option[workout.Level], 0, len(workout.Levels))
	for _, level := range workout.Levels {
		levelOptions = append(levelOptions, huh.NewOption(string(level), level))
	}
	equipmentOptions := make([]huh.Option[string], 0, len(workout.EquipmentOptions))
	for _, eq := range workout.EquipmentOptions {
		equipmentOptions = append(equipmentOptions, huh.NewOption(eq, eq))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[workout.Goal]().
				Title("Fitness goal").
				Options(goalOptions...).
				Value(&form.Goal),
			huh.NewSelect[workout.Level]().
				Title("Experience level").
				Options(levelOptions...).
				Value(&form.Level),
			huh.NewMultiSelect[string]().
				Title("Available equipment").
				Options(equipmentOptions...).
				Value(&form.Equipment),
			huh.NewInput().
				Title("Days per week (1-7)").
				Value(&days).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if n < 1 || n > 7 {
						return fmt.Errorf("days must be 1-7")
					}
					return nil
				}),
			huh.NewInput().
				Title("Session duration (minutes)").
				Value(&duration).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if n <= 0 {
						return fmt.Errorf("duration must be positive")
					}
					return nil
				}),
			huh.NewInput().
				Title("Focus areas (comma-separated, optional)").
				Value(&focus),
		),
	).Run()
	if err != nil {
		return err
	}

	form.DaysPerWeek, _ = strconv.Atoi(days)
	form.DurationMin, _ = strconv.Atoi(duration)
	for _, area := range strings.Split(focus, ",") {
		if area = strings.TrimSpace(area); area != "" {
			form.FocusAreas = append(form.FocusAreas, area)
		}
	}
	return nil
}

type WorkoutShowCmd struct{}

func (c *WorkoutShowCmd) Run(ctx *Context) error {
	plan, err := ctx.Store.Plan()
	if err != nil {
		return err
	}
	if plan == nil {
		fmt.Println("No workout plan saved, run `trackfit workout generate`")
		return nil
	}
	fmt.Println(renderPlan(plan))
	return nil
}

type WorkoutCompleteDayCmd struct {
	Day  string `arg:"" help:"Day to mark (e.g. Monday)."`
	Undo bool   `help:"Mark the day as not completed instead."`
}

func (c *WorkoutCompleteDayCmd) Run(ctx *Context) error {
	plan, err := ctx.Store.Plan()
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("no workout plan saved")
	}
	if !plan.SetDayCompleted(c.Day, !c.Undo) {
		return fmt.Errorf("%q is not a day in the current plan", c.Day)
	}
	if err := ctx.Store.SavePlan(plan); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	fmt.Printf("%s updated, plan is %d%% complete\n", c.Day, plan.CompletionPercentage)
	return nil
}

type WorkoutTipsCmd struct {
	Watch bool `help:"Keep running and print a new tip every minute."`
}

func (c *WorkoutTipsCmd) Run(ctx *Context) error {
	plan, err := ctx.Store.Plan()
	if err != nil {
		return err
	}
	goal := workout.GoalStrength
	if plan != nil {
		goal = plan.Goal
	}

	if !c.Watch {
		fmt.Println(workout.RandomTip(goal))
		return nil
	}

	notifier := client.NewNotifier(5 * time.Minute)
	notifier.Push(client.NotificationInfo, workout.RandomTip(goal))
	if err := notifier.StartTips(goal); err != nil {
		return err
	}
	defer notifier.Stop()

	stop, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	seen := map[string]bool{}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		for _, note := range notifier.Active() {
			if !seen[note.ID] {
				seen[note.ID] = true
				fmt.Printf("%s %s\n", dimStyle.Render(note.CreatedAt.Format("15:04")), note.Message)
			}
		}
		select {
		case <-stop.Done():
			return nil
		case <-ticker.C:
		}
	}
}
