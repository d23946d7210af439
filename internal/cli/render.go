package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trackfit/trackfit/internal/model"
	"github.com/trackfit/trackfit/internal/workout"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusStyles = map[string]lipgloss.Style{
		model.JobStatusApplied:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		model.JobStatusInterview: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		model.JobStatusOffer:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		model.JobStatusRejected:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

func renderStatus(status string) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(status)
	}
	return status
}

func renderJobs(jobs []*model.Job, showIDs bool) string {
	var b strings.Builder
	for _, job := range jobs {
		line := fmt.Sprintf("%-10s %s @ %s  %s",
			renderStatus(job.Status), job.Role, job.Company,
			dimStyle.Render(job.Date.Format("2006-01-02")))
		b.WriteString(line)
		b.WriteString("\n")
		if showIDs {
			b.WriteString(dimStyle.Render("  id: " + job.ID))
			b.WriteString("\n")
		}
		if job.Link != "" {
			b.WriteString(dimStyle.Render("  " + job.Link))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderPlan(plan *workout.Plan) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(plan.Name))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s / %s, created %s",
		plan.Goal, plan.Level, plan.CreatedAt.Format("2006-01-02"))))
	b.WriteString(fmt.Sprintf("\nCompletion: %d%%\n", plan.CompletionPercentage))

	for _, day := range plan.Days {
		mark := "[ ]"
		if day.Completed {
			mark = successStyle.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("\n%s %s\n", mark, headerStyle.Render(day.Day)))
		for _, ex := range day.Exercises {
			b.WriteString("  " + ex.Name)
			if ex.DurationSec > 0 {
				b.WriteString(dimStyle.Render(fmt.Sprintf("  %d sets x %ds", ex.Sets, ex.DurationSec)))
			} else {
				b.WriteString(dimStyle.Render(fmt.Sprintf("  %d sets x %d reps", ex.Sets, ex.Reps)))
			}
			if ex.Equipment != workout.EquipmentNone {
				b.WriteString(dimStyle.Render("  (" + ex.Equipment + ")"))
			}
			b.WriteString("\n")
		}
	}
	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}
