package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/trackfit/trackfit/internal/client"
)

type JobsListCmd struct {
	Status  string `help:"Filter by status (Applied, Interview, Offer, Rejected)." enum:"all,Applied,Interview,Offer,Rejected" default:"all"`
	Sort    string `help:"Sort order by application date." enum:"newest,oldest" default:"newest"`
	ShowIDs bool   `help:"Show job IDs." name:"show-ids"`
}

func (c *JobsListCmd) Run(ctx *Context) error {
	api, err := ctx.AuthedAPI()
	if err != nil {
		return err
	}
	jobs, err := api.Jobs()
	if err != nil {
		return err
	}

	if c.Status != "all" {
		filtered := jobs[:0]
		for _, job := range jobs {
			if job.Status == c.Status {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}
	// The server returns newest first already.
	if c.Sort == "oldest" {
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Date.Before(jobs[j].Date)
		})
	}

	if len(jobs) == 0 {
		fmt.Println("No applications found")
		return nil
	}
	fmt.Print(renderJobs(jobs, c.ShowIDs))
	return nil
}

type JobsAddCmd struct {
	Company string `help:"Company name." required:""`
	Role    string `help:"Job role." required:""`
	Status  string `help:"Application status." enum:"Applied,Interview,Offer,Rejected" default:"Applied"`
	Date    string `help:"Application date (YYYY-MM-DD), defaults to today."`
	Link    string `help:"Job posting URL."`
}

func (c *JobsAddCmd) Run(ctx *Context) error {
	api, err := ctx.AuthedAPI()
	if err != nil {
		return err
	}
	payload := client.JobPayload{
		Company: &c.Company,
		Role:    &c.Role,
		Status:  &c.Status,
	}
	if c.Date != "" {
		date, err := parseDate(c.Date)
		if err != nil {
			return err
		}
		payload.Date = &date
	}
	if c.Link != "" {
		payload.Link = &c.Link
	}

	job, err := api.CreateJob(payload)
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render("Added " + job.Role + " @ " + job.Company))
	fmt.Println(dimStyle.Render("id: " + job.ID))
	return nil
}

type JobsUpdateCmd struct {
	ID      string `arg:"" help:"Job ID."`
	Company string `help:"New company name."`
	Role    string `help:"New job role."`
	Status  string `help:"New status." enum:",Applied,Interview,Offer,Rejected" default:""`
	Date    string `help:"New application date (YYYY-MM-DD)."`
	Link    string `help:"New job posting URL."`
}

func (c *JobsUpdateCmd) Run(ctx *Context) error {
	api, err := ctx.AuthedAPI()
	if err != nil {
		return err
	}
	var payload client.JobPayload
	if c.Company != "" {
		payload.Company = &c.Company
	}
	if c.Role != "" {
		payload.Role = &c.Role
	}
	if c.Status != "" {
		payload.Status = &c.Status
	}
	if c.Date != "" {
		date, err := parseDate(c.Date)
		if err != nil {
			return err
		}
		payload.Date = &date
	}
	if c.Link != "" {
		payload.Link = &c.Link
	}

	job, err := api.UpdateJob(c.ID, payload)
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render("Updated " + job.Role + " @ " + job.Company))
	fmt.Println("Status: " + renderStatus(job.Status))
	return nil
}

type JobsDeleteCmd struct {
	ID string `arg:"" help:"Job ID."`
}

func (c *JobsDeleteCmd) Run(ctx *Context) error {
	api, err := ctx.AuthedAPI()
	if err != nil {
		return err
	}
	if err := api.DeleteJob(c.ID); err != nil {
		return err
	}
	fmt.Println("Job deleted")
	return nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return date, nil
}
