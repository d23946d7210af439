package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/trackfit/trackfit/internal/cli"
	"github.com/trackfit/trackfit/internal/client"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Tracker server base URL." env:"TRACKFIT_SERVER" default:"http://localhost:3001"`
	State   string `help:"State file path (session and workout plan)." env:"TRACKFIT_STATE"`

	ModelAPIKey  string `help:"API key for AI workout generation." env:"MODEL_API_KEY"`
	ModelBaseURL string `help:"Model API base URL." env:"MODEL_BASE_URL" default:"https://api.openai.com/v1"`
	ModelName    string `help:"Model name." env:"MODEL_NAME" default:"gpt-4o-mini"`

	Auth struct {
		Register cli.RegisterCmd `cmd:"" help:"Create an account and log in."`
		Login    cli.LoginCmd    `cmd:"" help:"Log in with email and password."`
		Me       cli.MeCmd       `cmd:"" help:"Show the logged-in user."`
		Logout   cli.LogoutCmd   `cmd:"" help:"Forget the stored session."`
	} `cmd:"" help:"Manage authentication."`

	Jobs struct {
		List   cli.JobsListCmd   `cmd:"" help:"List job applications." default:"1"`
		Add    cli.JobsAddCmd    `cmd:"" help:"Add a job application."`
		Update cli.JobsUpdateCmd `cmd:"" help:"Update a job application."`
		Delete cli.JobsDeleteCmd `cmd:"" help:"Delete a job application."`
	} `cmd:"" help:"Manage job applications."`

	Workout struct {
		Generate    cli.WorkoutGenerateCmd    `cmd:"" help:"Generate a weekly workout plan."`
		Show        cli.WorkoutShowCmd        `cmd:"" help:"Show the saved workout plan." default:"1"`
		CompleteDay cli.WorkoutCompleteDayCmd `cmd:"" help:"Mark a plan day as completed." name:"complete-day"`
		Tips        cli.WorkoutTipsCmd        `cmd:"" help:"Print a training tip for your goal."`
	} `cmd:"" help:"Generate and track workout plans."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("trackfit"),
		kong.Description("Job application tracker and workout planner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": "v0.1.0"},
	)

	statePath := CLI.State
	if statePath == "" {
		path, err := client.DefaultStatePath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		statePath = path
	}

	err := ctx.Run(&cli.Context{
		Store:        client.NewFileStore(statePath),
		Server:       CLI.Server,
		ModelAPIKey:  CLI.ModelAPIKey,
		ModelBaseURL: CLI.ModelBaseURL,
		ModelName:    CLI.ModelName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
