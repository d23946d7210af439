package cli

import (
	"fmt"

	"github.com/trackfit/trackfit/internal/client"
)

type RegisterCmd struct {
	Name     string `help:"Display name." required:""`
	Email    string `help:"Email address." required:""`
	Password string `help:"Password (min 6 characters)." required:""`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	api, err := ctx.API()
	if err != nil {
		return err
	}
	result, err := api.Register(c.Name, c.Email, c.Password)
	if err != nil {
		return err
	}
	if err := saveSession(ctx, result); err != nil {
		return err
	}
	fmt.Println(successStyle.Render("Registered and logged in as " + result.Email))
	return nil
}

type LoginCmd struct {
	Email    string `help:"Email address." required:""`
	Password string `help:"Password." required:""`
}

func (c *LoginCmd) Run(ctx *Context) error {
	api, err := ctx.API()
	if err != nil {
		return err
	}
	result, err := api.Login(c.Email, c.Password)
	if err != nil {
		return err
	}
	if err := saveSession(ctx, result); err != nil {
		return err
	}
	fmt.Println(successStyle.Render("Logged in as " + result.Email))
	return nil
}

type MeCmd struct{}

func (c *MeCmd) Run(ctx *Context) error {
	api, err := ctx.AuthedAPI()
	if err != nil {
		return err
	}
	user, err := api.Me()
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	fmt.Println(dimStyle.Render("id: " + user.ID))
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Store.ClearSession(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func saveSession(ctx *Context, result *client.AuthResult) error {
	return ctx.Store.SaveSession(&client.Session{
		Token: result.Token,
		User: client.Profile{
			ID:    result.ID,
			Name:  result.Name,
			Email: result.Email,
		},
	})
}
