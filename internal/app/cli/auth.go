package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"hrmportal/internal/platform/session"
)

func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (defaults to $HRM_PASSWORD, then a prompt)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *email == "" {
		line, err := a.readLine("email: ")
		if err != nil {
			return err
		}
		*email = line
	}
	if *password == "" {
		*password = os.Getenv("HRM_PASSWORD")
	}
	if *password == "" {
		line, err := a.readLine("password: ")
		if err != nil {
			return err
		}
		*password = line
	}

	resp, err := a.API.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := a.Tokens.Save(resp.BearerToken()); err != nil {
		return err
	}
	out := map[string]any{"message": resp.Message}
	if resp.User != nil {
		out["user"] = resp.User
	}
	return a.print(out)
}

func (a *App) runLogout(ctx context.Context, args []string) error {
	if err := parse(a.flagSet("logout"), args); err != nil {
		return err
	}
	if err := a.Tokens.Clear(); err != nil {
		return err
	}
	return a.print(map[string]string{"message": "logged out"})
}

func (a *App) runWhoami(ctx context.Context, args []string) error {
	if err := parse(a.flagSet("whoami"), args); err != nil {
		return err
	}
	token, err := a.Tokens.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return errors.New("not logged in")
	}
	claims, err := session.Inspect(token)
	if errors.Is(err, session.ErrNotJWT) {
		return a.print(map[string]any{"token": "opaque"})
	}
	if err != nil {
		return err
	}
	return a.print(map[string]any{
		"claims":  claims,
		"expired": claims.Expired(a.now()),
	})
}

func (a *App) runRoles(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "list", "assign")
	if err != nil {
		return err
	}
	switch verb {
	case "assign":
		fs := a.flagSet("roles assign")
		userID := fs.String("user", "", "user id")
		roleID := fs.String("role", "", "role id")
		isDefault := fs.Bool("default", false, "make it the user's default role")
		if err := parse(fs, rest); err != nil {
			return err
		}
		if *userID == "" || *roleID == "" {
			return fmt.Errorf("%w: -user and -role are required", ErrUsage)
		}
		var flagDefault *bool
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "default" {
				flagDefault = isDefault
			}
		})
		msg, err := a.API.Auth.AssignRole(ctx, *userID, *roleID, flagDefault)
		if err != nil {
			return err
		}
		return a.print(msg)
	default:
		if err := parse(a.flagSet("roles list"), rest); err != nil {
			return err
		}
		roles, err := a.API.Auth.ListRoles(ctx)
		if err != nil {
			return err
		}
		return a.print(roles)
	}
}
