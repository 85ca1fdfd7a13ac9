package commands

import (
	"BoltPass/internal/config"
	"context"
	"fmt"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and store the session token" }
func (registerCmd) Usage() string       { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	username, password := args[0], args[1]

	var resp sessionResponse
	if err := publicClient(cfg).PostJSON(ctx, "/api/register", credentials{Username: username, Password: password}, &resp); err != nil {
		return err
	}
	if err := persistSession(cfg, username, resp.Token); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered and logged in as %s\n", username)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
