package commands

import (
	"BoltPass/internal/config"
	"context"
	"fmt"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the session token" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	username, password := args[0], args[1]

	var resp sessionResponse
	if err := publicClient(cfg).PostJSON(ctx, "/api/login", credentials{Username: username, Password: password}, &resp); err != nil {
		return err
	}
	if err := persistSession(cfg, username, resp.Token); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored session token" }
func (logoutCmd) Usage() string       { return "logout" }

// Run удаляет токен только локально: сервер токены не отзывает, до истечения срока он остаётся валидным.
func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := newAuthStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
