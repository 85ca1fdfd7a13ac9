package commands

import (
	"BoltPass/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check the server and show the stored session" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var pong struct {
		OK bool `json:"ok"`
	}
	if err := publicClient(cfg).Get(ctx, "/api/ping", &pong); err != nil {
		return err
	}
	if !pong.OK {
		return fmt.Errorf("unexpected ping response from %s", cfg.ServerURL)
	}
	fmt.Fprintf(Out, "Server:  %s (ok)\n", cfg.ServerURL)

	st := newAuthStore(cfg)
	if _, err := st.Load(); err != nil {
		fmt.Fprintln(Out, "Session: not logged in")
		return nil
	}
	if login, err := st.LoadLogin(); err == nil {
		fmt.Fprintf(Out, "Session: logged in as %s\n", login)
	} else {
		fmt.Fprintln(Out, "Session: token stored")
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
