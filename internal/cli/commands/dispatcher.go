package commands

import (
	"BoltPass/internal/cli/api"
	"BoltPass/internal/config"
	"context"
	"errors"
	"fmt"
	"strings"
)

// Коды выхода CLI.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Dispatch выполняет команду из args (глобальные флаги уже разобраны config) и возвращает код выхода.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	switch name {
	case "help", "-h", "--help":
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	var apiErr *api.Error
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: boltpass %s\n", c.Usage())
		return ExitUsage
	case errors.As(err, &apiErr) && apiErr.Status == 401:
		fmt.Fprintf(Out, "%s error: %v\nSession expired or invalid, run: boltpass login <username> <password>\n", name, err)
		return ExitError
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return ExitError
	}
}

// help печатает общий help или синтаксис одной команды.
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	}
	if c, ok := Get(strings.ToLower(args[0])); ok {
		fmt.Fprintf(Out, "Usage: boltpass %s\n  %s\n", c.Usage(), c.Description())
		return ExitOK
	}
	fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
	fmt.Fprint(Out, FormatGlobalUsage())
	return ExitUsage
}
