// Command boltpass: консольный клиент хранилища BoltPass.
package main

import (
	"BoltPass/internal/cli/commands"
	"BoltPass/internal/config"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// заполняются через -ldflags "-X main.version=... -X main.buildDate=..."
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion(os.Stdout, cfg)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	os.Exit(code)
}

func printVersion(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "BoltPass CLI\nVersion:    %s\nBuild date: %s\nServer:     %s\n", version, buildDate, cfg.ServerURL)
}
