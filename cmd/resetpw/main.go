// Command resetpw — операторская утилита: задаёт новый пароль аккаунта.
//
//	resetpw [-d DSN] <username> <new-password>
package main

import (
	"BoltPass/internal/config"
	"BoltPass/internal/crypto"
	"BoltPass/internal/repo"
	"BoltPass/internal/service"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// tokenlessIssuer: resetpw не выдаёт токены.
type tokenlessIssuer struct{}

func (tokenlessIssuer) Issue(int64, string) (string, error) {
	return "", errors.New("token issuing is not available in resetpw")
}

func main() {
	cfg := config.NewConfig()
	os.Exit(run(cfg.DatabaseDSN, flag.Args(), os.Stdout, os.Stderr))
}

func run(dsn string, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: resetpw [-d DSN] <username> <new-password>")
		return 2
	}
	username, newPassword := args[0], args[1]

	db, err := repo.InitDB(dsn)
	if err != nil {
		fmt.Fprintf(stderr, "database: %v\n", err)
		return 1
	}
	defer func() { _ = repo.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := service.NewUserService(repo.NewUserRepository(db), crypto.NewHasher(), tokenlessIssuer{})
	err = users.ResetPassword(ctx, username, newPassword)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		fmt.Fprintf(stderr, "user %q not found\n", username)
		if logins, lerr := users.Logins(ctx); lerr == nil && len(logins) > 0 {
			fmt.Fprintf(stderr, "known users: %s\n", strings.Join(logins, ", "))
		}
		return 1
	case errors.Is(err, service.ErrValidation):
		fmt.Fprintln(stderr, "username and new password must be non-empty")
		return 2
	case err != nil:
		fmt.Fprintf(stderr, "reset failed: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "password for %q updated\n", username)
	return 0
}
