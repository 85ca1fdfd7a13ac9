package commands

import (
	"BoltPass/internal/config"
	"BoltPass/internal/strength"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
)

// entryFields: необязательные поля записи, общие для entry-add и entry-edit.
type entryFields struct {
	url, email, username, notes, category string
}

func (f *entryFields) bind(fs *flag.FlagSet) {
	fs.StringVar(&f.url, "url", "", "website URL")
	fs.StringVar(&f.email, "email", "", "email")
	fs.StringVar(&f.username, "username", "", "account username")
	fs.StringVar(&f.notes, "notes", "", "free-form notes")
	fs.StringVar(&f.category, "category", "", "category (default General)")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

type entryAddCmd struct{}

func (entryAddCmd) Name() string        { return "entry-add" }
func (entryAddCmd) Description() string { return "Добавить запись" }
func (entryAddCmd) Usage() string {
	return "entry-add [--url U] [--email E] [--username N] [--notes T] [--category C] <title> <password>"
}

func (entryAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	var f entryFields
	fs := newFlagSet("entry-add")
	f.bind(fs)
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 2 || fs.Arg(0) == "" || fs.Arg(1) == "" {
		return ErrUsage
	}
	title, password := fs.Arg(0), fs.Arg(1)

	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	body := map[string]string{
		"title":       title,
		"password":    password,
		"website_url": f.url,
		"email":       f.email,
		"username":    f.username,
		"notes":       f.notes,
		"category":    f.category,
	}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.Do(ctx, http.MethodPost, "/api/entries", body, &resp); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:       %d\n", resp.ID)
	fmt.Fprintf(Out, "  title:    %s\n", title)
	fmt.Fprintf(Out, "  strength: %s\n", strength.Classify(password))
	return nil
}

type entryEditCmd struct{}

func (entryEditCmd) Name() string        { return "entry-edit" }
func (entryEditCmd) Description() string { return "Изменить поля записи (только переданные флаги)" }
func (entryEditCmd) Usage() string {
	return "entry-edit [--title T] [--password P] [--url U] [--email E] [--username N] [--notes T] [--category C] <id>"
}

func (entryEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	var f entryFields
	var title, password string
	fs := newFlagSet("entry-edit")
	f.bind(fs)
	fs.StringVar(&title, "title", "", "new title")
	fs.StringVar(&password, "password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 1 {
		return ErrUsage
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	values := map[string]string{
		"title":    title,
		"password": password,
		"url":      f.url,
		"email":    f.email,
		"username": f.username,
		"notes":    f.notes,
		"category": f.category,
	}
	jsonKey := map[string]string{"url": "website_url"}
	// в тело попадают только явно переданные флаги
	patch := map[string]string{}
	fs.Visit(func(fl *flag.Flag) {
		key := fl.Name
		if k, ok := jsonKey[key]; ok {
			key = k
		}
		patch[key] = values[fl.Name]
	})
	if len(patch) == 0 {
		return ErrUsage
	}

	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	if err := c.Do(ctx, http.MethodPut, entryPath(id), patch, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated: %d\n", id)
	if p, ok := patch["password"]; ok && p != "" {
		fmt.Fprintf(Out, "  strength: %s\n", strength.Classify(p))
	}
	return nil
}

func init() {
	RegisterCmd(entryAddCmd{})
	RegisterCmd(entryEditCmd{})
}
