package commands

import (
	"BoltPass/internal/config"
	"context"
	"fmt"
	"time"
)

// entrySummary: элемент /api/entries/titles.
type entrySummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Username  string    `json:"username"`
	Category  string    `json:"category"`
	Strength  string    `json:"strength"`
	UpdatedAt time.Time `json:"updated_at"`
}

// entryFull: запись с паролем.
type entryFull struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	WebsiteURL    string    `json:"website_url"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	Password      string    `json:"password"`
	Notes         string    `json:"notes"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	DecryptFailed bool      `json:"decrypt_failed"`
}

type entriesCmd struct{}

func (entriesCmd) Name() string        { return "entries" }
func (entriesCmd) Description() string { return "Показать все записи (без паролей)" }
func (entriesCmd) Usage() string       { return "entries" }

func (entriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var resp struct {
		Items []entrySummary `json:"items"`
	}
	if err := c.Get(ctx, "/api/entries/titles", &resp); err != nil {
		return err
	}
	if len(resp.Items) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, it := range resp.Items {
		fmt.Fprintf(Out, "- %d  %s  [%s]  %s\n", it.ID, it.Title, it.Category, it.Strength)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(resp.Items))
	return nil
}

type entryGetCmd struct{}

func (entryGetCmd) Name() string        { return "entry-get" }
func (entryGetCmd) Description() string { return "Показать запись вместе с паролем" }
func (entryGetCmd) Usage() string       { return "entry-get <id>" }

func (entryGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var resp struct {
		Item entryFull `json:"item"`
	}
	if err := c.Get(ctx, entryPath(id), &resp); err != nil {
		return err
	}
	it := resp.Item
	fmt.Fprintf(Out, "id:       %d\n", it.ID)
	fmt.Fprintf(Out, "title:    %s\n", it.Title)
	fmt.Fprintf(Out, "category: %s\n", it.Category)
	printIfSet("url:      ", it.WebsiteURL)
	printIfSet("email:    ", it.Email)
	printIfSet("username: ", it.Username)
	fmt.Fprintf(Out, "password: %s\n", it.Password)
	printIfSet("notes:    ", it.Notes)
	fmt.Fprintf(Out, "updated:  %s\n", it.UpdatedAt.Local().Format(time.DateTime))
	return nil
}

func printIfSet(label, v string) {
	if v != "" {
		fmt.Fprintf(Out, "%s%s\n", label, v)
	}
}

type entryDeleteCmd struct{}

func (entryDeleteCmd) Name() string        { return "entry-delete" }
func (entryDeleteCmd) Description() string { return "Удалить запись" }
func (entryDeleteCmd) Usage() string       { return "entry-delete <id>" }

func (entryDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	if err := c.Do(ctx, "DELETE", entryPath(id), nil, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted: %d\n", id)
	return nil
}

func init() {
	RegisterCmd(entriesCmd{})
	RegisterCmd(entryGetCmd{})
	RegisterCmd(entryDeleteCmd{})
}
