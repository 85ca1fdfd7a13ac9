package commands

import (
	"BoltPass/internal/config"
	"BoltPass/internal/strength"
	"context"
	"fmt"
)

type statsCmd struct{}

func (statsCmd) Name() string        { return "stats" }
func (statsCmd) Description() string { return "Show entry count and weak/strong password totals" }
func (statsCmd) Usage() string       { return "stats" }

func (statsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var resp struct {
		Total  int `json:"total"`
		Weak   int `json:"weak"`
		Strong int `json:"strong"`
	}
	if err := c.Get(ctx, "/api/entries/stats", &resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "total:  %d\nweak:   %d\nstrong: %d\n", resp.Total, resp.Weak, resp.Strong)
	return nil
}

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List the available categories" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var resp struct {
		Categories []struct {
			Name  string `json:"name"`
			Icon  string `json:"icon"`
			Color string `json:"color"`
		} `json:"categories"`
	}
	if err := c.Get(ctx, "/api/categories", &resp); err != nil {
		return err
	}
	for _, cat := range resp.Categories {
		fmt.Fprintf(Out, "%s %s\n", cat.Icon, cat.Name)
	}
	return nil
}

type strengthCmd struct{}

func (strengthCmd) Name() string        { return "strength" }
func (strengthCmd) Description() string { return "Classify a password locally (no server call)" }
func (strengthCmd) Usage() string       { return "strength <password>" }

func (strengthCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	fmt.Fprintln(Out, strength.Classify(args[0]))
	return nil
}

func init() {
	RegisterCmd(statsCmd{})
	RegisterCmd(categoriesCmd{})
	RegisterCmd(strengthCmd{})
}
