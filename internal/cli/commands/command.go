// Package commands реализует подкоманды CLI boltpass.
// Каждая команда регистрируется в init() своего файла.
package commands

import (
	"BoltPass/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage: неверные аргументы, диспетчер печатает Usage команды и выходит с кодом 2.
var ErrUsage = errors.New("usage")

// Command описывает подкоманду CLI.
type Command interface {
	// Name: имя, как его набирает пользователь, например "entry-add".
	Name() string
	// Description: одна строка для общего help.
	Description() string
	// Usage: полный синтаксис, печатается по "help <command>" и при ErrUsage.
	Usage() string
	// Run получает аргументы без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out: writer для вывода CLI, в тестах переназначается.
var Out io.Writer = os.Stdout

// sections задаёт порядок групп в help. Команда без группы попадает в "Other".
var sections = []struct {
	title string
	names []string
}{
	{"Session", []string{"register", "login", "logout", "status"}},
	{"Entries", []string{"entries", "entry-get", "entry-add", "entry-edit", "entry-delete", "stats", "categories"}},
	{"Tools", []string{"strength"}},
}

// RegisterCmd добавляет команду в реестр.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get ищет команду по имени.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List возвращает все команды, отсортированные по имени.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage собирает общий help по группам.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("BoltPass CLI\n\n")
	b.WriteString("Usage:\n")
	b.WriteString("  boltpass [--base-url <host:port>] [--https] [--token-file <path>] <command> [args]\n")
	b.WriteString("  boltpass help <command>\n")

	listed := map[string]bool{}
	for _, s := range sections {
		var rows []Command
		for _, name := range s.names {
			if c, ok := registry[name]; ok {
				rows = append(rows, c)
				listed[name] = true
			}
		}
		writeSection(&b, s.title, rows)
	}

	var rest []Command
	for _, c := range List() {
		if !listed[c.Name()] {
			rest = append(rest, c)
		}
	}
	writeSection(&b, "Other", rest)
	return b.String()
}

func writeSection(b *strings.Builder, title string, rows []Command) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, c := range rows {
		fmt.Fprintf(b, "  %-14s %s\n", c.Name(), c.Description())
	}
}
