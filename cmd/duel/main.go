package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/duel-engine/internal/config"
	"github.com/KirkDiggler/duel-engine/internal/domain/events"
	"github.com/KirkDiggler/duel-engine/internal/domain/game/combat"
	"github.com/KirkDiggler/duel-engine/internal/domain/rulebook/wow/roster"
	"github.com/KirkDiggler/duel-engine/internal/domain/rulebook/wow/spells"
	"github.com/KirkDiggler/duel-engine/internal/repositories/duels"
	"github.com/KirkDiggler/duel-engine/internal/services/duel"
)

func main() {
	showClasses := flag.Bool("show-classes", false, "list the playable classes and exit")
	showRoles := flag.Bool("show-roles", false, "list every class with its roles and specs and exit")
	showSpells := flag.Bool("show-spells", false, "list the spell book of every spec and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: duel [flags] script.yaml...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	table, err := loadRoster(cfg.RosterPath)
	if err != nil {
		logger.Error("failed to load roster", "path", cfg.RosterPath, "error", err)
		os.Exit(1)
	}

	catalog := spells.NewCatalog()

	switch {
	case *showClasses:
		printClasses(os.Stdout, table)
		return
	case *showRoles:
		printRoles(os.Stdout, table)
		return
	case *showSpells:
		printSpells(os.Stdout, catalog)
		return
	}

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	scripts := make([]*Script, 0, len(paths))
	for _, path := range paths {
		script, loadErr := LoadScript(path)
		if loadErr != nil {
			logger.Error("failed to load script", "path", path, "error", loadErr)
			os.Exit(1)
		}
		scripts = append(scripts, script)
	}

	bus := events.NewEventBus()
	bus.SubscribeAll(events.NewLogListener(logger, slog.LevelDebug))

	svc := duel.NewService(&duel.ServiceConfig{
		Repository: duels.NewInMemoryRepository(),
		Factory: roster.NewFactory(&roster.FactoryConfig{
			Table:      table,
			ManaPolicy: cfg.Policy(),
		}),
		Engine: combat.NewEngine(&combat.EngineConfig{
			Catalog:  catalog,
			EventBus: bus,
			Logger:   logger,
		}),
		MaxTurns: cfg.MaxTurns,
		Logger:   logger,
	})

	if err := RunAll(context.Background(), svc, scripts, os.Stdout); err != nil {
		logger.Error("duel failed", "error", err)
		os.Exit(1)
	}
}

func loadRoster(path string) (*roster.Table, error) {
	if path == "" {
		return roster.Default()
	}
	return roster.Load(path)
}

func printClasses(w io.Writer, table *roster.Table) {
	for i, class := range table.Classes() {
		fmt.Fprintf(w, "%d. %s\n", i+1, class)
	}
}

func printRoles(w io.Writer, table *roster.Table) {
	for _, class := range table.Entries {
		roles, err := table.Roles(string(class.Name))
		if err != nil {
			continue
		}
		picks := make([]string, 0, len(roles))
		for _, option := range roles {
			picks = append(picks, fmt.Sprintf("%s -> %s", option.Role, option.Spec))
		}
		fmt.Fprintf(w, "%s [%s]: %s\n", class.Name, class.Resource, strings.Join(picks, ", "))
		for _, spec := range class.Specs {
			fmt.Fprintf(w, "  %-12s %-7s health %d, pool %d\n", spec.Name, spec.Role, spec.Health, spec.Pool)
		}
	}
}

func printSpells(w io.Writer, catalog *spells.Catalog) {
	for _, loadout := range catalog.Loadouts() {
		book, err := catalog.Book(loadout)
		if err != nil {
			continue
		}
		names := make([]string, 0, len(book.Spells()))
		for _, spell := range book.Spells() {
			name := spell.Name
			if spell.Cooldown > 0 {
				name = fmt.Sprintf("%s (cd %d)", name, spell.Cooldown)
			}
			names = append(names, name)
		}
		fmt.Fprintf(w, "%s: %s\n", loadout, strings.Join(names, ", "))
	}
}
