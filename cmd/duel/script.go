package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	duelerr "github.com/KirkDiggler/duel-engine/internal/errors"
	"github.com/KirkDiggler/duel-engine/internal/services/duel"
)

// Script is a scripted duel: two heroes and the spells cast in turn order,
// challenger first
type Script struct {
	Name       string         `yaml:"name"`
	Challenger duel.HeroInput `yaml:"challenger"`
	Opponent   duel.HeroInput `yaml:"opponent"`
	Turns      []string       `yaml:"turns"`
}

// LoadScript reads a script from a YAML file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, duelerr.Wrapf(err, "read script %s", path)
	}

	script, err := ParseScript(data)
	if err != nil {
		return nil, duelerr.Wrapf(err, "script %s", path)
	}
	if script.Name == "" {
		script.Name = path
	}
	return script, nil
}

// ParseScript decodes and validates a script
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, duelerr.WrapWithCode(err, duelerr.CodeValidation, "parse script")
	}

	if script.Challenger.Class == "" || script.Opponent.Class == "" {
		return nil, duelerr.Validationf("script needs a challenger and an opponent class")
	}
	if len(script.Turns) == 0 {
		return nil, duelerr.Validationf("script has no turns")
	}
	for i, spell := range script.Turns {
		if strings.TrimSpace(spell) == "" {
			return nil, duelerr.Validationf("turn %d has no spell", i+1)
		}
	}

	return &script, nil
}

// Run plays the script through svc, writing one line per turn to w.
// Turns left over once the duel ends are ignored.
func (s *Script) Run(ctx context.Context, svc duel.Service, w io.Writer) error {
	d, err := svc.Start(ctx, &duel.StartInput{Challenger: s.Challenger, Opponent: s.Opponent})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "== %s: %s (%s) vs %s (%s)\n", s.Name,
		d.Challenger.DisplayName(), d.Challenger.Loadout,
		d.Opponent.DisplayName(), d.Opponent.Loadout)

	for _, spell := range s.Turns {
		out, actErr := svc.Act(ctx, &duel.ActInput{DuelID: d.ID, Spell: spell})
		if actErr != nil {
			return actErr
		}

		d = out.Duel
		fmt.Fprintf(w, "%s  [%s | %s]\n", d.CombatLog[len(d.CombatLog)-1], health(d.Challenger), health(d.Opponent))

		if !d.IsActive() {
			break
		}
	}

	switch {
	case d.Winner() != nil:
		fmt.Fprintf(w, "== %s wins after %d turns\n", d.Winner().DisplayName(), d.TurnsTaken)
	case d.IsActive():
		fmt.Fprintf(w, "== script ended with both heroes standing after %d turns\n", d.TurnsTaken)
	default:
		fmt.Fprintf(w, "== stalemate after %d turns\n", d.TurnsTaken)
	}

	return nil
}

func health(h *hero.Hero) string {
	return fmt.Sprintf("%s %d/%d", h.DisplayName(), h.Health.Current, h.Health.Max)
}

// RunAll plays scripts concurrently and writes their transcripts to w in
// the order given. The first failing script cancels the rest.
func RunAll(ctx context.Context, svc duel.Service, scripts []*Script, w io.Writer) error {
	outputs := make([]bytes.Buffer, len(scripts))

	g, ctx := errgroup.WithContext(ctx)
	for i, script := range scripts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := script.Run(ctx, svc, &outputs[i]); err != nil {
				return duelerr.Wrapf(err, "script %s", script.Name)
			}
			return nil
		})
	}
	err := g.Wait()

	for i := range outputs {
		if _, writeErr := w.Write(outputs[i].Bytes()); writeErr != nil {
			return writeErr
		}
	}

	return err
}
