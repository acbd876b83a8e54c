// Package roster holds the table of starting attributes for every class and
// spec, and builds heroes from it.
package roster

import (
	_ "embed"
	"os"
	"slices"
	"strings"

	"github.com/KirkDiggler/duel-engine/internal/domain/resource"
	"github.com/KirkDiggler/duel-engine/internal/domain/rulebook/wow/spells"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
	duelerr "github.com/KirkDiggler/duel-engine/internal/errors"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRoster []byte

// SpecEntry is one playable spec and its starting attributes
type SpecEntry struct {
	Name            shared.Spec `yaml:"name"`
	Role            shared.Role `yaml:"role"`
	Health          int         `yaml:"health"`
	Pool            int         `yaml:"pool"`
	SpellPower      int         `yaml:"spell_power"`
	AttackPower     int         `yaml:"attack_power"`
	DamageReduction int         `yaml:"damage_reduction"`
}

// ClassEntry groups the specs of a class with the class resource they share
type ClassEntry struct {
	Name        shared.Class  `yaml:"name"`
	Resource    resource.Kind `yaml:"resource"`
	ResourceMax int           `yaml:"resource_max,omitempty"`
	Specs       []SpecEntry   `yaml:"specs"`
}

// Table is the full roster in menu order
type Table struct {
	Entries []ClassEntry `yaml:"classes"`
}

// RoleOption pairs a role with the spec it resolves to
type RoleOption struct {
	Role shared.Role
	Spec shared.Spec
}

// Default returns the built-in roster
func Default() (*Table, error) {
	table, err := Parse(defaultRoster)
	if err != nil {
		return nil, duelerr.WrapWithCode(err, duelerr.CodeInternal, "built-in roster")
	}
	return table, nil
}

// Load reads a roster file
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, duelerr.Wrapf(err, "read roster %s", path)
	}

	table, err := Parse(data)
	if err != nil {
		return nil, duelerr.Wrapf(err, "roster %s", path)
	}
	return table, nil
}

// Parse decodes and validates roster YAML
func Parse(data []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, duelerr.WrapWithCode(err, duelerr.CodeValidation, "parse roster")
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// Validate checks every entry has usable attributes and a spell book to cast from
func (t *Table) Validate() error {
	if len(t.Entries) == 0 {
		return duelerr.Validationf("roster has no classes")
	}

	catalog := spells.NewCatalog()

	seenClass := make(map[string]bool)
	for _, class := range t.Entries {
		if class.Name == "" {
			return duelerr.Validationf("roster class without a name")
		}
		if seenClass[fold(string(class.Name))] {
			return duelerr.Validationf("class %s listed twice", class.Name)
		}
		seenClass[fold(string(class.Name))] = true

		if !slices.Contains(shared.Classes, class.Name) {
			return duelerr.Validationf("unknown class %s", class.Name)
		}

		if len(class.Specs) == 0 {
			return duelerr.Validationf("class %s has no specs", class.Name)
		}

		seenSpec := make(map[string]bool)
		for _, spec := range class.Specs {
			switch {
			case spec.Name == "":
				return duelerr.Validationf("class %s has a spec without a name", class.Name)
			case seenSpec[fold(string(spec.Name))]:
				return duelerr.Validationf("%s %s listed twice", spec.Name, class.Name)
			case spec.Role == "":
				return duelerr.Validationf("%s %s has no role", spec.Name, class.Name)
			case spec.Role != shared.RoleTank && spec.Role != shared.RoleDamage:
				return duelerr.Validationf("%s %s has unknown role %s", spec.Name, class.Name, spec.Role)
			case spec.Health <= 0:
				return duelerr.Validationf("%s %s needs positive health", spec.Name, class.Name)
			case spec.Pool < 0 || spec.SpellPower < 0 || spec.AttackPower < 0:
				return duelerr.Validationf("%s %s has negative attributes", spec.Name, class.Name)
			case spec.DamageReduction < 0 || spec.DamageReduction > 100:
				return duelerr.Validationf("%s %s damage reduction must be within 0-100", spec.Name, class.Name)
			}
			if _, err := catalog.Book(shared.Loadout{Class: class.Name, Spec: spec.Name}); err != nil {
				return duelerr.Validationf("%s %s has no spell book", spec.Name, class.Name)
			}
			seenSpec[fold(string(spec.Name))] = true
		}
	}

	return nil
}

// Classes lists the playable classes in menu order
func (t *Table) Classes() []shared.Class {
	classes := make([]shared.Class, 0, len(t.Entries))
	for _, class := range t.Entries {
		classes = append(classes, class.Name)
	}
	return classes
}

// Roles lists the roles a class can pick and the spec each resolves to
func (t *Table) Roles(class string) ([]RoleOption, error) {
	entry, err := t.class(class)
	if err != nil {
		return nil, err
	}

	var options []RoleOption
	seen := make(map[shared.Role]bool)
	for _, spec := range entry.Specs {
		if seen[spec.Role] {
			continue
		}
		seen[spec.Role] = true
		options = append(options, RoleOption{Role: spec.Role, Spec: spec.Name})
	}
	return options, nil
}

// Resolve finds the entry for a class and a role or spec name.
// Names match without regard to case.
func (t *Table) Resolve(class, roleOrSpec string) (*ClassEntry, *SpecEntry, error) {
	entry, err := t.class(class)
	if err != nil {
		return nil, nil, err
	}

	want := fold(roleOrSpec)
	for i := range entry.Specs {
		if fold(string(entry.Specs[i].Name)) == want {
			return entry, &entry.Specs[i], nil
		}
	}
	for i := range entry.Specs {
		if fold(string(entry.Specs[i].Role)) == want {
			return entry, &entry.Specs[i], nil
		}
	}

	return nil, nil, duelerr.NotFoundf("%s has no role or spec %q", entry.Name, roleOrSpec).
		WithMeta("class", string(entry.Name)).
		WithMeta("choice", roleOrSpec)
}

func (t *Table) class(name string) (*ClassEntry, error) {
	want := fold(name)
	for i := range t.Entries {
		if fold(string(t.Entries[i].Name)) == want {
			return &t.Entries[i], nil
		}
	}
	return nil, duelerr.NotFoundf("unknown class %q", name).WithMeta("class", name)
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
