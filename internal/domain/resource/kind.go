package resource

import (
	"strings"

	duelerr "github.com/KirkDiggler/duel-engine/internal/errors"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// Kind identifies which class resource a controller manages
type Kind int

const (
	KindNone Kind = iota
	KindHolyPower
	KindRage
	KindChi
	KindInsanity
	KindMaelstrom
	KindFireStacks
)

var kindNames = map[Kind]string{
	KindNone:       "none",
	KindHolyPower:  "holy_power",
	KindRage:       "rage",
	KindChi:        "chi",
	KindInsanity:   "insanity",
	KindMaelstrom:  "maelstrom",
	KindFireStacks: "fire_stacks",
}

var defaultMax = map[Kind]int{
	KindHolyPower:  5,
	KindRage:       100,
	KindChi:        5,
	KindInsanity:   100,
	KindMaelstrom:  5,
	KindFireStacks: 8,
}

// String returns the snake_case name used in data files
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// DefaultMax returns the cap a controller of this kind uses when none is given
func (k Kind) DefaultMax() int {
	return defaultMax[k]
}

var separators = strings.NewReplacer(" ", "_", "-", "_")

// ParseKind maps a data file name such as "holy_power" back to a Kind
func ParseKind(name string) (Kind, error) {
	normalized := separators.Replace(cases.Fold().String(strings.TrimSpace(name)))
	if normalized == "" {
		return KindNone, nil
	}

	for kind, n := range kindNames {
		if n == normalized {
			return kind, nil
		}
	}

	return KindNone, duelerr.InvalidArgumentf("unknown resource kind %q", name)
}

// MarshalYAML writes the kind by name
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML reads the kind by name
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}

	parsed, err := ParseKind(name)
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}
