package spells

import "slices"

// Target is the read-only view of the defender a spell may consult
type Target struct {
	HealthPercent int
	Tags          []string
}

// HasTag reports whether an effect with tag is active on the target
func (t Target) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}
