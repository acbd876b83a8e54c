package resource

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
	duelerr "github.com/KirkDiggler/duel-engine/internal/errors"
)

// Policy decides whether the secondary pool may block a cast
type Policy string

const (
	// PolicyUngated always subtracts the cost, so the pool may go negative
	PolicyUngated Policy = "ungated"
	// PolicyGated refuses the cost when the pool cannot cover it
	PolicyGated Policy = "gated"
)

// ParsePolicy validates a configured policy. Empty means ungated.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyUngated:
		return PolicyUngated, nil
	case PolicyGated:
		return PolicyGated, nil
	}
	return "", duelerr.InvalidArgumentf("unknown mana policy %q (want %q or %q)", s, PolicyUngated, PolicyGated)
}

// Pool is the mana/energy a hero pays spell costs from
type Pool struct {
	current int
	max     int
	policy  Policy
}

// NewPool returns a full pool
func NewPool(maxPool int, policy Policy) *Pool {
	if maxPool < 0 {
		maxPool = 0
	}
	if policy == "" {
		policy = PolicyUngated
	}
	return &Pool{current: maxPool, max: maxPool, policy: policy}
}

func (p *Pool) Current() int   { return p.current }
func (p *Pool) Max() int       { return p.max }
func (p *Pool) Policy() Policy { return p.policy }

// Set moves the pool to n, clamped to [0, Max]
func (p *Pool) Set(n int) {
	switch {
	case n < 0:
		p.current = 0
	case n > p.max:
		p.current = p.max
	default:
		p.current = n
	}
}

// Cost converts a percentage of the max pool into an absolute cost
func (p *Pool) Cost(pct int) int {
	return shared.Scale(p.max, pct)
}

// Spend pays cost. Under the ungated policy it always succeeds.
func (p *Pool) Spend(cost int) bool {
	if cost <= 0 {
		return true
	}
	if p.policy == PolicyGated && p.current < cost {
		return false
	}
	p.current -= cost
	return true
}
