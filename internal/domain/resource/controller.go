package resource

// Controller is the class resource state machine layered on top of a hero's
// secondary pool. Current always stays within [0, Max].
type Controller interface {
	Kind() Kind
	Current() int
	Max() int

	// Add generates n stacks, capped at Max
	Add(n int)

	// Spend consumes n stacks only when enough are available.
	// State is unchanged when it returns false.
	Spend(n int) bool

	// Reset drops the counter to zero
	Reset()
}

// Remover is implemented by resources that drain without a success signal
type Remover interface {
	Remove(n int)
}

// New returns the controller variant for kind. A non-positive max uses the
// kind's default cap.
func New(kind Kind, maxStacks int) Controller {
	if maxStacks <= 0 {
		maxStacks = kind.DefaultMax()
	}

	switch kind {
	case KindNone:
		return &none{}
	case KindInsanity:
		return &insanity{stacks: stacks{kind: kind, max: maxStacks}}
	default:
		return &stacks{kind: kind, max: maxStacks}
	}
}

// stacks covers holy power, rage, chi, maelstrom and fire stacks
type stacks struct {
	kind    Kind
	current int
	max     int
}

func (s *stacks) Kind() Kind   { return s.kind }
func (s *stacks) Current() int { return s.current }
func (s *stacks) Max() int     { return s.max }

func (s *stacks) Add(n int) {
	if n <= 0 {
		return
	}
	s.current += n
	if s.current > s.max {
		s.current = s.max
	}
}

func (s *stacks) Spend(n int) bool {
	if n < 0 || s.current < n {
		return false
	}
	s.current -= n
	return true
}

func (s *stacks) Reset() {
	s.current = 0
}

// insanity builds like any stack resource but is drained by Remove
type insanity struct {
	stacks
}

func (i *insanity) Remove(n int) {
	if n <= 0 {
		return
	}
	i.current -= n
	if i.current < 0 {
		i.current = 0
	}
}

// none is used by loadouts without a class resource
type none struct{}

func (none) Kind() Kind   { return KindNone }
func (none) Current() int { return 0 }
func (none) Max() int     { return 0 }
func (none) Add(int)      {}
func (none) Reset()       {}

func (none) Spend(n int) bool {
	return n == 0
}
