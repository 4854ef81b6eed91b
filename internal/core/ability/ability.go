// Package ability holds the capability handles a unit type grants to its units.
package ability

// Kind names a family of abilities.
type Kind uint8

const (
	KindMove Kind = iota + 1
	KindGather
	KindBuild
	KindAttack
	KindGarrison
)

var kindNames = map[Kind]string{
	KindMove:     "move",
	KindGather:   "gather",
	KindBuild:    "build",
	KindAttack:   "attack",
	KindGarrison: "garrison",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKind resolves an ability name as used in data definitions.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Ability is an opaque handle granted verbatim to units. Two abilities are the
// same ability when they are the same handle.
type Ability interface {
	Kind() Kind
}

// Handle is the stock Ability implementation.
type Handle struct {
	kind Kind
}

// New returns a fresh handle. Every call yields a distinct ability.
func New(kind Kind) *Handle {
	return &Handle{kind: kind}
}

func (h *Handle) Kind() Kind { return h.kind }

func (h *Handle) String() string { return h.kind.String() }
