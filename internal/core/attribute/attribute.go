package attribute

// Kind identifies an attribute slot. A Set holds at most one container per kind.
type Kind uint16

const (
	KindHitpoints Kind = iota + 1
	KindSpeed
	KindArmor
	KindAttack
	KindVision
	KindBuildTime
	KindCarry
)

var kindNames = map[Kind]string{
	KindHitpoints: "hitpoints",
	KindSpeed:     "speed",
	KindArmor:     "armor",
	KindAttack:    "attack",
	KindVision:    "vision",
	KindBuildTime: "build_time",
	KindCarry:     "carry",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKind resolves an attribute name as used in data definitions.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Container is one attribute value.
//
// Shared containers carry type-level baseline values and are handed around by
// reference. Unshared containers hold per-unit state and are copied whenever
// they move between sets.
type Container interface {
	Kind() Kind
	Shared() bool
	Copy() Container
}

// Stat is a single numeric attribute.
type Stat struct {
	kind   Kind
	shared bool
	Value  float64
}

var _ Container = (*Stat)(nil)

// NewShared returns a baseline stat.
func NewShared(kind Kind, value float64) *Stat {
	return &Stat{kind: kind, shared: true, Value: value}
}

// NewUnshared returns a stat owned by whoever holds it.
func NewUnshared(kind Kind, value float64) *Stat {
	return &Stat{kind: kind, Value: value}
}

func (s *Stat) Kind() Kind   { return s.kind }
func (s *Stat) Shared() bool { return s.shared }

func (s *Stat) Copy() Container {
	c := *s
	return &c
}

// Hitpoints tracks the remaining and maximum health of a unit. It is never shared.
type Hitpoints struct {
	Current float64
	Max     float64
}

var _ Container = (*Hitpoints)(nil)

func NewHitpoints(max float64) *Hitpoints {
	return &Hitpoints{Current: max, Max: max}
}

func (h *Hitpoints) Kind() Kind   { return KindHitpoints }
func (h *Hitpoints) Shared() bool { return false }

func (h *Hitpoints) Copy() Container {
	c := *h
	return &c
}

// Damage lowers Current, clamped at zero.
func (h *Hitpoints) Damage(amount float64) {
	h.Current = max(0, h.Current-amount)
}
