package unittype

import "strconv"

// Limit is a population cap. The zero value is unbounded, same as Unbounded().
type Limit struct {
	n       int
	bounded bool
}

// Unbounded returns a limit that never caps.
func Unbounded() Limit { return Limit{} }

// Bounded returns a cap of n units. Negative n is treated as zero.
func Bounded(n int) Limit { return Limit{n: max(0, n), bounded: true} }

func (l Limit) IsUnbounded() bool { return !l.bounded }

// Value returns the cap and true, or 0 and false when unbounded.
func (l Limit) Value() (int, bool) { return l.n, l.bounded }

// Allows reports whether one more unit fits when count already exist.
func (l Limit) Allows(count int) bool {
	return !l.bounded || count < l.n
}

func (l Limit) String() string {
	if !l.bounded {
		return "inf"
	}
	return strconv.Itoa(l.n)
}
