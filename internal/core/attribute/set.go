package attribute

// Set maps attribute kinds to containers and remembers the order kinds were first added.
// The zero value is ready to use.
type Set struct {
	attrs map[Kind]Container
	order []Kind
}

// Add binds c to its kind. A container already bound to that kind is replaced.
func (s *Set) Add(c Container) {
	if c == nil {
		return
	}
	if s.attrs == nil {
		s.attrs = make(map[Kind]Container)
	}
	if _, ok := s.attrs[c.Kind()]; !ok {
		s.order = append(s.order, c.Kind())
	}
	s.attrs[c.Kind()] = c
}

// AddCopies merges every container of other into s. Shared containers are
// passed by reference when shared is set, unshared ones are copied when
// unshared is set. Nothing already in s is removed.
func (s *Set) AddCopies(other *Set, shared, unshared bool) {
	if other == nil {
		return
	}
	for _, k := range other.order {
		c := other.attrs[k]
		switch {
		case c.Shared():
			if shared {
				s.Add(c)
			}
		case unshared:
			s.Add(c.Copy())
		}
	}
}

// Merge is AddCopies with both shared and unshared containers.
func (s *Set) Merge(other *Set) {
	s.AddCopies(other, true, true)
}

func (s *Set) Get(k Kind) (Container, bool) {
	c, ok := s.attrs[k]
	return c, ok
}

func (s *Set) Has(k Kind) bool {
	_, ok := s.attrs[k]
	return ok
}

// Kinds returns the bound kinds in insertion order.
func (s *Set) Kinds() []Kind {
	out := make([]Kind, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Set) Len() int { return len(s.attrs) }

// Clear removes every binding.
func (s *Set) Clear() {
	s.attrs = nil
	s.order = nil
}

// Stat returns the numeric stat bound to k, if any.
func (s *Set) Stat(k Kind) (*Stat, bool) {
	c, ok := s.attrs[k]
	if !ok {
		return nil, false
	}
	st, ok := c.(*Stat)
	return st, ok
}

// Hitpoints returns the hitpoints container, if any.
func (s *Set) Hitpoints() (*Hitpoints, bool) {
	c, ok := s.attrs[KindHitpoints]
	if !ok {
		return nil, false
	}
	hp, ok := c.(*Hitpoints)
	return hp, ok
}
