package unittype

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrDuplicateType = errors.New("unit type already registered")
	ErrUnknownType   = errors.New("unknown unit type")
)

// Factory builds a fresh instance of one type for owner.
type Factory func(owner Player) UnitType

// Meta names a type and knows how to build it.
type Meta struct {
	name    string
	id      int
	factory Factory
}

func NewMeta(name string, id int, f Factory) *Meta {
	return &Meta{name: name, id: id, factory: f}
}

func (m *Meta) Name() string { return m.name }
func (m *Meta) ID() int      { return m.id }

// New builds the type for owner.
func (m *Meta) New(owner Player) UnitType {
	return m.factory(owner)
}

// Registry maps type names and ids to their Meta. It is filled while data is
// loaded and read by players afterwards.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Meta
	byID   map[int]*Meta
	order  []*Meta
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Meta),
		byID:   make(map[int]*Meta),
	}
}

// Register adds a type. Names and ids must both be unused.
func (r *Registry) Register(name string, id int, f Factory) (*Meta, error) {
	if f == nil {
		return nil, fmt.Errorf("register %q: nil factory", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("register %q: %w", name, ErrDuplicateType)
	}
	if _, ok := r.byID[id]; ok {
		return nil, fmt.Errorf("register %q with id %d: %w", name, id, ErrDuplicateType)
	}
	m := NewMeta(name, id, f)
	r.byName[name] = m
	r.byID[id] = m
	r.order = append(r.order, m)
	return m, nil
}

func (r *Registry) Lookup(name string) (*Meta, error) {
	r.mu.RLock()
	m, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return m, nil
}

func (r *Registry) LookupID(id int) (*Meta, error) {
	r.mu.RLock()
	m, ok := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownType, id)
	}
	return m, nil
}

// All returns every Meta in registration order.
func (r *Registry) All() []*Meta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Meta, len(r.order))
	copy(out, r.order)
	return out
}

// RegisterDefinition validates d and registers it under its name and id.
func (r *Registry) RegisterDefinition(d Definition) (*Meta, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return r.Register(d.Name, d.ID, DefinedFactory(d))
}

// RegisterBuiltins adds the types the engine ships with.
func RegisterBuiltins(r *Registry) error {
	_, err := r.Register(RootName, RootID, NewRoot)
	return err
}
