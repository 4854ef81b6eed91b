package player

import (
	"errors"
	"fmt"

	"github.com/zeusync/rts/internal/core/observability/log"
	"github.com/zeusync/rts/internal/core/unit"
	"github.com/zeusync/rts/internal/core/unittype"
)

var ErrLimitReached = errors.New("population limit reached")

var _ unittype.Player = (*Player)(nil)

// Player owns one instance of every registered unit type and counts the units built from them.
type Player struct {
	ID   int
	Name string

	types  map[int]unittype.UnitType
	order  []unittype.UnitType
	alive  map[int]int
	spawns map[int]int
	log    log.Log
}

// New instantiates every type in reg for the new player.
func New(id int, name string, reg *unittype.Registry, l log.Log) *Player {
	if l == nil {
		l = log.Nop()
	}
	p := &Player{
		ID:     id,
		Name:   name,
		types:  make(map[int]unittype.UnitType),
		alive:  make(map[int]int),
		spawns: make(map[int]int),
		log:    l.With(log.Int("player", id)),
	}
	for _, m := range reg.All() {
		t := m.New(p)
		p.types[m.ID()] = t
		p.order = append(p.order, t)
	}
	return p
}

// GetType returns the player's instance of type id, or nil.
func (p *Player) GetType(id int) unittype.UnitType {
	return p.types[id]
}

// TypeByName returns the player's instance of the named type.
func (p *Player) TypeByName(name string) (unittype.UnitType, error) {
	for _, t := range p.order {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", unittype.ErrUnknownType, name)
}

// Types lists the player's types in registration order.
func (p *Player) Types() []unittype.UnitType {
	out := make([]unittype.UnitType, len(p.order))
	copy(out, p.order)
	return out
}

// Alive returns how many units of type id currently exist.
func (p *Player) Alive(id int) int { return p.alive[id] }

// Spawned returns how many units of type id were ever created.
func (p *Player) Spawned(id int) int { return p.spawns[id] }

// Spawn creates a unit of type id and initialises it. The unit is not placed.
func (p *Player) Spawn(id int) (*unit.Unit, error) {
	t := p.GetType(id)
	if t == nil {
		return nil, fmt.Errorf("spawn: %w: id %d", unittype.ErrUnknownType, id)
	}
	b := t.Core()
	if !b.HaveLimit.Allows(p.alive[id]) {
		return nil, fmt.Errorf("spawn %s: %w (alive %d, cap %s)", t.Name(), ErrLimitReached, p.alive[id], b.HaveLimit)
	}
	if !b.HadLimit.Allows(p.spawns[id]) {
		return nil, fmt.Errorf("spawn %s: %w (created %d, cap %s)", t.Name(), ErrLimitReached, p.spawns[id], b.HadLimit)
	}

	u := unit.New(p.log)
	t.Initialise(u, p)
	p.alive[id]++
	p.spawns[id]++

	u.Log().Debug("unit spawned", log.String("type", t.Name()))
	return u, nil
}

// Promote moves u to type to, keeping the unit's own state. It reports whether
// the unit's abilities changed. Moving into a different type counts against its
// live-population cap; the creation cap is not touched.
func (p *Player) Promote(u *unit.Unit, to unittype.UnitType) (bool, error) {
	if u == nil || to == nil {
		return false, nil
	}
	from, _ := u.Type.(unittype.UnitType)
	if from == nil || from.ID() != to.ID() {
		if lim := to.Core().HaveLimit; !lim.Allows(p.alive[to.ID()]) {
			return false, fmt.Errorf("promote to %s: %w (alive %d, cap %s)", to.Name(), ErrLimitReached, p.alive[to.ID()], lim)
		}
	}
	changed := unittype.NotEqual(from, to)

	unittype.Reinitialise(to, u, p)
	if from != nil && p.alive[from.ID()] > 0 {
		p.alive[from.ID()]--
	}
	p.alive[to.ID()]++
	return changed, nil
}

// Remove takes u off the map and out of the alive count.
func (p *Player) Remove(u *unit.Unit) {
	if u == nil {
		return
	}
	if u.Location != nil {
		u.Location.Remove()
	}
	if t, ok := u.Type.(unittype.UnitType); ok && p.alive[t.ID()] > 0 {
		p.alive[t.ID()]--
	}
	u.Reset()
}
