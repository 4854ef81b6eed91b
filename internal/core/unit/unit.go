package unit

import (
	"github.com/google/uuid"
	"github.com/zeusync/rts/internal/core/ability"
	"github.com/zeusync/rts/internal/core/attribute"
	"github.com/zeusync/rts/internal/core/observability/log"
	"github.com/zeusync/rts/internal/core/terrain"
)

// Type is what a unit knows about the kind it was initialised from.
type Type interface {
	ID() int
	Name() string
}

// Unit is a live entity in the simulation.
type Unit struct {
	id uuid.UUID

	// Type is the kind the unit was last initialised from, nil before that.
	Type Type
	// Attributes holds baseline values shared with the type and the unit's own state.
	Attributes attribute.Set
	// Location is the unit's footprint, nil until a type places it.
	Location terrain.Object

	abilities []ability.Ability
	actions   []stackEntry
	log       log.Log
}

type stackEntry struct {
	action Action
	base   bool
}

// New returns a blank unit logging to l. A nil l discards log output.
func New(l log.Log) *Unit {
	id := uuid.New()
	if l == nil {
		l = log.Nop()
	}
	return &Unit{
		id:  id,
		log: l.With(log.String("unit", id.String())),
	}
}

func (u *Unit) ID() uuid.UUID { return u.id }

// Log returns the unit's logging sink, tagged with its id.
func (u *Unit) Log() log.Log { return u.log }

// Reset drops every ability and action, the base action included.
// Attributes and location are untouched.
func (u *Unit) Reset() {
	u.abilities = nil
	u.actions = nil
}

// GiveAbility appends a to the unit's abilities.
func (u *Unit) GiveAbility(a ability.Ability) {
	u.abilities = append(u.abilities, a)
}

// Abilities returns the granted abilities in grant order.
func (u *Unit) Abilities() []ability.Ability {
	out := make([]ability.Ability, len(u.abilities))
	copy(out, u.abilities)
	return out
}

func (u *Unit) HasAbility(k ability.Kind) bool {
	for _, a := range u.abilities {
		if a.Kind() == k {
			return true
		}
	}
	return false
}

// AddAttributes merges s into the unit's attributes. Shared values are linked,
// unshared values copied. Existing bindings of other kinds stay.
func (u *Unit) AddAttributes(s *attribute.Set) {
	u.Attributes.Merge(s)
}

// MakeLocation installs o as the unit's footprint, taking the previous one off its terrain.
func (u *Unit) MakeLocation(o terrain.Object) terrain.Object {
	if u.Location != nil {
		u.Location.Remove()
	}
	u.Location = o
	return o
}
