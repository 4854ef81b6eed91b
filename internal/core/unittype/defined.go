package unittype

import (
	"fmt"

	"github.com/zeusync/rts/internal/core/ability"
	"github.com/zeusync/rts/internal/core/attribute"
	"github.com/zeusync/rts/internal/core/coord"
	"github.com/zeusync/rts/internal/core/terrain"
	"github.com/zeusync/rts/internal/core/unit"
)

// AttributeDef is one default attribute in a Definition.
type AttributeDef struct {
	Kind   attribute.Kind
	Shared bool
	Value  float64
}

// Container builds a fresh container for the definition.
func (d AttributeDef) Container() attribute.Container {
	switch {
	case d.Kind == attribute.KindHitpoints:
		return attribute.NewHitpoints(d.Value)
	case d.Shared:
		return attribute.NewShared(d.Kind, d.Value)
	default:
		return attribute.NewUnshared(d.Kind, d.Value)
	}
}

// Definition describes a type loaded from data.
type Definition struct {
	Name       string
	ID         int
	ParentID   int
	Size       coord.TileDelta
	Abilities  []ability.Kind
	Attributes []AttributeDef
	Graphics   map[GraphicKind]*Texture
	HaveLimit  Limit
	HadLimit   Limit
}

// Validate checks the identity fields.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("definition %d: name is required", d.ID)
	}
	if d.ID == RootID || d.ID == NoParent {
		return fmt.Errorf("definition %s: id %d is reserved", d.Name, d.ID)
	}
	if d.ParentID == d.ID {
		return fmt.Errorf("definition %s: type cannot be its own parent", d.Name)
	}
	return nil
}

// Apply fills b with the abilities, attributes, graphics and limits of d.
// Every call creates new ability handles.
func (d Definition) Apply(b *Base) {
	for _, k := range d.Abilities {
		b.AddAbility(ability.New(k))
	}
	for _, a := range d.Attributes {
		b.defaults.Add(a.Container())
	}
	for kind, tex := range d.Graphics {
		b.SetGraphic(kind, tex)
	}
	b.HaveLimit = d.HaveLimit
	b.HadLimit = d.HadLimit
}

var _ UnitType = (*Defined)(nil)

// Defined is a type whose identity and footprint come from a Definition.
type Defined struct {
	*Base
	def Definition
}

// DefinedFactory returns a Factory building d for each owner.
func DefinedFactory(d Definition) Factory {
	return func(owner Player) UnitType {
		t := &Defined{Base: NewBase(owner), def: d}
		d.Apply(t.Base)
		return t
	}
}

func (t *Defined) ID() int       { return t.def.ID }
func (t *Defined) ParentID() int { return t.def.ParentID }
func (t *Defined) Name() string  { return t.def.Name }

func (t *Defined) Initialise(u *unit.Unit, _ Player) {
	bind(t, u)
}

func (t *Defined) Place(u *unit.Unit, ground terrain.Terrain, pos coord.Phys3) terrain.Object {
	return placeSquare(t, u, ground, pos, t.def.Size)
}
