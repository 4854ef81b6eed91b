package unittype

import (
	"github.com/zeusync/rts/internal/core/ability"
	"github.com/zeusync/rts/internal/core/attribute"
	"github.com/zeusync/rts/internal/core/coord"
	"github.com/zeusync/rts/internal/core/observability/log"
	"github.com/zeusync/rts/internal/core/terrain"
	"github.com/zeusync/rts/internal/core/unit"
)

// Player is the owner of unit types. It resolves type ids to the types it holds.
type Player interface {
	GetType(id int) UnitType
}

// UnitType describes a kind of unit. Implementations embed *Base for the shared
// state and supply identity, initialisation and placement.
type UnitType interface {
	ID() int
	ParentID() int
	Name() string

	// Initialise binds u to this type: abilities, attributes and the base action.
	Initialise(u *unit.Unit, p Player)
	// Place tries to put u on t at pos. It returns the placed footprint or nil.
	Place(u *unit.Unit, t terrain.Terrain, pos coord.Phys3) terrain.Object

	Core() *Base
}

// GraphicKind selects one of the sprites a type can show.
type GraphicKind uint8

const (
	GraphicStanding GraphicKind = iota
	GraphicWalking
	GraphicAttacking
	GraphicDying
	GraphicCarrying
	GraphicShadow
)

// Texture is a loaded sprite sheet. Types share textures by pointer.
type Texture struct {
	Name   string
	Frames int
}

// Base holds what every unit type owns. It is read by every unit initialised
// from the type and must not be mutated concurrently with initialisation.
type Base struct {
	owner Player

	// HaveLimit caps concurrently alive units, HadLimit caps units ever created.
	HaveLimit Limit
	HadLimit  Limit

	defaults  attribute.Set
	abilities []ability.Ability
	graphics  map[GraphicKind]*Texture
	upgrades  []attribute.Container
}

// NewBase returns a base with no abilities and unbounded population limits.
func NewBase(owner Player) *Base {
	return &Base{
		owner:     owner,
		HaveLimit: Unbounded(),
		HadLimit:  Unbounded(),
		graphics:  make(map[GraphicKind]*Texture),
	}
}

func (b *Base) Core() *Base { return b }

func (b *Base) Owner() Player { return b.owner }

// DefaultAttributes is the set copied into units on initialisation.
func (b *Base) DefaultAttributes() *attribute.Set { return &b.defaults }

// AddAbility appends a to the abilities granted by this type. Order matters for Equal.
func (b *Base) AddAbility(a ability.Ability) {
	b.abilities = append(b.abilities, a)
}

// Abilities returns the granted abilities in grant order.
func (b *Base) Abilities() []ability.Ability {
	out := make([]ability.Ability, len(b.abilities))
	copy(out, b.abilities)
	return out
}

func (b *Base) SetGraphic(kind GraphicKind, tex *Texture) {
	b.graphics[kind] = tex
}

func (b *Base) Graphic(kind GraphicKind) (*Texture, bool) {
	tex, ok := b.graphics[kind]
	return tex, ok
}

// DefaultTexture returns the standing sprite, nil if none was set.
func (b *Base) DefaultTexture() *Texture {
	return b.graphics[GraphicStanding]
}

// CopyAttributes merges the default attributes into u without clearing anything u already has.
func (b *Base) CopyAttributes(u *unit.Unit) {
	u.AddAttributes(&b.defaults)
}

// Upgrade adds c to the default attributes. Units already initialised are not
// affected until they are initialised again.
func (b *Base) Upgrade(c attribute.Container) {
	if c == nil {
		return
	}
	b.upgrades = append(b.upgrades, c)
	b.defaults.Add(c)
}

// Upgrades lists every contribution passed to Upgrade, oldest first.
func (b *Base) Upgrades() []attribute.Container {
	out := make([]attribute.Container, len(b.upgrades))
	copy(out, b.upgrades)
	return out
}

// Reinitialise moves u to type t while keeping the unit's own state.
// Unshared attributes are saved and the unit's attributes are cleared, so the
// shared ones end up exactly t's defaults. t.Initialise then runs and the saved
// values are written back over whatever it set for those kinds.
func Reinitialise(t UnitType, u *unit.Unit, p Player) {
	if t == nil || u == nil {
		return
	}

	var saved attribute.Set
	saved.AddCopies(&u.Attributes, false, true)
	u.Attributes.Clear()

	t.Initialise(u, p)

	u.Attributes.Merge(&saved)

	u.Log().Debug("unit reinitialised",
		log.String("type", t.Name()),
		log.Int("kept", saved.Len()),
		log.Uint64("signature", Signature(t)))
}

// Equal reports whether a and b grant the same abilities in the same order.
// Name, id and attributes are ignored: this answers whether switching a unit
// from one type to the other changes its capabilities.
func Equal(a, b UnitType) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	x, y := a.Core().abilities, b.Core().abilities
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func NotEqual(a, b UnitType) bool { return !Equal(a, b) }

// ParentType resolves t's parent through its owner. It is nil for root types
// and for parents the owner does not hold.
func ParentType(t UnitType) UnitType {
	if t == nil {
		return nil
	}
	owner := t.Core().owner
	if owner == nil {
		return nil
	}
	return owner.GetType(t.ParentID())
}
