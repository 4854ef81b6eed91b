package unittype

import (
	"github.com/zeusync/rts/internal/core/coord"
	"github.com/zeusync/rts/internal/core/observability/log"
	"github.com/zeusync/rts/internal/core/terrain"
	"github.com/zeusync/rts/internal/core/unit"
)

const (
	RootID   = 1
	RootName = "root"
	// NoParent is the parent id of types at the top of the hierarchy.
	NoParent = -1
)

var _ UnitType = (*Root)(nil)

// Root is the universal type every other type descends from. Its abilities
// and attributes come entirely from data definitions.
type Root struct {
	*Base
}

// NewRoot is the Factory for Root.
func NewRoot(owner Player) UnitType {
	return &Root{Base: NewBase(owner)}
}

func (r *Root) ID() int       { return RootID }
func (r *Root) ParentID() int { return NoParent }
func (r *Root) Name() string  { return RootName }

func (r *Root) Initialise(u *unit.Unit, _ Player) {
	bind(r, u)
}

// Place gives u a one-tile footprint that may stand anywhere and commits it at pos.
func (r *Root) Place(u *unit.Unit, t terrain.Terrain, pos coord.Phys3) terrain.Object {
	return placeSquare(r, u, t, pos, coord.TileDelta{NE: 1, SE: 1})
}

// bind resets u and makes it a unit of t: abilities in order, default
// attributes merged, idle as the base action.
func bind(t UnitType, u *unit.Unit) {
	u.Reset()
	u.Type = t

	for _, a := range t.Core().abilities {
		u.GiveAbility(a)
	}
	t.Core().CopyAttributes(u)

	u.Push(unit.NewIdle(u), true)
}

// placeSquare installs a size footprint on u with no passability constraint
// and commits it at pos.
func placeSquare(t UnitType, u *unit.Unit, ground terrain.Terrain, pos coord.Phys3, size coord.TileDelta) terrain.Object {
	loc := terrain.NewSquare(size)
	u.MakeLocation(loc)
	loc.SetPassable(func(coord.Phys3) bool { return true })

	if loc.Place(ground, pos, terrain.StatePlaced) {
		return loc
	}

	u.Log().Debug("failed to place object",
		log.String("type", t.Name()),
		log.Int64("ne", pos.NE),
		log.Int64("se", pos.SE))
	return nil
}
