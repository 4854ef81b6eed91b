package terrain

import "github.com/zeusync/rts/internal/core/coord"

var _ Object = (*SquareObject)(nil)

// SquareObject is a rectangular footprint anchored at its minimum tile.
type SquareObject struct {
	size     coord.TileDelta
	passable Passable

	terrain Terrain
	pos     coord.TileRange
	phys    coord.Phys3
	state   State
}

// NewSquare returns an unplaced footprint of size tiles. Sizes below one tile are raised to one.
func NewSquare(size coord.TileDelta) *SquareObject {
	return &SquareObject{
		size:  coord.TileDelta{NE: max(1, size.NE), SE: max(1, size.SE)},
		state: StateRemoved,
	}
}

func (o *SquareObject) Size() coord.TileDelta { return o.size }
func (o *SquareObject) Pos() coord.TileRange  { return o.pos }
func (o *SquareObject) Phys() coord.Phys3     { return o.phys }
func (o *SquareObject) Terrain() Terrain      { return o.terrain }
func (o *SquareObject) State() State          { return o.state }

func (o *SquareObject) SetPassable(p Passable) { o.passable = p }

// Place commits the footprint with its minimum tile at the tile containing pos.
// Every covered tile needs a loaded chunk; unless state is StatePlacedNoCollision
// or StateFloating the tiles must also be free of other objects.
func (o *SquareObject) Place(t Terrain, pos coord.Phys3, state State) bool {
	if t == nil || state == StateRemoved {
		return false
	}
	if o.passable != nil && !o.passable(pos) {
		return false
	}

	start := pos.ToTile()
	r := coord.TileRange{
		Start: start,
		End:   start.Add(coord.TileDelta{NE: o.size.NE - 1, SE: o.size.SE - 1}),
		Draw:  start,
	}

	collides := state == StatePlaced
	for tile := range r.Tiles() {
		ch := t.Chunk(tile)
		if ch == nil {
			return false
		}
		if !collides {
			continue
		}
		if occ := ch.ObjectAt(tile); occ != nil && occ != Object(o) {
			return false
		}
	}

	o.Remove()
	if collides {
		for tile := range r.Tiles() {
			t.Chunk(tile).occupy(tile, o)
		}
	}
	o.terrain = t
	o.pos = r
	o.phys = pos
	o.state = state
	return true
}

func (o *SquareObject) Remove() {
	if o.terrain != nil && o.state == StatePlaced {
		for tile := range o.pos.Tiles() {
			if ch := o.terrain.Chunk(tile); ch != nil {
				ch.release(tile, o)
			}
		}
	}
	o.terrain = nil
	o.state = StateRemoved
}
