package terrain

import "github.com/zeusync/rts/internal/core/coord"

// Terrain is the spatial surface objects are placed on.
type Terrain interface {
	// Chunk returns the loaded chunk holding t, or nil when t lies outside
	// every loaded chunk.
	Chunk(t coord.Tile) *Chunk
	// TileToPhys converts a tile to the physical position of its origin.
	TileToPhys(t coord.Tile) coord.Phys3
}

// State is the placement state of an Object.
type State uint8

const (
	StateRemoved State = iota
	StateFloating
	StatePlaced
	StatePlacedNoCollision
)

func (s State) String() string {
	switch s {
	case StateRemoved:
		return "removed"
	case StateFloating:
		return "floating"
	case StatePlaced:
		return "placed"
	case StatePlacedNoCollision:
		return "placed_no_collision"
	default:
		return "unknown"
	}
}

// Passable decides whether an object may stand at a physical position.
type Passable func(coord.Phys3) bool

// Object is the spatial footprint of a unit on a terrain.
type Object interface {
	// Pos is the occupied tile rectangle. Only meaningful once placed.
	Pos() coord.TileRange
	// Phys is the physical anchor the object was placed at.
	Phys() coord.Phys3
	// Terrain returns the terrain the object is placed on, nil before placement.
	Terrain() Terrain
	State() State
	SetPassable(Passable)
	// Place tries to commit the object at pos. On failure nothing changes.
	Place(t Terrain, pos coord.Phys3, state State) bool
	// Remove releases every tile the object occupies.
	Remove()
}
