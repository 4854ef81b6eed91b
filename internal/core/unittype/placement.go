package unittype

import (
	"github.com/zeusync/rts/internal/core/coord"
	"github.com/zeusync/rts/internal/core/terrain"
	"github.com/zeusync/rts/internal/core/unit"
)

// PlaceBeside places u on a free tile touching other.
//
// Candidates are the tiles of other's footprint grown by one tile on each
// side, scanned in row-major order. Tiles without a loaded chunk are skipped.
// The first tile where t.Place succeeds wins. It returns nil if u or other is
// nil, if other is not on a terrain, or if no candidate works.
func PlaceBeside(t UnitType, u *unit.Unit, other terrain.Object) terrain.Object {
	if t == nil || u == nil || other == nil {
		return nil
	}
	ground := other.Terrain()
	if ground == nil {
		return nil
	}

	outline := other.Pos().Grow(coord.TileDelta{NE: 1, SE: 1})
	for tile := range outline.Tiles() {
		if ground.Chunk(tile) == nil {
			continue
		}
		if placed := t.Place(u, ground, ground.TileToPhys(tile)); placed != nil {
			return placed
		}
	}
	return nil
}
