package coord

import "iter"

// Tile is a position on the terrain tile grid.
// NE grows towards the north-east edge of the map, SE towards the south-east.
type Tile struct {
	NE int64
	SE int64
}

// TileDelta is a difference between two tiles.
type TileDelta struct {
	NE int64
	SE int64
}

// Phys3 is a physical position. Horizontal axes use the same orientation as Tile,
// Up is elevation.
type Phys3 struct {
	NE int64
	SE int64
	Up int64
}

// ChunkCoord addresses a terrain chunk.
type ChunkCoord struct {
	NE int64
	SE int64
}

func (t Tile) Add(d TileDelta) Tile { return Tile{NE: t.NE + d.NE, SE: t.SE + d.SE} }
func (t Tile) Sub(d TileDelta) Tile { return Tile{NE: t.NE - d.NE, SE: t.SE - d.SE} }

// Chunk returns the chunk containing t for chunks of size x size tiles.
func (t Tile) Chunk(size int64) ChunkCoord {
	return ChunkCoord{NE: floorDiv(t.NE, size), SE: floorDiv(t.SE, size)}
}

// TileRange is an inclusive tile rectangle. Draw is the tile used for draw ordering.
type TileRange struct {
	Start Tile
	End   Tile
	Draw  Tile
}

// Width returns the number of tiles along NE, zero for an inverted range.
func (r TileRange) Width() int64 { return max(0, r.End.NE-r.Start.NE+1) }

// Height returns the number of tiles along SE, zero for an inverted range.
func (r TileRange) Height() int64 { return max(0, r.End.SE-r.Start.SE+1) }

// Area is Width * Height.
func (r TileRange) Area() int64 { return r.Width() * r.Height() }

// Grow returns the range extended by d on every side. Draw is kept.
func (r TileRange) Grow(d TileDelta) TileRange {
	return TileRange{Start: r.Start.Sub(d), End: r.End.Add(d), Draw: r.Draw}
}

// Contains reports whether t lies within the range.
func (r TileRange) Contains(t Tile) bool {
	return t.NE >= r.Start.NE && t.NE <= r.End.NE && t.SE >= r.Start.SE && t.SE <= r.End.SE
}

// Tiles yields every tile of the range in row-major order: SE is the row,
// NE the column, both ascending.
func (r TileRange) Tiles() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for se := r.Start.SE; se <= r.End.SE; se++ {
			for ne := r.Start.NE; ne <= r.End.NE; ne++ {
				if !yield(Tile{NE: ne, SE: se}) {
					return
				}
			}
		}
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// PhysPerTile is the number of physical units along one tile edge.
const PhysPerTile int64 = 1 << 16

// ToPhys3 returns the physical position of the tile's origin corner at elevation zero.
func (t Tile) ToPhys3() Phys3 {
	return Phys3{NE: t.NE * PhysPerTile, SE: t.SE * PhysPerTile}
}

// ToTile returns the tile containing p. Elevation is ignored.
func (p Phys3) ToTile() Tile {
	return Tile{NE: floorDiv(p.NE, PhysPerTile), SE: floorDiv(p.SE, PhysPerTile)}
}
