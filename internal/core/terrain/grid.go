package terrain

import "github.com/zeusync/rts/internal/core/coord"

// DefaultChunkSize is the chunk edge length used when none is configured.
const DefaultChunkSize int64 = 16

var _ Terrain = (*Grid)(nil)

// Grid is an in-memory terrain made of explicitly loaded chunks.
type Grid struct {
	chunkSize int64
	chunks    map[coord.ChunkCoord]*Chunk
}

// NewGrid returns an empty grid. A non-positive chunkSize selects DefaultChunkSize.
func NewGrid(chunkSize int64) *Grid {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Grid{
		chunkSize: chunkSize,
		chunks:    make(map[coord.ChunkCoord]*Chunk),
	}
}

func (g *Grid) ChunkSize() int64 { return g.chunkSize }

// Load makes the chunk at c available, creating it if needed.
func (g *Grid) Load(c coord.ChunkCoord) *Chunk {
	if ch, ok := g.chunks[c]; ok {
		return ch
	}
	ch := newChunk(c, g.chunkSize)
	g.chunks[c] = ch
	return ch
}

// LoadArea loads every chunk in the inclusive rectangle from..to.
func (g *Grid) LoadArea(from, to coord.ChunkCoord) {
	for se := from.SE; se <= to.SE; se++ {
		for ne := from.NE; ne <= to.NE; ne++ {
			g.Load(coord.ChunkCoord{NE: ne, SE: se})
		}
	}
}

// Unload drops the chunk at c together with its occupancy.
func (g *Grid) Unload(c coord.ChunkCoord) {
	delete(g.chunks, c)
}

func (g *Grid) Chunks() int { return len(g.chunks) }

func (g *Grid) Chunk(t coord.Tile) *Chunk {
	return g.chunks[t.Chunk(g.chunkSize)]
}

func (g *Grid) TileToPhys(t coord.Tile) coord.Phys3 {
	return t.ToPhys3()
}

// ObjectAt returns the object occupying t, or nil.
func (g *Grid) ObjectAt(t coord.Tile) Object {
	ch := g.Chunk(t)
	if ch == nil {
		return nil
	}
	return ch.ObjectAt(t)
}
