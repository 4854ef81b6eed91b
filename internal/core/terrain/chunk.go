package terrain

import "github.com/zeusync/rts/internal/core/coord"

// Chunk is a square block of size x size tiles. It tracks which object
// occupies each of its tiles.
type Chunk struct {
	Coord coord.ChunkCoord

	size    int64
	objects map[int64]Object // local tile index -> occupant
}

func newChunk(c coord.ChunkCoord, size int64) *Chunk {
	return &Chunk{Coord: c, size: size, objects: make(map[int64]Object)}
}

// Size is the edge length in tiles.
func (c *Chunk) Size() int64 { return c.size }

// ObjectAt returns the object occupying t, or nil.
func (c *Chunk) ObjectAt(t coord.Tile) Object {
	return c.objects[c.idx(t)]
}

// Occupied returns how many tiles of the chunk hold an object.
func (c *Chunk) Occupied() int { return len(c.objects) }

func (c *Chunk) occupy(t coord.Tile, o Object) {
	c.objects[c.idx(t)] = o
}

func (c *Chunk) release(t coord.Tile, o Object) {
	i := c.idx(t)
	if c.objects[i] == o {
		delete(c.objects, i)
	}
}

func (c *Chunk) idx(t coord.Tile) int64 {
	ne := t.NE - c.Coord.NE*c.size
	se := t.SE - c.Coord.SE*c.size
	return ne + se*c.size
}
