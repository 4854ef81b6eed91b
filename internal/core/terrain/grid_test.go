package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/rts/internal/core/coord"
)

func loadedGrid() *Grid {
	g := NewGrid(4)
	g.LoadArea(coord.ChunkCoord{NE: -1, SE: -1}, coord.ChunkCoord{NE: 0, SE: 0})
	return g
}

func TestGridChunkLookup(t *testing.T) {
	g := loadedGrid()
	assert.Equal(t, 4, g.Chunks())
	assert.NotNil(t, g.Chunk(coord.Tile{NE: -4, SE: 3}))
	assert.Nil(t, g.Chunk(coord.Tile{NE: 4, SE: 0}))
	assert.Nil(t, g.Chunk(coord.Tile{NE: 0, SE: -5}))

	g.Unload(coord.ChunkCoord{})
	assert.Nil(t, g.Chunk(coord.Tile{}))
}

func TestNewGridDefaultsChunkSize(t *testing.T) {
	assert.Equal(t, DefaultChunkSize, NewGrid(0).ChunkSize())
}

func TestSquarePlaceOccupies(t *testing.T) {
	g := loadedGrid()
	o := NewSquare(coord.TileDelta{NE: 2, SE: 2})

	require.True(t, o.Place(g, coord.Tile{NE: -1, SE: -1}.ToPhys3(), StatePlaced))
	assert.Equal(t, StatePlaced, o.State())
	assert.Equal(t, coord.Tile{NE: -1, SE: -1}, o.Pos().Start)
	assert.Equal(t, coord.Tile{NE: 0, SE: 0}, o.Pos().End)
	assert.Equal(t, o.Pos().Start, o.Pos().Draw)
	assert.Same(t, Object(o), g.ObjectAt(coord.Tile{NE: 0, SE: -1}))
	assert.Same(t, Terrain(g), o.Terrain())
	for _, tile := range []coord.Tile{{NE: -1, SE: -1}, {NE: 0, SE: -1}, {NE: -1, SE: 0}, {NE: 0, SE: 0}} {
		assert.Equal(t, 1, g.Chunk(tile).Occupied(), tile)
	}
}

func TestSquarePlaceRejectsCollision(t *testing.T) {
	g := loadedGrid()
	a := NewSquare(coord.TileDelta{NE: 1, SE: 1})
	b := NewSquare(coord.TileDelta{NE: 1, SE: 1})
	pos := coord.Tile{NE: 1, SE: 1}.ToPhys3()

	require.True(t, a.Place(g, pos, StatePlaced))
	assert.False(t, b.Place(g, pos, StatePlaced))
	assert.Equal(t, StateRemoved, b.State())
	assert.True(t, b.Place(g, pos, StatePlacedNoCollision))
}

func TestSquarePlaceNeedsLoadedChunks(t *testing.T) {
	g := loadedGrid()
	o := NewSquare(coord.TileDelta{NE: 2, SE: 1})
	assert.False(t, o.Place(g, coord.Tile{NE: 3, SE: 0}.ToPhys3(), StatePlaced))
	assert.Nil(t, g.ObjectAt(coord.Tile{NE: 3, SE: 0}))
}

func TestSquarePassable(t *testing.T) {
	g := loadedGrid()
	o := NewSquare(coord.TileDelta{NE: 1, SE: 1})
	o.SetPassable(func(p coord.Phys3) bool { return p.NE >= 0 })

	assert.False(t, o.Place(g, coord.Tile{NE: -1}.ToPhys3(), StatePlaced))
	assert.True(t, o.Place(g, coord.Tile{NE: 1}.ToPhys3(), StatePlaced))
}

func TestSquareMoveReleasesOldTiles(t *testing.T) {
	g := loadedGrid()
	o := NewSquare(coord.TileDelta{NE: 1, SE: 1})
	from := coord.Tile{NE: 0, SE: 0}
	to := coord.Tile{NE: 2, SE: 2}

	require.True(t, o.Place(g, from.ToPhys3(), StatePlaced))
	require.True(t, o.Place(g, to.ToPhys3(), StatePlaced))
	assert.Nil(t, g.ObjectAt(from))
	assert.Same(t, Object(o), g.ObjectAt(to))
	assert.Equal(t, 1, g.Chunk(to).Occupied())

	o.Remove()
	assert.Nil(t, g.ObjectAt(to))
	assert.Zero(t, g.Chunk(to).Occupied())
	assert.Nil(t, o.Terrain())
}
