package unittype

import (
	"github.com/zeusync/rts/internal/core/coord"
	"github.com/zeusync/rts/internal/core/terrain"
	"github.com/zeusync/rts/internal/core/unit"
)

type stubPlayer map[int]UnitType

func (p stubPlayer) GetType(id int) UnitType { return p[id] }

// scripted is a test type: Place succeeds only on the listed tiles and
// records every attempt.
type scripted struct {
	*Base
	id, parent int
	accept     map[coord.Tile]bool
	attempts   []coord.Tile
}

func newScripted(owner Player, id, parent int, accept ...coord.Tile) *scripted {
	p := &scripted{Base: NewBase(owner), id: id, parent: parent, accept: make(map[coord.Tile]bool)}
	for _, t := range accept {
		p.accept[t] = true
	}
	return p
}

func (p *scripted) ID() int       { return p.id }
func (p *scripted) ParentID() int { return p.parent }
func (p *scripted) Name() string  { return "scripted" }

func (p *scripted) Initialise(u *unit.Unit, _ Player) {
	u.Reset()
	u.Type = p
	for _, a := range p.abilities {
		u.GiveAbility(a)
	}
	p.CopyAttributes(u)
}

func (p *scripted) Place(_ *unit.Unit, t terrain.Terrain, pos coord.Phys3) terrain.Object {
	tile := pos.ToTile()
	p.attempts = append(p.attempts, tile)
	if !p.accept[tile] {
		return nil
	}
	return &fixedObject{
		pos:  coord.TileRange{Start: tile, End: tile, Draw: tile},
		phys: pos,
		ter:  t,
	}
}

// fixedObject is an already placed footprint that never moves.
type fixedObject struct {
	pos  coord.TileRange
	phys coord.Phys3
	ter  terrain.Terrain
}

func (o *fixedObject) Pos() coord.TileRange                                   { return o.pos }
func (o *fixedObject) Phys() coord.Phys3                                      { return o.phys }
func (o *fixedObject) Terrain() terrain.Terrain                               { return o.ter }
func (o *fixedObject) State() terrain.State                                   { return terrain.StatePlaced }
func (o *fixedObject) SetPassable(terrain.Passable)                           {}
func (o *fixedObject) Place(terrain.Terrain, coord.Phys3, terrain.State) bool { return false }
func (o *fixedObject) Remove()                                                {}

// countingTerrain forwards to an optional grid and counts chunk lookups.
type countingTerrain struct {
	grid    *terrain.Grid
	lookups []coord.Tile
}

func (c *countingTerrain) Chunk(t coord.Tile) *terrain.Chunk {
	c.lookups = append(c.lookups, t)
	if c.grid == nil {
		return nil
	}
	return c.grid.Chunk(t)
}

func (c *countingTerrain) TileToPhys(t coord.Tile) coord.Phys3 { return t.ToPhys3() }

func loadedGrid() *terrain.Grid {
	g := terrain.NewGrid(4)
	g.LoadArea(coord.ChunkCoord{NE: -1, SE: -1}, coord.ChunkCoord{NE: 0, SE: 0})
	return g
}

func twoByTwo(t terrain.Terrain) *fixedObject {
	return &fixedObject{
		pos: coord.TileRange{Start: coord.Tile{NE: 0, SE: 0}, End: coord.Tile{NE: 1, SE: 1}},
		ter: t,
	}
}
