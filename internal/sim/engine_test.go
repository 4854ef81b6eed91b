package sim

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/rts/internal/config"
	"github.com/zeusync/rts/internal/core/ability"
	"github.com/zeusync/rts/internal/core/coord"
	"github.com/zeusync/rts/internal/core/player"
	"github.com/zeusync/rts/internal/core/terrain"
	"github.com/zeusync/rts/internal/core/unittype"
)

const scenario = `
terrain:
  chunk_size: 4
root:
  abilities: [move]
types:
  - name: villager
    id: 2
    parent: 1
    abilities: [move, gather]
    attributes:
      - {kind: hitpoints, value: 25}
  - name: house
    id: 3
    parent: 1
    size: [2, 2]
    limits:
      had: 1
players:
  - {id: 1, name: blue}
scenario:
  player: 1
  anchor: {type: house, tile: [1, 1]}
  spawn:
    - {type: villager, count: 3}
`

func newEngine(t *testing.T, doc string) (*Engine, *config.Config) {
	cfg, err := config.LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	reg := unittype.NewRegistry()
	require.NoError(t, unittype.RegisterBuiltins(reg))
	e, err := New(cfg, reg, nil)
	require.NoError(t, err)
	return e, cfg
}

func TestNewEngine(t *testing.T) {
	e, _ := newEngine(t, scenario)

	assert.Len(t, e.Registry.All(), 3)
	assert.Equal(t, 1, e.Terrain.Chunks())

	p, err := e.Player(1)
	require.NoError(t, err)
	root := p.GetType(unittype.RootID)
	require.Len(t, root.Core().Abilities(), 1)
	assert.Equal(t, ability.KindMove, root.Core().Abilities()[0].Kind())

	_, err = e.Player(7)
	assert.True(t, errors.Is(err, ErrUnknownPlayer))
}

func TestRunPlacesAroundAnchor(t *testing.T) {
	e, cfg := newEngine(t, scenario)

	report, err := e.Run(cfg.Scenario)
	require.NoError(t, err)

	assert.Equal(t, "house", report.Anchor.Type)
	assert.Equal(t, coord.Tile{NE: 1, SE: 1}, report.Anchor.Tile)

	require.Len(t, report.Placed, 3)
	want := []coord.Tile{{NE: 0, SE: 0}, {NE: 1, SE: 0}, {NE: 2, SE: 0}}
	for i, pl := range report.Placed {
		assert.Equal(t, "villager", pl.Type)
		assert.Equal(t, want[i], pl.Tile)
	}
	assert.Empty(t, report.Skipped)
}

func TestRunSkipsWhenSurrounded(t *testing.T) {
	doc := strings.Replace(scenario, "count: 3", "count: 13", 1)
	e, cfg := newEngine(t, doc)

	report, err := e.Run(cfg.Scenario)
	require.NoError(t, err)

	// a 4x4 chunk with a 2x2 house leaves 12 free tiles
	assert.Len(t, report.Placed, 12)
	assert.Equal(t, 1, report.Skipped["villager"])

	p, _ := e.Player(1)
	assert.Equal(t, 12, p.Alive(2))
}

func TestRunFallsBackToPlacedUnits(t *testing.T) {
	doc := strings.Replace(scenario, "count: 3", "count: 13", 1)
	doc = strings.Replace(doc, "chunk_size: 4", "chunk_size: 8", 1)
	e, cfg := newEngine(t, doc)

	report, err := e.Run(cfg.Scenario)
	require.NoError(t, err)

	// the house ring holds 12 villagers, the 13th goes next to the one at (3,0)
	require.Len(t, report.Placed, 13)
	assert.Equal(t, coord.Tile{NE: 4, SE: 0}, report.Placed[12].Tile)
	assert.Empty(t, report.Skipped)
}

func TestSpawnAtRespectsLimitAndRoom(t *testing.T) {
	e, _ := newEngine(t, scenario)
	p, _ := e.Player(1)

	_, err := e.SpawnAt(p, "house", coord.Tile{NE: 3, SE: 3})
	assert.True(t, errors.Is(err, ErrNoRoom))

	// the failed spawn still counts against the lifetime cap
	_, err = e.SpawnAt(p, "house", coord.Tile{NE: 0, SE: 0})
	assert.True(t, errors.Is(err, player.ErrLimitReached))

	_, err = e.SpawnAt(p, "castle", coord.Tile{})
	assert.True(t, errors.Is(err, unittype.ErrUnknownType))
}

func TestSpawnBesideWithoutReferences(t *testing.T) {
	e, _ := newEngine(t, scenario)
	p, _ := e.Player(1)

	_, err := e.SpawnBeside(p, "villager", nil)
	assert.True(t, errors.Is(err, ErrNoRoom))
	assert.Zero(t, p.Alive(2))

	_, err = e.SpawnBeside(p, "villager", []terrain.Object{terrain.NewSquare(coord.TileDelta{NE: 1, SE: 1})})
	assert.True(t, errors.Is(err, ErrNoRoom))
}
