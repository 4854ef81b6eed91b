package sim

import (
	"errors"
	"fmt"

	"github.com/zeusync/rts/internal/config"
	"github.com/zeusync/rts/internal/core/coord"
	"github.com/zeusync/rts/internal/core/observability/log"
	"github.com/zeusync/rts/internal/core/player"
	"github.com/zeusync/rts/internal/core/terrain"
	"github.com/zeusync/rts/internal/core/unit"
	"github.com/zeusync/rts/internal/core/unittype"
)

var (
	ErrNoRoom        = errors.New("no free tile next to any reference")
	ErrUnknownPlayer = errors.New("unknown player")
)

// Engine owns the type registry, the terrain and the players of one match.
type Engine struct {
	Registry *unittype.Registry
	Terrain  *terrain.Grid

	players map[int]*player.Player
	order   []*player.Player
	log     log.Log
}

// New builds an engine from a validated config.
func New(cfg *config.Config, reg *unittype.Registry, l log.Log) (*Engine, error) {
	if l == nil {
		l = log.Nop()
	}
	defs, err := cfg.Definitions()
	if err != nil {
		return nil, err
	}
	for _, d := range defs {
		if _, err = reg.RegisterDefinition(d); err != nil {
			return nil, fmt.Errorf("register types: %w", err)
		}
	}
	rootDef, err := cfg.RootDefinition()
	if err != nil {
		return nil, err
	}

	grid := terrain.NewGrid(cfg.Terrain.ChunkSize)
	grid.LoadArea(cfg.Terrain.ChunkArea())

	e := &Engine{
		Registry: reg,
		Terrain:  grid,
		players:  make(map[int]*player.Player, len(cfg.Players)),
		log:      l.Named("sim"),
	}
	for _, pc := range cfg.Players {
		p := player.New(pc.ID, pc.Name, reg, l)
		if rootDef != nil {
			rootDef.Apply(p.GetType(unittype.RootID).Core())
		}
		e.players[pc.ID] = p
		e.order = append(e.order, p)
	}

	e.log.Info("engine ready",
		log.Int("types", len(reg.All())),
		log.Int("players", len(e.order)),
		log.Int("chunks", grid.Chunks()))
	return e, nil
}

func (e *Engine) Player(id int) (*player.Player, error) {
	p, ok := e.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	return p, nil
}

func (e *Engine) Players() []*player.Player {
	out := make([]*player.Player, len(e.order))
	copy(out, e.order)
	return out
}

// SpawnAt creates a unit of the named type and places it at tile.
func (e *Engine) SpawnAt(p *player.Player, typeName string, tile coord.Tile) (*unit.Unit, error) {
	t, err := p.TypeByName(typeName)
	if err != nil {
		return nil, err
	}
	u, err := p.Spawn(t.ID())
	if err != nil {
		return nil, err
	}
	if t.Place(u, e.Terrain, e.Terrain.TileToPhys(tile)) == nil {
		p.Remove(u)
		return nil, fmt.Errorf("spawn %s at %v: %w", typeName, tile, ErrNoRoom)
	}
	return u, nil
}

// SpawnBeside creates a unit of the named type next to the first reference that has room.
func (e *Engine) SpawnBeside(p *player.Player, typeName string, refs []terrain.Object) (*unit.Unit, error) {
	t, err := p.TypeByName(typeName)
	if err != nil {
		return nil, err
	}
	u, err := p.Spawn(t.ID())
	if err != nil {
		return nil, err
	}
	for _, ref := range refs {
		if unittype.PlaceBeside(t, u, ref) != nil {
			return u, nil
		}
	}
	p.Remove(u)
	return nil, fmt.Errorf("spawn %s: %w", typeName, ErrNoRoom)
}
