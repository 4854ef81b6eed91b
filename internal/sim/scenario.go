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
)

// Placement records where a scenario put a unit.
type Placement struct {
	Unit string
	Type string
	Tile coord.Tile
}

// Report is the outcome of Run.
type Report struct {
	Anchor  Placement
	Placed  []Placement
	Skipped map[string]int
}

// Run places the scenario anchor, then spawns every requested unit next to
// the anchor or, once that is surrounded, next to units placed before it.
func (e *Engine) Run(sc config.ScenarioConfig) (*Report, error) {
	p, err := e.Player(sc.Player)
	if err != nil {
		return nil, err
	}

	anchor, err := e.SpawnAt(p, sc.Anchor.Type, coord.Tile{NE: sc.Anchor.Tile[0], SE: sc.Anchor.Tile[1]})
	if err != nil {
		return nil, fmt.Errorf("anchor: %w", err)
	}
	report := &Report{Anchor: placement(anchor), Skipped: make(map[string]int)}
	refs := []terrain.Object{anchor.Location}

	for _, s := range sc.Spawn {
		for i := 0; i < s.Count; i++ {
			u, err := e.SpawnBeside(p, s.Type, refs)
			if err != nil {
				if errors.Is(err, ErrNoRoom) || errors.Is(err, player.ErrLimitReached) {
					report.Skipped[s.Type]++
					e.log.Warn("unit skipped", log.String("type", s.Type), log.Int("index", i), log.Error(err))
					continue
				}
				return report, err
			}
			refs = append(refs, u.Location)
			pl := placement(u)
			report.Placed = append(report.Placed, pl)
			e.log.Debug("unit placed",
				log.String("unit", pl.Unit),
				log.String("type", pl.Type),
				log.Int64("ne", pl.Tile.NE),
				log.Int64("se", pl.Tile.SE))
		}
	}
	return report, nil
}

func placement(u *unit.Unit) Placement {
	return Placement{
		Unit: u.ID().String(),
		Type: u.Type.Name(),
		Tile: u.Location.Pos().Start,
	}
}
