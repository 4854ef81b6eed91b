package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/rts/internal/core/ability"
	"github.com/zeusync/rts/internal/core/attribute"
	"github.com/zeusync/rts/internal/core/coord"
	"github.com/zeusync/rts/internal/core/observability/log"
	"github.com/zeusync/rts/internal/core/unittype"
)

// Config describes an engine run: logging, the terrain layout, the unit types
// on top of the built-in ones and the scenario to play out.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Root     *TypeConfig    `yaml:"root,omitempty"`
	Types    []TypeConfig   `yaml:"types,omitempty"`
	Players  []PlayerConfig `yaml:"players"`
	Scenario ScenarioConfig `yaml:"scenario"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type TerrainConfig struct {
	ChunkSize int64    `yaml:"chunk_size"`
	From      [2]int64 `yaml:"from"`
	To        [2]int64 `yaml:"to"`
}

type TypeConfig struct {
	Name       string            `yaml:"name"`
	ID         int               `yaml:"id"`
	Parent     int               `yaml:"parent"`
	Size       [2]int64          `yaml:"size"`
	Abilities  []string          `yaml:"abilities,omitempty"`
	Attributes []AttributeConfig `yaml:"attributes,omitempty"`
	Graphics   map[string]string `yaml:"graphics,omitempty"`
	Limits     LimitsConfig      `yaml:"limits,omitempty"`
}

type AttributeConfig struct {
	Kind   string  `yaml:"kind"`
	Value  float64 `yaml:"value"`
	Shared bool    `yaml:"shared,omitempty"`
}

// LimitsConfig caps populations. Absent values mean unbounded.
type LimitsConfig struct {
	Have *int `yaml:"have,omitempty"`
	Had  *int `yaml:"had,omitempty"`
}

type PlayerConfig struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// ScenarioConfig spawns an anchor unit and then places units next to it.
type ScenarioConfig struct {
	Player int           `yaml:"player"`
	Anchor AnchorConfig  `yaml:"anchor"`
	Spawn  []SpawnConfig `yaml:"spawn,omitempty"`
}

type AnchorConfig struct {
	Type string   `yaml:"type"`
	Tile [2]int64 `yaml:"tile"`
}

type SpawnConfig struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
}

var graphicNames = map[string]unittype.GraphicKind{
	"standing":  unittype.GraphicStanding,
	"walking":   unittype.GraphicWalking,
	"attacking": unittype.GraphicAttacking,
	"dying":     unittype.GraphicDying,
	"carrying":  unittype.GraphicCarrying,
	"shadow":    unittype.GraphicShadow,
}

// Default returns a config with one player, one loaded chunk and a root anchor.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info"},
		Terrain: TerrainConfig{ChunkSize: 16},
		Players: []PlayerConfig{{ID: 1, Name: "player"}},
		Scenario: ScenarioConfig{
			Player: 1,
			Anchor: AnchorConfig{Type: unittype.RootName},
		},
	}
}

// LoadYAML decodes a config on top of Default.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// LoadFile reads and validates the config at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks everything that can be checked without building the engine.
func (c *Config) Validate() error {
	if _, ok := log.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("log level %q is not supported", c.Log.Level)
	}
	if c.Terrain.ChunkSize < 0 {
		return fmt.Errorf("terrain chunk size must not be negative")
	}
	if c.Terrain.From[0] > c.Terrain.To[0] || c.Terrain.From[1] > c.Terrain.To[1] {
		return fmt.Errorf("terrain area %v..%v is empty", c.Terrain.From, c.Terrain.To)
	}
	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player is required")
	}

	players := make(map[int]bool, len(c.Players))
	for _, p := range c.Players {
		if players[p.ID] {
			return fmt.Errorf("player %d declared twice", p.ID)
		}
		players[p.ID] = true
	}
	if !players[c.Scenario.Player] {
		return fmt.Errorf("scenario player %d is not declared", c.Scenario.Player)
	}

	names := map[string]bool{unittype.RootName: true}
	if c.Root != nil {
		if _, err := c.Root.definition(); err != nil {
			return fmt.Errorf("root: %w", err)
		}
	}
	for i := range c.Types {
		d, err := c.Types[i].definition()
		if err != nil {
			return fmt.Errorf("type %q: %w", c.Types[i].Name, err)
		}
		if err = d.Validate(); err != nil {
			return err
		}
		names[d.Name] = true
	}

	if !names[c.Scenario.Anchor.Type] {
		return fmt.Errorf("anchor type %q is not declared", c.Scenario.Anchor.Type)
	}
	for _, s := range c.Scenario.Spawn {
		if !names[s.Type] {
			return fmt.Errorf("spawn type %q is not declared", s.Type)
		}
		if s.Count < 0 {
			return fmt.Errorf("spawn %q: count must not be negative", s.Type)
		}
	}
	return nil
}

// Definitions converts the declared types.
func (c *Config) Definitions() ([]unittype.Definition, error) {
	defs := make([]unittype.Definition, 0, len(c.Types))
	for i := range c.Types {
		d, err := c.Types[i].definition()
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", c.Types[i].Name, err)
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// RootDefinition returns the data for the built-in root type, if any was given.
func (c *Config) RootDefinition() (*unittype.Definition, error) {
	if c.Root == nil {
		return nil, nil
	}
	d, err := c.Root.definition()
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	return &d, nil
}

// ChunkArea returns the loaded chunk rectangle.
func (t TerrainConfig) ChunkArea() (from, to coord.ChunkCoord) {
	return coord.ChunkCoord{NE: t.From[0], SE: t.From[1]}, coord.ChunkCoord{NE: t.To[0], SE: t.To[1]}
}

func (tc *TypeConfig) definition() (unittype.Definition, error) {
	d := unittype.Definition{
		Name:      tc.Name,
		ID:        tc.ID,
		ParentID:  tc.Parent,
		Size:      coord.TileDelta{NE: tc.Size[0], SE: tc.Size[1]},
		HaveLimit: limit(tc.Limits.Have),
		HadLimit:  limit(tc.Limits.Had),
	}

	for _, name := range tc.Abilities {
		k, ok := ability.ParseKind(name)
		if !ok {
			return d, fmt.Errorf("unknown ability %q", name)
		}
		d.Abilities = append(d.Abilities, k)
	}

	for _, a := range tc.Attributes {
		k, ok := attribute.ParseKind(a.Kind)
		if !ok {
			return d, fmt.Errorf("unknown attribute %q", a.Kind)
		}
		d.Attributes = append(d.Attributes, unittype.AttributeDef{Kind: k, Shared: a.Shared, Value: a.Value})
	}

	if len(tc.Graphics) > 0 {
		d.Graphics = make(map[unittype.GraphicKind]*unittype.Texture, len(tc.Graphics))
		for slot, name := range tc.Graphics {
			kind, ok := graphicNames[slot]
			if !ok {
				return d, fmt.Errorf("unknown graphic slot %q", slot)
			}
			d.Graphics[kind] = &unittype.Texture{Name: name, Frames: 1}
		}
	}
	return d, nil
}

func limit(n *int) unittype.Limit {
	if n == nil {
		return unittype.Unbounded()
	}
	return unittype.Bounded(*n)
}
