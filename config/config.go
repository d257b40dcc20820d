// Package config loads biomemap configuration files.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml"

	"biomemap/worldgen"
)

// UserConfig is the user-facing configuration, stored as TOML.
type UserConfig struct {
	World struct {
		// Width and Height are the map dimensions in cells.
		Width  int `toml:"width"`
		Height int `toml:"height"`
		// Seed seeds the noise fields. 0 picks a random seed on every run.
		Seed int64 `toml:"seed"`
		// Backend is the noise primitive: "perlin" or "simplex".
		Backend string `toml:"backend"`
	} `toml:"world"`
	Render struct {
		// CellSize is the number of pixels per cell in raster output.
		CellSize int `toml:"cell_size"`
		// Plain disables ANSI colours in console output.
		Plain bool `toml:"plain"`
	} `toml:"render"`
	LandWater   Field `toml:"land_water"`
	Moisture    Field `toml:"moisture"`
	Temperature Field `toml:"temperature"`
	Thresholds  struct {
		LandWater    float64 `toml:"land_water"`
		BeachLow     float64 `toml:"beach_low"`
		BeachHigh    float64 `toml:"beach_high"`
		DeepWaterMax float64 `toml:"deep_water_max"`
	} `toml:"thresholds"`
	// Biomes overrides the biome catalog. If empty, the default catalog is
	// used. Every biome the classifier can produce must be listed.
	Biomes []Biome `toml:"biome,omitempty"`
}

// Field configures one noise field.
type Field struct {
	Scale       float64 `toml:"scale"`
	Octaves     int     `toml:"octaves"`
	Persistence float64 `toml:"persistence"`
	Lacunarity  float64 `toml:"lacunarity"`
	// Offset pins the field offset as [x, y]. If empty, it is derived from
	// the seed.
	Offset []float64 `toml:"offset,omitempty"`
}

// Biome is a catalog entry.
type Biome struct {
	Name   string `toml:"name"`
	Symbol string `toml:"symbol"`
	ANSI   string `toml:"ansi"`
	// Color is an RGB triple.
	Color []int    `toml:"color"`
	Min   *float64 `toml:"min,omitempty"`
	Max   *float64 `toml:"max,omitempty"`
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	def := worldgen.DefaultConfig(0)
	c := UserConfig{}
	c.World.Width = def.Width
	c.World.Height = def.Height
	c.World.Seed = 0
	c.World.Backend = string(worldgen.BackendPerlin)
	c.Render.CellSize = 10
	c.LandWater = fieldFrom(def.LandWater)
	c.Moisture = fieldFrom(def.Moisture)
	c.Temperature = fieldFrom(def.Temperature)
	c.Thresholds.LandWater = def.Thresholds.LandWater
	c.Thresholds.BeachLow = def.Thresholds.BeachLow
	c.Thresholds.BeachHigh = def.Thresholds.BeachHigh
	return c
}

func fieldFrom(p worldgen.FieldParameters) Field {
	return Field{Scale: p.Scale, Octaves: p.Octaves, Persistence: p.Persistence, Lacunarity: p.Lacunarity}
}

// Load reads the configuration at path. If the file does not exist, the
// default configuration is written to it and returned.
func Load(path string) (UserConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		c := DefaultConfig()
		if err := Write(path, c); err != nil {
			return c, err
		}
		return c, nil
	}
	return Read(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Read decodes the configuration file name in fsys. Keys missing from the
// file keep their default values.
func Read(fsys fs.FS, name string) (UserConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return UserConfig{}, fmt.Errorf("read config: %w", err)
	}
	return Decode(data)
}

// Decode decodes TOML configuration data. Keys missing from data keep their
// default values.
func Decode(data []byte) (UserConfig, error) {
	c := UserConfig{}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	c.fillDefaults(DefaultConfig())
	return c, nil
}

// Write encodes c to path, creating its directory if needed.
func Write(path string, c UserConfig) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *UserConfig) fillDefaults(def UserConfig) {
	if c.World.Width == 0 {
		c.World.Width = def.World.Width
	}
	if c.World.Height == 0 {
		c.World.Height = def.World.Height
	}
	if c.Render.CellSize == 0 {
		c.Render.CellSize = def.Render.CellSize
	}
	c.LandWater.fillDefaults(def.LandWater)
	c.Moisture.fillDefaults(def.Moisture)
	c.Temperature.fillDefaults(def.Temperature)
	if c.Thresholds.LandWater == 0 {
		c.Thresholds.LandWater = def.Thresholds.LandWater
	}
	if c.Thresholds.BeachLow == 0 {
		c.Thresholds.BeachLow = def.Thresholds.BeachLow
	}
	if c.Thresholds.BeachHigh == 0 {
		c.Thresholds.BeachHigh = def.Thresholds.BeachHigh
	}
}

func (f *Field) fillDefaults(def Field) {
	if f.Scale == 0 {
		f.Scale = def.Scale
	}
	if f.Octaves == 0 {
		f.Octaves = def.Octaves
	}
	if f.Persistence == 0 {
		f.Persistence = def.Persistence
	}
	if f.Lacunarity == 0 {
		f.Lacunarity = def.Lacunarity
	}
}

// Config converts a UserConfig to a worldgen.Config. A seed of 0 is replaced
// by a random one. An error is returned for invalid offsets or biome entries;
// a catalog missing a biome is reported by worldgen.Config.New.
func (uc UserConfig) Config(log *slog.Logger) (worldgen.Config, error) {
	if log == nil {
		log = slog.Default()
	}
	seed := uc.World.Seed
	if seed == 0 {
		seed = worldgen.NewSeed()
	}
	conf := worldgen.DefaultConfig(seed)
	conf.Log = log
	conf.Width = uc.World.Width
	conf.Height = uc.World.Height

	backend, ok := worldgen.ParseBackend(strings.TrimSpace(uc.World.Backend))
	if !ok {
		log.Warn("Unknown noise backend, using perlin.", "value", uc.World.Backend)
		backend = worldgen.BackendPerlin
	}
	conf.Backend = backend

	var err error
	if conf.LandWater, err = uc.LandWater.params(conf.LandWater); err != nil {
		return conf, fmt.Errorf("land_water: %w", err)
	}
	if conf.Moisture, err = uc.Moisture.params(conf.Moisture); err != nil {
		return conf, fmt.Errorf("moisture: %w", err)
	}
	if conf.Temperature, err = uc.Temperature.params(conf.Temperature); err != nil {
		return conf, fmt.Errorf("temperature: %w", err)
	}

	conf.Thresholds.LandWater = uc.Thresholds.LandWater
	conf.Thresholds.BeachLow = uc.Thresholds.BeachLow
	conf.Thresholds.BeachHigh = uc.Thresholds.BeachHigh
	conf.Thresholds.DeepWaterMax = uc.Thresholds.DeepWaterMax

	if len(uc.Biomes) > 0 {
		if conf.Catalog, err = catalog(uc.Biomes); err != nil {
			return conf, err
		}
	}
	return conf, nil
}

// params applies f on top of p, which carries the channel and the offset
// derived from the seed.
func (f Field) params(p worldgen.FieldParameters) (worldgen.FieldParameters, error) {
	p.Scale = f.Scale
	p.Octaves = f.Octaves
	p.Persistence = f.Persistence
	p.Lacunarity = f.Lacunarity
	switch len(f.Offset) {
	case 0:
	case 2:
		p.Offset = mgl64.Vec2{f.Offset[0], f.Offset[1]}
	default:
		return p, fmt.Errorf("offset must have 2 components, got %d", len(f.Offset))
	}
	return p, nil
}

func catalog(entries []Biome) (*worldgen.Catalog, error) {
	biomes := make([]worldgen.Biome, 0, len(entries))
	for _, e := range entries {
		b, err := e.biome()
		if err != nil {
			return nil, err
		}
		biomes = append(biomes, b)
	}
	c, err := worldgen.NewCatalog(biomes...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return c, nil
}

func (e Biome) biome() (worldgen.Biome, error) {
	name := strings.ToUpper(strings.TrimSpace(e.Name))
	id, ok := worldgen.ParseBiomeID(name)
	if !ok {
		return worldgen.Biome{}, fmt.Errorf("biome %q: unknown name", e.Name)
	}
	symbol := []rune(e.Symbol)
	if len(symbol) != 1 {
		return worldgen.Biome{}, fmt.Errorf("biome %s: symbol must be a single character, got %q", name, e.Symbol)
	}
	if len(e.Color) != 3 {
		return worldgen.Biome{}, fmt.Errorf("biome %s: color must be an RGB triple", name)
	}
	var rgb [3]uint8
	for i, v := range e.Color {
		if v < 0 || v > 255 {
			return worldgen.Biome{}, fmt.Errorf("biome %s: color component %d out of range", name, v)
		}
		rgb[i] = uint8(v)
	}
	b := worldgen.Biome{
		ID:     id,
		Name:   name,
		Symbol: symbol[0],
		ANSI:   e.ANSI,
		Color:  color.RGBA{rgb[0], rgb[1], rgb[2], 255},
	}
	if e.Min != nil || e.Max != nil {
		if e.Min == nil || e.Max == nil {
			return worldgen.Biome{}, fmt.Errorf("biome %s: min and max must be set together", name)
		}
		b.Bounds = &worldgen.Bounds{Min: *e.Min, Max: *e.Max}
	}
	return b, nil
}
