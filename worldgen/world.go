package worldgen

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// maxOffset bounds the random field offsets.
const maxOffset = 1000

// Config contains everything needed to assemble a World. A Config is a
// value: regenerating a world means building a new Config, typically with
// WithSeed.
type Config struct {
	// Log is the Logger to use. If nil, Log is set to slog.Default().
	Log *slog.Logger
	// Width and Height are the dimensions of the grid in cells.
	Width, Height int
	// Seed seeds the noise primitives of every field.
	Seed int64
	// Backend selects the noise primitive. The zero value selects Perlin.
	Backend Backend
	// LandWater, Moisture and Temperature configure the three fields. Their
	// Channel must match the field they configure.
	LandWater, Moisture, Temperature FieldParameters
	// Thresholds configures the classifier.
	Thresholds Thresholds
	// Catalog holds the biomes. If nil, DefaultCatalog is used.
	Catalog *Catalog
}

// DefaultConfig returns the stock 100×60 configuration for a seed, with field
// offsets derived from that seed.
func DefaultConfig(seed int64) Config {
	conf := Config{
		Width:   100,
		Height:  60,
		Seed:    seed,
		Backend: BackendPerlin,
		LandWater: FieldParameters{
			Scale: 4, Octaves: 4, Persistence: 0.5, Lacunarity: 2,
			Channel: ChannelLandWater,
		},
		Moisture: FieldParameters{
			Scale: 7, Octaves: 3, Persistence: 0.5, Lacunarity: 2,
			Channel: ChannelMoisture,
		},
		Temperature: FieldParameters{
			Scale: 10, Octaves: 2, Persistence: 0.5, Lacunarity: 2,
			Channel: ChannelTemperature,
		},
		Thresholds: DefaultThresholds(),
	}
	conf.LandWater.Offset, conf.Moisture.Offset, conf.Temperature.Offset = Offsets(seed)
	return conf
}

// WithSeed returns a copy of conf using seed, with every field offset derived
// from it again.
func (conf Config) WithSeed(seed int64) Config {
	conf.Seed = seed
	conf.LandWater.Offset, conf.Moisture.Offset, conf.Temperature.Offset = Offsets(seed)
	return conf
}

// Offsets derives the land/water, moisture and temperature offsets from a
// seed. Each component lies in [0, 1000).
func Offsets(seed int64) (landWater, moisture, temperature mgl64.Vec2) {
	r := rand.New(rand.NewSource(seed))
	next := func() mgl64.Vec2 {
		return mgl64.Vec2{r.Float64() * maxOffset, r.Float64() * maxOffset}
	}
	landWater = next()
	moisture = next()
	temperature = next()
	return
}

// NewSeed returns a random non-zero seed.
func NewSeed() int64 {
	for {
		if s := rand.Int63(); s != 0 {
			return s
		}
	}
}

// New assembles a World from the Config. Every configuration error, such as
// a catalog lacking a biome the classifier needs, is reported here before any
// generation starts.
func (conf Config) New() (*World, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Catalog == nil {
		conf.Catalog = DefaultCatalog()
	}
	sampler, err := NewFieldSampler(conf.Width, conf.Height, conf.LandWater, conf.Moisture, conf.Temperature, conf.Seed, conf.Backend)
	if err != nil {
		return nil, fmt.Errorf("create field sampler: %w", err)
	}
	classifier, err := NewClassifier(conf.Thresholds, conf.Catalog)
	if err != nil {
		return nil, fmt.Errorf("create classifier: %w", err)
	}
	return &World{conf: conf, sampler: sampler, classifier: classifier}, nil
}

// World is an assembled generation pipeline. It is immutable, and both the
// grid generator and the continuous resampler run through the same sampler
// and classifier.
type World struct {
	conf       Config
	sampler    *FieldSampler
	classifier *Classifier
}

// Width returns the width of the world in cells.
func (w *World) Width() int { return w.conf.Width }

// Height returns the height of the world in cells.
func (w *World) Height() int { return w.conf.Height }

// Seed returns the seed the world was built from.
func (w *World) Seed() int64 { return w.conf.Seed }

// Catalog returns the biome catalog.
func (w *World) Catalog() *Catalog { return w.conf.Catalog }

// Config returns the configuration the world was assembled from.
func (w *World) Config() Config { return w.conf }

// Thresholds returns the classifier thresholds after defaults were resolved.
func (w *World) Thresholds() Thresholds { return w.classifier.Thresholds() }

// Sample returns the normalised fields at a real-valued world coordinate.
func (w *World) Sample(x, y float64) SampleResult {
	return w.sampler.Sample(x, y)
}

// BiomeAt classifies a real-valued world coordinate. At integer coordinates
// the result equals the cell of a generated Grid.
func (w *World) BiomeAt(x, y float64) BiomeID {
	return w.classifier.ClassifySample(w.sampler.Sample(x, y))
}

// Cell samples and classifies one coordinate.
func (w *World) Cell(x, y float64) Cell {
	s := w.sampler.Sample(x, y)
	return Cell{Biome: w.classifier.ClassifySample(s), Sample: s}
}

// Generate classifies every cell of the world. ctx is only checked between
// rows: if it is cancelled, Generate returns its error and no grid.
func (w *World) Generate(ctx context.Context) (*Grid, error) {
	start := time.Now()
	g := newGrid(w.conf.Width, w.conf.Height)
	for y := 0; y < g.Height; y++ {
		if err := ctx.Err(); err != nil {
			w.conf.Log.Debug("Generation cancelled.", "row", y, "err", err)
			return nil, err
		}
		row := g.Cells[y*g.Width : (y+1)*g.Width]
		for x := range row {
			row[x] = w.Cell(float64(x), float64(y))
		}
	}
	w.conf.Log.Debug("Generated world.", "width", g.Width, "height", g.Height, "seed", w.conf.Seed, "took", time.Since(start))
	return g, nil
}
