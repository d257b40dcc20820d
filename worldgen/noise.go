package worldgen

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aquilax/go-perlin"
	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/ojrac/opensimplex-go"
)

// Channel tags one of the three noise fields. Each channel draws its noise
// from its own seed so the surfaces are independent.
type Channel uint8

const (
	ChannelLandWater Channel = iota
	ChannelMoisture
	ChannelTemperature
)

func (c Channel) String() string {
	switch c {
	case ChannelLandWater:
		return "land_water"
	case ChannelMoisture:
		return "moisture"
	case ChannelTemperature:
		return "temperature"
	default:
		return "channel(" + strconv.Itoa(int(c)) + ")"
	}
}

// Backend selects the coherent noise primitive.
type Backend string

const (
	BackendPerlin  Backend = "perlin"
	BackendSimplex Backend = "simplex"
)

// ParseBackend parses a backend name. The empty string selects Perlin noise.
func ParseBackend(s string) (Backend, bool) {
	switch Backend(s) {
	case "", BackendPerlin:
		return BackendPerlin, true
	case BackendSimplex:
		return BackendSimplex, true
	}
	return "", false
}

// FieldParameters configures one noise field for the duration of a run.
type FieldParameters struct {
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	// Offset is added after scaling so fields sharing a primitive and a
	// scale still sample different regions of it.
	Offset  mgl64.Vec2
	Channel Channel
}

func (p FieldParameters) validate() error {
	switch {
	case p.Scale <= 0:
		return fmt.Errorf("%v: scale must be positive, got %v", p.Channel, p.Scale)
	case p.Octaves < 1:
		return fmt.Errorf("%v: octaves must be at least 1, got %d", p.Channel, p.Octaves)
	case p.Persistence <= 0:
		return fmt.Errorf("%v: persistence must be positive, got %v", p.Channel, p.Persistence)
	case p.Lacunarity <= 0:
		return fmt.Errorf("%v: lacunarity must be positive, got %v", p.Channel, p.Lacunarity)
	}
	return nil
}

// DeriveSeed returns the seed a channel uses for its noise primitive.
func DeriveSeed(seed int64, c Channel) int64 {
	return int64(xxhash.Sum64String(strconv.FormatInt(seed, 10) + "/" + c.String()))
}

type noise2D interface {
	Noise2D(x, y float64) float64
}

// NoiseField is one multi-octave noise surface. It is immutable and safe for
// concurrent use.
type NoiseField struct {
	params FieldParameters
	noise  noise2D
}

// NewNoiseField creates the field for p, seeding its primitive from the run
// seed and the channel of p.
func NewNoiseField(p FieldParameters, seed int64, backend Backend) (*NoiseField, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	s := DeriveSeed(seed, p.Channel)

	var n noise2D
	switch backend {
	case BackendPerlin, "":
		// alpha divides the amplitude per octave, beta multiplies the frequency.
		n = perlin.NewPerlin(1/p.Persistence, p.Lacunarity, int32(p.Octaves), s)
	case BackendSimplex:
		n = simplexOctaves{
			noise:       opensimplex.New(s),
			octaves:     p.Octaves,
			persistence: p.Persistence,
			lacunarity:  p.Lacunarity,
		}
	default:
		return nil, errors.New("unknown noise backend " + strconv.Quote(string(backend)))
	}
	return &NoiseField{params: p, noise: n}, nil
}

// Parameters returns the parameters the field was built with.
func (f *NoiseField) Parameters() FieldParameters {
	return f.params
}

// Sample returns the raw noise value at (x, y), bounded to [-1, 1].
func (f *NoiseField) Sample(x, y float64) float64 {
	v := f.noise.Noise2D(x*f.params.Scale+f.params.Offset.X(), y*f.params.Scale+f.params.Offset.Y())
	return clamp(v, -1, 1)
}

// simplexOctaves sums octaves of OpenSimplex noise, normalised by the total
// amplitude.
type simplexOctaves struct {
	noise       opensimplex.Noise
	octaves     int
	persistence float64
	lacunarity  float64
}

func (s simplexOctaves) Noise2D(x, y float64) float64 {
	var total, maxAmplitude float64
	frequency, amplitude := 1.0, 1.0
	for i := 0; i < s.octaves; i++ {
		total += s.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= s.persistence
		frequency *= s.lacunarity
	}
	return total / maxAmplitude
}
