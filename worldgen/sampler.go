package worldgen

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Temperature blends a latitude gradient with noise.
const (
	latitudeWeight         = 0.7
	temperatureNoiseWeight = 0.3
)

// SampleResult holds the three normalised fields at one coordinate.
type SampleResult struct {
	LandWater   float64
	Moisture    float64
	Temperature float64
}

// FieldSampler evaluates the land/water, moisture and temperature fields at a
// world coordinate.
type FieldSampler struct {
	width, height float64
	aspect        float64

	landWater   *NoiseField
	moisture    *NoiseField
	temperature *NoiseField
}

// NewFieldSampler creates a sampler for a width×height world. The parameters
// must carry the land/water, moisture and temperature channels respectively.
func NewFieldSampler(width, height int, landWater, moisture, temperature FieldParameters, seed int64, backend Backend) (*FieldSampler, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	want := [...]Channel{ChannelLandWater, ChannelMoisture, ChannelTemperature}
	params := [...]FieldParameters{landWater, moisture, temperature}
	fields := make([]*NoiseField, len(params))
	for i, p := range params {
		if p.Channel != want[i] {
			return nil, fmt.Errorf("field %d: expected channel %v, got %v", i, want[i], p.Channel)
		}
		f, err := NewNoiseField(p, seed, backend)
		if err != nil {
			return nil, fmt.Errorf("create %v field: %w", want[i], err)
		}
		fields[i] = f
	}
	return &FieldSampler{
		width:       float64(width),
		height:      float64(height),
		aspect:      float64(width) / float64(height),
		landWater:   fields[0],
		moisture:    fields[1],
		temperature: fields[2],
	}, nil
}

// Sample returns the fields at a world coordinate. Coordinates outside the
// world extrapolate smoothly.
func (s *FieldSampler) Sample(worldX, worldY float64) SampleResult {
	// Centred, aspect-corrected so features stay isotropic.
	nx := (worldX/s.width - 0.5) * 2 * s.aspect
	ny := (worldY/s.height - 0.5) * 2

	tNoise := normalise(s.temperature.Sample(nx, ny))
	latitude := 1 - worldY/s.height

	return SampleResult{
		LandWater:   normalise(s.landWater.Sample(nx, ny)),
		Moisture:    normalise(s.moisture.Sample(nx, ny)),
		Temperature: clamp(latitude*latitudeWeight+tNoise*temperatureNoiseWeight, 0, 1),
	}
}

// normalise maps raw noise in [-1, 1] to [0, 1].
func normalise(raw float64) float64 {
	return clamp((raw+1)/2, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return mgl64.Clamp(v, lo, hi)
}
