package worldgen

import (
	"errors"
	"fmt"
)

// ErrMissingBiome is returned when a catalog lacks a biome the classifier can
// produce.
var ErrMissingBiome = errors.New("catalog is missing a biome")

// Thresholds are the boundaries used by the Classifier. All comparisons are
// half-open exactly as documented on Classify.
type Thresholds struct {
	LandWater float64
	BeachLow  float64
	BeachHigh float64
	// DeepWaterMax separates deep from shallow water. Zero means the upper
	// bound of the catalog's DEEP_WATER entry.
	DeepWaterMax float64

	SnowTemperatureMax    float64
	DesertMoistureMax     float64
	SavannaMoistureMax    float64
	SavannaTemperatureMin float64
	JungleMoistureMin     float64
	JungleTemperatureMin  float64
	ForestMoistureMin     float64
}

// DefaultThresholds returns the stock thresholds. The beach band straddles
// the land/water threshold.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LandWater: 0.40,
		BeachLow:  0.38,
		BeachHigh: 0.42,

		SnowTemperatureMax:    0.3,
		DesertMoistureMax:     0.2,
		SavannaMoistureMax:    0.4,
		SavannaTemperatureMin: 0.6,
		JungleMoistureMin:     0.7,
		JungleTemperatureMin:  0.5,
		ForestMoistureMin:     0.5,
	}
}

// classifiable lists every biome Classify can return.
var classifiable = [...]BiomeID{
	Beach, DeepWater, ShallowWater,
	SnowyPlain, Desert, Savanna, Jungle, Forest, Plains,
}

// Classifier maps normalised field values to biomes.
type Classifier struct {
	t Thresholds
}

// NewClassifier checks that c holds every biome the rules can produce and
// resolves the deep water boundary.
func NewClassifier(t Thresholds, c *Catalog) (*Classifier, error) {
	for _, id := range classifiable {
		if _, ok := c.Lookup(id); !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingBiome, id)
		}
	}
	if t.DeepWaterMax == 0 {
		deep := c.Biome(DeepWater)
		if deep.Bounds == nil {
			return nil, fmt.Errorf("%v has no bounds and no deep water threshold is set", DeepWater)
		}
		t.DeepWaterMax = deep.Bounds.Max
	}
	if !(t.BeachLow < t.BeachHigh) {
		return nil, fmt.Errorf("beach band [%v, %v) is empty", t.BeachLow, t.BeachHigh)
	}
	return &Classifier{t: t}, nil
}

// Thresholds returns the resolved thresholds.
func (c *Classifier) Thresholds() Thresholds {
	return c.t
}

// Classify returns the biome for a set of normalised values. Rules are tried
// in order and the first match wins:
//
//	BeachLow <= lw < BeachHigh            BEACH
//	lw < LandWater, lw < DeepWaterMax     DEEP_WATER
//	lw < LandWater                        SHALLOW_WATER
//	t < 0.3                               SNOWY_PLAIN
//	m < 0.2                               DESERT
//	m < 0.4 and t > 0.6                   SAVANNA
//	m > 0.7 and t > 0.5                   JUNGLE
//	m > 0.5                               FOREST
//	otherwise                             PLAINS
func (c *Classifier) Classify(landWater, moisture, temperature float64) BiomeID {
	t := c.t
	if t.BeachLow <= landWater && landWater < t.BeachHigh {
		return Beach
	}
	if landWater < t.LandWater {
		if landWater < t.DeepWaterMax {
			return DeepWater
		}
		return ShallowWater
	}

	switch {
	case temperature < t.SnowTemperatureMax:
		return SnowyPlain
	case moisture < t.DesertMoistureMax:
		return Desert
	case moisture < t.SavannaMoistureMax && temperature > t.SavannaTemperatureMin:
		return Savanna
	case moisture > t.JungleMoistureMin && temperature > t.JungleTemperatureMin:
		return Jungle
	case moisture > t.ForestMoistureMin:
		return Forest
	default:
		return Plains
	}
}

// ClassifySample is shorthand for Classify on a SampleResult.
func (c *Classifier) ClassifySample(s SampleResult) BiomeID {
	return c.Classify(s.LandWater, s.Moisture, s.Temperature)
}
