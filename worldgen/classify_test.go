package worldgen

import (
	"errors"
	"testing"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(DefaultThresholds(), DefaultCatalog())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return c
}

func TestClassifyScenarios(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name    string
		lw, m, t float64
		want    BiomeID
	}{
		{"beach band", 0.39, 0.9, 0.9, Beach},
		{"beach band ignores cold", 0.39, 0.1, 0.0, Beach},
		{"deep water", 0.1, 0.5, 0.5, DeepWater},
		{"shallow water", 0.35, 0.5, 0.5, ShallowWater},
		{"snow regardless of moisture", 0.6, 0.9, 0.2, SnowyPlain},
		{"snow when dry", 0.6, 0.1, 0.2, SnowyPlain},
		{"desert", 0.6, 0.1, 0.8, Desert},
		{"savanna", 0.6, 0.3, 0.8, Savanna},
		{"jungle over forest", 0.6, 0.8, 0.8, Jungle},
		{"forest", 0.6, 0.6, 0.4, Forest},
		{"plains default", 0.6, 0.45, 0.8, Plains},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.lw, tt.m, tt.t); got != tt.want {
			t.Errorf("%s: Classify(%v, %v, %v) = %v, want %v", tt.name, tt.lw, tt.m, tt.t, got, tt.want)
		}
	}
}

func TestClassifyBoundaries(t *testing.T) {
	c := newTestClassifier(t)
	th := c.Thresholds()

	if got := c.Classify(th.BeachLow, 0.5, 0.5); got != Beach {
		t.Errorf("landWater == BeachLow: got %v, want BEACH", got)
	}
	if got := c.Classify(th.BeachHigh, 0.5, 0.5); got == Beach {
		t.Errorf("landWater == BeachHigh: got BEACH, want land biome")
	}
	if got := c.Classify(th.DeepWaterMax, 0.5, 0.5); got != ShallowWater {
		t.Errorf("landWater == DeepWaterMax: got %v, want SHALLOW_WATER", got)
	}
	if got := c.Classify(0.6, 0.5, th.SnowTemperatureMax); got == SnowyPlain {
		t.Errorf("temperature == 0.3 should not be snow")
	}
	if got := c.Classify(0.6, 0.2, 0.5); got == Desert {
		t.Errorf("moisture == 0.2 should not be desert")
	}
	// moisture == 0.7 is not jungle, but is forest.
	if got := c.Classify(0.6, 0.7, 0.8); got != Forest {
		t.Errorf("moisture == 0.7: got %v, want FOREST", got)
	}
	// moisture == 0.5 is not forest.
	if got := c.Classify(0.6, 0.5, 0.5); got != Plains {
		t.Errorf("moisture == 0.5: got %v, want PLAINS", got)
	}
}

func TestDeepWaterMaxFromCatalog(t *testing.T) {
	c := newTestClassifier(t)
	if got := c.Thresholds().DeepWaterMax; got != 0.3 {
		t.Errorf("DeepWaterMax = %v, want 0.3 from DEEP_WATER bounds", got)
	}

	th := DefaultThresholds()
	th.DeepWaterMax = 0.2
	c, err := NewClassifier(th, DefaultCatalog())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	if got := c.Classify(0.25, 0.5, 0.5); got != ShallowWater {
		t.Errorf("explicit DeepWaterMax ignored: got %v", got)
	}
}

func TestClassifyTotal(t *testing.T) {
	c := newTestClassifier(t)
	cat := DefaultCatalog()
	const steps = 40
	for i := 0; i <= steps; i++ {
		for j := 0; j <= steps; j++ {
			for k := 0; k <= steps; k++ {
				lw := float64(i) / steps
				m := float64(j) / steps
				temp := float64(k) / steps
				id := c.Classify(lw, m, temp)
				if _, ok := cat.Lookup(id); !ok {
					t.Fatalf("Classify(%v, %v, %v) = %v, not in catalog", lw, m, temp, id)
				}
			}
		}
	}
}

func TestMissingBiomeIsConfigError(t *testing.T) {
	cat, err := NewCatalog(BiomeDeepWater, BiomeShallowWater, BiomeBeach, BiomePlains, BiomeForest, BiomeDesert, BiomeSavanna, BiomeSnowyPlain)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	_, err = NewClassifier(DefaultThresholds(), cat)
	if !errors.Is(err, ErrMissingBiome) {
		t.Fatalf("NewClassifier without JUNGLE: err = %v, want ErrMissingBiome", err)
	}

	conf := DefaultConfig(1)
	conf.Catalog = cat
	if _, err := conf.New(); !errors.Is(err, ErrMissingBiome) {
		t.Fatalf("Config.New without JUNGLE: err = %v, want ErrMissingBiome", err)
	}
}

func TestEmptyBeachBandRejected(t *testing.T) {
	th := DefaultThresholds()
	th.BeachLow, th.BeachHigh = 0.42, 0.38
	if _, err := NewClassifier(th, DefaultCatalog()); err == nil {
		t.Fatal("expected error for inverted beach band")
	}
}
