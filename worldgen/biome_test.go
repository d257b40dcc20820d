package worldgen

import "testing"

func TestDefaultCatalogComplete(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != int(biomeCount) {
		t.Fatalf("default catalog has %d biomes, want %d", c.Len(), biomeCount)
	}
	symbols := map[rune]BiomeID{}
	for _, b := range c.Biomes() {
		if b.Name != b.ID.String() {
			t.Errorf("biome %v has name %q", b.ID, b.Name)
		}
		if other, ok := symbols[b.Symbol]; ok {
			t.Errorf("biomes %v and %v share symbol %q", b.ID, other, b.Symbol)
		}
		symbols[b.Symbol] = b.ID
		if b.Color.A != 255 {
			t.Errorf("biome %v colour is not opaque", b.ID)
		}
	}
}

func TestWaterBounds(t *testing.T) {
	c := DefaultCatalog()
	for _, id := range []BiomeID{DeepWater, ShallowWater} {
		if c.Biome(id).Bounds == nil {
			t.Errorf("%v has no bounds", id)
		}
	}
	if c.Biome(Plains).Bounds != nil {
		t.Error("PLAINS should not carry bounds")
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	if _, err := NewCatalog(BiomeBeach, BiomeBeach); err == nil {
		t.Error("expected error for duplicate id")
	}
	renamed := BiomeForest
	renamed.Name = "BEACH"
	if _, err := NewCatalog(BiomeBeach, renamed); err == nil {
		t.Error("expected error for duplicate name")
	}
	unknown := BiomeBeach
	unknown.ID = biomeCount
	if _, err := NewCatalog(unknown); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestCatalogCopiesBounds(t *testing.T) {
	b := BiomeDeepWater
	b.Bounds = &Bounds{Min: 0, Max: 0.25}
	c, err := NewCatalog(b)
	if err != nil {
		t.Fatal(err)
	}
	b.Bounds.Max = 0.9
	if got := c.Biome(DeepWater).Bounds.Max; got != 0.25 {
		t.Errorf("catalog bounds changed with caller's value: %v", got)
	}
}

func TestParseBiomeID(t *testing.T) {
	for id := BiomeID(0); id < biomeCount; id++ {
		got, ok := ParseBiomeID(id.String())
		if !ok || got != id {
			t.Errorf("ParseBiomeID(%q) = %v, %v", id.String(), got, ok)
		}
	}
	if _, ok := ParseBiomeID("TUNDRA"); ok {
		t.Error("ParseBiomeID accepted unknown name")
	}
}
