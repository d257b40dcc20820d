package worldgen

import (
	"fmt"
	"image/color"
)

// BiomeID is the compact identifier of a biome. The classifier returns IDs
// and renderers resolve them through a Catalog.
type BiomeID uint8

const (
	DeepWater BiomeID = iota
	ShallowWater
	Beach
	Plains
	Forest
	Desert
	Savanna
	Jungle
	SnowyPlain

	biomeCount
)

var biomeNames = [biomeCount]string{
	DeepWater:    "DEEP_WATER",
	ShallowWater: "SHALLOW_WATER",
	Beach:        "BEACH",
	Plains:       "PLAINS",
	Forest:       "FOREST",
	Desert:       "DESERT",
	Savanna:      "SAVANNA",
	Jungle:       "JUNGLE",
	SnowyPlain:   "SNOWY_PLAIN",
}

func (id BiomeID) String() string {
	if id >= biomeCount {
		return fmt.Sprintf("BiomeID(%d)", uint8(id))
	}
	return biomeNames[id]
}

// ParseBiomeID looks up a biome by its catalog name, e.g. "DEEP_WATER".
func ParseBiomeID(name string) (BiomeID, bool) {
	for id, n := range biomeNames {
		if n == name {
			return BiomeID(id), true
		}
	}
	return 0, false
}

// Bounds is a land/water value range. Only the water biomes carry one.
type Bounds struct {
	Min, Max float64
}

// Biome describes how a biome is displayed.
type Biome struct {
	ID     BiomeID
	Name   string
	Symbol rune
	// ANSI is the escape sequence used by colour terminals.
	ANSI   string
	Color  color.RGBA
	Bounds *Bounds
}

// Default biomes. Colours are muted so large regions stay readable.
var (
	BiomeDeepWater = Biome{
		ID: DeepWater, Name: "DEEP_WATER", Symbol: '~', ANSI: "\033[34m",
		Color:  color.RGBA{0, 0, 70, 255},
		Bounds: &Bounds{Min: 0.0, Max: 0.3},
	}
	BiomeShallowWater = Biome{
		ID: ShallowWater, Name: "SHALLOW_WATER", Symbol: 's', ANSI: "\033[94m",
		Color:  color.RGBA{30, 60, 150, 255},
		Bounds: &Bounds{Min: 0.3, Max: 0.45},
	}
	BiomeBeach = Biome{
		ID: Beach, Name: "BEACH", Symbol: '_', ANSI: "\033[93m",
		Color: color.RGBA{210, 190, 110, 255},
	}
	BiomePlains = Biome{
		ID: Plains, Name: "PLAINS", Symbol: '.', ANSI: "\033[32m",
		Color: color.RGBA{50, 110, 50, 255},
	}
	BiomeForest = Biome{
		ID: Forest, Name: "FOREST", Symbol: 'F', ANSI: "\033[92m",
		Color: color.RGBA{20, 80, 20, 255},
	}
	BiomeDesert = Biome{
		ID: Desert, Name: "DESERT", Symbol: 'D', ANSI: "\033[33m",
		Color: color.RGBA{200, 140, 80, 255},
	}
	BiomeSavanna = Biome{
		ID: Savanna, Name: "SAVANNA", Symbol: 'S', ANSI: "\033[92m",
		Color: color.RGBA{150, 150, 90, 255},
	}
	BiomeJungle = Biome{
		ID: Jungle, Name: "JUNGLE", Symbol: 'J', ANSI: "\033[32m",
		Color: color.RGBA{30, 100, 30, 255},
	}
	BiomeSnowyPlain = Biome{
		ID: SnowyPlain, Name: "SNOWY_PLAIN", Symbol: '*', ANSI: "\033[97m",
		Color: color.RGBA{220, 220, 230, 255},
	}
)

// Catalog is a read-only table of biome descriptors indexed by BiomeID.
type Catalog struct {
	biomes [biomeCount]*Biome
	order  []BiomeID
}

// NewCatalog builds a catalog from the biomes passed, keeping their order for
// legends. Duplicate IDs or names and unknown IDs are rejected.
func NewCatalog(biomes ...Biome) (*Catalog, error) {
	c := &Catalog{order: make([]BiomeID, 0, len(biomes))}
	names := make(map[string]struct{}, len(biomes))
	for _, b := range biomes {
		if b.ID >= biomeCount {
			return nil, fmt.Errorf("biome %q: unknown id %d", b.Name, b.ID)
		}
		if b.Name == "" {
			return nil, fmt.Errorf("biome %v: empty name", b.ID)
		}
		if c.biomes[b.ID] != nil {
			return nil, fmt.Errorf("biome %v: declared twice", b.ID)
		}
		if _, ok := names[b.Name]; ok {
			return nil, fmt.Errorf("biome name %q: declared twice", b.Name)
		}
		names[b.Name] = struct{}{}

		b := b
		if b.Bounds != nil {
			bounds := *b.Bounds
			b.Bounds = &bounds
		}
		c.biomes[b.ID] = &b
		c.order = append(c.order, b.ID)
	}
	return c, nil
}

// DefaultCatalog returns a catalog holding every default biome.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		BiomeDeepWater,
		BiomeShallowWater,
		BiomeBeach,
		BiomePlains,
		BiomeForest,
		BiomeDesert,
		BiomeSavanna,
		BiomeJungle,
		BiomeSnowyPlain,
	)
	if err != nil {
		panic("should never happen: " + err.Error())
	}
	return c
}

// Lookup returns the descriptor of id, if the catalog holds it.
func (c *Catalog) Lookup(id BiomeID) (Biome, bool) {
	if id >= biomeCount || c.biomes[id] == nil {
		return Biome{}, false
	}
	return *c.biomes[id], true
}

// Biome returns the descriptor of id. It panics if the catalog does not hold
// it, which a World never allows to happen for classified IDs.
func (c *Catalog) Biome(id BiomeID) Biome {
	b, ok := c.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("catalog: no biome %v", id))
	}
	return b
}

// Biomes returns the descriptors in declaration order.
func (c *Catalog) Biomes() []Biome {
	out := make([]Biome, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.biomes[id])
	}
	return out
}

// Len returns the number of biomes in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}
