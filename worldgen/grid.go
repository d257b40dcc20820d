package worldgen

// Cell is the generated record of one grid location.
type Cell struct {
	Biome  BiomeID
	Sample SampleResult
}

// Grid holds the cells of one generation pass in row-major order. A Grid is
// never modified after Generate returns it.
type Grid struct {
	Width, Height int
	Cells         []Cell
}

func newGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, Cells: make([]Cell, width*height)}
}

// At returns the cell at (x, y). It panics if the position is out of range.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		panic("grid: position out of range")
	}
	return g.Cells[y*g.Width+x]
}

// Row returns the cells of row y.
func (g *Grid) Row(y int) []Cell {
	return g.Cells[y*g.Width : (y+1)*g.Width]
}

// Counts returns how many cells each biome covers.
func (g *Grid) Counts() map[BiomeID]int {
	counts := make(map[BiomeID]int)
	for _, c := range g.Cells {
		counts[c.Biome]++
	}
	return counts
}
