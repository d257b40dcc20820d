// Package render draws generated worlds as text or images.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"biomemap/worldgen"
)

const ansiReset = "\033[0m"

// DisplayName turns a catalog name such as "SNOWY_PLAIN" into "Snowy Plain".
func DisplayName(b worldgen.Biome) string {
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(b.Name), "_", " "))
}

// Console writes grids as one symbol per cell.
type Console struct {
	// Plain disables ANSI colours.
	Plain bool
	// Legend appends a legend after the map.
	Legend bool
}

// WriteGrid writes every row of g followed by the legend, if enabled.
func (c Console) WriteGrid(w io.Writer, g *worldgen.Grid, catalog *worldgen.Catalog) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for _, cell := range g.Row(y) {
			c.writeSymbol(bw, catalog.Biome(cell.Biome))
		}
		bw.WriteByte('\n')
	}
	if c.Legend {
		bw.WriteString("\nBiome Legend:\n")
		c.writeLegend(bw, catalog)
	}
	return bw.Flush()
}

// WriteLegend writes one line per catalog biome.
func (c Console) WriteLegend(w io.Writer, catalog *worldgen.Catalog) error {
	bw := bufio.NewWriter(w)
	c.writeLegend(bw, catalog)
	return bw.Flush()
}

func (c Console) writeLegend(bw *bufio.Writer, catalog *worldgen.Catalog) {
	for _, b := range catalog.Biomes() {
		c.writeSymbol(bw, b)
		if b.Bounds != nil {
			fmt.Fprintf(bw, ": %s (LW Noise: %.2f-%.2f)\n", b.Name, b.Bounds.Min, b.Bounds.Max)
		} else {
			fmt.Fprintf(bw, ": %s\n", b.Name)
		}
	}
}

func (c Console) writeSymbol(bw *bufio.Writer, b worldgen.Biome) {
	if c.Plain || b.ANSI == "" {
		bw.WriteRune(b.Symbol)
		return
	}
	bw.WriteString(b.ANSI)
	bw.WriteRune(b.Symbol)
	bw.WriteString(ansiReset)
}
