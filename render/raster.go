package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"biomemap/worldgen"
)

// Source resamples a world at real-valued coordinates. *worldgen.World
// implements it.
type Source interface {
	BiomeAt(x, y float64) worldgen.BiomeID
	Width() int
	Height() int
	Catalog() *worldgen.Catalog
}

// Raster renders a Source at CellSize pixels per cell. Every pixel is
// resampled, so boundaries stay smooth at any upscale factor.
type Raster struct {
	src      Source
	cellSize int
	palette  map[worldgen.BiomeID]color.RGBA
}

// NewRaster creates a raster renderer for src.
func NewRaster(src Source, cellSize int) (*Raster, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("cell size must be at least 1, got %d", cellSize)
	}
	palette := make(map[worldgen.BiomeID]color.RGBA)
	for _, b := range src.Catalog().Biomes() {
		palette[b.ID] = b.Color
	}
	return &Raster{src: src, cellSize: cellSize, palette: palette}, nil
}

// Bounds returns the bounds of the rendered image.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.src.Width()*r.cellSize, r.src.Height()*r.cellSize)
}

// CellSize returns the number of pixels per cell.
func (r *Raster) CellSize() int {
	return r.cellSize
}

// WorldPos converts a pixel position to world coordinates.
func (r *Raster) WorldPos(px, py int) (x, y float64) {
	return float64(px) / float64(r.cellSize), float64(py) / float64(r.cellSize)
}

// DrawRow renders pixel row py into img.
func (r *Raster) DrawRow(img *image.RGBA, py int) {
	b := img.Bounds()
	for px := b.Min.X; px < b.Max.X; px++ {
		img.SetRGBA(px, py, r.palette[r.src.BiomeAt(r.WorldPos(px, py))])
	}
}

// Image renders the full image. progress, if not nil, is called after every
// row. ctx is checked between rows.
func (r *Raster) Image(ctx context.Context, progress func(row, rows int)) (*image.RGBA, error) {
	img := image.NewRGBA(r.Bounds())
	rows := img.Bounds().Dy()
	for py := 0; py < rows; py++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.DrawRow(img, py)
		if progress != nil {
			progress(py+1, rows)
		}
	}
	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
