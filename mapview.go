package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"biomemap/render"
	"biomemap/worldgen"
)

// Pixels rendered per tick while the map is being built.
const pixelsPerTick = 48000

// MapView renders a world progressively, a few pixel rows per tick, and
// draws it through a camera.
type MapView struct {
	world  *worldgen.World
	raster *render.Raster

	pixels  *image.RGBA
	img     *ebiten.Image
	nextRow int

	rowsPerTick int
	DrawOpts    *ebiten.DrawImageOptions
}

func NewMapView(w *worldgen.World, cellSize int) (*MapView, error) {
	r, err := render.NewRaster(w, cellSize)
	if err != nil {
		return nil, err
	}
	bounds := r.Bounds()
	mv := &MapView{
		world:    w,
		raster:   r,
		pixels:   image.NewRGBA(bounds),
		img:      ebiten.NewImage(bounds.Dx(), bounds.Dy()),
		DrawOpts: &ebiten.DrawImageOptions{},
	}
	mv.rowsPerTick = max(1, pixelsPerTick/max(1, bounds.Dx()))
	return mv, nil
}

// Restart renders the map again from the first row.
func (mv *MapView) Restart() {
	mv.nextRow = 0
}

// Step renders the next batch of rows. It reports whether the map is
// complete.
func (mv *MapView) Step() bool {
	rows := mv.pixels.Bounds().Dy()
	if mv.nextRow >= rows {
		return true
	}
	end := min(rows, mv.nextRow+mv.rowsPerTick)
	for py := mv.nextRow; py < end; py++ {
		mv.raster.DrawRow(mv.pixels, py)
	}
	mv.nextRow = end
	mv.img.WritePixels(mv.pixels.Pix)
	return mv.nextRow >= rows
}

// Progress returns the rendered fraction in [0, 1].
func (mv *MapView) Progress() float64 {
	return float64(mv.nextRow) / float64(mv.pixels.Bounds().Dy())
}

func (mv *MapView) Width() int  { return mv.pixels.Bounds().Dx() }
func (mv *MapView) Height() int { return mv.pixels.Bounds().Dy() }

func (mv *MapView) Draw(screen *ebiten.Image, camX, camY float64) {
	mv.DrawOpts.GeoM.Reset()
	mv.DrawOpts.GeoM.Translate(-camX, -camY)
	screen.DrawImage(mv.img, mv.DrawOpts)
}

// CellAt samples the world under a map pixel. Pixels outside the map report
// false.
func (mv *MapView) CellAt(px, py int) (worldgen.Cell, float64, float64, bool) {
	if px < 0 || px >= mv.Width() || py < 0 || py >= mv.Height() {
		return worldgen.Cell{}, 0, 0, false
	}
	x, y := mv.raster.WorldPos(px, py)
	return mv.world.Cell(x, y), x, y, true
}
