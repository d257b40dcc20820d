package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"biomemap/render"
	"biomemap/worldgen"
)

// Pool sizes
const (
	MaxNotifications = 8
)

// Hover is the world location under the cursor.
type Hover struct {
	Biome  worldgen.Biome
	Sample worldgen.SampleResult
	X, Y   float64
}

// UI HUD
type UI struct {
	// Progress anim
	displayProgress float64

	// Biome under cursor
	hover        *Hover
	currentBiome string
	biomeTimer   int

	// Notifications
	notifications     [MaxNotifications]Notification
	activeNotifyCount int
}

type Notification struct {
	Text   string
	Timer  int
	Active bool // Pool
}

func NewUI() *UI {
	return &UI{}
}

func (ui *UI) Update(progress float64, hover *Hover) {
	// Smooth progress bar
	ui.displayProgress += (progress - ui.displayProgress) * 0.2
	if progress < ui.displayProgress {
		ui.displayProgress = progress
	}

	ui.hover = hover
	name := ""
	if hover != nil {
		name = hover.Biome.Name
	}
	if name != ui.currentBiome {
		ui.currentBiome = name
		ui.biomeTimer = 0
	}
	ui.biomeTimer++

	for i := 0; i < ui.activeNotifyCount; i++ {
		n := &ui.notifications[i]
		if !n.Active {
			continue
		}
		n.Timer--
		if n.Timer <= 0 {
			n.Active = false
		}
	}
}

func (ui *UI) AddNotification(notificationText string) {
	n := Notification{Text: notificationText, Timer: 180, Active: true}
	if ui.activeNotifyCount < MaxNotifications {
		ui.notifications[ui.activeNotifyCount] = n
		ui.activeNotifyCount++
	} else {
		// Overwrite oldest
		ui.notifications[0] = n
	}
}

func (ui *UI) Draw(screen *ebiten.Image, state ViewState, catalog *worldgen.Catalog, showLegend bool) {
	face := basicfont.Face7x13

	if state == StateRendering {
		ui.drawProgressBar(screen, face)
	}
	if ui.hover != nil {
		ui.drawBiomeIndicator(screen, face)
	}
	if showLegend {
		ui.drawLegend(screen, catalog, face)
	}
	ui.drawNotifications(screen, face)
	ui.drawControlsHint(screen, face)
}

func (ui *UI) drawProgressBar(screen *ebiten.Image, face font.Face) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	barW, barH := 320.0, 24.0
	barX := float64(sw)/2 - barW/2
	barY := float64(sh)/2 - barH/2

	vector.DrawFilledRect(screen, float32(barX-2), float32(barY-2), float32(barW+4), float32(barH+4), color.RGBA{0, 0, 0, 200}, false)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW), float32(barH), color.RGBA{20, 20, 40, 255}, false)

	pct := min(max(ui.displayProgress, 0), 1)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW*pct), float32(barH), color.RGBA{80, 140, 220, 255}, false)

	// Segments
	segmentWidth := barW / 20
	for i := 1; i < 20; i++ {
		x := barX + float64(i)*segmentWidth
		vector.StrokeLine(screen, float32(x), float32(barY), float32(x), float32(barY+barH), 1, color.RGBA{0, 0, 0, 100}, false)
	}
	vector.StrokeRect(screen, float32(barX), float32(barY), float32(barW), float32(barH), 2, color.RGBA{200, 200, 200, 255}, false)

	drawScaledText(screen, "GENERATING", sw/2, int(barY)-12, 2, face, color.RGBA{200, 220, 255, 255})
	label := fmt.Sprintf("%d%%", int(pct*100))
	text.Draw(screen, label, face, int(barX+barW/2)-len(label)*7/2, int(barY+barH/2)+5, color.White)
}

func (ui *UI) drawBiomeIndicator(screen *ebiten.Image, face font.Face) {
	// Fade in
	alpha := min(255, ui.biomeTimer*255/15)

	h := ui.hover
	lines := []string{
		"~ " + render.DisplayName(h.Biome) + " ~",
		fmt.Sprintf("x %.2f  y %.2f", h.X, h.Y),
		fmt.Sprintf("land %.2f  moist %.2f  temp %.2f", h.Sample.LandWater, h.Sample.Moisture, h.Sample.Temperature),
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*7)
	}
	x, y := 20, 30

	vector.DrawFilledRect(screen, float32(x-10), float32(y-18), float32(width+40), float32(len(lines)*16+12), color.RGBA{0, 0, 0, uint8(alpha / 2)}, false)

	// Biome swatch
	c := h.Biome.Color
	c.A = uint8(alpha)
	vector.DrawFilledRect(screen, float32(x), float32(y-10), 10, 10, c, false)
	vector.StrokeRect(screen, float32(x), float32(y-10), 10, 10, 1, color.RGBA{255, 255, 255, uint8(alpha)}, false)

	for i, l := range lines {
		clr := color.RGBA{200, 200, 200, uint8(alpha)}
		if i == 0 {
			clr = color.RGBA{255, 255, 255, uint8(alpha)}
		}
		text.Draw(screen, l, face, x+18, y+i*16, clr)
	}
}

func (ui *UI) drawLegend(screen *ebiten.Image, catalog *worldgen.Catalog, face font.Face) {
	biomes := catalog.Biomes()
	x := screen.Bounds().Dx() - 200
	y := 30

	vector.DrawFilledRect(screen, float32(x-10), float32(y-20), 190, float32(len(biomes)*18+16), color.RGBA{0, 0, 0, 170}, false)
	vector.StrokeRect(screen, float32(x-10), float32(y-20), 190, float32(len(biomes)*18+16), 1, color.RGBA{100, 100, 100, 200}, false)

	for i, b := range biomes {
		rowY := y + i*18
		vector.DrawFilledRect(screen, float32(x), float32(rowY-10), 12, 12, b.Color, false)
		label := string(b.Symbol) + "  " + render.DisplayName(b)
		if b.Bounds != nil {
			label += fmt.Sprintf(" %.2f-%.2f", b.Bounds.Min, b.Bounds.Max)
		}
		text.Draw(screen, label, face, x+20, rowY, color.White)
	}
}

func (ui *UI) drawNotifications(screen *ebiten.Image, face font.Face) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	startY := sh - 60
	drawnCount := 0
	for i := 0; i < ui.activeNotifyCount; i++ {
		n := &ui.notifications[i]
		if !n.Active {
			continue
		}

		y := startY - drawnCount*20
		drawnCount++

		// Fade out
		alpha := 255
		if n.Timer < 30 {
			alpha = n.Timer * 255 / 30
		}

		textWidth := len(n.Text) * 7
		x := sw/2 - textWidth/2
		vector.DrawFilledRect(screen, float32(x-6), float32(y-13), float32(textWidth+12), 18, color.RGBA{0, 0, 0, uint8(alpha / 2)}, false)
		text.Draw(screen, n.Text, face, x, y, color.RGBA{255, 255, 200, uint8(alpha)})
	}
}

func (ui *UI) drawControlsHint(screen *ebiten.Image, face font.Face) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	hints := "R: Re-render | N: New seed | L: Legend | Arrows: Pan | F1: Debug | ESC: Quit"
	textWidth := len(hints) * 7
	x := sw/2 - textWidth/2
	y := sh - 12

	vector.DrawFilledRect(screen, 0, float32(y-14), float32(sw), 20, color.RGBA{0, 0, 0, 120}, false)
	text.Draw(screen, hints, face, x, y, color.RGBA{180, 180, 180, 200})
}
