package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"biomemap/worldgen"
)

const (
	MaxScreenWidth  = 1280
	MaxScreenHeight = 720

	// Camera pan per tick
	PanSpeed = 12.0
)

type Viewer struct {
	state ViewState

	conf    worldgen.Config
	world   *worldgen.World
	cell    int
	mapView *MapView
	ui      *UI

	// Camera
	camX, camY float64

	screenW, screenH int

	// Debug
	showLegend bool
	showDebug  bool
}

func NewViewer(conf worldgen.Config, cellSize int) (*Viewer, error) {
	v := &Viewer{conf: conf, cell: cellSize, ui: NewUI(), showLegend: true}
	if err := v.load(conf); err != nil {
		return nil, err
	}
	return v, nil
}

// load builds a world from conf and starts rendering it.
func (v *Viewer) load(conf worldgen.Config) error {
	w, err := conf.New()
	if err != nil {
		return err
	}
	mv, err := NewMapView(w, v.cell)
	if err != nil {
		return err
	}
	v.conf, v.world, v.mapView = w.Config(), w, mv
	v.screenW = min(mv.Width(), MaxScreenWidth)
	v.screenH = min(mv.Height(), MaxScreenHeight)
	v.camX, v.camY = 0, 0
	v.state = StateRendering
	v.conf.Log.Info("Rendering world.", "seed", w.Seed(), "width", w.Width(), "height", w.Height(), "cell_size", v.cell)
	return nil
}

// Update view logic
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch v.state {
	case StateRendering:
		if v.mapView.Step() {
			v.state = StateViewing
			v.ui.AddNotification(fmt.Sprintf("Seed %d ready", v.world.Seed()))
		}
	case StateViewing:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			v.mapView.Restart()
			v.state = StateRendering
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := v.load(v.conf.WithSeed(worldgen.NewSeed())); err != nil {
			return err
		}
		v.ui.AddNotification(fmt.Sprintf("New seed %d", v.world.Seed()))
	}
	v.handleDebugInputs()
	v.updateCamera()

	v.ui.Update(v.mapView.Progress(), v.hover())
	return nil
}

// Toggle overlays
func (v *Viewer) handleDebugInputs() {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		v.showLegend = !v.showLegend
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		v.showDebug = !v.showDebug
	}
}

func (v *Viewer) updateCamera() {
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		v.camX -= PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		v.camX += PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		v.camY -= PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		v.camY += PanSpeed
	}

	maxX := float64(v.mapView.Width() - v.screenW)
	maxY := float64(v.mapView.Height() - v.screenH)
	v.camX = min(max(v.camX, 0), maxX)
	v.camY = min(max(v.camY, 0), maxY)
}

// hover samples the world under the cursor, or nil while rendering.
func (v *Viewer) hover() *Hover {
	if v.state != StateViewing {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	cell, x, y, ok := v.mapView.CellAt(mx+int(v.camX), my+int(v.camY))
	if !ok {
		return nil
	}
	b, ok := v.world.Catalog().Lookup(cell.Biome)
	if !ok {
		return nil
	}
	return &Hover{Biome: b, Sample: cell.Sample, X: x, Y: y}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.mapView.Draw(screen, v.camX, v.camY)
	v.ui.Draw(screen, v.state, v.world.Catalog(), v.showLegend)
	if v.showDebug {
		v.drawDebug(screen)
	}
}

func (v *Viewer) Layout(w, h int) (int, int) {
	return v.screenW, v.screenH
}

func (v *Viewer) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f\nState: %s\nSeed: %d\nBackend: %s\nCamera: %.0f,%.0f\nProgress: %.0f%%",
		ebiten.ActualFPS(), ebiten.ActualTPS(), v.state, v.world.Seed(), v.conf.Backend, v.camX, v.camY, v.mapView.Progress()*100))
}

func main() {
	configPath := flag.String("config", "biomemap.toml", "Path to the TOML configuration")
	seed := flag.Int64("seed", 0, "World seed (0 = use config)")
	cellSize := flag.Int("cell-size", 0, "Pixels per cell (0 = use config)")
	flag.Parse()

	uc, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		uc.World.Seed = *seed
	}
	if *cellSize > 0 {
		uc.Render.CellSize = *cellSize
	}
	if IsEmbedded() {
		// Browser canvases stay small
		uc.Render.CellSize = min(uc.Render.CellSize, 6)
	}

	conf, err := uc.Config(slog.Default())
	if err != nil {
		log.Fatal(err)
	}
	viewer, err := NewViewer(conf, uc.Render.CellSize)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(viewer.screenW, viewer.screenH)
	ebiten.SetWindowTitle(fmt.Sprintf("Biome Map - seed %d", conf.Seed))

	if err := ebiten.RunGame(viewer); err != nil {
		if err != ebiten.Termination {
			log.Fatal(err)
		}
	}
}
