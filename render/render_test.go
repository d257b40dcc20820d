package render

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"

	"biomemap/worldgen"
)

func testWorld(t *testing.T) *worldgen.World {
	t.Helper()
	conf := worldgen.DefaultConfig(2024)
	conf.Width, conf.Height = 40, 24
	w, err := conf.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestDisplayName(t *testing.T) {
	tests := map[worldgen.BiomeID]string{
		worldgen.DeepWater:  "Deep Water",
		worldgen.SnowyPlain: "Snowy Plain",
		worldgen.Beach:      "Beach",
	}
	cat := worldgen.DefaultCatalog()
	for id, want := range tests {
		if got := DisplayName(cat.Biome(id)); got != want {
			t.Errorf("DisplayName(%v) = %q, want %q", id, got, want)
		}
	}
}

func TestConsolePlain(t *testing.T) {
	w := testWorld(t)
	g, err := w.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := (Console{Plain: true}).WriteGrid(&buf, g, w.Catalog()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "\033[") {
		t.Error("plain output contains escape codes")
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != g.Height {
		t.Fatalf("got %d lines, want %d", len(lines), g.Height)
	}
	for y, line := range lines {
		if len([]rune(line)) != g.Width {
			t.Fatalf("line %d has %d symbols, want %d", y, len([]rune(line)), g.Width)
		}
		for x, r := range []rune(line) {
			if want := w.Catalog().Biome(g.At(x, y).Biome).Symbol; r != want {
				t.Fatalf("symbol at (%d, %d) = %q, want %q", x, y, r, want)
			}
		}
	}
}

func TestConsoleColourAndLegend(t *testing.T) {
	w := testWorld(t)
	g, _ := w.Generate(context.Background())
	var buf bytes.Buffer
	if err := (Console{Legend: true}).WriteGrid(&buf, g, w.Catalog()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, ansiReset) {
		t.Error("colour output has no reset codes")
	}
	if !strings.Contains(out, "Biome Legend:") {
		t.Error("legend header missing")
	}
	if !strings.Contains(out, "DEEP_WATER (LW Noise: 0.00-0.30)") {
		t.Error("legend misses deep water bounds")
	}
	if !strings.Contains(out, ": JUNGLE\n") {
		t.Error("legend misses jungle")
	}
}

func TestRasterMatchesGrid(t *testing.T) {
	w := testWorld(t)
	g, _ := w.Generate(context.Background())
	r, err := NewRaster(w, 3)
	if err != nil {
		t.Fatal(err)
	}
	img, err := r.Image(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 72 {
		t.Fatalf("image is %v, want 120x72", img.Bounds())
	}
	// Pixels on the cell corners sample integer coordinates.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			want := w.Catalog().Biome(g.At(x, y).Biome).Color
			if got := img.RGBAAt(x*3, y*3); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x*3, y*3, got, want)
			}
		}
	}
}

func TestRasterProgressAndPNG(t *testing.T) {
	w := testWorld(t)
	r, _ := NewRaster(w, 1)
	calls := 0
	img, err := r.Image(context.Background(), func(row, rows int) {
		calls++
		if rows != 24 || row != calls {
			t.Errorf("progress(%d, %d) on call %d", row, rows, calls)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 24 {
		t.Errorf("progress called %d times, want 24", calls)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestRasterRejectsZeroCellSize(t *testing.T) {
	if _, err := NewRaster(testWorld(t), 0); err == nil {
		t.Fatal("expected error for cell size 0")
	}
}

func TestRasterCancelled(t *testing.T) {
	r, _ := NewRaster(testWorld(t), 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if img, err := r.Image(ctx, nil); err == nil || img != nil {
		t.Fatalf("Image on cancelled ctx = %v, %v", img, err)
	}
}
