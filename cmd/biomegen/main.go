package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"biomemap/config"
	"biomemap/render"
	"biomemap/worldgen"
)

func main() {
	configPath := flag.String("config", "biomemap.toml", "Path to the TOML configuration, created if missing")
	seed := flag.Int64("seed", 0, "World seed (0 = use config)")
	width := flag.Int("width", 0, "Map width in cells (0 = use config)")
	height := flag.Int("height", 0, "Map height in cells (0 = use config)")
	pngPath := flag.String("png", "", "Also write a raster image to this path")
	cellSize := flag.Int("cell-size", 0, "Pixels per cell in the raster image (0 = use config)")
	plain := flag.Bool("plain", false, "Disable ANSI colours")
	noLegend := flag.Bool("no-legend", false, "Do not print the biome legend")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	uc, err := config.Load(*configPath)
	if err != nil {
		log.Error("Failed to load config.", "path", *configPath, "err", err)
		os.Exit(1)
	}
	if *seed != 0 {
		uc.World.Seed = *seed
	}
	if *width > 0 {
		uc.World.Width = *width
	}
	if *height > 0 {
		uc.World.Height = *height
	}
	if *cellSize > 0 {
		uc.Render.CellSize = *cellSize
	}
	if *plain {
		uc.Render.Plain = true
	}

	conf, err := uc.Config(log.With("run", uuid.NewString()))
	if err != nil {
		log.Error("Invalid config.", "path", *configPath, "err", err)
		os.Exit(1)
	}
	w, err := conf.New()
	if err != nil {
		log.Error("Invalid config.", "path", *configPath, "err", err)
		os.Exit(1)
	}
	log = conf.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, w, uc, *pngPath, !*noLegend); err != nil {
		log.Error("Generation failed.", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, w *worldgen.World, uc config.UserConfig, pngPath string, legend bool) error {
	log.Info("Generating world.", "seed", w.Seed(), "width", w.Width(), "height", w.Height(), "backend", w.Config().Backend)

	g, err := w.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Println("Generated Biome Map:")
	if err := (render.Console{Plain: uc.Render.Plain, Legend: legend}).WriteGrid(os.Stdout, g, w.Catalog()); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	logCounts(log, w.Catalog(), g)

	if pngPath == "" {
		return nil
	}
	return writeImage(ctx, log, w, uc.Render.CellSize, pngPath)
}

func logCounts(log *slog.Logger, catalog *worldgen.Catalog, g *worldgen.Grid) {
	counts := g.Counts()
	attrs := make([]any, 0, catalog.Len()*2)
	for _, b := range catalog.Biomes() {
		attrs = append(attrs, b.Name, counts[b.ID])
	}
	log.Debug("Biome coverage.", attrs...)
}

func writeImage(ctx context.Context, log *slog.Logger, w *worldgen.World, cellSize int, path string) error {
	r, err := render.NewRaster(w, cellSize)
	if err != nil {
		return err
	}
	start := time.Now()
	img, err := r.Image(ctx, func(row, rows int) {
		if step := rows / 20; step > 0 && row%step == 0 && row < rows {
			log.Debug("Rendering image.", "progress", fmt.Sprintf("%d%%", row*100/rows))
		}
	})
	if err != nil {
		return fmt.Errorf("render image: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}
	log.Info("Wrote image.", "path", path, "size", img.Bounds().Size(), "took", time.Since(start))
	return nil
}
