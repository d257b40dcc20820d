package main

import (
	"context"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"biomemap/worldgen"
)

func TestWriteImage(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	conf := worldgen.DefaultConfig(7)
	conf.Width, conf.Height = 30, 20
	conf.Log = log
	w, err := conf.New()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "map.png")
	if err := writeImage(context.Background(), log, w, 2, path); err != nil {
		t.Fatalf("writeImage: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 40 {
		t.Errorf("image is %dx%d, want 60x40", b.Dx(), b.Dy())
	}
}

func TestWriteImageCancelled(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := worldgen.DefaultConfig(7).New()
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "map.png")
	if err := writeImage(ctx, log, w, 1, path); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("image written despite cancellation: %v", err)
	}
}
