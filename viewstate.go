package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

type ViewState int

const (
	StateRendering ViewState = iota
	StateViewing
)

func (s ViewState) String() string {
	switch s {
	case StateRendering:
		return "rendering"
	case StateViewing:
		return "viewing"
	default:
		return "unknown"
	}
}

// Draw scaled text
func drawScaledText(screen *ebiten.Image, s string, cx, y int, scale float64, face font.Face, clr color.Color) {
	if scale <= 0 {
		return
	}

	// basicfont glyph size
	charWidth := 7
	charHeight := 13
	textWidth := len(s) * charWidth

	textImg := ebiten.NewImage(textWidth+4, charHeight+4)
	text.Draw(textImg, s, face, 2, charHeight, clr)

	scaledWidth := float64(textWidth) * scale
	scaledHeight := float64(charHeight) * scale

	// Shadow
	shadowOp := &ebiten.DrawImageOptions{}
	shadowOp.GeoM.Scale(scale, scale)
	shadowOp.GeoM.Translate(float64(cx)-scaledWidth/2+3, float64(y)-scaledHeight+3)
	shadowOp.ColorScale.Scale(0, 0, 0, 0.5)
	shadowOp.Filter = ebiten.FilterLinear
	screen.DrawImage(textImg, shadowOp)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cx)-scaledWidth/2, float64(y)-scaledHeight)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(textImg, op)
}
