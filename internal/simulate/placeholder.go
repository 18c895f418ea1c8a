package simulate

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math/rand/v2"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	placeholderBG = color.RGBA{0xE5, 0xE7, 0xEB, 0xFF}
	placeholderFG = color.RGBA{0x4B, 0x55, 0x63, 0xFF}
)

// drawLabel writes s with its baseline at (x, y) using the 7x13 bitmap face.
func drawLabel(dst draw.Image, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// placeholderImage is a flat grey w×h canvas with label centred on it.
func placeholderImage(w, h int, label string, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	adv := font.MeasureString(basicfont.Face7x13, label).Round()
	drawLabel(img, label, max(0, (w-adv)/2), h/2, placeholderFG)
	return img
}

// PlaceholderPNG renders a labelled placeholder as PNG.
func PlaceholderPNG(w, h int, label string) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, placeholderImage(w, h, label, placeholderBG)); err != nil {
		return nil, fmt.Errorf("encode placeholder png: %w", err)
	}
	return buf.Bytes(), nil
}

// PlaceholderJPEG renders a labelled placeholder as JPEG.
func PlaceholderJPEG(w, h int, label string) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, placeholderImage(w, h, label, placeholderBG), &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode placeholder jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// PlaceholderGIF renders frames labelled placeholders as a looping GIF
// with delayMS between frames.
func PlaceholderGIF(w, h, frames, delayMS int) ([]byte, error) {
	pal := color.Palette{placeholderBG, placeholderFG, color.RGBA{0xD1, 0xD5, 0xDB, 0xFF}}
	anim := &gif.GIF{}
	for i := range max(frames, 1) {
		bg := pal[0]
		if i%2 == 1 {
			bg = pal[2]
		}
		src := placeholderImage(w, h, fmt.Sprintf("Frame %d", i+1), bg)
		frame := image.NewPaletted(src.Bounds(), pal)
		draw.Draw(frame, frame.Bounds(), src, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delayMS/10)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, fmt.Errorf("encode placeholder gif: %w", err)
	}
	return buf.Bytes(), nil
}

// Barcode geometry.
const (
	BarcodeWidth  = 400
	BarcodeHeight = 200
	barSlots      = 50
	barPitch      = 8
	barWidth      = 4
	barTop        = 50
	barHeight     = 100
)

// BarcodeImage draws the decorative barcode: a white canvas, fifty slots
// each holding a bar with even odds, and text as the caption. The bars do
// not encode text.
func BarcodeImage(text string, rng *rand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BarcodeWidth, BarcodeHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for i := range barSlots {
		if rng.Float64() > 0.5 {
			bar := image.Rect(i*barPitch, barTop, i*barPitch+barWidth, barTop+barHeight)
			draw.Draw(img, bar, image.Black, image.Point{}, draw.Src)
		}
	}
	drawLabel(img, text, 150, 180, color.Black)
	return img
}

// BarcodePNG encodes BarcodeImage as PNG.
func BarcodePNG(text string, rng *rand.Rand) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, BarcodeImage(text, rng)); err != nil {
		return nil, fmt.Errorf("encode barcode: %w", err)
	}
	return buf.Bytes(), nil
}
