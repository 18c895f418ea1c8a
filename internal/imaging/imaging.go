// Package imaging implements the image tools that do real work: decoding
// uploads, JPEG re-encoding, and drawing to a new size.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/ryan-rushton/toolbelt/internal/toolerr"
)

// Preset is a named target size.
type Preset struct {
	Name   string
	Width  int
	Height int
}

// Presets are the resizer's social media sizes.
var Presets = []Preset{
	{Name: "Instagram Post", Width: 1080, Height: 1080},
	{Name: "Instagram Story", Width: 1080, Height: 1920},
	{Name: "Facebook Cover", Width: 820, Height: 312},
	{Name: "Twitter Header", Width: 1500, Height: 500},
	{Name: "YouTube Thumbnail", Width: 1280, Height: 720},
}

// PresetByName finds a preset, ignoring case.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// MaxDimension bounds requested output sizes and decoded uploads.
const MaxDimension = 10000

// MaxPixels bounds the decoded area of an upload.
const MaxPixels = 50_000_000

// Default crop size.
const (
	DefaultCropWidth  = 800
	DefaultCropHeight = 600
)

// Decode reads PNG, JPEG, GIF, WebP or BMP data. The header is checked first
// so a small file claiming a huge canvas is rejected before allocation.
func Decode(data []byte) (image.Image, string, error) {
	w, h, err := Size(data)
	if err != nil {
		return nil, "", err
	}
	if w > MaxDimension || h > MaxDimension || w*h > MaxPixels {
		return nil, "", toolerr.Validationf("Image is too large (%d×%d). Please use one of at most %d pixels per side and %d megapixels.", w, h, MaxDimension, MaxPixels/1_000_000)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", toolerr.Parse("Could not read the image. Please upload a PNG, JPEG, GIF, WebP or BMP file.", err)
	}
	return img, format, nil
}

// Size returns the pixel size of encoded image data without decoding it all.
func Size(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, toolerr.Parse("Could not read the image. Please upload a PNG, JPEG, GIF, WebP or BMP file.", err)
	}
	return cfg.Width, cfg.Height, nil
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return toolerr.Validation("Width and height must be positive")
	}
	if w > MaxDimension || h > MaxDimension {
		return toolerr.Validationf("Width and height must be at most %d", MaxDimension)
	}
	return nil
}

// Scale draws img stretched to w×h, the way a canvas drawImage call with an
// explicit destination size does.
func Scale(img image.Image, w, h int) (*image.NRGBA, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst, nil
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Compression quality bounds in percent.
const (
	MinQuality     = 10
	MaxQuality     = 100
	DefaultQuality = 80
)

// CompressJPEG re-encodes img as JPEG at quality percent. Transparent areas
// are flattened onto white.
func CompressJPEG(img image.Image, quality int) ([]byte, error) {
	quality = max(MinQuality, min(quality, MaxQuality))
	b := img.Bounds()
	flat := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(flat, flat.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, b.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Resize decodes data and scales it to w×h as PNG. Zero dimensions keep the
// source size on that axis.
func Resize(data []byte, w, h int) ([]byte, error) {
	img, _, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if w == 0 {
		w = img.Bounds().Dx()
	}
	if h == 0 {
		h = img.Bounds().Dy()
	}
	out, err := Scale(img, w, h)
	if err != nil {
		return nil, err
	}
	return EncodePNG(out)
}

// Crop decodes data and draws the whole image into a w×h PNG canvas.
func Crop(data []byte, w, h int) ([]byte, error) {
	img, _, err := Decode(data)
	if err != nil {
		return nil, err
	}
	out, err := Scale(img, w, h)
	if err != nil {
		return nil, err
	}
	return EncodePNG(out)
}
