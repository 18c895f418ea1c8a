// Package palette extracts the dominant colours of an image.
//
// Pixels are sampled with a fixed stride, transparent ones are skipped, and
// the rest are bucketed by rounding each channel to the nearest multiple of
// ten. Each bucket keeps a running average of the true colours that fell in
// it, so the reported colour is what the bucket looks like rather than its
// quantised corner.
package palette

import (
	"fmt"
	"image"
	"math"
	"sort"

	"golang.org/x/image/draw"
)

const (
	// MaxColors caps the palette length.
	MaxColors = 10
	// MaxSide is the longest side an image is scaled down to before sampling.
	MaxSide = 200
	// SampleStride is the byte step through an RGBA buffer: every 4th pixel.
	SampleStride = 16
	// MinAlpha is the lowest alpha a sampled pixel may have to be counted.
	MinAlpha = 128
)

// Color is one palette entry.
type Color struct {
	R, G, B uint8
	Hex     string
	RGB     string
	HSL     string
	Count   int
}

type bucket struct {
	r, g, b int
	count   int
}

func jsRound(x float64) int {
	return int(math.Floor(x + 0.5))
}

func quantize(v int) int {
	return jsRound(float64(v)/10) * 10
}

// average folds v into a running mean over n samples, rounding every step.
func average(mean, v, n int) int {
	return jsRound(float64(mean*(n-1)+v) / float64(n))
}

// Extract builds the palette from a non-premultiplied RGBA byte buffer,
// four bytes per pixel. Colours are ordered by descending pixel count; ties
// keep the order the buckets were first seen in.
func Extract(pix []byte) []Color {
	var order []*bucket
	buckets := map[[3]int]*bucket{}

	for i := 0; i+3 < len(pix); i += SampleStride {
		r, g, b, a := int(pix[i]), int(pix[i+1]), int(pix[i+2]), int(pix[i+3])
		if a < MinAlpha {
			continue
		}
		key := [3]int{quantize(r), quantize(g), quantize(b)}
		if bk, ok := buckets[key]; ok {
			bk.count++
			bk.r = average(bk.r, r, bk.count)
			bk.g = average(bk.g, g, bk.count)
			bk.b = average(bk.b, b, bk.count)
			continue
		}
		bk := &bucket{r: r, g: g, b: b, count: 1}
		buckets[key] = bk
		order = append(order, bk)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})
	if len(order) > MaxColors {
		order = order[:MaxColors]
	}

	out := make([]Color, 0, len(order))
	for _, bk := range order {
		out = append(out, NewColor(uint8(bk.r), uint8(bk.g), uint8(bk.b), bk.count))
	}
	return out
}

// NewColor renders r, g, b in every notation.
func NewColor(r, g, b uint8, count int) Color {
	h, s, l := HSL(r, g, b)
	return Color{
		R:     r,
		G:     g,
		B:     b,
		Hex:   fmt.Sprintf("#%02X%02X%02X", r, g, b),
		RGB:   fmt.Sprintf("rgb(%d, %d, %d)", r, g, b),
		HSL:   fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l),
		Count: count,
	}
}

// HSL converts to hue in degrees and saturation and lightness in percent,
// each rounded to an integer.
func HSL(r8, g8, b8 uint8) (h, s, l int) {
	r := float64(r8) / 255
	g := float64(g8) / 255
	b := float64(b8) / 255

	hi := max(r, g, b)
	lo := min(r, g, b)
	light := (hi + lo) / 2
	var hue, sat float64

	if hi != lo {
		d := hi - lo
		if light > 0.5 {
			sat = d / (2 - hi - lo)
		} else {
			sat = d / (hi + lo)
		}
		switch hi {
		case r:
			offset := 0.0
			if g < b {
				offset = 6
			}
			hue = ((g-b)/d + offset) / 6
		case g:
			hue = ((b-r)/d + 2) / 6
		default:
			hue = ((r-g)/d + 4) / 6
		}
	}
	return jsRound(hue * 360), jsRound(sat * 100), jsRound(light * 100)
}

// ScaledSize is the sampling size for a w×h image: the longer side is
// brought down to MaxSide, smaller images are left alone. Fractions are
// dropped.
func ScaledSize(w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := math.Min(math.Min(float64(MaxSide)/float64(w), float64(MaxSide)/float64(h)), 1)
	return int(float64(w) * scale), int(float64(h) * scale)
}

// Prepare draws img into a non-premultiplied buffer at its sampling size.
func Prepare(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := ScaledSize(b.Dx(), b.Dy())
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return dst
	}
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FromImage extracts the palette of img.
func FromImage(img image.Image) []Color {
	return Extract(Prepare(img).Pix)
}
