package palette

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFromImage_SolidRed(t *testing.T) {
	t.Parallel()

	got := FromImage(solid(100, 100, color.NRGBA{255, 0, 0, 255}))
	require.Len(t, got, 1)
	assert.Equal(t, "#FF0000", got[0].Hex)
	assert.Equal(t, "rgb(255, 0, 0)", got[0].RGB)
	assert.Equal(t, "hsl(0, 100%, 50%)", got[0].HSL)
	assert.Equal(t, 100*100/4, got[0].Count)
}

func TestFromImage_Transparent(t *testing.T) {
	t.Parallel()

	got := FromImage(solid(50, 50, color.NRGBA{10, 200, 30, 0}))
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = FromImage(solid(50, 50, color.NRGBA{10, 200, 30, 127}))
	assert.Empty(t, got)
}

func TestFromImage_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0))))
}

func TestFromImage_Downscales(t *testing.T) {
	t.Parallel()

	got := FromImage(solid(800, 400, color.NRGBA{0, 0, 255, 255}))
	require.Len(t, got, 1)
	assert.Equal(t, uint8(0), got[0].R)
	assert.GreaterOrEqual(t, got[0].B, uint8(250))
	assert.Equal(t, 200*100/4, got[0].Count)
}

func TestExtract_OrderAndAverage(t *testing.T) {
	t.Parallel()

	var pix []byte
	px := func(r, g, b, a byte) {
		pix = append(pix, r, g, b, a)
		// three skipped pixels between samples
		pix = append(pix, make([]byte, 12)...)
	}
	px(0, 0, 0, 255)
	px(100, 100, 100, 255)
	px(101, 102, 104, 255)
	px(99, 98, 96, 255)
	px(0, 0, 0, 10)

	got := Extract(pix)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Count)
	// (100+101)/2 -> 101 (rounded half up), then (101*2+99)/3 -> 100
	assert.Equal(t, "rgb(100, 100, 100)", got[0].RGB)
	assert.Equal(t, "#000000", got[1].Hex)
	assert.Equal(t, 1, got[1].Count)
}

func TestExtract_CapsAtTen(t *testing.T) {
	t.Parallel()

	var pix []byte
	for i := range 15 {
		v := byte(i * 15)
		for range 15 - i {
			pix = append(pix, v, v, v, 255)
			pix = append(pix, make([]byte, 12)...)
		}
	}
	got := Extract(pix)
	require.Len(t, got, MaxColors)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count)
	}
	assert.Equal(t, "#000000", got[0].Hex)
}

func TestHSL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r, g, b uint8
		want    string
	}{
		{255, 255, 255, "hsl(0, 0%, 100%)"},
		{0, 0, 0, "hsl(0, 0%, 0%)"},
		{0, 255, 0, "hsl(120, 100%, 50%)"},
		{0, 0, 255, "hsl(240, 100%, 50%)"},
		{255, 0, 255, "hsl(300, 100%, 50%)"},
		{128, 128, 128, "hsl(0, 0%, 50%)"},
		{51, 102, 153, "hsl(210, 50%, 40%)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewColor(tt.r, tt.g, tt.b, 1).HSL)
	}
}

func TestScaledSize(t *testing.T) {
	t.Parallel()

	w, h := ScaledSize(100, 100)
	assert.Equal(t, [2]int{100, 100}, [2]int{w, h})
	w, h = ScaledSize(1000, 500)
	assert.Equal(t, [2]int{200, 100}, [2]int{w, h})
	w, h = ScaledSize(300, 1200)
	assert.Equal(t, [2]int{50, 200}, [2]int{w, h})
	w, h = ScaledSize(0, 10)
	assert.Equal(t, [2]int{0, 0}, [2]int{w, h})
}
