package mediatools

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-rushton/toolbelt/internal/imaging"
	"github.com/ryan-rushton/toolbelt/internal/palette"
	"github.com/ryan-rushton/toolbelt/internal/qrcode"
	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/simulate"
	"github.com/ryan-rushton/toolbelt/internal/toolerr"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

func deps() registry.Deps {
	return registry.Deps{Sleep: simulate.NoSleep, Rand: rand.New(rand.NewPCG(1, 2))}
}

func run(t *testing.T, d registry.Deps, build func(registry.Deps) runner.Spec, vals map[string]string) (transform.Result, error) {
	t.Helper()
	return runner.RunHeadless(context.Background(), build(d), vals, nil)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// writePNG writes a w×h PNG filled with c.
func writePNG(t *testing.T, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return writeFile(t, "picture.png", buf.Bytes())
}

func TestRegistered(t *testing.T) {
	t.Parallel()

	assert.Len(t, Tools(), 11)
	for _, tool := range Tools() {
		got := registry.Get(tool.ID)
		require.NotNil(t, got, tool.ID)
		assert.Equal(t, registry.Image, got.Category)
		assert.Equal(t, tool.ID, tool.Spec(deps()).ID)
	}
}

func TestSimulated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		build    func(registry.Deps) runner.Spec
		file     string
		artifact string
	}{
		{name: "video", build: VideoToMP3, file: "clip.mp4", artifact: "clip.mp3"},
		{name: "background", build: BackgroundRemover, file: "photo.png", artifact: "no-background.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := run(t, deps(), tt.build, map[string]string{"file": writeFile(t, tt.file, []byte("data"))})
			require.NoError(t, err)
			require.NotEmpty(t, res.Artifacts)
			assert.Equal(t, tt.artifact, res.Artifacts[0].Filename)
		})
	}
}

func TestAudioToText(t *testing.T) {
	t.Parallel()

	res, err := run(t, deps(), AudioToText, map[string]string{"file": writeFile(t, "memo.mp3", []byte("id3"))})
	require.NoError(t, err)
	assert.Equal(t, simulate.TranscriptionText("memo.mp3"), res.Text)

	_, err = run(t, deps(), AudioToText, nil)
	assert.True(t, toolerr.Is(err, toolerr.KindValidation))
}

func TestImageToText_RejectsNonImage(t *testing.T) {
	t.Parallel()

	_, err := run(t, deps(), ImageToText, map[string]string{"file": writeFile(t, "notes.txt", []byte("hi"))})
	require.Error(t, err)
	assert.True(t, toolerr.Is(err, toolerr.KindValidation))
}

func TestGIFMaker_NeedsTwoImages(t *testing.T) {
	t.Parallel()

	one := writePNG(t, 2, 2, color.White)
	_, err := run(t, deps(), GIFMaker, map[string]string{"file": one})
	require.Error(t, err)
	assert.True(t, toolerr.Is(err, toolerr.KindValidation))

	res, err := run(t, deps(), GIFMaker, map[string]string{"file": one + "," + writePNG(t, 2, 2, color.Black)})
	require.NoError(t, err)
	require.Len(t, res.Artifacts, 1)
	assert.Equal(t, simulate.MIMEGIF, res.Artifacts[0].MIME)
}

func TestBarcodeGenerator(t *testing.T) {
	t.Parallel()

	res, err := run(t, deps(), BarcodeGenerator, map[string]string{"text": "ABC-123"})
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", res.Text)
	assert.Equal(t, "barcode.png", res.Artifacts[0].Filename)

	_, err = run(t, deps(), BarcodeGenerator, map[string]string{"text": ""})
	assert.Equal(t, "Please enter text for the barcode", toolerr.Message(err, ""))

	long := make([]byte, maxBarcodeLength+1)
	for i := range long {
		long[i] = '9'
	}
	_, err = run(t, deps(), BarcodeGenerator, map[string]string{"text": string(long)})
	assert.True(t, toolerr.Is(err, toolerr.KindValidation))
}

func TestQRGenerator(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNGqr"))
	}))
	defer srv.Close()

	d := deps()
	d.QR = qrcode.New(srv.URL+"/", 0, time.Second)
	res, err := run(t, d, QRGenerator, map[string]string{"text": "hello"})
	require.NoError(t, err)
	require.Len(t, res.Artifacts, 1)
	assert.Equal(t, "qr-code.png", res.Artifacts[0].Filename)
	assert.Equal(t, "\x89PNGqr", string(res.Artifacts[0].Data))
	assert.Equal(t, d.QR.URL("hello"), res.Text)

	_, err = run(t, d, QRGenerator, map[string]string{"text": "  "})
	assert.Equal(t, "Please enter text or URL", toolerr.Message(err, ""))
}

func TestQRGenerator_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := deps()
	d.QR = qrcode.New(srv.URL+"/", 0, time.Second)
	_, err := run(t, d, QRGenerator, map[string]string{"text": "hello"})
	assert.Equal(t, "Failed to generate QR code", toolerr.Message(err, ""))
}

func TestImageCompressor(t *testing.T) {
	t.Parallel()

	var waited time.Duration
	d := deps()
	d.Sleep = func(_ context.Context, dur time.Duration) error {
		waited += dur
		return nil
	}

	path := writePNG(t, 64, 64, color.NRGBA{R: 200, G: 40, B: 90, A: 255})
	res, err := run(t, d, ImageCompressor, map[string]string{"file": path, "quality": "50"})
	require.NoError(t, err)
	assert.Equal(t, compressDelay, waited)

	require.Len(t, res.Artifacts, 1)
	assert.Equal(t, "compressed-image.jpg", res.Artifacts[0].Filename)
	c, ok := res.Data.(simulate.Compression)
	require.True(t, ok)
	assert.Equal(t, int64(len(res.Artifacts[0].Data)), c.Compressed)
	assert.Positive(t, c.Original)

	_, err = run(t, d, ImageCompressor, map[string]string{"file": writeFile(t, "doc.pdf", []byte("%PDF"))})
	assert.Equal(t, "Please upload a valid image file (PNG, JPG, or WebP)", toolerr.Message(err, ""))
}

func TestImageResizer(t *testing.T) {
	t.Parallel()

	path := writePNG(t, 40, 20, color.White)

	res, err := run(t, deps(), ImageResizer, map[string]string{"file": path, "width": "10"})
	require.NoError(t, err)
	assert.Equal(t, Resize{Width: 10, Height: 20}, res.Data)
	assert.Equal(t, "resized-image.png", res.Artifacts[0].Filename)

	res, err = run(t, deps(), ImageResizer, map[string]string{"file": path, "preset": "YouTube Thumbnail"})
	require.NoError(t, err)
	assert.Equal(t, Resize{Width: 1280, Height: 720}, res.Data)

	_, err = run(t, deps(), ImageResizer, map[string]string{"file": path, "width": "wide"})
	assert.True(t, toolerr.Is(err, toolerr.KindValidation))
}

func TestImageCropper(t *testing.T) {
	t.Parallel()

	path := writePNG(t, 30, 30, color.Black)
	res, err := run(t, deps(), ImageCropper, map[string]string{"file": path})
	require.NoError(t, err)
	w, h, err := imaging.Size(res.Artifacts[0].Data)
	require.NoError(t, err)
	assert.Equal(t, imaging.DefaultCropWidth, w)
	assert.Equal(t, imaging.DefaultCropHeight, h)

	_, err = run(t, deps(), ImageCropper, nil)
	assert.True(t, toolerr.Is(err, toolerr.KindValidation))
}

func TestColorPicker(t *testing.T) {
	t.Parallel()

	res, err := run(t, deps(), ColorPicker, map[string]string{"file": writePNG(t, 20, 20, color.NRGBA{R: 255, A: 255})})
	require.NoError(t, err)
	colors, ok := res.Data.([]palette.Color)
	require.True(t, ok)
	require.Len(t, colors, 1)
	assert.Equal(t, "#FF0000", colors[0].Hex)
	assert.Equal(t, "#FF0000", res.Text)
	assert.Contains(t, renderPalette(res), "rgb(255, 0, 0)")

	res, err = run(t, deps(), ColorPicker, map[string]string{"file": writePNG(t, 4, 4, color.Transparent)})
	require.NoError(t, err)
	assert.Contains(t, renderPalette(res), "No colors found")
}

func TestToolModels(t *testing.T) {
	t.Parallel()

	for _, tool := range Tools() {
		m := tool.New(deps())
		rm, ok := m.(runner.Model)
		require.True(t, ok, tool.ID)
		assert.Equal(t, tool.ID, rm.Spec().ID)
	}
}
