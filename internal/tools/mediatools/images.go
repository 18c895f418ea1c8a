package mediatools

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ryan-rushton/toolbelt/internal/imaging"
	"github.com/ryan-rushton/toolbelt/internal/palette"
	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/shell"
	"github.com/ryan-rushton/toolbelt/internal/simulate"
	"github.com/ryan-rushton/toolbelt/internal/styles"
	"github.com/ryan-rushton/toolbelt/internal/toolerr"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

func imageRule(typeMsg, sizeMsg string) *simulate.FileRule {
	return &simulate.FileRule{
		Accept:         []string{"image/*"},
		MaxMB:          10,
		MissingMessage: "Please upload an image first",
		TypeMessage:    typeMsg,
		SizeMessage:    sizeMsg,
	}
}

// checkImage applies rule and returns the single upload.
func checkImage(rule *simulate.FileRule, in transform.Input) (transform.File, error) {
	if err := rule.Check(in.Files); err != nil {
		return transform.File{}, err
	}
	f, _ := in.File()
	return f, nil
}

func sleeper(d registry.Deps) simulate.Sleeper {
	if d.Sleep != nil {
		return d.Sleep
	}
	return simulate.Sleep
}

const compressDelay = 1500 * time.Millisecond

func ImageCompressor(d registry.Deps) runner.Spec {
	rule := imageRule("Please upload a valid image file (PNG, JPG, or WebP)", "Please upload an image smaller than 10MB")
	sleep := sleeper(d)
	return runner.Spec{
		ID:          "image-compressor",
		Title:       "Image Compressor",
		Description: "Reduce image file size without losing quality. Adjust compression level to balance quality and file size.",
		Steps: shell.TextSteps(
			"Choose an image file (PNG, JPG, or WebP)",
			"Adjust the quality to balance file size and image quality",
			"Press Ctrl+G to compress",
			"Save the compressed image and compare the file size reduction",
		),
		Fields: []runner.Field{
			fileField(runner.FieldFile, rule),
			{
				Key: "quality", Label: "Quality (%)", Kind: runner.FieldNumber,
				Default: strconv.Itoa(imaging.DefaultQuality), Min: imaging.MinQuality, Max: imaging.MaxQuality,
			},
		},
		Transform: transform.New("jpeg", func(ctx context.Context, in transform.Input) (transform.Result, error) {
			f, err := checkImage(rule, in)
			if err != nil {
				return transform.Result{}, err
			}
			if err := sleep(ctx, compressDelay); err != nil {
				return transform.Result{}, err
			}
			img, _, err := imaging.Decode(f.Data)
			if err != nil {
				return transform.Result{}, err
			}
			data, err := imaging.CompressJPEG(img, in.Int("quality", imaging.DefaultQuality))
			if err != nil {
				return transform.Result{}, err
			}
			c := simulate.Compression{Original: f.Size, Compressed: int64(len(data))}
			c.Savings = simulate.Savings(c.Original, c.Compressed)
			return transform.Result{
				Sections: []transform.Section{
					{Title: "Original Size", Body: transform.FormatSize(c.Original)},
					{Title: "Compressed Size", Body: transform.FormatSize(c.Compressed)},
					{Title: "Saved", Body: fmt.Sprintf("%.1f%%", c.Savings)},
				},
				Artifacts: []transform.Artifact{{Filename: "compressed-image.jpg", MIME: simulate.MIMEJPEG, Data: data}},
				Data:      c,
			}, nil
		}),
		LogAttrs: func(res transform.Result) []any {
			c, _ := res.Data.(simulate.Compression)
			return []any{"original", c.Original, "compressed", c.Compressed}
		},
		Success: "Image compressed successfully",
		Failure: "Failed to compress image",
	}
}

// presetCustom means the width and height fields are used as typed.
const presetCustom = "custom"

func presetChoices() []string {
	out := []string{presetCustom}
	for _, p := range imaging.Presets {
		out = append(out, p.Name)
	}
	return out
}

// Resize is the resizer and cropper's structured result.
type Resize struct {
	Width, Height int
}

// dimension reads a size field: blank or zero means "keep the source".
func dimension(in transform.Input, key string) (int, error) {
	raw := strings.TrimSpace(in.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, toolerr.Validationf("%s must be a positive number", strings.ToUpper(key[:1])+key[1:])
	}
	return n, nil
}

func ImageResizer(d registry.Deps) runner.Spec {
	rule := imageRule("Please upload a valid image file", "")
	return runner.Spec{
		ID:          "image-resizer",
		Title:       "Image Resizer",
		Description: "Resize images to custom dimensions",
		Steps: []shell.Step{
			{Title: "Choose Image", Description: "Select an image file to resize"},
			{Title: "Set Dimensions", Description: "Enter custom width and height or use presets"},
			{Title: "Resize & Download", Description: "Get your resized image"},
		},
		Fields: []runner.Field{
			fileField(runner.FieldFile, rule),
			{Key: "preset", Label: "Preset", Kind: runner.FieldChoice, Choices: presetChoices()},
			{Key: "width", Label: "Width (px)", Kind: runner.FieldNumber, Placeholder: "source", Min: 1, Max: imaging.MaxDimension},
			{Key: "height", Label: "Height (px)", Kind: runner.FieldNumber, Placeholder: "source", Min: 1, Max: imaging.MaxDimension},
		},
		Transform: transform.New("resize", func(_ context.Context, in transform.Input) (transform.Result, error) {
			f, err := checkImage(rule, in)
			if err != nil {
				return transform.Result{}, err
			}
			w, err := dimension(in, "width")
			if err != nil {
				return transform.Result{}, err
			}
			h, err := dimension(in, "height")
			if err != nil {
				return transform.Result{}, err
			}
			if p, ok := imaging.PresetByName(in.Get("preset")); ok {
				w, h = p.Width, p.Height
			}
			data, err := imaging.Resize(f.Data, w, h)
			if err != nil {
				return transform.Result{}, err
			}
			rw, rh, err := imaging.Size(data)
			if err != nil {
				return transform.Result{}, err
			}
			return transform.Result{
				Text:      fmt.Sprintf("Resized to %d×%d", rw, rh),
				Artifacts: []transform.Artifact{{Filename: "resized-image.png", MIME: simulate.MIMEPNG, Data: data}},
				Data:      Resize{Width: rw, Height: rh},
			}, nil
		}),
		Success: "Image resized successfully",
		Failure: "Failed to resize image. Please try again.",
	}
}

func ImageCropper(d registry.Deps) runner.Spec {
	rule := imageRule("Please select an image file", "")
	return runner.Spec{
		ID:          "image-cropper",
		Title:       "Image Cropper & Resizer",
		Description: "Crop and resize images to any dimension. Perfect for social media posts, avatars, and thumbnails.",
		Fields: []runner.Field{
			fileField(runner.FieldFile, rule),
			{Key: "width", Label: "Width (px)", Kind: runner.FieldNumber, Default: strconv.Itoa(imaging.DefaultCropWidth), Min: 1, Max: imaging.MaxDimension},
			{Key: "height", Label: "Height (px)", Kind: runner.FieldNumber, Default: strconv.Itoa(imaging.DefaultCropHeight), Min: 1, Max: imaging.MaxDimension},
		},
		Transform: transform.New("crop", func(_ context.Context, in transform.Input) (transform.Result, error) {
			f, err := checkImage(rule, in)
			if err != nil {
				return transform.Result{}, err
			}
			w := in.Int("width", imaging.DefaultCropWidth)
			h := in.Int("height", imaging.DefaultCropHeight)
			data, err := imaging.Crop(f.Data, w, h)
			if err != nil {
				return transform.Result{}, err
			}
			return transform.Result{
				Text:      fmt.Sprintf("Cropped to %d×%d", w, h),
				Artifacts: []transform.Artifact{{Filename: "cropped-image.png", MIME: simulate.MIMEPNG, Data: data}},
				Data:      Resize{Width: w, Height: h},
			}, nil
		}),
		Success: "Image cropped successfully",
		Failure: "Failed to crop image",
	}
}

func renderPalette(res transform.Result) string {
	colors, ok := res.Data.([]palette.Color)
	if !ok {
		return runner.RenderResult(res)
	}
	if len(colors) == 0 {
		return styles.Muted.Render("No colors found. The image may be fully transparent.")
	}
	lines := make([]string, len(colors))
	for i, c := range colors {
		lines[i] = fmt.Sprintf("%s %s  %-20s %s", styles.Swatch(c.Hex), c.Hex, c.RGB, styles.Muted.Render(c.HSL))
	}
	return strings.Join(lines, "\n")
}

func ColorPicker(d registry.Deps) runner.Spec {
	rule := imageRule("Please select an image file", "")
	return runner.Spec{
		ID:          "color-picker",
		Title:       "Color Picker & Palette Generator",
		Description: "Extract accurate dominant colors from images and generate color palettes. Perfect for design inspiration.",
		Steps: []shell.Step{
			{Title: "Choose Image", Description: "Select any image file (PNG, JPG, WebP)"},
			{Title: "Extract", Description: "Colors are extracted and sorted by dominance"},
			{Title: "Copy Colors", Description: "Press c to copy every HEX value"},
		},
		Fields: []runner.Field{fileField(runner.FieldFile, rule)},
		Transform: transform.New("palette", func(_ context.Context, in transform.Input) (transform.Result, error) {
			f, err := checkImage(rule, in)
			if err != nil {
				return transform.Result{}, err
			}
			img, _, err := imaging.Decode(f.Data)
			if err != nil {
				return transform.Result{}, err
			}
			colors := palette.FromImage(img)
			hexes := make([]string, len(colors))
			for i, c := range colors {
				hexes[i] = c.Hex
			}
			return transform.Result{Text: strings.Join(hexes, "\n"), Data: colors}, nil
		}),
		Render:       renderPalette,
		DownloadName: "palette.txt",
		Success:      "Colors extracted successfully",
		Failure:      "Failed to extract colors",
	}
}
