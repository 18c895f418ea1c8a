package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ryan-rushton/toolbelt/internal/log"
	"github.com/ryan-rushton/toolbelt/internal/toolerr"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

func TestSpec_PrimaryField(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   string
	}{
		{"marked primary wins", []Field{{Key: "a", Kind: FieldTextArea}, {Key: "b", Kind: FieldText, Primary: true}}, "b"},
		{"text area before text", []Field{{Key: "a", Kind: FieldText}, {Key: "b", Kind: FieldTextArea}}, "b"},
		{"text field", []Field{{Key: "n", Kind: FieldNumber}, {Key: "a", Kind: FieldText}}, "a"},
		{"none", []Field{{Key: "n", Kind: FieldNumber}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := Spec{Fields: tt.fields}.PrimaryField()
			if f.Key != tt.want {
				t.Errorf("PrimaryField() = %q, want %q", f.Key, tt.want)
			}
		})
	}
}

func TestSpec_Merge(t *testing.T) {
	spec := echoSpec()

	vals, err := spec.Merge(map[string]string{"text": "hi", "mode": "same"})
	if err != nil {
		t.Fatal(err)
	}
	if vals["text"] != "hi" || vals["mode"] != "same" || vals["loud"] != "false" {
		t.Errorf("unexpected merged values %v", vals)
	}

	bad := []map[string]string{
		{"nope": "x"},
		{"mode": "sideways"},
		{"loud": "very"},
	}
	for _, o := range bad {
		if _, err := spec.Merge(o); err == nil {
			t.Errorf("expected %v to be rejected", o)
		}
	}
}

func TestRunHeadless(t *testing.T) {
	res, err := RunHeadless(context.Background(), echoSpec(), map[string]string{"text": "cli", "loud": "true"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != "CLI!" {
		t.Errorf("expected CLI!, got %q", res.Text)
	}

	_, err = RunHeadless(context.Background(), echoSpec(), nil, nil)
	if !toolerr.Is(err, toolerr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestBuildInput_LoadsFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	spec := Spec{Fields: []Field{{Key: "files", Kind: FieldFiles}}}

	in, err := spec.BuildInput(context.Background(), map[string]string{"files": a + ", " + b})
	if err != nil {
		t.Fatal(err)
	}
	if len(in.Files) != 2 || in.Files[0].Name != "a.png" || in.Files[1].Name != "b.png" {
		t.Errorf("unexpected files %+v", in.Files)
	}

	_, err = spec.BuildInput(context.Background(), map[string]string{"files": filepath.Join(dir, "missing.png")})
	if !toolerr.Is(err, toolerr.KindValidation) {
		t.Errorf("expected validation error for a missing file, got %v", err)
	}
}

func TestSpec_Downloads(t *testing.T) {
	spec := Spec{DownloadName: "formatted.json", DownloadMIME: "application/json"}

	got := spec.Downloads(transform.Result{Text: "{}"})
	if len(got) != 1 || got[0].Filename != "formatted.json" || got[0].MIME != "application/json" {
		t.Errorf("unexpected text download %+v", got)
	}

	own := []transform.Artifact{{Filename: "page-1.png"}}
	if got := spec.Downloads(transform.Result{Text: "x", Artifacts: own}); len(got) != 1 || got[0].Filename != "page-1.png" {
		t.Errorf("expected the result's own artifacts, got %+v", got)
	}

	if got := (Spec{}).Downloads(transform.Result{Text: "x"}); got != nil {
		t.Errorf("expected nothing without a download name, got %+v", got)
	}
}

func TestExecute_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewSecureLogger(&buf, false)

	spec := echoSpec()
	spec.LogAttrs = func(res transform.Result) []any { return []any{"length", len(res.Text)} }

	if _, err := Execute(context.Background(), spec, transform.Input{Values: map[string]string{"text": "secret words"}}, logger); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"tool=echo", "transform=upper", "length=12", "duration="} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q: %s", want, out)
		}
	}
	if strings.Contains(out, "secret words") || strings.Contains(out, "SECRET WORDS") {
		t.Errorf("result leaked into log: %s", out)
	}

	buf.Reset()
	_, _ = Execute(context.Background(), spec, transform.Input{Values: map[string]string{}}, logger)
	if !strings.Contains(buf.String(), "kind=validation") {
		t.Errorf("expected failure logged with its kind: %s", buf.String())
	}
}
