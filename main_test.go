package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	canvasrenderer "github.com/ByLCY/slidemark/renderer/canvas"
)

func canvasBackend(baseDir string) func() backend {
	return func() backend { return canvasrenderer.NewRenderer(baseDir) }
}

func TestScanFontsGroupsVariants(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Brand-Regular.ttf", "Brand-Bold.ttf", "Brand-BoldItalic.otf", "Solo.ttf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := scanFonts(dir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 families, got %+v", got)
	}
	brand := got["Brand"]
	if filepath.Base(brand.Regular.Path) != "Brand-Regular.ttf" || filepath.Base(brand.Bold.Path) != "Brand-Bold.ttf" {
		t.Fatalf("unexpected Brand files: %+v", brand)
	}
	if filepath.Base(brand.BoldItalic.Path) != "Brand-BoldItalic.otf" || brand.Italic.Path != "" {
		t.Fatalf("unexpected Brand files: %+v", brand)
	}
	if filepath.Base(got["Solo"].Regular.Path) != "Solo.ttf" {
		t.Fatalf("unexpected Solo files: %+v", got["Solo"])
	}

	if none, err := scanFonts(""); err != nil || none != nil {
		t.Fatalf("empty dir should yield nothing: %v %v", none, err)
	}
}

func TestScanFontsRelativeDirIsIndependentOfBaseDir(t *testing.T) {
	dir, err := os.MkdirTemp(".", "fonts-")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	if err := os.WriteFile(filepath.Join(dir, "Mono-Regular.ttf"), gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := scanFonts(filepath.Base(dir))
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if path := files["Mono"].Regular.Path; !filepath.IsAbs(path) {
		t.Fatalf("font path should be absolute, got %s", path)
	}

	// Same layout as main: assets resolve against the deck's directory.
	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{BaseDir: "examples", Fonts: files})
	if err := r.LoadFonts(); err != nil {
		t.Fatalf("load fonts: %v", err)
	}
	m := r.Metrics()
	m.SetFont("20px Mono")
	mono := m.MeasureText("iiii").Width
	m.SetFont("20px Go")
	regular := m.MeasureText("iiii").Width
	// Go Mono advances 0.6em per glyph.
	if mono < 47 || mono > 49 || mono <= regular+10 {
		t.Fatalf("Mono family not used: mono=%g go=%g", mono, regular)
	}
}

func TestLoadFontsReportsMissingFiles(t *testing.T) {
	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Fonts: map[string]canvasrenderer.FontFiles{
			"Brand": {Regular: canvasrenderer.Resource{Path: filepath.Join(t.TempDir(), "Brand-Regular.ttf")}},
		},
	})
	if err := r.LoadFonts(); err == nil {
		t.Fatalf("expected error for a missing font file")
	}
}

func TestRunWritesPNGs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "png")
	debug := filepath.Join(t.TempDir(), "debug", "frames.json")
	cfg := config{
		input:   filepath.Join("examples", "launch.deck"),
		output:  out,
		format:  "png",
		debug:   debug,
		data:    map[string]any{"user": map[string]any{"name": "Ada"}},
		workers: 2,
	}
	written, err := run(context.Background(), cfg, canvasBackend("examples"))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("expected 3 files, got %v", written)
	}
	for i, path := range written {
		if want := filepath.Join(out, "launch-0"+string(rune('1'+i))+".png"); path != want {
			t.Fatalf("file %d: %s want %s", i, path, want)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !bytes.HasPrefix(data, []byte("\x89PNG")) {
			t.Fatalf("%s is not a PNG", path)
		}
	}
	raw, err := os.ReadFile(debug)
	if err != nil {
		t.Fatalf("debug JSON missing: %v", err)
	}
	if !strings.Contains(string(raw), "Hello, Ada!") {
		t.Fatalf("debug JSON should carry the bound subtitle")
	}
}

func TestRunWritesPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deck.pdf")
	cfg := config{input: filepath.Join("examples", "launch.deck"), output: out, format: "pdf", workers: 1}
	if _, err := run(context.Background(), cfg, canvasBackend("examples")); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRunErrors(t *testing.T) {
	r := canvasBackend("")
	if _, err := run(context.Background(), config{input: "missing.deck", format: "png"}, r); err == nil {
		t.Fatalf("expected error for missing input")
	}
	cfg := config{input: filepath.Join("examples", "launch.deck"), output: t.TempDir(), format: "gif"}
	if _, err := run(context.Background(), cfg, r); err == nil || !strings.Contains(err.Error(), "gif") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
	if _, err := run(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}
