package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"galleria/internal/gallery"
)

func writeAssetTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := []string{
		"Separate Atoms/Body/arm.svg",
		"Separate Atoms/Body/arm.png",
		"Templates/poster.svg",
	}
	for _, rel := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("content of "+rel), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return dir
}

func TestExport_WritesSite(t *testing.T) {
	assetsDir := writeAssetTree(t)
	outputDir := filepath.Join(t.TempDir(), "dist")

	e := &Exporter{
		AssetsDir: assetsDir,
		OutputDir: outputDir,
		Title:     "Test Library",
	}

	written, err := e.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// index.html, style.css, script.js + 3 asset files.
	if written != 6 {
		t.Errorf("written = %d, want 6", written)
	}

	index, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	for _, want := range []string{"Test Library", "Separate Atoms / Body", "Templates"} {
		if !strings.Contains(string(index), want) {
			t.Errorf("index.html missing %q", want)
		}
	}
	if strings.Contains(string(index), "/ws/reload") {
		t.Error("exported page should never include the reload script")
	}

	// Copied asset files keep their tree layout.
	for _, rel := range []string{
		"Separate Atoms/Body/arm.svg",
		"Separate Atoms/Body/arm.png",
		"Templates/poster.svg",
	} {
		copied := filepath.Join(outputDir, filepath.FromSlash(rel))
		data, err := os.ReadFile(copied)
		if err != nil {
			t.Errorf("asset %s not copied: %v", rel, err)
			continue
		}
		if string(data) != "content of "+rel {
			t.Errorf("asset %s content mismatch", rel)
		}
	}
}

func TestExport_MinifiesStaticAssets(t *testing.T) {
	assetsDir := writeAssetTree(t)
	outputDir := filepath.Join(t.TempDir(), "dist")

	e := &Exporter{AssetsDir: assetsDir, OutputDir: outputDir, Title: "Test"}
	if _, err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	css, err := os.ReadFile(filepath.Join(outputDir, "style.css"))
	if err != nil {
		t.Fatalf("read style.css: %v", err)
	}
	if len(css) == 0 || len(css) >= len(gallery.CSS()) {
		t.Errorf("style.css should be minified: %d bytes vs %d original", len(css), len(gallery.CSS()))
	}

	js, err := os.ReadFile(filepath.Join(outputDir, "script.js"))
	if err != nil {
		t.Fatalf("read script.js: %v", err)
	}
	if len(js) == 0 || len(js) >= len(gallery.JS()) {
		t.Errorf("script.js should be minified: %d bytes vs %d original", len(js), len(gallery.JS()))
	}
}

func TestExport_EmptyAssetTree(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "dist")

	e := &Exporter{
		AssetsDir: filepath.Join(t.TempDir(), "missing"),
		OutputDir: outputDir,
		Title:     "Empty",
	}

	written, err := e.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// The page shell is still written.
	if written != 3 {
		t.Errorf("written = %d, want 3", written)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "index.html")); err != nil {
		t.Errorf("index.html missing: %v", err)
	}
}
