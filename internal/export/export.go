package export

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"

	"galleria/internal/assets"
	"galleria/internal/gallery"
	"galleria/internal/progress"
)

// Exporter writes a self-contained static copy of the gallery: the
// rendered page, its minified stylesheet and script, and every asset
// file, laid out so the output directory can be served as-is.
type Exporter struct {
	AssetsDir string
	OutputDir string
	Title     string
	Exclude   []string
	Reporter  progress.Reporter // optional
}

var minifier = func() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)
	return m
}()

// Run performs the export and returns the number of files written.
func (e *Exporter) Run() (int, error) {
	raw := assets.CollectAll(e.AssetsDir, assets.Roots, e.Exclude)
	merged := assets.Merge(raw)
	sections := gallery.BuildSections(merged, assets.Roots)

	intro, err := gallery.RenderIntro(e.AssetsDir)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	data := gallery.PageData{Title: e.Title, Intro: intro, Sections: sections}
	if err := gallery.Render(&buf, data); err != nil {
		return 0, fmt.Errorf("rendering page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(e.OutputDir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return 0, err
	}

	cssOut := minifyAsset("text/css", []byte(gallery.CSS()))
	if err := os.WriteFile(filepath.Join(e.OutputDir, "style.css"), cssOut, 0o644); err != nil {
		return 0, err
	}
	jsOut := minifyAsset("application/javascript", []byte(gallery.JS()))
	if err := os.WriteFile(filepath.Join(e.OutputDir, "script.js"), jsOut, 0o644); err != nil {
		return 0, err
	}

	written := 3

	if e.Reporter != nil {
		e.Reporter.Start(len(raw))
	}
	for i, a := range raw {
		if e.Reporter != nil {
			e.Reporter.Update(i+1, path.Join(a.Root, a.RelPath))
		}
		src := filepath.Join(e.AssetsDir, a.Root, filepath.FromSlash(a.RelPath))
		dst := filepath.Join(e.OutputDir, a.Root, filepath.FromSlash(a.RelPath))
		if err := copyFile(src, dst); err != nil {
			return written, fmt.Errorf("copying %s: %w", a.RelPath, err)
		}
		written++
	}
	if e.Reporter != nil {
		e.Reporter.Finish()
	}

	return written, nil
}

// minifyAsset minifies the given content, falling back to the original
// when minification fails.
func minifyAsset(mediaType string, raw []byte) []byte {
	out, err := minifier.Bytes(mediaType, raw)
	if err != nil {
		log.Printf("export: minify warning: %s: %v (using original)", mediaType, err)
		return raw
	}
	return out
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
