package gallery

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderIntro converts the assets directory's README.md into HTML shown
// above the first gallery section. A missing README yields an empty
// intro; only a broken conversion is reported as an error.
func RenderIntro(assetsDir string) (template.HTML, error) {
	content, err := os.ReadFile(filepath.Join(assetsDir, "README.md"))
	if err != nil {
		return "", nil
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("converting README: %w", err)
	}

	return template.HTML(buf.String()), nil
}
