package gallery

import (
	"html/template"
	"io"
)

// PageData holds the data passed to the gallery page template.
type PageData struct {
	Title      string
	Intro      template.HTML
	Sections   []Section
	LiveReload bool
}

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// Render writes the full gallery page HTML for the given data.
func Render(w io.Writer, data PageData) error {
	return pageTmpl.Execute(w, data)
}

// CSS returns the stylesheet served alongside the gallery page.
func CSS() string { return cssContent }

// JS returns the sidebar and scroll-tracking script served alongside
// the gallery page.
func JS() string { return jsContent }
