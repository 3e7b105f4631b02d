package assets

// Roots are the logical top-level asset categories, in display order.
// Each is expected to be a directory directly under the configured
// assets directory.
var Roots = []string{"Separate Atoms", "Templates"}

// Extensions is the set of accepted image file extensions, lower-cased
// and without the leading dot. Files with any other extension are
// invisible to the scan.
var Extensions = map[string]bool{
	"png":  true,
	"svg":  true,
	"jpg":  true,
	"jpeg": true,
	"webp": true,
	"gif":  true,
	"avif": true,
	"bmp":  true,
}

// PreviewOrder ranks extensions for choosing a merged asset's preview
// variant. The first extension present among a group's variants wins.
var PreviewOrder = []string{"svg", "png", "jpg", "jpeg", "webp", "gif", "avif", "bmp"}

// previewRank maps each extension to its position in PreviewOrder.
var previewRank = func() map[string]int {
	m := make(map[string]int, len(PreviewOrder))
	for i, ext := range PreviewOrder {
		m[ext] = i
	}
	return m
}()

// RawAsset is a single image file discovered during the scan.
type RawAsset struct {
	Name      string // file name, including extension
	Extension string // lower-cased, without the leading dot
	RelPath   string // slash-separated path relative to the root folder
	PublicURL string // URL the file is served under
	Root      string // logical root folder label
}

// Variant is one downloadable format of a merged asset.
type Variant struct {
	Extension string `json:"extension"`
	URL       string `json:"url"`
}

// MergedAsset groups every variant sharing a root folder and
// extension-stripped relative path. Variants is never empty and is
// ordered by preview preference; Preview is always Variants[0].
type MergedAsset struct {
	Root     string    `json:"root"`
	BaseName string    `json:"base_name"`
	RelPath  string    `json:"rel_path"` // extension-stripped
	Variants []Variant `json:"variants"`
	Preview  Variant   `json:"preview"`
}
