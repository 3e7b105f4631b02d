package assets

import (
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"
)

// Collect recursively lists the image files under dir, labelling each
// with the given logical root folder name. Directories that are missing
// or cannot be read contribute nothing; the scan never fails.
func Collect(dir, root string, exclude []string) []RawAsset {
	var out []RawAsset

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		// Prune excluded directories. The root itself is never pruned.
		if d.IsDir() {
			if rel != "." && MatchesExclude(rel, exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		// Only process regular files.
		if !d.Type().IsRegular() {
			return nil
		}

		// A root that is itself a regular file is treated as empty,
		// the same as a root that cannot be listed.
		if rel == "." {
			return nil
		}

		if MatchesExclude(rel, exclude) {
			return nil
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(d.Name()), "."))
		if !Extensions[ext] {
			return nil
		}

		out = append(out, RawAsset{
			Name:      d.Name(),
			Extension: ext,
			RelPath:   rel,
			PublicURL: PublicURL(root, rel),
			Root:      root,
		})

		return nil
	})

	return out
}

// CollectAll scans every root folder under assetsDir and concatenates
// the results. The per-root scans are independent; a missing root simply
// contributes no assets.
func CollectAll(assetsDir string, roots []string, exclude []string) []RawAsset {
	var all []RawAsset
	for _, root := range roots {
		all = append(all, Collect(filepath.Join(assetsDir, root), root, exclude)...)
	}
	return all
}

// PublicURL builds the serving URL for a file under a root folder. Every
// path segment is percent-encoded independently, so folder and file
// names containing spaces or special characters resolve correctly.
func PublicURL(root, relPath string) string {
	segments := append([]string{root}, strings.Split(relPath, "/")...)
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = url.PathEscape(seg)
	}
	return "/" + strings.Join(escaped, "/")
}
