package assets

import (
	"path"
	"sort"
	"strings"
)

// Merge groups raw assets by (root folder, extension-stripped relative
// path) and chooses a preview variant for each group. Output is sorted
// by root folder, then stripped path; variants within a group are in
// preview-preference order, so the chosen preview does not depend on
// filesystem enumeration order.
func Merge(raw []RawAsset) []MergedAsset {
	groups := make(map[string]*MergedAsset)

	for _, a := range raw {
		stem := strings.TrimSuffix(a.RelPath, path.Ext(a.RelPath))
		key := a.Root + "\x00" + stem

		m, ok := groups[key]
		if !ok {
			base := strings.TrimSuffix(a.Name, path.Ext(a.Name))
			if base == "" {
				// Stripping a name like ".png" leaves nothing useful.
				base = a.Name
			}
			m = &MergedAsset{Root: a.Root, BaseName: base, RelPath: stem}
			groups[key] = m
		}
		m.Variants = append(m.Variants, Variant{Extension: a.Extension, URL: a.PublicURL})
	}

	merged := make([]MergedAsset, 0, len(groups))
	for _, m := range groups {
		sortVariants(m.Variants)
		m.Preview = m.Variants[0]
		merged = append(merged, *m)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Root != merged[j].Root {
			return merged[i].Root < merged[j].Root
		}
		return merged[i].RelPath < merged[j].RelPath
	})

	return merged
}

// sortVariants orders variants by preview preference. Extensions outside
// PreviewOrder sort last, alphabetically; URL is the final tie-breaker
// so the order is total regardless of input order.
func sortVariants(variants []Variant) {
	rank := func(ext string) int {
		if r, ok := previewRank[ext]; ok {
			return r
		}
		return len(PreviewOrder)
	}
	sort.Slice(variants, func(i, j int) bool {
		ri, rj := rank(variants[i].Extension), rank(variants[j].Extension)
		if ri != rj {
			return ri < rj
		}
		if variants[i].Extension != variants[j].Extension {
			return variants[i].Extension < variants[j].Extension
		}
		return variants[i].URL < variants[j].URL
	})
}
