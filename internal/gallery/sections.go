package gallery

import (
	"sort"
	"strings"

	"galleria/internal/assets"
)

// Section is a navigable grouping of merged assets, keyed by root folder
// and the sub-folder the assets live in.
type Section struct {
	Root    string
	Folder  string // folder component of the items' RelPath; "" at the top level
	Heading string
	ID      string // slugified heading, used as the DOM anchor and sidebar key
	Items   []assets.MergedAsset
}

// BuildSections regroups merged assets for navigation: by root folder in
// the caller-supplied order, then by the folder component of the
// relative path. Folders within a root are ordered case-insensitively.
// Roots with no assets produce no section.
func BuildSections(merged []assets.MergedAsset, rootOrder []string) []Section {
	type groupKey struct {
		root   string
		folder string
	}

	groups := make(map[groupKey]*Section)
	foldersByRoot := make(map[string][]string)

	for _, m := range merged {
		key := groupKey{root: m.Root, folder: folderOf(m.RelPath)}
		sec, ok := groups[key]
		if !ok {
			h := heading(key.root, key.folder)
			sec = &Section{
				Root:    key.root,
				Folder:  key.folder,
				Heading: h,
				ID:      Slug(h),
			}
			groups[key] = sec
			foldersByRoot[key.root] = append(foldersByRoot[key.root], key.folder)
		}
		sec.Items = append(sec.Items, m)
	}

	var sections []Section
	for _, root := range rootOrder {
		folders := foldersByRoot[root]
		sort.Slice(folders, func(i, j int) bool {
			li, lj := strings.ToLower(folders[i]), strings.ToLower(folders[j])
			if li != lj {
				return li < lj
			}
			return folders[i] < folders[j]
		})
		for _, folder := range folders {
			sections = append(sections, *groups[groupKey{root: root, folder: folder}])
		}
	}

	return sections
}

// folderOf returns everything before the last slash of a relative path,
// or the empty string for a top-level entry.
func folderOf(relPath string) string {
	idx := strings.LastIndex(relPath, "/")
	if idx < 0 {
		return ""
	}
	return relPath[:idx]
}

// heading formats a section heading from its root folder and sub-folder.
func heading(root, folder string) string {
	if folder == "" {
		return root
	}
	return root + " / " + folder
}

// Slug converts a section heading into a DOM-safe id: lower-cased, with
// spaces and slashes turned into hyphens and every other character
// outside [a-z0-9-] removed. Applying Slug twice yields the same result.
func Slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '/':
			b.WriteByte('-')
		}
	}
	return b.String()
}
