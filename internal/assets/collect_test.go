package assets

import (
	"os"
	"path/filepath"
	"testing"

	"galleria/internal/config"
)

// writeFile creates a file (and its parent directories) under dir.
func writeFile(t *testing.T, dir, rel string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte("content of "+rel), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func relPaths(raw []RawAsset) map[string]bool {
	out := make(map[string]bool, len(raw))
	for _, a := range raw {
		out[a.RelPath] = true
	}
	return out
}

func TestCollect_AcceptedExtensionsOnly(t *testing.T) {
	dir := t.TempDir()

	accepted := []string{
		"logo.png", "logo.svg", "photo.jpg", "photo.jpeg",
		"banner.webp", "anim.gif", "modern.avif", "old.bmp",
	}
	rejected := []string{
		"notes.txt", "raw.psd", "vector.eps", "icon.ico", "noextension",
	}
	for _, rel := range append(append([]string{}, accepted...), rejected...) {
		writeFile(t, dir, rel)
	}

	raw := Collect(dir, "Templates", nil)

	got := relPaths(raw)
	for _, rel := range accepted {
		if !got[rel] {
			t.Errorf("accepted file %q missing from results", rel)
		}
	}
	for _, rel := range rejected {
		if got[rel] {
			t.Errorf("rejected file %q appeared in results", rel)
		}
	}
	if len(raw) != len(accepted) {
		t.Errorf("expected %d assets, got %d", len(accepted), len(raw))
	}
}

func TestCollect_CaseInsensitiveExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ARM.PNG")
	writeFile(t, dir, "leg.Svg")

	raw := Collect(dir, "Separate Atoms", nil)
	if len(raw) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(raw))
	}

	exts := map[string]bool{}
	for _, a := range raw {
		exts[a.Extension] = true
	}
	if !exts["png"] || !exts["svg"] {
		t.Errorf("extensions should be lower-cased, got %v", exts)
	}
}

func TestCollect_NestedDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Body/arm.svg")
	writeFile(t, dir, "Body/Hands/left.png")
	writeFile(t, dir, "top.png")

	raw := Collect(dir, "Separate Atoms", nil)
	got := relPaths(raw)

	for _, rel := range []string{"Body/arm.svg", "Body/Hands/left.png", "top.png"} {
		if !got[rel] {
			t.Errorf("expected %q in results", rel)
		}
	}
}

func TestCollect_MissingRoot(t *testing.T) {
	raw := Collect(filepath.Join(t.TempDir(), "does-not-exist"), "Templates", nil)
	if len(raw) != 0 {
		t.Errorf("missing root should yield no assets, got %d", len(raw))
	}
}

func TestCollect_RootIsAFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "not-a-dir.png")

	raw := Collect(filepath.Join(dir, "not-a-dir.png"), "Templates", nil)
	if len(raw) != 0 {
		t.Errorf("a root that is not a directory should yield no assets, got %d", len(raw))
	}
}

func TestCollect_ExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.png")
	writeFile(t, dir, "wip/draft.png")
	writeFile(t, dir, ".hidden.png")

	raw := Collect(dir, "Templates", []string{"wip/**", "**/.*"})
	got := relPaths(raw)

	if !got["keep.png"] {
		t.Error("keep.png should not be excluded")
	}
	if got["wip/draft.png"] {
		t.Error("wip/draft.png should be excluded by wip/**")
	}
	if got[".hidden.png"] {
		t.Error(".hidden.png should be excluded by **/.*")
	}
}

func TestCollect_DotDirectoryContentsExcluded(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.png")
	writeFile(t, dir, ".cache/thumb.png")
	writeFile(t, dir, "Body/.previews/arm.png")

	raw := Collect(dir, "Templates", config.DefaultExcludes)
	got := relPaths(raw)

	if !got["keep.png"] {
		t.Error("keep.png should not be excluded")
	}
	if got[".cache/thumb.png"] {
		t.Error("files inside a top-level dot-directory should be excluded")
	}
	if got["Body/.previews/arm.png"] {
		t.Error("files inside a nested dot-directory should be excluded")
	}
	if len(raw) != 1 {
		t.Errorf("expected 1 asset, got %d", len(raw))
	}
}

func TestCollect_UnreadableSubfolder(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}

	dir := t.TempDir()
	writeFile(t, dir, "visible.png")
	writeFile(t, dir, "locked/secret.png")

	locked := filepath.Join(dir, "locked")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	raw := Collect(dir, "Templates", nil)
	got := relPaths(raw)

	if !got["visible.png"] {
		t.Error("siblings of an unreadable folder should still be collected")
	}
	if got["locked/secret.png"] {
		t.Error("contents of an unreadable folder should be skipped")
	}
	if len(raw) != 1 {
		t.Errorf("expected 1 asset, got %d", len(raw))
	}
}

func TestCollect_PublicURLEncoding(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Body Parts/left arm.svg")

	raw := Collect(dir, "Separate Atoms", nil)
	if len(raw) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(raw))
	}

	want := "/Separate%20Atoms/Body%20Parts/left%20arm.svg"
	if raw[0].PublicURL != want {
		t.Errorf("PublicURL = %q, want %q", raw[0].PublicURL, want)
	}
}

func TestCollectAll_MissingRootContributesNothing(t *testing.T) {
	assetsDir := t.TempDir()
	writeFile(t, assetsDir, "Templates/poster.svg")
	// "Separate Atoms" does not exist at all.

	raw := CollectAll(assetsDir, []string{"Separate Atoms", "Templates"}, nil)
	if len(raw) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(raw))
	}
	if raw[0].Root != "Templates" {
		t.Errorf("asset root = %q, want Templates", raw[0].Root)
	}
}

func TestPublicURL(t *testing.T) {
	tests := []struct {
		root    string
		relPath string
		want    string
	}{
		{"Templates", "poster.svg", "/Templates/poster.svg"},
		{"Separate Atoms", "Body/arm.png", "/Separate%20Atoms/Body/arm.png"},
		{"Templates", "a&b/c#d.png", "/Templates/a&b/c%23d.png"},
	}

	for _, tc := range tests {
		got := PublicURL(tc.root, tc.relPath)
		if got != tc.want {
			t.Errorf("PublicURL(%q, %q) = %q, want %q", tc.root, tc.relPath, got, tc.want)
		}
	}
}
