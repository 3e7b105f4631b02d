package assets

import "testing"

func TestMatchesExclude_Empty(t *testing.T) {
	if MatchesExclude("anything.png", nil) {
		t.Error("empty exclude patterns should exclude nothing")
	}
}

func TestMatchesExclude_Patterns(t *testing.T) {
	tests := []struct {
		relPath  string
		patterns []string
		want     bool
	}{
		{"Thumbs.db", []string{"**/Thumbs.db"}, true},
		{"Body/Thumbs.db", []string{"**/Thumbs.db"}, true},
		{"Body/arm.png", []string{"**/Thumbs.db"}, false},
		{"wip/draft.png", []string{"wip/**"}, true},
		{".hidden.png", []string{"**/.*"}, true},
		{"Body/.hidden.png", []string{"**/.*"}, true},
		{"arm.tmp", []string{"**/*.tmp"}, true},
		{"arm.png", []string{"**/*.tmp"}, false},
	}

	for _, tc := range tests {
		got := MatchesExclude(tc.relPath, tc.patterns)
		if got != tc.want {
			t.Errorf("MatchesExclude(%q, %v) = %v, want %v", tc.relPath, tc.patterns, got, tc.want)
		}
	}
}
