package config

// DefaultExcludes are glob patterns skipped during the asset scan by default.
// Thumbnail caches and editor working files show up in shared asset folders
// often enough to exclude out of the box.
var DefaultExcludes = []string{
	"**/.*",
	"**/Thumbs.db",
	"**/*.tmp",
	"**/__MACOSX/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		AssetsDir: "assets",
		Port:      8080,
		Title:     "Asset Library",
		Exclude:   DefaultExcludes,
		Open:      false,
	}
}
