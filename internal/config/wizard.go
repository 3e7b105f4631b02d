package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectAssetsDir checks the working directory for conventional asset
// directory names and returns the first one that exists.
func detectAssetsDir() string {
	for _, candidate := range []string{"assets", "static", "public", "images"} {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .galleria.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to galleria! Let's configure your asset library.")
	fmt.Println()

	defaults := DefaultConfig()

	detected := detectAssetsDir()
	if detected != "" {
		fmt.Printf("Detected asset directory: %s\n\n", detected)
		defaults.AssetsDir = detected
	}

	// 1. Assets directory.
	assetsPrompt := promptui.Prompt{
		Label:   "Directory containing the root asset folders",
		Default: defaults.AssetsDir,
	}
	assetsDir, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}

	// 2. Gallery title.
	titlePrompt := promptui.Prompt{
		Label:   "Gallery title",
		Default: defaults.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 4. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated globs, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	exclude := DefaultExcludes
	if excludeStr != "" {
		exclude = append(exclude, splitAndTrim(excludeStr)...)
	}

	cfg := &Config{
		AssetsDir: assetsDir,
		Port:      port,
		Title:     title,
		Exclude:   exclude,
	}

	configPath := ".galleria.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
