package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var documentExtensions = map[string]bool{".yaml": true, ".yml": true}

// validateConfigPath checks that path names an existing YAML form document.
func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("form document is required (--config)")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if !documentExtensions[strings.ToLower(filepath.Ext(abs))] {
		return fmt.Errorf("form document %s must be a .yaml or .yml file", abs)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}
