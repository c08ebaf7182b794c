package configtree

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Parse decodes src into a Tree. The syntax is chosen from the extension of
// origin: .json and .jsonc are JSON with comments, .yaml and .yml are YAML,
// anything else is HCL native syntax.
func Parse(origin string, src []byte) (Tree, error) {
	switch strings.ToLower(path.Ext(strings.ReplaceAll(origin, "\\", "/"))) {
	case ".json", ".jsonc":
		return parseJSON(origin, src)
	case ".yaml", ".yml":
		return parseYAML(origin, src)
	default:
		return parseHCL(origin, src)
	}
}

// ParseFile reads and parses a file from the real filesystem.
func ParseFile(filePath string) (Tree, error) {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}
	return Parse(filePath, src)
}

// ParseFS reads and parses name from fsys. The origin is used for
// diagnostics and syntax detection only.
func ParseFS(fsys fs.FS, name, origin string) (Tree, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", origin, err)
	}
	return Parse(origin, src)
}
