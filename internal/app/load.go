package app

import (
	"context"
	"io/fs"

	"github.com/sagit117/BuilderBricks/internal/configtree"
	"github.com/sagit117/BuilderBricks/internal/ctxlog"
	"github.com/sagit117/BuilderBricks/internal/logging"
	"github.com/sagit117/BuilderBricks/internal/resource"
)

// loadTree reads the application configuration from path. A missing file
// falls back to DefaultConfigPath and then to an empty tree; a file that
// exists but does not parse is a ConfigError.
func loadTree(ctx context.Context, path string, bundled fs.FS) (configtree.Tree, error) {
	logger := ctxlog.FromContext(ctx)
	var tier resource.Bundle
	if bundled != nil {
		tier = resource.FS(bundled)
	}
	locator := resource.NewLocator(tier)

	loc, err := locator.Locate(path, resource.KindFile)
	if err != nil && path != DefaultConfigPath {
		logger.Warn("Application configuration not found, using the default.", "path", path, "default", DefaultConfigPath)
		loc, err = locator.Locate(DefaultConfigPath, resource.KindFile)
	}
	if err != nil {
		logger.Warn("Default application configuration not found, using built-in defaults.", "error", err)
		return configtree.Empty("defaults"), nil
	}

	var tree configtree.Tree
	switch loc.Tier {
	case resource.TierBundled:
		tree, err = configtree.ParseFS(bundled, loc.Name, loc.String())
	default:
		tree, err = configtree.ParseFile(loc.Path)
	}
	if err != nil {
		return nil, &ConfigError{Path: loc.String(), Err: err}
	}

	logger.Log(ctx, logging.LevelConfig, "Application configuration loaded.", "location", loc.String(), "tier", loc.Tier.String())
	return tree, nil
}
