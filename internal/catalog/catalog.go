package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/sagit117/BuilderBricks/internal/configtree"
	"github.com/sagit117/BuilderBricks/internal/ctxlog"
	"github.com/sagit117/BuilderBricks/internal/fsutil"
	"github.com/sagit117/BuilderBricks/internal/resource"
	"github.com/sagit117/BuilderBricks/internal/scenario"
)

// Catalog lists scenarios from the real filesystem or the bundled resources.
type Catalog struct {
	bundled fs.FS
	locator *resource.Locator
}

// New creates a Catalog whose second lookup tier is bundled. A nil bundled
// filesystem disables that tier.
func New(bundled fs.FS) *Catalog {
	var tier resource.Bundle
	if bundled != nil {
		tier = resource.FS(bundled)
	}
	return &Catalog{
		bundled: bundled,
		locator: resource.NewLocator(tier),
	}
}

// List returns the scenarios of dir ordered by ascending priority, ties kept
// in directory listing order. It never fails: unusable directories and
// descriptors are logged and left out.
func (c *Catalog) List(ctx context.Context, dir string) []*scenario.Descriptor {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Listing scenarios...", "path", dir)

	fsys, loc, err := c.open(dir)
	if err != nil {
		logger.Warn("Scenario directory unavailable, catalog is empty.", "error", &DirectoryError{Path: dir, Err: err})
		return []*scenario.Descriptor{}
	}

	names, err := fsutil.ListFiles(fsys, ".")
	if err != nil {
		logger.Warn("Scenario directory unavailable, catalog is empty.", "error", &DirectoryError{Path: loc.String(), Err: err})
		return []*scenario.Descriptor{}
	}
	logger.Debug("Found scenario files.", "location", loc.String(), "tier", loc.Tier.String(), "count", len(names))

	found := make([]*scenario.Descriptor, 0, len(names))
	for _, name := range names {
		origin := originOf(loc, name)
		d, err := c.load(ctx, fsys, name, origin, loc.Tier)
		if err != nil {
			logger.Warn("Skipping scenario descriptor.", "file", origin, "error", err)
			continue
		}
		found = append(found, d)
	}

	ordered := Order(found)
	logger.Info("Scenario catalog built.", "location", loc.String(), "files", len(names), "scenarios", len(ordered))
	return ordered
}

func (c *Catalog) open(dir string) (fs.FS, *resource.Location, error) {
	loc, err := c.locator.Locate(dir, resource.KindDir)
	if err != nil {
		return nil, nil, err
	}
	if loc.Tier == resource.TierFilesystem {
		return os.DirFS(loc.Path), loc, nil
	}
	sub, err := fs.Sub(c.bundled, loc.Name)
	if err != nil {
		return nil, nil, err
	}
	return sub, loc, nil
}

func (c *Catalog) load(ctx context.Context, fsys fs.FS, name, origin string, tier resource.Tier) (*scenario.Descriptor, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &scenario.ParseError{File: origin, Err: fmt.Errorf("failed to read: %w", err)}
	}
	tree, err := configtree.Parse(origin, src)
	if err != nil {
		return nil, &scenario.ParseError{File: origin, Err: err}
	}
	return scenario.Parse(ctx, tree, scenario.Source{
		Path:   origin,
		Tier:   tier,
		Digest: scenario.Digest(src),
	})
}

func originOf(loc *resource.Location, name string) string {
	if loc.Tier == resource.TierBundled {
		return "bundled:" + path.Join(loc.Name, name)
	}
	return filepath.Join(loc.Path, name)
}

// Order returns a new slice holding each descriptor once, stably sorted by
// ascending priority. Duplicates are the same *Descriptor appearing twice;
// distinct descriptors sharing a name are all kept.
func Order(descriptors []*scenario.Descriptor) []*scenario.Descriptor {
	seen := make(map[*scenario.Descriptor]struct{}, len(descriptors))
	out := make([]*scenario.Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d == nil {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}
