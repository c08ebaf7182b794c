package scenario

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/sagit117/BuilderBricks/internal/configtree"
	"github.com/sagit117/BuilderBricks/internal/ctxlog"
	"github.com/sagit117/BuilderBricks/internal/logging"
	"github.com/zeebo/blake3"
)

const (
	FieldName     = "scenario.name"
	FieldVersion  = "scenario.version"
	FieldPriority = "scenario.priority"
	FieldCubs     = "scenario.cubs"
	fieldCubName  = "name"
)

// Digest hashes descriptor source bytes for Source.Digest.
func Digest(src []byte) string {
	sum := blake3.Sum256(src)
	return hex.EncodeToString(sum[:])
}

// Parse builds a Descriptor from tree. scenario.name, scenario.version and
// scenario.priority are required. scenario.cubs is optional; a cub without
// a name is skipped with a warning and does not invalidate the descriptor.
func Parse(ctx context.Context, tree configtree.Tree, source Source) (*Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	file := source.Path
	if file == "" {
		file = tree.Origin()
	}

	name, err := tree.GetString(FieldName)
	if err != nil {
		return nil, &ParseError{File: file, Field: FieldName, Err: err}
	}
	if strings.TrimSpace(name) == "" {
		return nil, &ParseError{File: file, Field: FieldName, Err: ErrEmptyName}
	}

	version, err := tree.GetString(FieldVersion)
	if err != nil {
		return nil, &ParseError{File: file, Field: FieldVersion, Err: err}
	}

	priority, err := tree.GetInt(FieldPriority)
	if err != nil {
		return nil, &ParseError{File: file, Field: FieldPriority, Err: err}
	}

	d := &Descriptor{
		Name:     name,
		Version:  version,
		Priority: priority,
		Source:   source,
	}

	if tree.HasPath(FieldCubs) {
		cubs, err := tree.GetConfigList(FieldCubs)
		if err != nil {
			return nil, &ParseError{File: file, Field: FieldCubs, Err: err}
		}
		for i, cub := range cubs {
			cubName, err := cub.GetString(fieldCubName)
			if err != nil || strings.TrimSpace(cubName) == "" {
				logger.Warn("Skipping cub without a name.", "file", file, "scenario", name, "index", i, "error", err)
				continue
			}
			d.SubUnits = append(d.SubUnits, SubUnit{Name: cubName, Index: i})
		}
	}

	logger.Log(ctx, logging.LevelConfig, "Scenario read.", "scenario", name, "version", version, "priority", priority, "cubs", len(d.SubUnits), "file", file)
	return d, nil
}
