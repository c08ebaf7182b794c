package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound reports a path missing from both lookup tiers.
var ErrNotFound = errors.New("resource not found")

// Tier identifies where a resource was found.
type Tier int

const (
	TierFilesystem Tier = iota
	TierBundled
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case TierFilesystem:
		return "filesystem"
	case TierBundled:
		return "bundled"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Kind is the expected shape of a resource.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// Bundle is the second lookup tier: resources compiled into the binary.
type Bundle interface {
	// Has reports whether the bundle holds name with the given kind. Names
	// are slash-separated and relative, as produced by BundledName.
	Has(name string, kind Kind) bool
}

// Location is the outcome of a successful lookup.
type Location struct {
	// Path is the path as requested.
	Path string
	// Name is the bundle-relative name; set only for TierBundled.
	Name string
	Tier Tier
}

// String implements fmt.Stringer.
func (l *Location) String() string {
	if l.Tier == TierBundled {
		return "bundled:" + l.Name
	}
	return l.Path
}

// Locator resolves paths through both tiers.
type Locator struct {
	bundle Bundle
	stat   func(string) (fs.FileInfo, error)
}

// NewLocator returns a Locator that falls back to bundle. A nil bundle
// disables the second tier.
func NewLocator(bundle Bundle) *Locator {
	return &Locator{bundle: bundle, stat: os.Stat}
}

// Locate finds p on the real filesystem or, failing that, in the bundle.
func (l *Locator) Locate(p string, kind Kind) (*Location, error) {
	if p == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNotFound)
	}

	if info, err := l.stat(p); err == nil && matches(info.IsDir(), kind) {
		return &Location{Path: p, Tier: TierFilesystem}, nil
	}

	if l.bundle != nil {
		if name, ok := BundledName(p); ok && l.bundle.Has(name, kind) {
			return &Location{Path: p, Name: name, Tier: TierBundled}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
}

// BundledName maps a path onto the relative, slash-separated name used
// inside a bundle: "/scenario" and "scenario/" both become "scenario".
func BundledName(p string) (string, bool) {
	name := path.Clean(filepath.ToSlash(p))
	name = strings.TrimLeft(name, "/")
	if name == "" {
		name = "."
	}
	return name, fs.ValidPath(name)
}

func matches(isDir bool, kind Kind) bool {
	if kind == KindDir {
		return isDir
	}
	return !isDir
}

// fsBundle adapts an fs.FS to the Bundle interface.
type fsBundle struct {
	fsys fs.FS
}

// FS returns a Bundle backed by fsys, typically an embed.FS.
func FS(fsys fs.FS) Bundle {
	return &fsBundle{fsys: fsys}
}

func (b *fsBundle) Has(name string, kind Kind) bool {
	info, err := fs.Stat(b.fsys, name)
	if err != nil {
		return false
	}
	return matches(info.IsDir(), kind)
}
