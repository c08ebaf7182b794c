package scenario

import (
	"context"
	"fmt"

	"github.com/sagit117/BuilderBricks/internal/resource"
)

// SubUnit is a named sub-component declared inside a scenario.
type SubUnit struct {
	Name string
	// Index is the position in the declaring list, counting skipped entries.
	Index int
}

// Source identifies the file a descriptor was parsed from.
type Source struct {
	Path string
	Tier resource.Tier
	// Digest is the BLAKE3 hash of the file contents, hex encoded.
	Digest string
}

// ShortDigest returns the first twelve hex digits of the digest.
func (s Source) ShortDigest() string {
	if len(s.Digest) > 12 {
		return s.Digest[:12]
	}
	return s.Digest
}

// Descriptor is the validated, immutable form of one scenario file. It is
// only ever handled by pointer: two files declaring the same name remain two
// distinct descriptors.
type Descriptor struct {
	Name     string
	Version  string
	Priority int
	SubUnits []SubUnit
	Source   Source
}

// String implements fmt.Stringer.
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s@%s (priority %d)", d.Name, d.Version, d.Priority)
}

// SubUnitNames returns the declared sub-unit names in order.
func (d *Descriptor) SubUnitNames() []string {
	names := make([]string, 0, len(d.SubUnits))
	for _, su := range d.SubUnits {
		names = append(names, su.Name)
	}
	return names
}

// Launcher executes a scenario. Launch is invoked exactly once per run and
// must not be assumed idempotent.
type Launcher interface {
	Launch(ctx context.Context, d *Descriptor) error
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(ctx context.Context, d *Descriptor) error

// Launch implements Launcher.
func (f LauncherFunc) Launch(ctx context.Context, d *Descriptor) error {
	return f(ctx, d)
}
