// Package configtree provides the read-only configuration tree consumed by
// the bootstrap core. A Tree is addressed with dot-separated paths such as
// "application.logger.level" and is parsed from HCL, JSON/JSONC or YAML
// sources into a single cty value model, so callers never depend on the
// source syntax.
package configtree
