// Package bundled holds the resources compiled into the bricks binary: the
// default application configuration and the default scenario directory.
package bundled

import "embed"

// FS is rooted so that "app/config/app-default.conf" and "scenario" are
// found under the same relative paths the configuration uses.
//
//go:embed app scenario
var FS embed.FS
