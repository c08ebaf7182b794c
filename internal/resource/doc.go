// Package resource implements the two-tier lookup shared by every resolver
// in the bootstrap: a path is first looked up on the real filesystem and,
// when absent there, in the resources bundled with the binary under the same
// relative path.
package resource
