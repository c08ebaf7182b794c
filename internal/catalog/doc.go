// Package catalog discovers scenario descriptor files in a directory and
// turns them into a priority-ordered, duplicate-free sequence.
//
// The directory is looked up with the two-tier policy of package resource.
// A descriptor that fails to parse is logged and skipped, and a directory
// that cannot be found or listed yields an empty catalog; neither condition
// is reported to the caller as an error.
package catalog
