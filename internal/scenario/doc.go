// Package scenario defines the scenario descriptor: a named, versioned,
// priority-ranked unit of work read from one configuration file, together
// with the sub-units ("cubs") it declares and the Launcher extension point
// that executes it.
package scenario
