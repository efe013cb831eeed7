// Package pipeline derives the deterministic output locations of the
// three stages from the polyhedron's identity, and carries the small
// amount of glue the CLI shares between subcommands. Re-running a stage
// overwrites its prior output; there are no timestamped directories, so
// downstream stages always find their input at the same place.
package pipeline
