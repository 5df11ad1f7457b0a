package sesdiff

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op

// Op identifies the kind of a single Edit (spec.md §3, "Edit").
type Op int

const (
	// Equal means the value is unchanged between old and new.
	Equal Op = iota
	// Add means the value was inserted into new.
	Add
	// Remove means the value was deleted from old.
	Remove
)
