// Package token maps string sequences onto integer-identifier sequences
// shared across both inputs of a diff: identical strings in old and new
// receive the same integer identity, regardless of which input encountered
// them first.
//
// This generalizes the teacher's single-sequence Element/Hash interning
// (diffx.toElements, diffx.StringElement) into a joint table covering both
// sequences, since the engine core (spec.md) requires stable cross-sequence
// symbol identity rather than per-sequence hashing.
package token

// Table maps integer identifiers back to their original strings.
// The numeric order of identifiers is arbitrary and only meaningful
// within one Tokenize call.
type Table struct {
	strings []string
}

// String returns the original string for id. It panics if id is out of
// range, which would indicate an engine bug: every id handed back to a
// caller is produced by Tokenize and never removed from the table.
func (t *Table) String(id int) string {
	return t.strings[id]
}

// Len returns the number of distinct strings in the table.
func (t *Table) Len() int {
	return len(t.strings)
}

// Tokenize walks old and new once each, assigning the next identifier to
// every previously-unseen string and reusing identifiers for repeats,
// including repeats that cross from old into new. It returns parallel
// integer sequences of the same lengths as old and new, plus the id to
// string table needed to translate edit operations back to strings.
func Tokenize(old, new []string) (oldIDs, newIDs []int, table *Table) {
	ids := make(map[string]int, len(old)+len(new))
	table = &Table{}

	intern := func(s string) int {
		if id, ok := ids[s]; ok {
			return id
		}
		id := len(table.strings)
		ids[s] = id
		table.strings = append(table.strings, s)
		return id
	}

	oldIDs = make([]int, len(old))
	for i, s := range old {
		oldIDs[i] = intern(s)
	}
	newIDs = make([]int, len(new))
	for i, s := range new {
		newIDs[i] = intern(s)
	}
	return oldIDs, newIDs, table
}
