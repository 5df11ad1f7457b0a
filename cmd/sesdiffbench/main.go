// Command sesdiffbench compares sesdiff's built-in strategies against
// github.com/sergi/go-diff/diffmatchpatch on a handful of representative
// inputs, reporting timing and change-region fragmentation for each.
//
// Adapted from the teacher's cmd/compare (dacharyc-diffx/cmd/compare/main.go):
// same test-case table, same before/after timing and change-region
// counting, generalized from one fixed algorithm to every registered
// sesdiff strategy run back to back.
package main

import (
	"fmt"
	"strings"
	"time"

	godiff "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/fishan/sesdiff"
)

func main() {
	testCases := []struct {
		name string
		a, b []string
	}{
		{
			name: "Fox example (common anchor word)",
			a:    []string{"The", "quick", "brown", "fox", "jumps"},
			b:    []string{"A", "slow", "red", "fox", "leaps"},
		},
		{
			name: "Prose with common words",
			a:    strings.Split("The quick brown fox jumps over the lazy dog in the park", " "),
			b:    strings.Split("A slow red fox leaps over the sleeping cat in the garden", " "),
		},
		{
			name: "Code-like tokens",
			a:    strings.Split("func main ( ) { fmt . Println ( hello ) }", " "),
			b:    strings.Split("func main ( ) { log . Printf ( world ) }", " "),
		},
	}

	largeA := generateLargeText(500, 0)
	largeB := generateLargeText(500, 42)
	testCases = append(testCases, struct {
		name string
		a, b []string
	}{
		name: "Large file (500 lines, scattered changes)",
		a:    largeA,
		b:    largeB,
	})

	strategies := []string{"commonSES", "patienceDiff", "preserveStructure", "readableSES"}
	engine := sesdiff.NewEngine()

	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)
		fmt.Printf("A: %d elements, B: %d elements\n", len(tc.a), len(tc.b))

		for _, name := range strategies {
			cfg := sesdiff.DefaultConfig()
			cfg.StrategyName = name

			start := time.Now()
			edits, err := engine.Diff(tc.a, tc.b, false, &cfg)
			elapsed := time.Since(start)
			if err != nil {
				fmt.Printf("\n%s: error: %v\n", name, err)
				continue
			}

			stats := analyzeEdits(edits)
			fmt.Printf("\n%s: %v\n", name, elapsed)
			fmt.Printf("  Operations: %d (Equal: %d, Remove: %d, Add: %d)\n",
				stats.total, stats.equal, stats.remove, stats.add)
			fmt.Printf("  Change regions: %d\n", stats.changeRegions)
		}

		dmp := godiff.New()
		start := time.Now()
		aText := strings.Join(tc.a, "\n")
		bText := strings.Join(tc.b, "\n")
		goDiffs := dmp.DiffMain(aText, bText, true)
		goDiffTime := time.Since(start)

		goDiffStats := analyzeGoDiff(goDiffs)
		fmt.Printf("\ngo-diff: %v\n", goDiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
			goDiffStats.total, goDiffStats.equal, goDiffStats.remove, goDiffStats.add)
		fmt.Printf("  Change regions: %d\n", goDiffStats.changeRegions)
	}
}

type diffStats struct {
	total, equal, remove, add int
	changeRegions              int
}

func analyzeEdits(edits []sesdiff.Edit) diffStats {
	var s diffStats
	s.total = len(edits)
	inChange := false
	for _, e := range edits {
		switch e.Kind {
		case sesdiff.Equal:
			s.equal++
			inChange = false
		case sesdiff.Remove:
			s.remove++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case sesdiff.Add:
			s.add++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	s.total = len(diffs)
	inChange := false
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.equal++
			inChange = false
		case godiff.DiffDelete:
			s.remove++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case godiff.DiffInsert:
			s.add++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func generateLargeText(lines int, seed int) []string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = "CHANGED LINE " + fmt.Sprint(i)
	}

	return result
}
