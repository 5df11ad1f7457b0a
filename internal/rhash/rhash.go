// Package rhash implements the polynomial rolling hash spec.md §4.3
// mandates for the anchor finder's window index: a fixed base/modulus
// Rabin-Karp hash over integer symbol windows with O(1) slide.
//
// No example in the retrieved corpus computes a sliding polynomial hash
// over integer sequences: the teacher hashes whole elements once with
// hash/fnv (dacharyc-diffx/element.go, StringElement.Hash) and never
// slides a window, so this file is built directly from the spec's
// formula rather than adapted from an existing implementation. Collision
// handling (re-verifying equality on hash match) is the caller's
// responsibility, per spec.md §4.3.
package rhash

// Base and Modulus are the fixed polynomial hash parameters spec.md §4.3
// specifies. uint64 comfortably holds (Base-1)*Modulus without overflow,
// as spec.md §9 requires.
const (
	Base    uint64 = 31
	Modulus uint64 = 1_000_000_009
)

// Hash is a rolling polynomial hash value, always reduced mod Modulus.
type Hash uint64

// Window computes h_w = sum_{i=0}^{w-1} ids[i] * Base^(w-1-i) mod Modulus
// for the window ids[start:start+w].
func Window(ids []int, start, w int) Hash {
	var h uint64
	for i := 0; i < w; i++ {
		h = (h*Base + uint64(ids[start+i])) % Modulus
	}
	return Hash(h)
}

// Pow returns Base^n mod Modulus, the value Slide needs to remove a
// leading symbol's contribution.
func Pow(n int) Hash {
	var result uint64 = 1
	b := Base % Modulus
	for i := 0; i < n; i++ {
		result = (result * b) % Modulus
	}
	return Hash(result)
}

// Slide advances the hash of a w-symbol window by one position: it
// removes the leading symbol (whose weight is highestPow = Base^(w-1)),
// multiplies by Base, and adds the trailing symbol, all mod Modulus.
func (h Hash) Slide(leaving, entering int, highestPow Hash) Hash {
	v := uint64(h)
	lead := (uint64(leaving) * uint64(highestPow)) % Modulus
	// Subtract mod Modulus without going negative.
	v = (v + Modulus - lead) % Modulus
	v = (v * Base) % Modulus
	v = (v + uint64(entering)) % Modulus
	return Hash(v)
}
