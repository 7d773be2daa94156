// Package rule holds the pure card rules: matching and x-derived stack order
package rule

import "github.com/lixenwraith/stackmatch/core"

// CanMatch reports whether candidate may be played onto top
// Faces must differ by exactly one; there is no wraparound between K and A
// Both cards must be non-nil, a missing top is the caller's concern
func CanMatch(candidate, top *core.Card) bool {
	return Adjacent(candidate.Face, top.Face)
}

// Adjacent reports whether two faces differ by exactly one
func Adjacent(a, b int) bool {
	d := a - b
	return d == 1 || d == -1
}
