// Package linker tracks which condition mentions have already been
// linked within a single conversion run, so only the first occurrence
// of each distinct condition+degree pair becomes a link.
package linker

import "strings"

// Linker holds the per-run dedup set. Each conversion constructs a
// fresh one; instances are never shared across runs.
type Linker struct {
	seen map[string]bool
}

// New returns an empty linker.
func New() *Linker {
	return &Linker{seen: map[string]bool{}}
}

// Claim reports whether the (name, degree) pair is the first of its
// kind this run, recording it if so. A different degree of the same
// condition is a distinct key. The legacy "flat-footed" key is unified
// with "off-guard" so the two spellings dedup together.
func (l *Linker) Claim(name, degree string) bool {
	key := strings.ToLower(name)
	if degree != "" {
		key += "-" + degree
	}
	if key == "flat-footed" {
		key = "off-guard"
	}
	if l.seen[key] {
		return false
	}
	l.seen[key] = true
	return true
}
