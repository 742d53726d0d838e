// Package greekscript provides Unicode classification helpers for Greek
// text: script-range membership, accent detection, and classification of a
// text's diacritic system (monotonic vs. polytonic orthography).
//
// All functions are pure and safe for concurrent use.
package greekscript

import "strings"

// monotonicAccented holds every precomposed monotonic accented vowel:
// tonos forms in both cases plus the dialytika-with-tonos forms.
const monotonicAccented = "άέήίόύώΐΰΆΈΉΊΌΎΏ"

// IsGreek reports whether r belongs to the Greek script ranges used
// throughout the evaluator: Greek and Coptic (U+0370–03FF) and Greek
// Extended (U+1F00–1FFF).
func IsGreek(r rune) bool {
	return (r >= 0x0370 && r <= 0x03FF) || IsPolytonic(r)
}

// IsPolytonic reports whether r lies in the Greek Extended block
// (U+1F00–1FFF), which holds the polytonic breathing/accent combinations.
func IsPolytonic(r rune) bool {
	return r >= 0x1F00 && r <= 0x1FFF
}

// IsMonotonicAccented reports whether r is a precomposed monotonic accented
// vowel (tonos or dialytika-with-tonos, either case).
func IsMonotonicAccented(r rune) bool {
	return strings.ContainsRune(monotonicAccented, r)
}
