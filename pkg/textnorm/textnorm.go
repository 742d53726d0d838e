// Package textnorm canonicalizes Greek text so that an ASR hypothesis and a
// human reference transcript can be compared fairly.
//
// Normalization handles the usual suspects (case, punctuation, whitespace,
// Unicode composition) plus the Greek-specific ones: the final/medial sigma
// distinction, dialytika-with-tonos unification, and folding of polytonic
// accent marks onto their monotonic equivalents so that transcripts written
// in the two competing orthographies score against each other on content
// rather than accent convention.
//
// All functions are pure and safe for concurrent use.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hellasr/greekeval/pkg/greekscript"
)

// Config controls which normalization steps Normalize applies. The zero
// value disables every step; use DefaultConfig for standard scoring.
// Config is a value type, created once per evaluation and never mutated.
type Config struct {
	// Lowercase folds text to lower case.
	Lowercase bool

	// RemovePunctuation replaces every rune outside Greek letters,
	// whitespace, and (when NormalizeNumbers is set) digits with a space.
	RemovePunctuation bool

	// NormalizeDiacritics folds polytonic accent marks (oxia, varia,
	// perispomeni) to the monotonic tonos and drops breathings and iota
	// subscripts, which have no monotonic rendering.
	NormalizeDiacritics bool

	// NormalizeNumbers keeps digits when RemovePunctuation is set.
	NormalizeNumbers bool

	// NormalizeWhitespace collapses whitespace runs to a single space and
	// trims leading/trailing whitespace.
	NormalizeWhitespace bool

	// GreekSpecific maps final sigma (ς) to medial sigma (σ) and unifies
	// dialytika-with-tonos (ΐ, ΰ) to bare dialytika (ϊ, ϋ).
	GreekSpecific bool
}

// DefaultConfig returns the configuration used for standard Greek ASR
// scoring: every normalization step enabled.
func DefaultConfig() Config {
	return Config{
		Lowercase:           true,
		RemovePunctuation:   true,
		NormalizeDiacritics: true,
		NormalizeNumbers:    true,
		NormalizeWhitespace: true,
		GreekSpecific:       true,
	}
}

// greekFolds implements the GreekSpecific step. Input is NFC, so the
// dialytika-with-tonos vowels arrive precomposed.
var greekFolds = strings.NewReplacer("ς", "σ", "ΐ", "ϊ", "ΰ", "ϋ")

// Normalize canonicalizes text according to cfg. Empty input yields the
// empty string; Normalize never fails. It is idempotent: normalizing
// already-normalized text is a no-op.
func Normalize(text string, cfg Config) string {
	if text == "" {
		return ""
	}

	// NFC first so precomposed and decomposed accented letters compare equal.
	text = norm.NFC.String(text)

	if cfg.Lowercase {
		text = strings.ToLower(text)
	}
	if cfg.GreekSpecific {
		text = greekFolds.Replace(text)
	}
	if cfg.NormalizeDiacritics {
		text = foldPolytonic(text)
	}
	if cfg.RemovePunctuation {
		text = stripPunctuation(text, cfg.NormalizeNumbers)
	}
	if cfg.NormalizeWhitespace {
		text = strings.Join(strings.Fields(text), " ")
	}
	return text
}

// Words splits normalized text into its word tokens.
func Words(text string) []string {
	return strings.Fields(text)
}

// Chars returns the rune sequence of text with all whitespace removed —
// the token sequence used for character-level error rates.
func Chars(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return out
}

// RemoveDiacritics strips every accent, breathing, dialytika, and other
// combining mark from text, producing the bare base form of each letter.
// Used to decide whether two aligned words are "the same word, possibly
// different accentuation".
func RemoveDiacritics(text string) string {
	if text == "" {
		return ""
	}
	// A transform.Transformer carries internal state, so build a fresh
	// chain per call to stay safe for concurrent use.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

// Combining marks relevant to Greek accentuation, in decomposed (NFD) form.
const (
	markVaria        = 0x0300 // grave
	markOxia         = 0x0301 // acute; identical to the monotonic tonos
	markDialytika    = 0x0308
	markPsili        = 0x0313 // smooth breathing
	markDasia        = 0x0314 // rough breathing
	markVariaTone    = 0x0340 // non-decomposing grave tone mark
	markOxiaTone     = 0x0341 // non-decomposing acute tone mark
	markPerispomeni  = 0x0342 // circumflex
	markKoronis      = 0x0343
	markYpogegrammen = 0x0345 // iota subscript
	markMacron       = 0x0304
	markBreve        = 0x0306
)

// foldPolytonic rewrites polytonic accentuation to its monotonic rendering:
// every accent (oxia, varia, perispomeni) becomes a single tonos, while
// breathings, iota subscripts, and length marks are dropped. Dialytika is
// kept. The text is decomposed, rewritten mark-by-mark, and recomposed so
// that precomposed and combining inputs behave identically.
func foldPolytonic(s string) string {
	if !strings.ContainsFunc(s, greekscript.IsPolytonic) {
		return s
	}

	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))

	haveTonos := false
	for _, r := range decomposed {
		switch r {
		case markVaria, markOxia, markVariaTone, markOxiaTone, markPerispomeni:
			// At most one tonos per base letter.
			if !haveTonos {
				b.WriteRune(markOxia)
				haveTonos = true
			}
		case markPsili, markDasia, markKoronis, markYpogegrammen, markMacron, markBreve:
			// No monotonic rendering.
		default:
			if !unicode.Is(unicode.Mn, r) {
				haveTonos = false
			}
			b.WriteRune(r)
		}
	}
	return norm.NFC.String(b.String())
}

// stripPunctuation replaces every rune outside the keep-set — Greek
// letters, whitespace, and optionally digits — with a single space.
func stripPunctuation(s string, keepDigits bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case greekscript.IsGreek(r) && unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		case keepDigits && unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}
