// Package diacritics measures how accurately an ASR hypothesis reproduces
// the diacritic marks (τόνοι) of a Greek reference transcript.
//
// Reference and hypothesis are aligned at the word level with the same
// edit-distance machinery used for WER, and accent marks are compared
// position-by-position only inside word pairs that share the same base form
// once all diacritics are stripped — comparing accent placement across two
// entirely different words carries no signal.
package diacritics

import (
	"github.com/hellasr/greekeval/pkg/editdist"
	"github.com/hellasr/greekeval/pkg/greekscript"
	"github.com/hellasr/greekeval/pkg/textnorm"
)

// Stats summarises diacritic placement across one reference/hypothesis
// pair. Counts cover the whole pair; the percentages are derived:
// Accuracy and Recall are Correct/Total, Precision is
// Correct/(Correct+Extra), each defined as 100 when its denominator is
// zero — no diacritics to get wrong means a perfect score by convention.
type Stats struct {
	TotalDiacritics   int     `json:"total_diacritics"`
	CorrectDiacritics int     `json:"correct_diacritics"`
	MissedDiacritics  int     `json:"missed_diacritics"`
	ExtraDiacritics   int     `json:"extra_diacritics"`
	Accuracy          float64 `json:"accuracy"`
	Precision         float64 `json:"precision"`
	Recall            float64 `json:"recall"`
}

// Analyze compares the diacritics of hypothesis against reference.
//
// Both texts are normalized with cfg — which folds accent systems but never
// strips accents — and word-aligned. Per alignment pair:
//
//   - Deleted reference words contribute their diacritics to the total only;
//     an entirely missed word yields neither correct nor extra marks.
//   - Inserted hypothesis words contribute nothing.
//   - Word pairs with equal diacritic-stripped base forms are walked
//     position-by-position, counting correct, missed, and extra marks.
//   - Word pairs with different base forms count every reference diacritic
//     as missed; accent alignment inside a different word is meaningless.
//
// Analyze is total: empty inputs yield zero counts and 100% scores.
func Analyze(reference, hypothesis string, cfg textnorm.Config) Stats {
	refWords := textnorm.Words(textnorm.Normalize(reference, cfg))
	hypWords := textnorm.Words(textnorm.Normalize(hypothesis, cfg))

	var s Stats
	for _, p := range editdist.Align(refWords, hypWords) {
		switch {
		case p.Hyp == editdist.Gap:
			s.TotalDiacritics += countDiacritics(refWords[p.Ref])
		case p.Ref == editdist.Gap:
			// Entirely extraneous word: nothing to score against.
		default:
			s.comparePair(refWords[p.Ref], hypWords[p.Hyp])
		}
	}

	s.Accuracy = percentage(s.CorrectDiacritics, s.TotalDiacritics)
	s.Recall = s.Accuracy
	s.Precision = percentage(s.CorrectDiacritics, s.CorrectDiacritics+s.ExtraDiacritics)
	return s
}

// comparePair scores the diacritics of one aligned word pair.
func (s *Stats) comparePair(ref, hyp string) {
	if textnorm.RemoveDiacritics(ref) != textnorm.RemoveDiacritics(hyp) {
		// A different word entirely: every reference diacritic is missed.
		n := countDiacritics(ref)
		s.TotalDiacritics += n
		s.MissedDiacritics += n
		return
	}

	// Same base form, so the words have the same length and positions
	// correspond one-to-one.
	refRunes := []rune(ref)
	hypRunes := []rune(hyp)

	for i, r := range refRunes {
		if !greekscript.IsMonotonicAccented(r) {
			continue
		}
		s.TotalDiacritics++
		if i < len(hypRunes) && hypRunes[i] == r {
			s.CorrectDiacritics++
		} else {
			s.MissedDiacritics++
		}
	}
	for i, r := range hypRunes {
		if !greekscript.IsMonotonicAccented(r) {
			continue
		}
		if i >= len(refRunes) || !greekscript.IsMonotonicAccented(refRunes[i]) {
			s.ExtraDiacritics++
		}
	}
}

// countDiacritics returns the number of accented characters in word.
func countDiacritics(word string) int {
	n := 0
	for _, r := range word {
		if greekscript.IsMonotonicAccented(r) {
			n++
		}
	}
	return n
}

func percentage(num, den int) float64 {
	if den == 0 {
		return 100
	}
	return float64(num) / float64(den) * 100
}
