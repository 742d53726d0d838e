// Package greekeval scores automatic speech recognition output against
// human-verified reference transcripts for the Greek language.
//
// The central entry point is [Evaluator.Evaluate], which turns a
// (reference, hypothesis) pair into one consolidated [MetricsRecord]: Word
// Error Rate, Character Error Rate, per-operation edit counts, diacritic
// accuracy, Greek-character accuracy, and the detected orthography.
// [Evaluator.CalculateWER] and [Evaluator.CalculateCER] expose the two
// headline numbers standalone, built on the same normalization and distance
// primitives so both surfaces always agree.
//
// Evaluation is a pure function of its inputs: no I/O, no shared state, and
// no error conditions — every edge case (empty strings, no diacritics, no
// Greek characters) folds into a defined numeric output. An Evaluator is
// read-only after construction and safe for concurrent use.
package greekeval

import (
	"github.com/antzucaro/matchr"

	"github.com/hellasr/greekeval/pkg/diacritics"
	"github.com/hellasr/greekeval/pkg/editdist"
	"github.com/hellasr/greekeval/pkg/greekscript"
	"github.com/hellasr/greekeval/pkg/textnorm"
)

// DefaultRateCap is the ceiling applied to WER and CER. Insertion-heavy
// hypotheses can legitimately push true edit distance past 100% of the
// reference length; the cap is a documented lossy clamp so downstream
// consumers never see pathological values. Override with [WithRateCap].
const DefaultRateCap = 200.0

// Option is a functional option for configuring an [Evaluator].
type Option func(*Evaluator)

// WithConfig sets the normalization configuration applied to both texts
// before any comparison. Default: [textnorm.DefaultConfig].
func WithConfig(cfg textnorm.Config) Option {
	return func(e *Evaluator) {
		e.cfg = cfg
	}
}

// WithRateCap sets the ceiling applied to WER and CER.
// Default: [DefaultRateCap].
func WithRateCap(limit float64) Option {
	return func(e *Evaluator) {
		e.rateCap = limit
	}
}

// Evaluator computes evaluation metrics for Greek ASR output. It is
// read-only after construction and safe for concurrent use.
type Evaluator struct {
	cfg     textnorm.Config
	rateCap float64
}

// New returns an [Evaluator] configured with the supplied options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		cfg:     textnorm.DefaultConfig(),
		rateCap: DefaultRateCap,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// defaultEvaluator backs the package-level convenience functions.
var defaultEvaluator = New()

// MetricsRecord is the consolidated result of one evaluation. It is a pure
// value: created once, never mutated, and directly serializable.
type MetricsRecord struct {
	// WER and CER are the word and character error rates as percentages of
	// the reference length, capped at the evaluator's rate cap.
	WER float64 `json:"wer"`
	CER float64 `json:"cer"`

	// WordAccuracy and CharAccuracy are 100 − WER and 100 − CER. They go
	// negative when the corresponding rate exceeds 100.
	WordAccuracy float64 `json:"word_accuracy"`
	CharAccuracy float64 `json:"char_accuracy"`

	// WordOps attributes the word-level edit distance to substitutions,
	// deletions, and insertions.
	WordOps editdist.OpCounts `json:"word_ops"`

	// Diacritics scores accent-mark placement inside aligned word pairs.
	Diacritics diacritics.Stats `json:"diacritics"`

	// GreekCharAccuracy is character-level accuracy restricted to
	// Greek-script characters, floored at 0.
	GreekCharAccuracy float64 `json:"greek_char_accuracy"`

	// Token and character counts of the normalized texts.
	ReferenceWords  int `json:"reference_words"`
	HypothesisWords int `json:"hypothesis_words"`
	ReferenceChars  int `json:"reference_chars"`
	HypothesisChars int `json:"hypothesis_chars"`

	// Orthography is the diacritic system detected on the raw reference.
	Orthography greekscript.Orthography `json:"orthography"`

	// Similarity is the Jaro-Winkler similarity of the normalized texts,
	// in [0, 1]. A near-miss signal that stays informative when WER
	// saturates.
	Similarity float64 `json:"similarity"`
}

// Evaluate scores hypothesis against reference and returns the consolidated
// metrics record. It never fails; empty inputs follow the documented
// conventions (both empty → perfect, empty reference against a non-empty
// hypothesis → total error).
func (e *Evaluator) Evaluate(reference, hypothesis string) MetricsRecord {
	normRef := textnorm.Normalize(reference, e.cfg)
	normHyp := textnorm.Normalize(hypothesis, e.cfg)

	refWords := textnorm.Words(normRef)
	hypWords := textnorm.Words(normHyp)
	refChars := textnorm.Chars(normRef)
	hypChars := textnorm.Chars(normHyp)

	rec := MetricsRecord{
		ReferenceWords:  len(refWords),
		HypothesisWords: len(hypWords),
		ReferenceChars:  len(refChars),
		HypothesisChars: len(hypChars),
		Orthography:     greekscript.Detect(reference),
	}

	rec.WER = e.rate(editdist.Distance(refWords, hypWords), len(refWords), len(hypWords))
	rec.CER = e.rate(editdist.Distance(refChars, hypChars), len(refChars), len(hypChars))
	rec.WordAccuracy = 100 - rec.WER
	rec.CharAccuracy = 100 - rec.CER

	rec.WordOps = editdist.DistanceDetailed(refWords, hypWords)
	rec.Diacritics = diacritics.Analyze(reference, hypothesis, e.cfg)
	rec.GreekCharAccuracy = greekCharAccuracy(normRef, normHyp)

	if normRef == normHyp {
		rec.Similarity = 1
	} else {
		rec.Similarity = matchr.JaroWinkler(normRef, normHyp, false)
	}
	return rec
}

// CalculateWER returns only the word error rate for the pair, with behavior
// identical to the WER field of [Evaluator.Evaluate].
func (e *Evaluator) CalculateWER(reference, hypothesis string) float64 {
	refWords := textnorm.Words(textnorm.Normalize(reference, e.cfg))
	hypWords := textnorm.Words(textnorm.Normalize(hypothesis, e.cfg))
	return e.rate(editdist.Distance(refWords, hypWords), len(refWords), len(hypWords))
}

// CalculateCER returns only the character error rate for the pair, with
// behavior identical to the CER field of [Evaluator.Evaluate].
func (e *Evaluator) CalculateCER(reference, hypothesis string) float64 {
	refChars := textnorm.Chars(textnorm.Normalize(reference, e.cfg))
	hypChars := textnorm.Chars(textnorm.Normalize(hypothesis, e.cfg))
	return e.rate(editdist.Distance(refChars, hypChars), len(refChars), len(hypChars))
}

// Evaluate scores the pair with the default configuration.
func Evaluate(reference, hypothesis string) MetricsRecord {
	return defaultEvaluator.Evaluate(reference, hypothesis)
}

// CalculateWER returns the word error rate under the default configuration.
func CalculateWER(reference, hypothesis string) float64 {
	return defaultEvaluator.CalculateWER(reference, hypothesis)
}

// CalculateCER returns the character error rate under the default
// configuration.
func CalculateCER(reference, hypothesis string) float64 {
	return defaultEvaluator.CalculateCER(reference, hypothesis)
}

// rate converts an edit distance into a percentage of the reference length.
// A zero-length reference cannot be divided by: against an empty hypothesis
// that is a perfect trivial match (0), against anything else it is total
// error (100). The result is clamped at the evaluator's rate cap.
func (e *Evaluator) rate(distance, refLen, hypLen int) float64 {
	if refLen == 0 {
		if hypLen == 0 {
			return 0
		}
		return 100
	}
	return min(float64(distance)/float64(refLen)*100, e.rateCap)
}

// greekCharAccuracy computes character-level accuracy over the Greek-script
// characters of the two normalized texts: 100 when neither side has any,
// 0 when only the hypothesis does, otherwise 100 minus the character error
// rate of the filtered strings, floored at 0.
func greekCharAccuracy(normRef, normHyp string) float64 {
	refGreek := greekOnly(normRef)
	hypGreek := greekOnly(normHyp)

	if len(refGreek) == 0 {
		if len(hypGreek) == 0 {
			return 100
		}
		return 0
	}

	d := editdist.Distance(refGreek, hypGreek)
	return max(0, 100-float64(d)/float64(len(refGreek))*100)
}

// greekOnly filters s down to its Greek-script runes.
func greekOnly(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if greekscript.IsGreek(r) {
			out = append(out, r)
		}
	}
	return out
}
