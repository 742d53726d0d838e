package diacritics_test

import (
	"testing"

	"github.com/hellasr/greekeval/pkg/diacritics"
	"github.com/hellasr/greekeval/pkg/textnorm"
)

func TestAnalyzeIdentical(t *testing.T) {
	t.Parallel()

	s := diacritics.Analyze("καλησπέρα σε όλους", "καλησπέρα σε όλους", textnorm.DefaultConfig())

	if s.Accuracy != 100 || s.Precision != 100 || s.Recall != 100 {
		t.Errorf("identical text: accuracy=%v precision=%v recall=%v, want 100 each", s.Accuracy, s.Precision, s.Recall)
	}
	if s.MissedDiacritics != 0 || s.ExtraDiacritics != 0 {
		t.Errorf("identical text: missed=%d extra=%d, want 0 each", s.MissedDiacritics, s.ExtraDiacritics)
	}
	if s.TotalDiacritics != 2 || s.CorrectDiacritics != 2 {
		t.Errorf("total=%d correct=%d, want 2 each", s.TotalDiacritics, s.CorrectDiacritics)
	}
}

func TestAnalyzeMissingTonos(t *testing.T) {
	t.Parallel()

	// The hypothesis drops the tonos on πώς and nothing else.
	ref := "Καλησπέρα, πώς είστε σήμερα;"
	hyp := "Καλησπέρα, πως είστε σήμερα;"

	s := diacritics.Analyze(ref, hyp, textnorm.DefaultConfig())

	if s.TotalDiacritics != 4 {
		t.Errorf("TotalDiacritics = %d, want 4", s.TotalDiacritics)
	}
	if s.CorrectDiacritics != 3 {
		t.Errorf("CorrectDiacritics = %d, want 3", s.CorrectDiacritics)
	}
	if s.MissedDiacritics != 1 {
		t.Errorf("MissedDiacritics = %d, want 1", s.MissedDiacritics)
	}
	if s.ExtraDiacritics != 0 {
		t.Errorf("ExtraDiacritics = %d, want 0", s.ExtraDiacritics)
	}
	if s.Accuracy != 75 {
		t.Errorf("Accuracy = %v, want 75", s.Accuracy)
	}
	if s.Precision != 100 {
		t.Errorf("Precision = %v, want 100", s.Precision)
	}
}

func TestAnalyzeExtraTonos(t *testing.T) {
	t.Parallel()

	// The reference is unaccented, the hypothesis adds an accent.
	s := diacritics.Analyze("πως", "πώς", textnorm.DefaultConfig())

	if s.TotalDiacritics != 0 {
		t.Errorf("TotalDiacritics = %d, want 0", s.TotalDiacritics)
	}
	if s.ExtraDiacritics != 1 {
		t.Errorf("ExtraDiacritics = %d, want 1", s.ExtraDiacritics)
	}
	// Nothing to recall, so accuracy stays perfect by convention, but the
	// spurious accent tanks precision.
	if s.Accuracy != 100 {
		t.Errorf("Accuracy = %v, want 100", s.Accuracy)
	}
	if s.Precision != 0 {
		t.Errorf("Precision = %v, want 0", s.Precision)
	}
}

func TestAnalyzeDeletedWord(t *testing.T) {
	t.Parallel()

	// A dropped word contributes its diacritics to the total only.
	s := diacritics.Analyze("ήρθε το τρένο", "το τρένο", textnorm.DefaultConfig())

	if s.TotalDiacritics != 2 {
		t.Errorf("TotalDiacritics = %d, want 2", s.TotalDiacritics)
	}
	if s.CorrectDiacritics != 1 {
		t.Errorf("CorrectDiacritics = %d, want 1", s.CorrectDiacritics)
	}
	if s.Accuracy != 50 {
		t.Errorf("Accuracy = %v, want 50", s.Accuracy)
	}
}

func TestAnalyzeInsertedWord(t *testing.T) {
	t.Parallel()

	// An entirely extraneous hypothesis word contributes nothing, not even
	// extra diacritics.
	s := diacritics.Analyze("το τρένο", "ήρθε το τρένο", textnorm.DefaultConfig())

	if s.TotalDiacritics != 1 || s.CorrectDiacritics != 1 {
		t.Errorf("total=%d correct=%d, want 1 each", s.TotalDiacritics, s.CorrectDiacritics)
	}
	if s.ExtraDiacritics != 0 {
		t.Errorf("ExtraDiacritics = %d, want 0", s.ExtraDiacritics)
	}
}

func TestAnalyzeDifferentBaseWord(t *testing.T) {
	t.Parallel()

	// A substituted word with a different base form counts every reference
	// diacritic as missed; accent positions inside it are not compared.
	s := diacritics.Analyze("φτάνει", "φεύγει", textnorm.DefaultConfig())

	if s.TotalDiacritics != 1 {
		t.Errorf("TotalDiacritics = %d, want 1", s.TotalDiacritics)
	}
	if s.MissedDiacritics != 1 {
		t.Errorf("MissedDiacritics = %d, want 1", s.MissedDiacritics)
	}
	if s.CorrectDiacritics != 0 {
		t.Errorf("CorrectDiacritics = %d, want 0", s.CorrectDiacritics)
	}
	if s.ExtraDiacritics != 0 {
		t.Errorf("ExtraDiacritics = %d, want 0", s.ExtraDiacritics)
	}
}

func TestAnalyzeEmptyInputs(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ ref, hyp string }{
		{"", ""},
		{"", "καλημέρα"},
		{"καλημερα χωρις τονους", ""},
	} {
		s := diacritics.Analyze(tc.ref, tc.hyp, textnorm.DefaultConfig())
		if s.Accuracy != 100 || s.Precision != 100 {
			t.Errorf("Analyze(%q, %q): accuracy=%v precision=%v, want 100 each",
				tc.ref, tc.hyp, s.Accuracy, s.Precision)
		}
	}
}

func TestAnalyzePolytonicFoldedBeforeComparison(t *testing.T) {
	t.Parallel()

	// With diacritic normalization on, a polytonic reference accent and a
	// monotonic hypothesis accent on the same vowel agree.
	s := diacritics.Analyze("καὶ", "καί", textnorm.DefaultConfig())

	if s.TotalDiacritics != 1 || s.CorrectDiacritics != 1 {
		t.Errorf("total=%d correct=%d, want 1 each", s.TotalDiacritics, s.CorrectDiacritics)
	}
	if s.Accuracy != 100 {
		t.Errorf("Accuracy = %v, want 100", s.Accuracy)
	}
}
