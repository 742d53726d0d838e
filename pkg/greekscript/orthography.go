package greekscript

// Orthography identifies which Greek diacritic system a text is written in.
type Orthography string

const (
	// Monotonic is the single-accent system of Modern Greek, standard
	// since 1982. It is also the default for unaccented text.
	Monotonic Orthography = "monotonic"

	// Polytonic is the traditional multi-accent and breathing-mark system
	// used in Ancient Greek and pre-reform Modern Greek.
	Polytonic Orthography = "polytonic"

	// Mixed marks text that carries accents from both systems.
	Mixed Orthography = "mixed"
)

// IsValid reports whether o is a recognised orthography.
func (o Orthography) IsValid() bool {
	switch o {
	case Monotonic, Polytonic, Mixed:
		return true
	}
	return false
}

// Detect classifies the diacritic system of text.
//
// It scans for precomposed monotonic accented vowels and for Greek Extended
// (polytonic) codepoints. Text containing only polytonic marks is Polytonic,
// text containing only monotonic marks — or no accents at all — is
// Monotonic, and text containing both is Mixed.
//
// Detect should be given raw text: normalization folds polytonic marks away
// and would erase the signal.
func Detect(text string) Orthography {
	var mono, poly bool
	for _, r := range text {
		switch {
		case IsPolytonic(r):
			poly = true
		case IsMonotonicAccented(r):
			mono = true
		}
		if mono && poly {
			return Mixed
		}
	}
	if poly {
		return Polytonic
	}
	return Monotonic
}
