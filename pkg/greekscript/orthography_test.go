package greekscript_test

import (
	"testing"

	"github.com/hellasr/greekeval/pkg/greekscript"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want greekscript.Orthography
	}{
		{
			name: "plain unaccented",
			text: "καλημερα σε ολους",
			want: greekscript.Monotonic,
		},
		{
			name: "monotonic accents",
			text: "καλησπέρα, πώς είστε;",
			want: greekscript.Monotonic,
		},
		{
			name: "dialytika with tonos counts as monotonic",
			text: "προΐσταμαι ΰ",
			want: greekscript.Monotonic,
		},
		{
			name: "polytonic only",
			text: "καὶ ἐγὼ ἦλθον",
			want: greekscript.Polytonic,
		},
		{
			name: "both systems",
			text: "καὶ εγώ",
			want: greekscript.Mixed,
		},
		{
			name: "empty",
			text: "",
			want: greekscript.Monotonic,
		},
		{
			name: "non greek",
			text: "hello world 123",
			want: greekscript.Monotonic,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := greekscript.Detect(tc.text); got != tc.want {
				t.Errorf("Detect(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestOrthographyIsValid(t *testing.T) {
	t.Parallel()

	for _, o := range []greekscript.Orthography{greekscript.Monotonic, greekscript.Polytonic, greekscript.Mixed} {
		if !o.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", o)
		}
	}
	if greekscript.Orthography("ancient").IsValid() {
		t.Error(`IsValid("ancient") = true, want false`)
	}
}
