package text

import (
	"errors"
	"math"
	"testing"
)

func TestTextFragment_Right(t *testing.T) {
	f := TextFragment{Text: "abc", X: 10, Width: 15.5}
	if got := f.Right(); got != 25.5 {
		t.Errorf("Right() = %v, want 25.5", got)
	}
}

func TestTextFragment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		frag    TextFragment
		wantErr bool
	}{
		{"valid", TextFragment{Text: "a", X: 1, Y: 2, Width: 3, FontSize: 12}, false},
		{"zero geometry", TextFragment{Text: "a"}, false},
		{"NaN x", TextFragment{X: math.NaN(), FontSize: 12}, true},
		{"infinite y", TextFragment{Y: math.Inf(1), FontSize: 12}, true},
		{"negative width", TextFragment{Width: -1, FontSize: 12}, true},
		{"negative font size", TextFragment{FontSize: -3}, true},
		{"negative x", TextFragment{X: -0.5, FontSize: 12}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.frag.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedFragment) {
					t.Errorf("Validate() = %v, want ErrMalformedFragment", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestIsDigits(t *testing.T) {
	tests := map[string]bool{
		"":     false,
		"5":    true,
		"123":  true,
		"12a":  false,
		" 12":  false,
		"iv":   false,
		"٣":    false, // Arabic-Indic digit
		"１２":   false, // full-width digits
		"1.5":  false,
		"0042": true,
	}
	for in, want := range tests {
		if got := IsDigits(in); got != want {
			t.Errorf("IsDigits(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTextFragment_IsNumeric(t *testing.T) {
	if !(TextFragment{Text: " 17 "}).IsNumeric() {
		t.Error("expected padded number to be numeric")
	}
	if (TextFragment{Text: "p. 17"}).IsNumeric() {
		t.Error("expected 'p. 17' not to be numeric")
	}
}

func TestNormalize(t *testing.T) {
	decomposed := "definicio\u0301n"
	got := Normalize("  " + decomposed + " ")
	if got != "definición" {
		t.Errorf("Normalize() = %q, want %q", got, "definición")
	}

	if got := Normalize("plain"); got != "plain" {
		t.Errorf("Normalize(plain) = %q", got)
	}
}
