package layout

// DefaultFormulaSymbols are the operators that mark a line as a formula:
// summation, integral, product and square root
const DefaultFormulaSymbols = "∑∫∏√"

// Markers lists the lexical prefixes that open each kind of block.
// Matching is case-insensitive; the first prefix that matches wins.
type Markers struct {
	Exercise    []string
	Example     []string
	Lemma       []string
	Note        []string
	Definition  []string
	Proposition []string
	Theorem     []string
	Proof       []string
}

// SpanishMarkers returns the markers used in Spanish lecture notes
func SpanishMarkers() Markers {
	return Markers{
		Exercise:    []string{"ejercicio"},
		Example:     []string{"ejemplo"},
		Lemma:       []string{"lemma", "lema"},
		Note:        []string{"nota:"},
		Definition:  []string{"definición"},
		Proposition: []string{"proposition", "proposición"},
		Theorem:     []string{"teorema"},
		Proof:       []string{"demostración"},
	}
}

// EnglishMarkers returns the English markers
func EnglishMarkers() Markers {
	return Markers{
		Exercise:    []string{"exercise"},
		Example:     []string{"example"},
		Lemma:       []string{"lemma"},
		Note:        []string{"note:"},
		Definition:  []string{"definition"},
		Proposition: []string{"proposition"},
		Theorem:     []string{"theorem"},
		Proof:       []string{"proof", "demonstration"},
	}
}

// DefaultMarkers returns the Spanish markers followed by the English ones
func DefaultMarkers() Markers {
	return SpanishMarkers().Merge(EnglishMarkers())
}

// Merge returns the union of m and other, keeping m's prefixes first and
// dropping duplicates
func (m Markers) Merge(other Markers) Markers {
	return Markers{
		Exercise:    mergePrefixes(m.Exercise, other.Exercise),
		Example:     mergePrefixes(m.Example, other.Example),
		Lemma:       mergePrefixes(m.Lemma, other.Lemma),
		Note:        mergePrefixes(m.Note, other.Note),
		Definition:  mergePrefixes(m.Definition, other.Definition),
		Proposition: mergePrefixes(m.Proposition, other.Proposition),
		Theorem:     mergePrefixes(m.Theorem, other.Theorem),
		Proof:       mergePrefixes(m.Proof, other.Proof),
	}
}

// MarkersForLanguage returns the markers for "es", "en" or both for anything
// else
func MarkersForLanguage(lang string) Markers {
	switch lang {
	case "es":
		return SpanishMarkers()
	case "en":
		return EnglishMarkers()
	default:
		return DefaultMarkers()
	}
}

func mergePrefixes(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	result := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, p := range list {
			if !seen[p] {
				seen[p] = true
				result = append(result, p)
			}
		}
	}
	return result
}
