package unicodeblock

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// SurrogatePolicy decides how an unpaired UTF-16 surrogate is counted.
type SurrogatePolicy int

const (
	// ReplaceLoneSurrogates counts an unpaired surrogate as U+FFFD, the same
	// result utf16.Decode gives.
	ReplaceLoneSurrogates SurrogatePolicy = iota
	// KeepLoneSurrogates counts an unpaired surrogate as its own value, so it
	// lands in the surrogate blocks of the catalog.
	KeepLoneSurrogates
)

// String returns the name ParseSurrogatePolicy accepts.
func (p SurrogatePolicy) String() string {
	switch p {
	case ReplaceLoneSurrogates:
		return "replace"
	case KeepLoneSurrogates:
		return "keep"
	default:
		return fmt.Sprintf("SurrogatePolicy(%d)", int(p))
	}
}

// ParseSurrogatePolicy accepts "replace" (or "") and "keep".
func ParseSurrogatePolicy(s string) (SurrogatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return ReplaceLoneSurrogates, nil
	case "keep":
		return KeepLoneSurrogates, nil
	default:
		return 0, &ValidationError{Field: "surrogates", Message: fmt.Sprintf("unknown policy %q (want replace or keep)", s)}
	}
}

// CountUTF16 is Count for UTF-16 input. A surrogate pair contributes one code point.
func CountUTF16(units []uint16, b Block, p SurrogatePolicy) int {
	n := 0
	for r := range utf16Runes(units, p) {
		if b.Contains(r) {
			n++
		}
	}
	return n
}

// AnalyzeUTF16 is AnalyzeCatalog for UTF-16 input.
func AnalyzeUTF16(units []uint16, c Catalog, p SurrogatePolicy) Report {
	return analyzeSeq(utf16Runes(units, p), c)
}

// CodePointsUTF16 returns the number of code points in units. A valid pair
// counts once; a lone surrogate counts once under either policy.
func CodePointsUTF16(units []uint16) int {
	n := 0
	for range utf16Runes(units, KeepLoneSurrogates) {
		n++
	}
	return n
}

// utf16Runes decodes units lazily. An unpaired surrogate, including a high
// surrogate at the end of the input, is resolved by p.
func utf16Runes(units []uint16, p SurrogatePolicy) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for i := 0; i < len(units); i++ {
			u := rune(units[i])
			if !utf16.IsSurrogate(u) {
				if !yield(u) {
					return
				}
				continue
			}
			if i+1 < len(units) {
				if r := utf16.DecodeRune(u, rune(units[i+1])); r != utf8.RuneError {
					i++
					if !yield(r) {
						return
					}
					continue
				}
			}
			if p == KeepLoneSurrogates {
				if !yield(u) {
					return
				}
				continue
			}
			if !yield(utf8.RuneError) {
				return
			}
		}
	}
}

// DecodeUTF16LE splits little-endian bytes into UTF-16 code units. A trailing
// odd byte is treated as a lone unit of its own value.
func DecodeUTF16LE(b []byte) []uint16 {
	units := make([]uint16, 0, (len(b)+1)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])|uint16(b[i+1])<<8)
	}
	if len(b)%2 == 1 {
		units = append(units, uint16(b[len(b)-1]))
	}
	return units
}
