// Package unicodeblock classifies text by Unicode block and reports how many
// code points of the text fall into each block.
//
// Counting works on code points, never on encoding units: a character outside
// the Basic Multilingual Plane counts once whether the input arrives as UTF-8
// or as UTF-16. Reports are sparse (only blocks with at least one match) and
// follow the enumeration order of the catalog they were computed against.
package unicodeblock

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrUnknownBlock is returned when a block name is not part of a catalog.
var ErrUnknownBlock = errors.New("unknown unicode block")

// ValidationError describes a block definition that cannot be placed in a catalog.
type ValidationError struct {
	// Field is "name", "range" or "surrogates".
	Field   string
	Message string
}

// Error formats the field and message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Block is a named, inclusive range of code points.
//
// Example:
//
//	hiragana := unicodeblock.Block{Name: "hiragana", Low: 0x3040, High: 0x309F}
//	hiragana.Contains('あ') // true
//	hiragana.Size()        // 96
type Block struct {
	Name string `json:"name"`
	Low  rune   `json:"low"`
	High rune   `json:"high"`
}

// Contains reports whether r lies within the block bounds.
func (b Block) Contains(r rune) bool {
	return b.Low <= r && r <= b.High
}

// Size returns the number of code points the block spans.
func (b Block) Size() int {
	return int(b.High-b.Low) + 1
}

// Validate checks the block name and bounds.
//
// Returns:
//   - error: *ValidationError when the name is empty, a bound lies outside
//     U+0000..U+10FFFF or Low is above High; nil otherwise
func (b Block) Validate() error {
	if b.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if b.Low < 0 || b.High > utf8.MaxRune {
		return &ValidationError{
			Field:   "range",
			Message: fmt.Sprintf("%s: bounds must lie within U+0000..U+10FFFF", b.Name),
		}
	}
	if b.Low > b.High {
		return &ValidationError{
			Field:   "range",
			Message: fmt.Sprintf("%s: low %s is above high %s", b.Name, FormatCodePoint(b.Low), FormatCodePoint(b.High)),
		}
	}
	return nil
}

// String renders the block as "name U+XXXX..U+XXXX".
func (b Block) String() string {
	return fmt.Sprintf("%s %s..%s", b.Name, FormatCodePoint(b.Low), FormatCodePoint(b.High))
}

// FormatCodePoint renders r in U+XXXX notation.
func FormatCodePoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}
