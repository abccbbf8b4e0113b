package punch

import "fmt"

// UnsupportedCharError is returned when a character has no entry
// in the active code table.
type UnsupportedCharError struct {
	Char rune
}

func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("unsupported character %q (U+%04X)", e.Char, e.Char)
}

// TextTooLongError is returned when card text exceeds 80 columns.
type TextTooLongError struct {
	Length int
}

func (e *TextTooLongError) Error() string {
	return fmt.Sprintf("card text must not exceed %d columns (got %d)", Columns, e.Length)
}

// IndexError is returned when a card index falls outside the deck.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("card index %d out of range for deck of %d cards", e.Index, e.Length)
}

// ProtectedColumnError is returned when a mutation would alter a
// protected column. Old is only meaningful when a previous occupant
// existed at the target slot.
type ProtectedColumnError struct {
	Column  int
	Old     rune
	New     rune
	NewCard bool
}

func (e *ProtectedColumnError) Error() string {
	if e.NewCard {
		return fmt.Sprintf("column %d is protected; new cards must leave it blank (got %q)", e.Column, e.New)
	}
	return fmt.Sprintf("column %d is protected; attempted to change %q -> %q", e.Column, e.Old, e.New)
}

// FormatError is returned when a persisted deck cannot be parsed.
// Line is 1-based; 0 means the error is not tied to a single line.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed deck at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed deck: %s", e.Reason)
}

// MergeError is returned when two decks disagree on header fields
// that must match before their cards can be combined.
type MergeError struct {
	Field string
	A     string
	B     string
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("decks differ in %s (%s vs %s)", e.Field, e.A, e.B)
}
