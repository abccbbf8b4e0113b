package punch

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DeckVersion is the on-disk format version written into new headers.
const DeckVersion = 1

// ColumnRange is an inclusive 1-based column span, used to mark
// protected regions of a card.
type ColumnRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// NewColumnRange validates 1 <= start <= end <= 80.
func NewColumnRange(start, end int) (ColumnRange, error) {
	if start < 1 || start > end || end > Columns {
		return ColumnRange{}, fmt.Errorf("column range must satisfy 1 <= start <= end <= %d (got %d-%d)", Columns, start, end)
	}
	return ColumnRange{Start: start, End: end}, nil
}

// ParseColumnRange parses spans written as "73-80".
func ParseColumnRange(s string) (ColumnRange, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return ColumnRange{}, fmt.Errorf("column range must be START-END, got %q", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return ColumnRange{}, fmt.Errorf("start column in %q must be a number", s)
	}
	end, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return ColumnRange{}, fmt.Errorf("end column in %q must be a number", s)
	}
	return NewColumnRange(start, end)
}

// Contains reports whether the 1-based column col falls in the range.
func (r ColumnRange) Contains(col int) bool {
	return col >= r.Start && col <= r.End
}

func (r ColumnRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// FormatColumnRanges joins ranges for display, using "-" when empty.
func FormatColumnRanges(ranges []ColumnRange) string {
	if len(ranges) == 0 {
		return "-"
	}
	parts := make([]string, len(ranges))
	for ii, r := range ranges {
		parts[ii] = r.String()
	}
	return strings.Join(parts, ", ")
}

// CardType labels the intent or provenance of a card. It has no effect
// on encoding.
type CardType string

const (
	TypeCode      CardType = "code"
	TypeData      CardType = "data"
	TypeJcl       CardType = "jcl"
	TypeComment   CardType = "comment"
	TypeSeparator CardType = "separator"
	TypePatch     CardType = "patch"
)

// ParseCardType validates a card type name.
func ParseCardType(name string) (CardType, error) {
	switch t := CardType(strings.ToLower(name)); t {
	case TypeCode, TypeData, TypeJcl, TypeComment, TypeSeparator, TypePatch:
		return t, nil
	default:
		return "", fmt.Errorf("unknown card type %q", name)
	}
}

// EncodingKind records which code table a card was captured with.
type EncodingKind string

const (
	EncodingHollerith EncodingKind = "hollerith"
	EncodingAscii     EncodingKind = "ascii"
	EncodingEbcdic    EncodingKind = "ebcdic"
)

// ParseEncodingKind validates an encoding name.
func ParseEncodingKind(name string) (EncodingKind, error) {
	switch k := EncodingKind(strings.ToLower(name)); k {
	case EncodingHollerith, EncodingAscii, EncodingEbcdic:
		return k, nil
	default:
		return "", fmt.Errorf("unknown encoding %q", name)
	}
}

// CardMeta carries non-semantic annotations.
type CardMeta struct {
	Color string `json:"color,omitempty"`
	Note  string `json:"note,omitempty"`
}

// CardRecord is the persisted unit of a deck: exactly 80 columns of
// text plus capture metadata. An empty Text means the card is stored
// as punches only.
type CardRecord struct {
	Text          string        `json:"text"`
	Punches       string        `json:"punches,omitempty"`
	Encoding      EncodingKind  `json:"encoding"`
	Seq           *int          `json:"seq,omitempty"`
	Type          CardType      `json:"card_type"`
	ProtectedCols []ColumnRange `json:"protected_cols,omitempty"`
	Meta          CardMeta      `json:"meta"`
}

// NewCardRecord builds a record from user text, padding to exactly 80
// columns. Text longer than 80 columns is rejected with a
// *TextTooLongError; this is the authoritative data path, unlike
// NewCard which truncates for rendering.
func NewCardRecord(text string, encoding EncodingKind, cardType CardType) (CardRecord, error) {
	normalized, err := NormalizeCardText(text)
	if err != nil {
		return CardRecord{}, err
	}
	return CardRecord{
		Text:     normalized,
		Encoding: encoding,
		Type:     cardType,
	}, nil
}

// PunchCard materializes the hole-mask representation of the record
// using the supplied encoder.
func (c *CardRecord) PunchCard(enc Encoder) (*Card, error) {
	return NewCard(enc, c.Text)
}

// Clone deep-copies the record.
func (c CardRecord) Clone() CardRecord {
	out := c
	if c.Seq != nil {
		seq := *c.Seq
		out.Seq = &seq
	}
	out.ProtectedCols = append([]ColumnRange(nil), c.ProtectedCols...)
	return out
}

// NormalizeCardText pads text with trailing spaces to exactly 80
// columns. Already-normalized text passes through unchanged; longer
// text fails with a *TextTooLongError.
func NormalizeCardText(text string) (string, error) {
	runes := []rune(text)
	if len(runes) > Columns {
		return "", &TextTooLongError{Length: len(runes)}
	}
	if len(runes) == Columns {
		return text, nil
	}
	return text + strings.Repeat(" ", Columns-len(runes)), nil
}

// AuditEvent is one append-only entry in a deck's history.
type AuditEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
}

// DeckHeader holds deck-wide metadata and policy.
type DeckHeader struct {
	Version       int           `json:"version"`
	CreatedAt     time.Time     `json:"created_at"`
	Language      string        `json:"language,omitempty"`
	Template      string        `json:"template,omitempty"`
	ProtectedCols []ColumnRange `json:"protected_cols,omitempty"`
	ReadOnly      bool          `json:"readonly"`
	History       []AuditEvent  `json:"history"`
}

// NewDeckHeader creates a header for a fresh deck.
func NewDeckHeader(language, template string, protected []ColumnRange) DeckHeader {
	return DeckHeader{
		Version:       DeckVersion,
		CreatedAt:     time.Now().UTC(),
		Language:      language,
		Template:      template,
		ProtectedCols: append([]ColumnRange(nil), protected...),
	}
}

// Deck is an ordered collection of card records plus its header. A
// deck exclusively owns its header and cards; Clone deep-copies both.
// Every mutating operation is atomic: it either fully applies or
// leaves the deck unchanged.
type Deck struct {
	Header DeckHeader
	Cards  []CardRecord
}

// NewDeck creates an empty deck with the given header.
func NewDeck(header DeckHeader) *Deck {
	return &Deck{Header: header}
}

// Clone deep-copies the deck.
func (d *Deck) Clone() *Deck {
	out := &Deck{Header: d.Header}
	out.Header.ProtectedCols = append([]ColumnRange(nil), d.Header.ProtectedCols...)
	out.Header.History = append([]AuditEvent(nil), d.Header.History...)
	out.Cards = make([]CardRecord, len(d.Cards))
	for ii, card := range d.Cards {
		out.Cards[ii] = card.Clone()
	}
	return out
}

// Append adds a card at the end of the deck after protected-column
// checks.
func (d *Deck) Append(card CardRecord) error {
	if err := d.enforceProtection(nil, &card); err != nil {
		return err
	}
	d.Cards = append(d.Cards, card)
	return nil
}

// Insert adds a card at the given zero-based index, shifting later
// cards. index may equal the deck length (append position).
func (d *Deck) Insert(index int, card CardRecord) error {
	if index < 0 || index > len(d.Cards) {
		return &IndexError{Index: index, Length: len(d.Cards)}
	}
	if err := d.enforceProtection(nil, &card); err != nil {
		return err
	}
	d.Cards = append(d.Cards, CardRecord{})
	copy(d.Cards[index+1:], d.Cards[index:])
	d.Cards[index] = card
	return nil
}

// Replace swaps the card at the given zero-based index. Protected
// columns are compared against the previous occupant of the slot.
func (d *Deck) Replace(index int, card CardRecord) error {
	if index < 0 || index >= len(d.Cards) {
		return &IndexError{Index: index, Length: len(d.Cards)}
	}
	prev := d.Cards[index]
	if err := d.enforceProtection(&prev, &card); err != nil {
		return err
	}
	d.Cards[index] = card
	return nil
}

// NumberSequence assigns start, start+step, ... to each card in order,
// overwriting the trailing columns of the card text with the
// right-aligned 8-digit value. Unlike Card.WithSequence this is the
// canonical (re)numbering path and is allowed to clobber the sequence
// field.
func (d *Deck) NumberSequence(start, step int) {
	value := start
	for ii := range d.Cards {
		seq := value
		d.Cards[ii].Seq = &seq
		if d.Cards[ii].Text != "" {
			runes := []rune(d.Cards[ii].Text)
			for len(runes) < Columns {
				runes = append(runes, ' ')
			}
			repr := fmt.Sprintf("%8d", value)
			startIdx := Columns - len(repr)
			if startIdx < 0 {
				startIdx = 0
			}
			for offset, ch := range []rune(repr) {
				idx := startIdx + offset
				if idx < len(runes) {
					runes[idx] = ch
				}
			}
			d.Cards[ii].Text = string(runes)
		}
		value += step
	}
}

// SortBySequence stable-sorts cards by sequence number. Cards without
// a sequence number sort after all numbered cards and keep their
// relative order.
func (d *Deck) SortBySequence() {
	sort.SliceStable(d.Cards, func(i, j int) bool {
		a, b := d.Cards[i].Seq, d.Cards[j].Seq
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})
}

// MergeFrom appends the cards and history of other after validating
// that the two decks agree on protected columns, template and
// language. On mismatch nothing is modified and a *MergeError is
// returned.
func (d *Deck) MergeFrom(other *Deck) error {
	if !columnRangesEqual(d.Header.ProtectedCols, other.Header.ProtectedCols) {
		return &MergeError{
			Field: "protected columns",
			A:     FormatColumnRanges(d.Header.ProtectedCols),
			B:     FormatColumnRanges(other.Header.ProtectedCols),
		}
	}
	if d.Header.Template != other.Header.Template {
		return &MergeError{Field: "template", A: orDash(d.Header.Template), B: orDash(other.Header.Template)}
	}
	if d.Header.Language != other.Header.Language {
		return &MergeError{Field: "language", A: orDash(d.Header.Language), B: orDash(other.Header.Language)}
	}
	for _, card := range other.Cards {
		d.Cards = append(d.Cards, card.Clone())
	}
	d.Header.History = append(d.Header.History, other.Header.History...)
	return nil
}

// Slice builds a new deck (same header) from the half-open card range
// [lo, hi).
func (d *Deck) Slice(lo, hi int) (*Deck, error) {
	if lo < 0 || lo > hi || hi > len(d.Cards) {
		return nil, &IndexError{Index: hi, Length: len(d.Cards)}
	}
	indices := make([]int, 0, hi-lo)
	for ii := lo; ii < hi; ii++ {
		indices = append(indices, ii)
	}
	return d.SliceIndices(indices)
}

// SliceIndices builds a new deck (same header) containing exactly the
// given zero-based indices in the given order.
func (d *Deck) SliceIndices(indices []int) (*Deck, error) {
	out := NewDeck(d.Header)
	out.Header.ProtectedCols = append([]ColumnRange(nil), d.Header.ProtectedCols...)
	out.Header.History = append([]AuditEvent(nil), d.Header.History...)
	for _, idx := range indices {
		if idx < 0 || idx >= len(d.Cards) {
			return nil, &IndexError{Index: idx, Length: len(d.Cards)}
		}
		out.Cards = append(out.Cards, d.Cards[idx].Clone())
	}
	return out, nil
}

// LogAction appends an audit event. The caller resolves the actor
// identity; the deck never reads process state.
func (d *Deck) LogAction(actor, action string) {
	d.Header.History = append(d.Header.History, AuditEvent{
		Timestamp: time.Now().UTC(),
		Actor:     actor,
		Action:    action,
	})
}

// AsText returns the 80-column text of each card in order, with an
// all-blank line standing in for cards that carry no text.
func (d *Deck) AsText() []string {
	blank := strings.Repeat(" ", Columns)
	out := make([]string, len(d.Cards))
	for ii, card := range d.Cards {
		if card.Text == "" {
			out[ii] = blank
		} else {
			out[ii] = card.Text
		}
	}
	return out
}

// PunchDeck encodes every card with enc, producing the renderable
// deck representation.
func (d *Deck) PunchDeck(enc Encoder) (*CardDeck, error) {
	out := &CardDeck{Cards: make([]*Card, 0, len(d.Cards))}
	for ii := range d.Cards {
		card, err := d.Cards[ii].PunchCard(enc)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", ii+1, err)
		}
		out.Cards = append(out.Cards, card)
	}
	return out, nil
}

// enforceProtection checks the header's protected ranges against an
// incoming card. For replacements prev holds the slot's previous
// occupant and protected columns must be unchanged; for new cards they
// must be blank.
func (d *Deck) enforceProtection(prev, card *CardRecord) error {
	if len(d.Header.ProtectedCols) == 0 {
		return nil
	}
	newText := []rune(card.Text)
	var oldText []rune
	if prev != nil {
		oldText = []rune(prev.Text)
	}
	charAt := func(runes []rune, idx int) rune {
		if idx < len(runes) {
			return runes[idx]
		}
		return ' '
	}
	for _, r := range d.Header.ProtectedCols {
		for col := r.Start; col <= r.End; col++ {
			idx := col - 1
			newCh := charAt(newText, idx)
			if prev != nil {
				oldCh := charAt(oldText, idx)
				if newCh != oldCh {
					return &ProtectedColumnError{Column: col, Old: oldCh, New: newCh}
				}
			} else if newCh != ' ' {
				return &ProtectedColumnError{Column: col, New: newCh, NewCard: true}
			}
		}
	}
	return nil
}

func columnRangesEqual(a, b []ColumnRange) bool {
	if len(a) != len(b) {
		return false
	}
	for ii := range a {
		if a[ii] != b[ii] {
			return false
		}
	}
	return true
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
