package punch

import (
	"fmt"
	"strings"
)

// Card is the in-memory punch representation of a single card: one
// hole mask per column plus the text that produced it. Text beyond 80
// columns is truncated; use NewCardRecord when over-long input must be
// rejected instead.
type Card struct {
	cols [Columns]HoleMask
	text [Columns]rune
}

// NewCard encodes text into a card, truncating at 80 columns and
// padding shorter text with blank columns.
func NewCard(enc Encoder, text string) (*Card, error) {
	card := &Card{}
	for ii := range card.text {
		card.text[ii] = ' '
	}
	for ii, ch := range []rune(text) {
		if ii >= Columns {
			break
		}
		mask, err := enc.Encode(ch)
		if err != nil {
			return nil, err
		}
		card.cols[ii] = mask
		card.text[ii] = ch
	}
	return card, nil
}

// Columns returns the hole mask of every column.
func (c *Card) Columns() [Columns]HoleMask {
	return c.cols
}

// Text returns the card text as an 80-character string.
func (c *Card) Text() string {
	return string(c.text[:])
}

// WithSequence writes seq right-aligned as up to 9 decimal digits into
// columns 72-80, skipping any column that already holds a non-blank
// character. Only the columns it writes are re-encoded.
func (c *Card) WithSequence(enc Encoder, seq int) error {
	repr := fmt.Sprintf("%9d", seq)
	if len(repr) > Columns {
		repr = repr[len(repr)-Columns:]
	}
	start := Columns - len(repr)
	for offset, ch := range []rune(repr) {
		idx := start + offset
		if c.text[idx] != ' ' {
			continue
		}
		mask, err := enc.Encode(ch)
		if err != nil {
			return err
		}
		c.text[idx] = ch
		c.cols[idx] = mask
	}
	return nil
}

// CardDeck is an ordered sequence of encoded cards, used by the
// rendering pipeline. The persistent deck model lives in Deck.
type CardDeck struct {
	Cards []*Card
}

// CardDeckFromText splits free text into 80-column cards. Lines longer
// than 80 columns wrap onto additional cards; empty lines and empty
// input each produce one blank card. When withSeq is set each card is
// stamped with a sequence number starting at 1.
func CardDeckFromText(enc Encoder, text string, withSeq bool) (*CardDeck, error) {
	deck := &CardDeck{}
	seq := 1
	push := func(s string) error {
		card, err := NewCard(enc, s)
		if err != nil {
			return err
		}
		if withSeq {
			if err := card.WithSequence(enc, seq); err != nil {
				return err
			}
		}
		deck.Cards = append(deck.Cards, card)
		seq++
		return nil
	}
	for _, line := range splitInputLines(text) {
		runes := []rune(line)
		if len(runes) == 0 {
			if err := push(""); err != nil {
				return nil, err
			}
			continue
		}
		for len(runes) > 0 {
			n := len(runes)
			if n > Columns {
				n = Columns
			}
			if err := push(string(runes[:n])); err != nil {
				return nil, err
			}
			runes = runes[n:]
		}
	}
	if len(deck.Cards) == 0 {
		if err := push(""); err != nil {
			return nil, err
		}
	}
	return deck, nil
}

// splitInputLines splits on newlines the way line iteration does in
// text processing tools: a trailing newline does not produce an extra
// empty line.
func splitInputLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for ii := range lines {
		lines[ii] = strings.TrimSuffix(lines[ii], "\r")
	}
	return lines
}
