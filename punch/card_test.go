package punch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardPadsAndTruncates(t *testing.T) {
	enc := NewIBM029()

	card, err := NewCard(enc, "HELLO")
	require.NoError(t, err)
	text := card.Text()
	require.Len(t, text, Columns)
	assert.Equal(t, "HELLO", text[:5])
	assert.Equal(t, strings.Repeat(" ", Columns-5), text[5:])

	long := strings.Repeat("A", Columns+15)
	card, err = NewCard(enc, long)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("A", Columns), card.Text())
}

func TestNewCardRejectsUnsupportedChar(t *testing.T) {
	_, err := NewCard(NewIBM029(), "OK~")
	require.Error(t, err)
}

func TestWithSequenceSkipsOccupiedColumns(t *testing.T) {
	enc := NewIBM029()
	// Column 80 already holds a character; the sequence stamp must
	// leave it alone and fill only the blank columns it targets.
	text := strings.Repeat(" ", Columns-1) + "Z"
	card, err := NewCard(enc, text)
	require.NoError(t, err)
	require.NoError(t, card.WithSequence(enc, 42))

	got := card.Text()
	// The trailing '2' targets the occupied column and is dropped;
	// the '4' lands in the blank column before it.
	assert.Equal(t, byte('Z'), got[Columns-1])
	assert.Equal(t, byte('4'), got[Columns-2])
	assert.Equal(t, byte(' '), got[Columns-3])
}

func TestWithSequenceOnBlankCard(t *testing.T) {
	enc := NewIBM029()
	card, err := NewCard(enc, "")
	require.NoError(t, err)
	require.NoError(t, card.WithSequence(enc, 7))
	assert.Equal(t, "7", strings.TrimSpace(card.Text()))
	// The punched column must match the text column.
	mask, err := enc.Encode('7')
	require.NoError(t, err)
	assert.Equal(t, mask, card.Columns()[Columns-1])
}

func TestCardDeckFromTextWrapsLongLines(t *testing.T) {
	enc := NewIBM029()
	line := strings.Repeat("X", Columns+10)
	deck, err := CardDeckFromText(enc, line, false)
	require.NoError(t, err)
	require.Len(t, deck.Cards, 2)
	assert.Equal(t, strings.Repeat("X", Columns), deck.Cards[0].Text())
	assert.Equal(t, strings.Repeat("X", 10), strings.TrimRight(deck.Cards[1].Text(), " "))
}

func TestCardDeckFromTextEmptyInput(t *testing.T) {
	enc := NewIBM029()
	for _, input := range []string{"", "\n"} {
		deck, err := CardDeckFromText(enc, input, false)
		require.NoError(t, err)
		require.Len(t, deck.Cards, 1, "input %q", input)
		assert.Equal(t, strings.Repeat(" ", Columns), deck.Cards[0].Text())
	}
}

func TestCardDeckFromTextSequenceNumbers(t *testing.T) {
	enc := NewIBM029()
	deck, err := CardDeckFromText(enc, "ONE\nTWO\nTHREE", true)
	require.NoError(t, err)
	require.Len(t, deck.Cards, 3)
	for ii, card := range deck.Cards {
		text := card.Text()
		assert.Equal(t, byte('1'+ii), text[Columns-1], "card %d", ii+1)
	}
}

func TestRenderAsciiXFrame(t *testing.T) {
	enc := NewIBM029()
	card, err := NewCard(enc, "HELLO")
	require.NoError(t, err)
	out := card.Render(AsciiX)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 17)
	assert.Equal(t, "IBM 5081 (80 cols) [IBM029]", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "     ........."))
	assert.Equal(t, "     HELLO"+strings.Repeat(" ", Columns-5), lines[2])
	assert.Equal(t, "     "+strings.Repeat("-", Columns), lines[3])
	assert.Equal(t, "     "+strings.Repeat("-", Columns), lines[16])

	// H (12+8) and E (12+5) are zone 12; L (11+3) and O (11+6) are
	// zone 11, so columns 3-5 punch on row 11 instead.
	row12 := lines[4]
	assert.True(t, strings.HasPrefix(row12, " 12 |XX   "))
	assert.True(t, strings.HasSuffix(row12, "|"))
	row11 := lines[5]
	assert.True(t, strings.HasPrefix(row11, " 11 |  XXX "))
	// E is 12+5: row 5 shows a punch in column 2 only.
	row5 := lines[11]
	assert.Equal(t, "  5 | X   ", row5[:10])
	// Columns 6-80 stay blank on every row.
	for _, row := range lines[4:16] {
		assert.Equal(t, strings.Repeat(" ", 75), row[10:85], "blank columns in %q", row[:5])
	}
}

func TestRenderAscii01(t *testing.T) {
	card, err := NewCard(NewIBM029(), "A")
	require.NoError(t, err)
	out := card.Render(Ascii01)
	lines := strings.Split(out, "\n")
	// Row 12 and row 1 punched for A, everything else zero.
	assert.Equal(t, " 12 |1"+strings.Repeat("0", Columns-1)+"|", lines[4])
	assert.Equal(t, " 11 |"+strings.Repeat("0", Columns)+"|", lines[5])
	assert.Equal(t, "  1 |1"+strings.Repeat("0", Columns-1)+"|", lines[7])
}

func TestDeckRenderSeparatesCards(t *testing.T) {
	deck, err := CardDeckFromText(NewIBM029(), "A\nB", false)
	require.NoError(t, err)
	out := deck.Render(AsciiX)
	assert.Equal(t, 2, strings.Count(out, "IBM 5081"))
	assert.Contains(t, out, "\n\nIBM 5081")
}

func TestParseRenderStyle(t *testing.T) {
	style, err := ParseRenderStyle("ascii-x")
	require.NoError(t, err)
	assert.Equal(t, AsciiX, style)
	style, err = ParseRenderStyle("ascii-01")
	require.NoError(t, err)
	assert.Equal(t, Ascii01, style)
	_, err = ParseRenderStyle("dots")
	assert.Error(t, err)
}
