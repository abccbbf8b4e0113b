package punch

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDeck(t *testing.T) *Deck {
	t.Helper()
	protected, err := NewColumnRange(73, 80)
	require.NoError(t, err)
	deck := NewDeck(NewDeckHeader("fortran", "fortran", []ColumnRange{protected}))
	for _, text := range []string{"      PROGRAM HELLO", "      END"} {
		record, err := NewCardRecord(text, EncodingHollerith, TypeCode)
		require.NoError(t, err)
		require.NoError(t, deck.Append(record))
	}
	seq := 10
	deck.Cards[0].Seq = &seq
	deck.Cards[1].Meta = CardMeta{Note: "closer", Color: "amber"}
	deck.LogAction("tester", "deck init")
	return deck
}

func TestWriteReadRoundTrip(t *testing.T) {
	deck := sampleDeck(t)

	var buf bytes.Buffer
	require.NoError(t, WriteDeck(&buf, deck))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], `{"kind":"header"`))
	assert.True(t, strings.HasPrefix(lines[1], `{"kind":"card"`))

	got, err := ReadDeck(&buf)
	require.NoError(t, err)
	assert.Equal(t, deck.Header.Language, got.Header.Language)
	assert.Equal(t, deck.Header.ProtectedCols, got.Header.ProtectedCols)
	require.Len(t, got.Cards, 2)
	assert.Equal(t, deck.Cards[0].Text, got.Cards[0].Text)
	require.NotNil(t, got.Cards[0].Seq)
	assert.Equal(t, 10, *got.Cards[0].Seq)
	assert.Equal(t, "closer", got.Cards[1].Meta.Note)
	require.Len(t, got.Header.History, 1)
	assert.Equal(t, "tester", got.Header.History[0].Actor)
}

func TestReadDeckSkipsBlankLines(t *testing.T) {
	deck := sampleDeck(t)
	var buf bytes.Buffer
	require.NoError(t, WriteDeck(&buf, deck))
	padded := strings.ReplaceAll(buf.String(), "\n", "\n\n")

	got, err := ReadDeck(strings.NewReader(padded))
	require.NoError(t, err)
	assert.Len(t, got.Cards, 2)
}

func TestReadDeckFormatErrors(t *testing.T) {
	headerJSON := `{"kind":"header","version":1,"created_at":"2026-01-02T03:04:05Z","readonly":false,"history":null}`
	cardJSON := `{"kind":"card","text":"","encoding":"hollerith","card_type":"code","meta":{}}`

	cases := []struct {
		name   string
		input  string
		line   int
		reason string
	}{
		{"empty file", "", 0, "deck file is empty"},
		{"card before header", cardJSON + "\n", 1, "expected deck header as first record"},
		{"duplicate header", headerJSON + "\n" + headerJSON + "\n", 2, "multiple deck headers"},
		{"unknown kind", `{"kind":"trailer"}` + "\n", 1, `unknown record kind "trailer"`},
		{"garbage", "not json\n", 1, "unparseable record"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadDeck(strings.NewReader(tc.input))
			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tc.line, formatErr.Line)
			assert.Contains(t, formatErr.Reason, tc.reason)
		})
	}
}

func TestHashStableAndContentSensitive(t *testing.T) {
	deck := sampleDeck(t)

	h1, err := deck.Hash()
	require.NoError(t, err)
	h2, err := deck.Hash()
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)

	// A clone hashes identically; any content change does not.
	clone := deck.Clone()
	h3, err := clone.Hash()
	require.NoError(t, err)
	assert.Equal(t, h1, h3)

	clone.Cards[1].Meta.Note = "edited"
	h4, err := clone.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, h1, h4)

	clone = deck.Clone()
	clone.LogAction("tester", "extra event")
	h5, err := clone.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, h1, h5, "history is part of the hashed content")
}

func TestHashSurvivesSerialization(t *testing.T) {
	deck := sampleDeck(t)
	h1, err := deck.Hash()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDeck(&buf, deck))
	got, err := ReadDeck(&buf)
	require.NoError(t, err)

	h2, err := got.Hash()
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}
