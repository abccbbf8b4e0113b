package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchtool/punch"
)

func TestEncodedColumnsCountsCards(t *testing.T) {
	enc := punch.NewIBM029()

	// Newlines in the input are card breaks, not columns.
	deck, err := punch.CardDeckFromText(enc, "ONE\nTWO\n", false)
	require.NoError(t, err)
	assert.Equal(t, 2*punch.Columns, encodedColumns(deck))

	// A wrapped long line still counts whole cards.
	deck, err = punch.CardDeckFromText(enc, strings.Repeat("A", punch.Columns+1), false)
	require.NoError(t, err)
	assert.Equal(t, 2*punch.Columns, encodedColumns(deck))
}
