package punch

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, text string) CardRecord {
	t.Helper()
	record, err := NewCardRecord(text, EncodingHollerith, TypeCode)
	require.NoError(t, err)
	return record
}

func TestNewCardRecordNormalizes(t *testing.T) {
	record := mustRecord(t, "HELLO")
	assert.Len(t, record.Text, Columns)
	assert.Equal(t, "HELLO", record.Text[:5])

	// Normalization is idempotent.
	again, err := NormalizeCardText(record.Text)
	require.NoError(t, err)
	assert.Equal(t, record.Text, again)
}

func TestNewCardRecordRejectsOverlongText(t *testing.T) {
	_, err := NewCardRecord(strings.Repeat("A", Columns+1), EncodingHollerith, TypeCode)
	require.Error(t, err)
	var tooLong *TextTooLongError
	require.True(t, errors.As(err, &tooLong))
	assert.Equal(t, Columns+1, tooLong.Length)
}

func TestAppendAndInsert(t *testing.T) {
	deck := NewDeck(NewDeckHeader("", "", nil))
	require.NoError(t, deck.Append(mustRecord(t, "FIRST")))
	require.NoError(t, deck.Append(mustRecord(t, "THIRD")))
	require.NoError(t, deck.Insert(1, mustRecord(t, "SECOND")))

	texts := deck.AsText()
	assert.Equal(t, "FIRST", strings.TrimRight(texts[0], " "))
	assert.Equal(t, "SECOND", strings.TrimRight(texts[1], " "))
	assert.Equal(t, "THIRD", strings.TrimRight(texts[2], " "))

	err := deck.Insert(5, mustRecord(t, "OOB"))
	var idxErr *IndexError
	require.True(t, errors.As(err, &idxErr))
	assert.Equal(t, 5, idxErr.Index)
	assert.Len(t, deck.Cards, 3)
}

func TestProtectedColumnsRejectNewCards(t *testing.T) {
	protected, err := NewColumnRange(73, 80)
	require.NoError(t, err)
	deck := NewDeck(NewDeckHeader("fortran", "", []ColumnRange{protected}))

	// Blank protected columns are fine.
	require.NoError(t, deck.Append(mustRecord(t, "OK")))

	// A character inside 73-80 must be rejected and the deck left
	// untouched.
	bad := mustRecord(t, strings.Repeat(" ", 74)+"X")
	err = deck.Append(bad)
	var protErr *ProtectedColumnError
	require.True(t, errors.As(err, &protErr))
	assert.Equal(t, 75, protErr.Column)
	assert.True(t, protErr.NewCard)
	assert.Len(t, deck.Cards, 1)

	err = deck.Insert(0, bad)
	require.True(t, errors.As(err, &protErr))
	assert.Len(t, deck.Cards, 1)
}

func TestProtectedColumnsOnReplaceCompareToPrior(t *testing.T) {
	protected, err := NewColumnRange(73, 80)
	require.NoError(t, err)
	deck := NewDeck(NewDeckHeader("", "", []ColumnRange{protected}))

	// Seed a card carrying sequence text in the protected region.
	seeded := CardRecord{
		Text:     strings.Repeat(" ", 72) + "    0010",
		Encoding: EncodingHollerith,
		Type:     TypeCode,
	}
	deck.Cards = append(deck.Cards, seeded)

	// Same protected content, different body: accepted.
	replacement := mustRecord(t, "NEW BODY")
	runes := []rune(replacement.Text)
	copy(runes[72:], []rune("    0010"))
	replacement.Text = string(runes)
	require.NoError(t, deck.Replace(0, replacement))

	// Tampering with the protected region: rejected, deck unchanged.
	tampered := replacement.Clone()
	runes = []rune(tampered.Text)
	runes[79] = '9'
	tampered.Text = string(runes)
	err = deck.Replace(0, tampered)
	var protErr *ProtectedColumnError
	require.True(t, errors.As(err, &protErr))
	assert.Equal(t, 80, protErr.Column)
	assert.False(t, protErr.NewCard)
	assert.Equal(t, replacement.Text, deck.Cards[0].Text)
}

func TestNumberSequence(t *testing.T) {
	deck := NewDeck(NewDeckHeader("", "", nil))
	for _, text := range []string{"AAA", "BBB", "CCC"} {
		require.NoError(t, deck.Append(mustRecord(t, text)))
	}
	deck.NumberSequence(10, 10)

	for ii, want := range []int{10, 20, 30} {
		require.NotNil(t, deck.Cards[ii].Seq)
		assert.Equal(t, want, *deck.Cards[ii].Seq)
	}
	// Cols 73-80 hold the right-aligned 8-digit value.
	assert.Equal(t, "      10", deck.Cards[0].Text[72:])
	assert.Equal(t, "      30", deck.Cards[2].Text[72:])
	assert.Equal(t, "AAA", strings.TrimRight(deck.Cards[0].Text[:72], " "))
}

func TestSortBySequenceStableWithNils(t *testing.T) {
	deck := NewDeck(NewDeckHeader("", "", nil))
	seq := func(n int) *int { return &n }
	deck.Cards = []CardRecord{
		{Text: "NOSEQ-A", Type: TypeCode},
		{Text: "THIRTY", Seq: seq(30), Type: TypeCode},
		{Text: "TEN", Seq: seq(10), Type: TypeCode},
		{Text: "NOSEQ-B", Type: TypeCode},
		{Text: "TWENTY", Seq: seq(20), Type: TypeCode},
	}
	deck.SortBySequence()

	order := make([]string, len(deck.Cards))
	for ii, card := range deck.Cards {
		order[ii] = card.Text
	}
	assert.Equal(t, []string{"TEN", "TWENTY", "THIRTY", "NOSEQ-A", "NOSEQ-B"}, order)
}

func TestMergeFromValidatesHeaders(t *testing.T) {
	protected, err := NewColumnRange(73, 80)
	require.NoError(t, err)

	a := NewDeck(NewDeckHeader("fortran", "fortran", []ColumnRange{protected}))
	require.NoError(t, a.Append(mustRecord(t, "A1")))

	// Mismatched protected columns.
	b := NewDeck(NewDeckHeader("fortran", "fortran", nil))
	err = a.MergeFrom(b)
	var mergeErr *MergeError
	require.True(t, errors.As(err, &mergeErr))
	assert.Equal(t, "protected columns", mergeErr.Field)
	assert.Len(t, a.Cards, 1)

	// Mismatched language.
	c := NewDeck(NewDeckHeader("cobol", "fortran", []ColumnRange{protected}))
	err = a.MergeFrom(c)
	require.True(t, errors.As(err, &mergeErr))
	assert.Equal(t, "language", mergeErr.Field)

	// Compatible decks merge cards and history.
	d := NewDeck(NewDeckHeader("fortran", "fortran", []ColumnRange{protected}))
	require.NoError(t, d.Append(mustRecord(t, "D1")))
	d.LogAction("tester", "made d")
	require.NoError(t, a.MergeFrom(d))
	assert.Len(t, a.Cards, 2)
	assert.Len(t, a.Header.History, 1)

	// Merged cards are copies, not aliases.
	d.Cards[0].Text = strings.Repeat("!", 2)
	assert.Equal(t, "D1", strings.TrimRight(a.Cards[1].Text, " "))
}

func TestSliceIndicesPreservesRequestedOrder(t *testing.T) {
	deck := NewDeck(NewDeckHeader("", "", nil))
	for _, text := range []string{"ZERO", "ONE", "TWO"} {
		require.NoError(t, deck.Append(mustRecord(t, text)))
	}
	deck.LogAction("tester", "setup")

	sliced, err := deck.SliceIndices([]int{2, 0, 1})
	require.NoError(t, err)
	order := make([]string, len(sliced.Cards))
	for ii, card := range sliced.Cards {
		order[ii] = strings.TrimRight(card.Text, " ")
	}
	assert.Equal(t, []string{"TWO", "ZERO", "ONE"}, order)
	assert.Len(t, sliced.Header.History, 1)

	_, err = deck.SliceIndices([]int{3})
	var idxErr *IndexError
	require.True(t, errors.As(err, &idxErr))

	half, err := deck.Slice(1, 3)
	require.NoError(t, err)
	assert.Len(t, half.Cards, 2)
	assert.Equal(t, "ONE", strings.TrimRight(half.Cards[0].Text, " "))
}

func TestCloneIsDeep(t *testing.T) {
	protected, err := NewColumnRange(1, 5)
	require.NoError(t, err)
	deck := NewDeck(NewDeckHeader("jcl", "jcl", []ColumnRange{protected}))
	record := mustRecord(t, "ORIGINAL")
	seq := 10
	record.Seq = &seq
	deck.Cards = append(deck.Cards, record)
	deck.LogAction("tester", "setup")

	clone := deck.Clone()
	*clone.Cards[0].Seq = 99
	clone.Cards[0].Text = "CHANGED"
	clone.Header.History[0].Actor = "other"
	clone.Header.ProtectedCols[0].End = 10

	assert.Equal(t, 10, *deck.Cards[0].Seq)
	assert.Equal(t, "ORIGINAL", strings.TrimRight(deck.Cards[0].Text, " "))
	assert.Equal(t, "tester", deck.Header.History[0].Actor)
	assert.Equal(t, 5, deck.Header.ProtectedCols[0].End)
}

func TestLogActionAppends(t *testing.T) {
	deck := NewDeck(NewDeckHeader("", "", nil))
	deck.LogAction("alice", "deck init")
	deck.LogAction("bob", "card add")
	require.Len(t, deck.Header.History, 2)
	assert.Equal(t, "alice", deck.Header.History[0].Actor)
	assert.Equal(t, "card add", deck.Header.History[1].Action)
	assert.False(t, deck.Header.History[0].Timestamp.IsZero())
}

func TestAsTextBlankForPunchOnlyCards(t *testing.T) {
	deck := NewDeck(NewDeckHeader("", "", nil))
	require.NoError(t, deck.Append(mustRecord(t, "TEXT")))
	deck.Cards = append(deck.Cards, CardRecord{Punches: "raw", Type: TypeData, Encoding: EncodingHollerith})

	texts := deck.AsText()
	require.Len(t, texts, 2)
	assert.Equal(t, "TEXT", strings.TrimRight(texts[0], " "))
	assert.Equal(t, strings.Repeat(" ", Columns), texts[1])
}

func TestPunchDeckReportsFailingCard(t *testing.T) {
	deck := NewDeck(NewDeckHeader("", "", nil))
	require.NoError(t, deck.Append(mustRecord(t, "FINE")))
	deck.Cards = append(deck.Cards, CardRecord{Text: "BAD ~ CHAR", Encoding: EncodingHollerith, Type: TypeCode})

	_, err := deck.PunchDeck(NewIBM029())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card 2")

	deck.Cards = deck.Cards[:1]
	punched, err := deck.PunchDeck(NewIBM029())
	require.NoError(t, err)
	require.Len(t, punched.Cards, 1)
	assert.Equal(t, "FINE", strings.TrimRight(punched.Cards[0].Text(), " "))
}

func TestParseColumnRange(t *testing.T) {
	r, err := ParseColumnRange("73-80")
	require.NoError(t, err)
	assert.Equal(t, ColumnRange{Start: 73, End: 80}, r)
	assert.True(t, r.Contains(73))
	assert.True(t, r.Contains(80))
	assert.False(t, r.Contains(72))

	for _, bad := range []string{"80-73", "0-5", "1-81", "banana", "5"} {
		_, err := ParseColumnRange(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseCardTypeAndEncoding(t *testing.T) {
	for _, name := range []string{"code", "data", "jcl", "comment", "separator", "patch"} {
		got, err := ParseCardType(name)
		require.NoError(t, err)
		assert.Equal(t, CardType(name), got)
	}
	_, err := ParseCardType("mystery")
	assert.Error(t, err)

	kind, err := ParseEncodingKind("HOLLERITH")
	require.NoError(t, err)
	assert.Equal(t, EncodingHollerith, kind)
	_, err = ParseEncodingKind("morse")
	assert.Error(t, err)
}
