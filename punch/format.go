package punch

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Deck files are newline-delimited JSON: the first record is the
// header, every following record is one card, in deck order. Blank
// lines are skipped on read.

type headerLine struct {
	Kind string `json:"kind"`
	DeckHeader
}

type cardLine struct {
	Kind string `json:"kind"`
	CardRecord
}

type kindProbe struct {
	Kind string `json:"kind"`
}

const (
	kindHeader = "header"
	kindCard   = "card"
)

// ReadDeck parses a deck from r. Parse failures carry the 1-based
// line number in a *FormatError.
func ReadDeck(r io.Reader) (*Deck, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	var deck *Deck
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var probe kindProbe
		if err := json.Unmarshal([]byte(raw), &probe); err != nil {
			return nil, &FormatError{Line: lineNo, Reason: fmt.Sprintf("unparseable record: %v", err)}
		}
		switch probe.Kind {
		case kindHeader:
			if deck != nil {
				return nil, &FormatError{Line: lineNo, Reason: "multiple deck headers"}
			}
			var hl headerLine
			if err := json.Unmarshal([]byte(raw), &hl); err != nil {
				return nil, &FormatError{Line: lineNo, Reason: fmt.Sprintf("bad header record: %v", err)}
			}
			deck = NewDeck(hl.DeckHeader)
		case kindCard:
			if deck == nil {
				return nil, &FormatError{Line: lineNo, Reason: "expected deck header as first record"}
			}
			var cl cardLine
			if err := json.Unmarshal([]byte(raw), &cl); err != nil {
				return nil, &FormatError{Line: lineNo, Reason: fmt.Sprintf("bad card record: %v", err)}
			}
			deck.Cards = append(deck.Cards, cl.CardRecord)
		default:
			return nil, &FormatError{Line: lineNo, Reason: fmt.Sprintf("unknown record kind %q", probe.Kind)}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, &FormatError{Reason: "deck file is empty"}
	}
	return deck, nil
}

// WriteDeck serializes the deck to w, one record per line. Card text
// is written verbatim at its full 80 columns; trailing spaces are
// never trimmed.
func WriteDeck(w io.Writer, d *Deck) error {
	bw := bufio.NewWriter(w)
	if err := writeRecord(bw, headerLine{Kind: kindHeader, DeckHeader: d.Header}); err != nil {
		return err
	}
	for ii := range d.Cards {
		if err := writeRecord(bw, cardLine{Kind: kindCard, CardRecord: d.Cards[ii]}); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

// Hash computes a SHA-256 digest over the canonical serialization of
// the header and every card in order. Identical content (history
// included) always produces an identical digest.
func (d *Deck) Hash() (string, error) {
	hasher := sha256.New()
	data, err := json.Marshal(headerLine{Kind: kindHeader, DeckHeader: d.Header})
	if err != nil {
		return "", err
	}
	hasher.Write(data)
	for ii := range d.Cards {
		data, err := json.Marshal(cardLine{Kind: kindCard, CardRecord: d.Cards[ii]})
		if err != nil {
			return "", err
		}
		hasher.Write(data)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// LoadDeck reads a deck file from disk.
func LoadDeck(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck file %s: %w", path, err)
	}
	defer f.Close()
	deck, err := ReadDeck(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck %s: %w", path, err)
	}
	return deck, nil
}

// SaveDeck writes the deck back to disk, replacing the previous file.
func SaveDeck(d *Deck, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write deck file %s: %w", path, err)
	}
	if err := WriteDeck(f, d); err != nil {
		f.Close()
		return fmt.Errorf("failed to write deck file %s: %w", path, err)
	}
	return f.Close()
}
