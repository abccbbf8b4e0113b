package punch

import (
	"fmt"
	"strings"
)

// RenderStyle selects how punched holes are drawn in ASCII output.
type RenderStyle int

const (
	// AsciiX marks punched holes with 'X' and leaves the rest blank.
	AsciiX RenderStyle = iota
	// Ascii01 marks punched holes with '1' and the rest with '0'.
	Ascii01
)

func (s RenderStyle) String() string {
	switch s {
	case Ascii01:
		return "ascii-01"
	default:
		return "ascii-x"
	}
}

// ParseRenderStyle resolves the style names accepted on the command
// line ("ascii-x", "ascii-01").
func ParseRenderStyle(name string) (RenderStyle, error) {
	switch name {
	case "ascii-x":
		return AsciiX, nil
	case "ascii-01":
		return Ascii01, nil
	default:
		return AsciiX, fmt.Errorf("unknown render style %q (want ascii-x or ascii-01)", name)
	}
}

// Render draws the card as an ASCII listing: a header, a column ruler,
// the card text, then the 12 punch rows in physical order 12, 11, 0-9.
func (c *Card) Render(style RenderStyle) string {
	switch style {
	case Ascii01:
		return c.renderASCII('1', '0')
	default:
		return c.renderASCII('X', ' ')
	}
}

func (c *Card) renderASCII(mark, blank rune) string {
	var out strings.Builder
	out.Grow(16 * Columns)
	fmt.Fprintf(&out, "IBM 5081 (%d cols) [IBM029]\n", Columns)
	fmt.Fprintf(&out, "     %s\n", rulerLine())
	out.WriteString("     ")
	out.WriteString(string(c.text[:]))
	out.WriteByte('\n')
	separator := strings.Repeat("-", Columns)
	fmt.Fprintf(&out, "     %s\n", separator)
	for row := 0; row < Rows; row++ {
		fmt.Fprintf(&out, "%3s |", rowLabels[row])
		bit := rowBitOrder[row]
		for _, cell := range c.cols {
			if (cell>>bit)&1 == 1 {
				out.WriteRune(mark)
			} else {
				out.WriteRune(blank)
			}
		}
		out.WriteString("|\n")
	}
	fmt.Fprintf(&out, "     %s\n", separator)
	return out.String()
}

// Render draws every card in the deck, separated by blank lines.
func (d *CardDeck) Render(style RenderStyle) string {
	var out strings.Builder
	for ii, card := range d.Cards {
		if ii > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(card.Render(style))
	}
	return out.String()
}

// rulerLine marks every 10th column with its tens digit.
func rulerLine() string {
	var ruler strings.Builder
	ruler.Grow(Columns)
	for col := 1; col <= Columns; col++ {
		if col%10 == 0 {
			ruler.WriteByte(byte('0' + (col/10)%10))
		} else {
			ruler.WriteByte('.')
		}
	}
	return ruler.String()
}
