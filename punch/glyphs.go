package punch

// glyphPattern returns the 5x7 bitmap used to print card text above
// the punch grid. Unknown characters render blank.
func glyphPattern(ch rune) [GlyphHeight]uint8 {
	if ch >= 'a' && ch <= 'z' {
		ch = ch - 'a' + 'A'
	}
	switch ch {
	case '0':
		return [GlyphHeight]uint8{0b01110, 0b10001, 0b10011, 0b10101, 0b11001, 0b10001, 0b01110}
	case '1':
		return [GlyphHeight]uint8{0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110}
	case '2':
		return [GlyphHeight]uint8{0b01110, 0b10001, 0b00001, 0b00110, 0b01000, 0b10000, 0b11111}
	case '3':
		return [GlyphHeight]uint8{0b11110, 0b00001, 0b00001, 0b01110, 0b00001, 0b00001, 0b11110}
	case '4':
		return [GlyphHeight]uint8{0b00010, 0b00110, 0b01010, 0b10010, 0b11111, 0b00010, 0b00010}
	case '5':
		return [GlyphHeight]uint8{0b11111, 0b10000, 0b11110, 0b00001, 0b00001, 0b10001, 0b01110}
	case '6':
		return [GlyphHeight]uint8{0b00110, 0b01000, 0b10000, 0b11110, 0b10001, 0b10001, 0b01110}
	case '7':
		return [GlyphHeight]uint8{0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b01000, 0b01000}
	case '8':
		return [GlyphHeight]uint8{0b01110, 0b10001, 0b10001, 0b01110, 0b10001, 0b10001, 0b01110}
	case '9':
		return [GlyphHeight]uint8{0b01110, 0b10001, 0b10001, 0b01111, 0b00001, 0b00010, 0b01100}
	case 'A':
		return [GlyphHeight]uint8{0b01110, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001}
	case 'B':
		return [GlyphHeight]uint8{0b11110, 0b10001, 0b10001, 0b11110, 0b10001, 0b10001, 0b11110}
	case 'C':
		return [GlyphHeight]uint8{0b01110, 0b10001, 0b10000, 0b10000, 0b10000, 0b10001, 0b01110}
	case 'D':
		return [GlyphHeight]uint8{0b11110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b11110}
	case 'E':
		return [GlyphHeight]uint8{0b11111, 0b10000, 0b10000, 0b11110, 0b10000, 0b10000, 0b11111}
	case 'F':
		return [GlyphHeight]uint8{0b11111, 0b10000, 0b10000, 0b11110, 0b10000, 0b10000, 0b10000}
	case 'G':
		return [GlyphHeight]uint8{0b01110, 0b10001, 0b10000, 0b10111, 0b10001, 0b10001, 0b01110}
	case 'H':
		return [GlyphHeight]uint8{0b10001, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001}
	case 'I':
		return [GlyphHeight]uint8{0b01110, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110}
	case 'J':
		return [GlyphHeight]uint8{0b00111, 0b00010, 0b00010, 0b00010, 0b10010, 0b10010, 0b01100}
	case 'K':
		return [GlyphHeight]uint8{0b10001, 0b10010, 0b10100, 0b11000, 0b10100, 0b10010, 0b10001}
	case 'L':
		return [GlyphHeight]uint8{0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b11111}
	case 'M':
		return [GlyphHeight]uint8{0b10001, 0b11011, 0b10101, 0b10101, 0b10001, 0b10001, 0b10001}
	case 'N':
		return [GlyphHeight]uint8{0b10001, 0b10001, 0b11001, 0b10101, 0b10011, 0b10001, 0b10001}
	case 'O':
		return [GlyphHeight]uint8{0b01110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110}
	case 'P':
		return [GlyphHeight]uint8{0b11110, 0b10001, 0b10001, 0b11110, 0b10000, 0b10000, 0b10000}
	case 'Q':
		return [GlyphHeight]uint8{0b01110, 0b10001, 0b10001, 0b10001, 0b10101, 0b10010, 0b01101}
	case 'R':
		return [GlyphHeight]uint8{0b11110, 0b10001, 0b10001, 0b11110, 0b10100, 0b10010, 0b10001}
	case 'S':
		return [GlyphHeight]uint8{0b01111, 0b10000, 0b10000, 0b01110, 0b00001, 0b00001, 0b11110}
	case 'T':
		return [GlyphHeight]uint8{0b11111, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100}
	case 'U':
		return [GlyphHeight]uint8{0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110}
	case 'V':
		return [GlyphHeight]uint8{0b10001, 0b10001, 0b10001, 0b01010, 0b01010, 0b00100, 0b00100}
	case 'W':
		return [GlyphHeight]uint8{0b10001, 0b10001, 0b10001, 0b10101, 0b10101, 0b10101, 0b01010}
	case 'X':
		return [GlyphHeight]uint8{0b10001, 0b10001, 0b01010, 0b00100, 0b01010, 0b10001, 0b10001}
	case 'Y':
		return [GlyphHeight]uint8{0b10001, 0b10001, 0b01010, 0b00100, 0b00100, 0b00100, 0b00100}
	case 'Z':
		return [GlyphHeight]uint8{0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b10000, 0b11111}
	case '-':
		return [GlyphHeight]uint8{0b00000, 0b00000, 0b00000, 0b11111, 0b00000, 0b00000, 0b00000}
	case '&':
		return [GlyphHeight]uint8{0b01100, 0b10010, 0b10100, 0b01000, 0b10101, 0b10010, 0b01101}
	case '/':
		return [GlyphHeight]uint8{0b00001, 0b00010, 0b00100, 0b01000, 0b10000, 0b10000, 0b00000}
	case ':':
		return [GlyphHeight]uint8{0b00000, 0b00100, 0b00000, 0b00000, 0b00100, 0b00000, 0b00000}
	case '#':
		return [GlyphHeight]uint8{0b01010, 0b11111, 0b01010, 0b01010, 0b11111, 0b01010, 0b01010}
	case '@':
		return [GlyphHeight]uint8{0b01110, 0b10001, 0b10111, 0b10101, 0b10111, 0b10000, 0b01110}
	case '\'':
		return [GlyphHeight]uint8{0b00100, 0b00100, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000}
	case '=':
		return [GlyphHeight]uint8{0b00000, 0b11111, 0b00000, 0b00000, 0b11111, 0b00000, 0b00000}
	case '"':
		return [GlyphHeight]uint8{0b01010, 0b01010, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000}
	case '.':
		return [GlyphHeight]uint8{0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00110, 0b00110}
	case ',':
		return [GlyphHeight]uint8{0b00000, 0b00000, 0b00000, 0b00000, 0b00110, 0b00100, 0b01000}
	case '<':
		return [GlyphHeight]uint8{0b00010, 0b00100, 0b01000, 0b10000, 0b01000, 0b00100, 0b00010}
	case '>':
		return [GlyphHeight]uint8{0b01000, 0b00100, 0b00010, 0b00001, 0b00010, 0b00100, 0b01000}
	case '(':
		return [GlyphHeight]uint8{0b00010, 0b00100, 0b01000, 0b01000, 0b01000, 0b00100, 0b00010}
	case ')':
		return [GlyphHeight]uint8{0b01000, 0b00100, 0b00010, 0b00010, 0b00010, 0b00100, 0b01000}
	case '+':
		return [GlyphHeight]uint8{0b00100, 0b00100, 0b11111, 0b00100, 0b00100, 0b00000, 0b00000}
	case '!':
		return [GlyphHeight]uint8{0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00000, 0b00100}
	case '$':
		return [GlyphHeight]uint8{0b00100, 0b01111, 0b10100, 0b01110, 0b00101, 0b11110, 0b00100}
	case '%':
		return [GlyphHeight]uint8{0b11001, 0b11010, 0b00100, 0b01000, 0b10110, 0b00110, 0b00000}
	case '_':
		return [GlyphHeight]uint8{0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b11111, 0b00000}
	case '|':
		return [GlyphHeight]uint8{0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100}
	case ';':
		return [GlyphHeight]uint8{0b00000, 0b00100, 0b00000, 0b00000, 0b00110, 0b00100, 0b01000}
	case '*':
		return [GlyphHeight]uint8{0b00100, 0b10101, 0b01110, 0b10101, 0b00100, 0b00000, 0b00000}
	case '?':
		return [GlyphHeight]uint8{0b01110, 0b10001, 0b00010, 0b00100, 0b00100, 0b00000, 0b00100}
	default:
		return [GlyphHeight]uint8{}
	}
}
