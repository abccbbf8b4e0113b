package main

import (
	"fmt"
	"strconv"
	"strings"

	"punchtool/punch"
)

// parseRangeExpression resolves expressions like "1..10,25,40..$" into
// 0-based card indices. Positions are 1-based and "$" names the last
// card. Duplicate indices are dropped, first occurrence wins.
func parseRangeExpression(expr string, deckLen int) ([]int, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("empty range expression")
	}
	seen := make(map[int]bool)
	var indices []int
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		lo, hi, err := parseRangePart(part, deckLen)
		if err != nil {
			return nil, err
		}
		for ii := lo; ii <= hi; ii++ {
			if seen[ii-1] {
				continue
			}
			seen[ii-1] = true
			indices = append(indices, ii-1)
		}
	}
	return indices, nil
}

func parseRangePart(part string, deckLen int) (int, int, error) {
	var loStr, hiStr string
	if idx := strings.Index(part, ".."); idx >= 0 {
		loStr, hiStr = part[:idx], part[idx+2:]
	} else {
		loStr, hiStr = part, part
	}
	lo, err := parseRangePosition(loStr, deckLen)
	if err != nil {
		return 0, 0, err
	}
	hi, err := parseRangePosition(hiStr, deckLen)
	if err != nil {
		return 0, 0, err
	}
	if lo < 1 || hi > deckLen || lo > hi {
		return 0, 0, fmt.Errorf("range %q out of bounds for a deck of %d cards", part, deckLen)
	}
	return lo, hi, nil
}

func parseRangePosition(s string, deckLen int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "$" {
		return deckLen, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid card position %q", s)
	}
	return n, nil
}

// splitLinesFixed breaks raw input into card lines: one line per card,
// truncated at the column limit. Empty input yields a single blank
// card.
func splitLinesFixed(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return []string{""}
	}
	lines := strings.Split(input, "\n")
	for ii, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) > punch.Columns {
			line = line[:punch.Columns]
		}
		lines[ii] = line
	}
	return lines
}
