package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"punchtool/punch"
)

func verifyStartAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("verify start requires 1 argument, see help verify start")
	}
	path := ctx.Args().Get(0)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	snapshot := strings.Join(deck.AsText(), "\n") + "\n"
	target := verifySnapshotPath(path)
	if err := writeOutput(target, snapshot); err != nil {
		return err
	}
	deck.LogAction(resolveActor(), "verify start")
	if err := punch.SaveDeck(deck, path); err != nil {
		return err
	}
	fmt.Printf("Captured verification baseline for %d cards in %s\n", len(deck.Cards), target)
	return nil
}

func verifyPassAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("verify pass requires 1 argument, see help verify pass")
	}
	path := ctx.Args().Get(0)
	baseline, err := os.ReadFile(verifySnapshotPath(path))
	if err != nil {
		return fmt.Errorf("no verification baseline for %s, run verify start first: %w", path, err)
	}
	pass, err := readTextArg("", ctx.String("from"))
	if err != nil {
		return err
	}
	mask, err := parseColumnRanges(ctx.StringSlice("mask"))
	if err != nil {
		return err
	}
	report, clean := diffText(string(baseline), pass, mask)
	if err := os.WriteFile(verifyDiffPath(path), []byte(report), 0644); err != nil {
		return err
	}

	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	outcome := "clean"
	if !clean {
		outcome = "differences found"
	}
	deck.LogAction(resolveActor(), fmt.Sprintf("verify pass (%s)", outcome))
	if err := punch.SaveDeck(deck, path); err != nil {
		return err
	}

	fmt.Print(report)
	if !clean && ctx.Bool("strict") {
		return errors.New("verification failed")
	}
	return nil
}

func verifyReportAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("verify report requires 1 argument, see help verify report")
	}
	path := ctx.Args().Get(0)
	report, err := os.ReadFile(verifyDiffPath(path))
	if err != nil {
		return fmt.Errorf("no verification report for %s, run verify pass first: %w", path, err)
	}
	fmt.Print(string(report))
	return nil
}

// diffText compares two 80-column text bodies line by line and returns
// a human readable report plus whether they matched. Columns covered
// by mask ranges are ignored on both sides.
func diffText(expected, actual string, mask []punch.ColumnRange) (string, bool) {
	expectedLines := splitLinesFixed(expected)
	actualLines := splitLinesFixed(actual)
	count := len(expectedLines)
	if len(actualLines) > count {
		count = len(actualLines)
	}
	var out strings.Builder
	clean := true
	for ii := 0; ii < count; ii++ {
		var want, got string
		if ii < len(expectedLines) {
			want = expectedLines[ii]
		}
		if ii < len(actualLines) {
			got = actualLines[ii]
		}
		maskedWant := applyColumnMask(want, mask)
		maskedGot := applyColumnMask(got, mask)
		if maskedWant == maskedGot {
			continue
		}
		clean = false
		fmt.Fprintf(&out, "line %4d:\n  expected |%s|\n  actual   |%s|\n", ii+1, maskedWant, maskedGot)
	}
	if clean {
		return "verification passed: no differences\n", true
	}
	return out.String(), false
}

// applyColumnMask blanks masked columns with '_' so they never count
// as a difference. Columns are 1-based.
func applyColumnMask(line string, mask []punch.ColumnRange) string {
	if len(mask) == 0 {
		return line
	}
	runes := []rune(line)
	for ii := range runes {
		for _, r := range mask {
			if r.Contains(ii + 1) {
				runes[ii] = '_'
				break
			}
		}
	}
	return string(runes)
}

func verifySnapshotPath(deckPath string) string {
	return deckPath + ".verify.base"
}

func verifyDiffPath(deckPath string) string {
	return deckPath + ".verify.diff"
}
