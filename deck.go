package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"punchtool/punch"
)

func deckInitAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("deck init requires 1 argument, see help deck init")
	}
	path := ctx.Args().Get(0)
	templateName := ctx.String("template")
	if templateName != "" {
		registry, err := loadTemplateRegistry()
		if err != nil {
			return err
		}
		if _, err := registry.Lookup(templateName); err != nil {
			return err
		}
	}
	protected, err := parseColumnRanges(ctx.StringSlice("protect"))
	if err != nil {
		return err
	}
	deck := punch.NewDeck(punch.NewDeckHeader(ctx.String("language"), templateName, protected))
	deck.LogAction(resolveActor(), "deck init")
	f, err := openOutputFile(path)
	if err != nil {
		return err
	}
	if err := punch.WriteDeck(f, deck); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Created deck %s (language: %s, template: %s)\n",
		path, orNone(ctx.String("language")), orNone(templateName))
	return nil
}

func deckImportAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("deck import requires 2 arguments, see help deck import")
	}
	source := ctx.Args().Get(0)
	output := ctx.Args().Get(1)
	encoding, err := punch.ParseEncodingKind(ctx.String("encoding"))
	if err != nil {
		return err
	}
	cardType, err := punch.ParseCardType(ctx.String("type"))
	if err != nil {
		return err
	}
	contents, err := readTextArg("", source)
	if err != nil {
		return err
	}
	deck := punch.NewDeck(punch.NewDeckHeader("", "", nil))
	for ii, line := range strings.Split(strings.TrimSuffix(contents, "\n"), "\n") {
		record, err := punch.NewCardRecord(strings.TrimSuffix(line, "\r"), encoding, cardType)
		if err != nil {
			return fmt.Errorf("line %d in %s: %w", ii+1, source, err)
		}
		if err := deck.Append(record); err != nil {
			return err
		}
	}
	deck.LogAction(resolveActor(), fmt.Sprintf("import from %s as %s", source, encoding))
	if err := saveNewDeck(deck, output); err != nil {
		return err
	}
	fmt.Printf("Imported %d cards into %s\n", len(deck.Cards), output)
	return nil
}

func deckExportAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("deck export requires 2 arguments, see help deck export")
	}
	path := ctx.Args().Get(0)
	output := ctx.Args().Get(1)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	format := ctx.String("format")
	switch format {
	case "text80":
		if err := writeOutput(output, strings.Join(deck.AsText(), "\n")); err != nil {
			return err
		}
	case "deck":
		if err := saveNewDeck(deck.Clone(), output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown export format %q (want text80 or deck)", format)
	}
	fmt.Printf("Exported deck %s as %s -> %s\n", path, format, output)
	return nil
}

func deckInfoAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("deck info requires 1 argument, see help deck info")
	}
	path := ctx.Args().Get(0)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	fmt.Printf("Deck: %s\n", path)
	fmt.Printf("Cards: %d\n", len(deck.Cards))
	fmt.Printf("Language: %s\n", orNone(deck.Header.Language))
	if deck.Header.Template != "" {
		fmt.Printf("Template: %s\n", deck.Header.Template)
	}
	if len(deck.Header.ProtectedCols) > 0 {
		fmt.Printf("Protected cols: %s\n", punch.FormatColumnRanges(deck.Header.ProtectedCols))
	}
	fmt.Printf("History entries: %d\n", len(deck.Header.History))
	return nil
}

func deckMergeAction(ctx *cli.Context) error {
	if ctx.NArg() < 3 {
		return errors.New("deck merge requires at least two input decks and an output, see help deck merge")
	}
	inputs := ctx.Args().Slice()
	output := inputs[len(inputs)-1]
	inputs = inputs[:len(inputs)-1]
	var merged *punch.Deck
	for _, input := range inputs {
		deck, err := punch.LoadDeck(input)
		if err != nil {
			return err
		}
		if merged == nil {
			merged = deck
			continue
		}
		if err := merged.MergeFrom(deck); err != nil {
			return fmt.Errorf("merging %s: %w", input, err)
		}
	}
	merged.LogAction(resolveActor(), fmt.Sprintf("merge %d decks into %s", len(inputs), output))
	if err := saveNewDeck(merged, output); err != nil {
		return err
	}
	fmt.Printf("Merged %d cards into %s\n", len(merged.Cards), output)
	return nil
}

func deckSliceAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("deck slice requires 2 arguments, see help deck slice")
	}
	path := ctx.Args().Get(0)
	output := ctx.Args().Get(1)
	source, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	rangeExpr := ctx.String("range")
	indices, err := parseRangeExpression(rangeExpr, len(source.Cards))
	if err != nil {
		return err
	}
	sliced, err := source.SliceIndices(indices)
	if err != nil {
		return err
	}
	sliced.LogAction(resolveActor(), fmt.Sprintf("slice %s -> %s", rangeExpr, output))
	if err := saveNewDeck(sliced, output); err != nil {
		return err
	}
	fmt.Printf("Sliced %d cards into %s\n", len(sliced.Cards), output)
	return nil
}

// saveNewDeck writes a deck to a fresh output path, honoring the
// overwrite prompt. In-place rewrites of a deck being edited use
// punch.SaveDeck instead.
func saveNewDeck(deck *punch.Deck, path string) error {
	f, err := openOutputFile(path)
	if err != nil {
		return err
	}
	if err := punch.WriteDeck(f, deck); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseColumnRanges(specs []string) ([]punch.ColumnRange, error) {
	ranges := make([]punch.ColumnRange, 0, len(specs))
	for _, spec := range specs {
		r, err := punch.ParseColumnRange(spec)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func loadTemplateRegistry() (*punch.TemplateRegistry, error) {
	registry := punch.NewTemplateRegistry()
	if templatesFlag == "" {
		return registry, nil
	}
	f, err := os.Open(templatesFlag)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	logVerbose("loading extra templates from %q", templatesFlag)
	if err := registry.LoadYAML(f); err != nil {
		return nil, fmt.Errorf("%s: %w", templatesFlag, err)
	}
	return registry, nil
}

func orNone(s string) string {
	if s == "" {
		return "(unspecified)"
	}
	return s
}
