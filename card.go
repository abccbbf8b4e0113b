package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"punchtool/punch"
)

func buildCardRecords(ctx *cli.Context, defaultType punch.CardType) ([]punch.CardRecord, error) {
	text, err := readTextArg(ctx.String("text"), ctx.String("from"))
	if err != nil {
		return nil, err
	}
	var template *punch.Template
	if name := ctx.String("template"); name != "" {
		registry, err := loadTemplateRegistry()
		if err != nil {
			return nil, err
		}
		template, err = registry.Lookup(name)
		if err != nil {
			return nil, err
		}
	}
	cardType := defaultType
	if name := ctx.String("type"); name != "" {
		cardType, err = punch.ParseCardType(name)
		if err != nil {
			return nil, err
		}
	}
	meta := punch.CardMeta{Note: ctx.String("note"), Color: ctx.String("color")}
	var records []punch.CardRecord
	for _, line := range splitLinesFixed(text) {
		var record punch.CardRecord
		if template != nil {
			record, err = template.Apply(line)
		} else {
			record, err = punch.NewCardRecord(line, punch.EncodingHollerith, cardType)
		}
		if err != nil {
			return nil, err
		}
		record.Meta = meta
		records = append(records, record)
	}
	return records, nil
}

func cardAddAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("card add requires 1 argument, see help card add")
	}
	path := ctx.Args().Get(0)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	records, err := buildCardRecords(ctx, punch.TypeCode)
	if err != nil {
		return err
	}
	position := ctx.Int("position")
	for ii, record := range records {
		if position > 0 {
			if err := deck.Insert(position-1+ii, record); err != nil {
				return err
			}
		} else {
			if err := deck.Append(record); err != nil {
				return err
			}
		}
	}
	deck.LogAction(resolveActor(), "card add")
	if err := punch.SaveDeck(deck, path); err != nil {
		return err
	}
	fmt.Printf("Added %d card(s) into %s\n", len(records), path)
	return nil
}

func cardTypeAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("card type requires 1 argument, see help card type")
	}
	path := ctx.Args().Get(0)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	records, err := buildCardRecords(ctx, punch.TypeCode)
	if err != nil {
		return err
	}
	for _, record := range records {
		if err := deck.Append(record); err != nil {
			return err
		}
	}
	deck.LogAction(resolveActor(), "card type")
	if err := punch.SaveDeck(deck, path); err != nil {
		return err
	}
	fmt.Printf("Typed %d card(s) appended to %s\n", len(records), path)
	return nil
}

func cardReplaceAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("card replace requires 1 argument, see help card replace")
	}
	path := ctx.Args().Get(0)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	index := ctx.Int("index")
	if index < 1 || index > len(deck.Cards) {
		return fmt.Errorf("card index %d out of range 1..%d", index, len(deck.Cards))
	}
	// Keep the existing type unless --type overrides it.
	existingType := deck.Cards[index-1].Type
	records, err := buildCardRecords(ctx, existingType)
	if err != nil {
		return err
	}
	if len(records) != 1 {
		return fmt.Errorf("card replace needs exactly one card of input, got %d", len(records))
	}
	if err := deck.Replace(index-1, records[0]); err != nil {
		return err
	}
	deck.LogAction(resolveActor(), fmt.Sprintf("card replace %d", index))
	if err := punch.SaveDeck(deck, path); err != nil {
		return err
	}
	fmt.Printf("Replaced card %d in %s\n", index, path)
	return nil
}

func cardShowAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("card show requires 1 argument, see help card show")
	}
	path := ctx.Args().Get(0)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	index := ctx.Int("index")
	if index < 1 || index > len(deck.Cards) {
		return fmt.Errorf("card index %d out of range 1..%d", index, len(deck.Cards))
	}
	card := deck.Cards[index-1]
	fmt.Printf("Card %d of %d\n", index, len(deck.Cards))
	fmt.Printf("Type: %s\n", card.Type)
	if card.Seq != nil {
		fmt.Printf("Sequence: %d\n", *card.Seq)
	}
	if card.Meta.Note != "" {
		fmt.Printf("Note: %s\n", card.Meta.Note)
	}
	if card.Meta.Color != "" {
		fmt.Printf("Color: %s\n", card.Meta.Color)
	}
	if card.Text != "" {
		fmt.Printf("Text:\n%s\n", card.Text)
	} else {
		fmt.Println("(card stored as punches)")
	}
	if ctx.Bool("interpret") {
		punched, err := card.PunchCard(punch.EncoderFor(card.Encoding))
		if err != nil {
			return err
		}
		fmt.Print(punched.Render(punch.AsciiX))
	}
	return nil
}

func cardPatchAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("card patch requires 1 argument, see help card patch")
	}
	path := ctx.Args().Get(0)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	text, err := readTextArg(ctx.String("text"), ctx.String("from"))
	if err != nil {
		return err
	}
	lines := splitLinesFixed(text)
	if len(lines) != 1 {
		return fmt.Errorf("card patch needs exactly one card of input, got %d", len(lines))
	}
	record, err := punch.NewCardRecord(lines[0], punch.EncodingHollerith, punch.TypePatch)
	if err != nil {
		return err
	}
	note := ctx.String("note")
	if note == "" {
		note = "patch card"
	}
	record.Meta = punch.CardMeta{Note: note, Color: "amber"}
	if err := deck.Append(record); err != nil {
		return err
	}
	deck.LogAction(resolveActor(), "card patch")
	if err := punch.SaveDeck(deck, path); err != nil {
		return err
	}
	fmt.Printf("Appended patch card to %s\n", path)
	return nil
}
