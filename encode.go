package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"punchtool/punch"
)

func encodeTextAction(ctx *cli.Context) error {
	text, err := readTextArg(ctx.String("text"), ctx.String("from"))
	if err != nil {
		return err
	}
	deck, err := punch.CardDeckFromText(punch.NewIBM029(), text, true)
	if err != nil {
		return err
	}
	if ctx.Bool("render") {
		fmt.Print(deck.Render(punch.AsciiX))
		return nil
	}
	fmt.Printf("Encoded %d columns into %d cards\n", encodedColumns(deck), len(deck.Cards))
	return nil
}

// encodedColumns counts the punched card columns, each card
// contributing its full 80.
func encodedColumns(deck *punch.CardDeck) int {
	return len(deck.Cards) * punch.Columns
}
