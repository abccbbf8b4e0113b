package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"punchtool/punch"
)

func seqNumberAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("seq number requires 1 argument, see help seq number")
	}
	path := ctx.Args().Get(0)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	start := ctx.Int("start")
	step := ctx.Int("step")
	deck.NumberSequence(start, step)
	deck.LogAction(resolveActor(), fmt.Sprintf("seq number start=%d step=%d", start, step))
	if err := punch.SaveDeck(deck, path); err != nil {
		return err
	}
	fmt.Printf("Applied sequence numbers (start %d, step %d) to %s\n", start, step, path)
	return nil
}

func seqSortAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("seq sort requires 1 argument, see help seq sort")
	}
	path := ctx.Args().Get(0)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	deck.SortBySequence()
	deck.LogAction(resolveActor(), "seq sort")
	if err := punch.SaveDeck(deck, path); err != nil {
		return err
	}
	fmt.Printf("Sorted %s by sequence numbers\n", path)
	return nil
}
