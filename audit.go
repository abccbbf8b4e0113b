package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"punchtool/punch"
)

func auditHashAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("audit hash requires 1 argument, see help audit hash")
	}
	deck, err := punch.LoadDeck(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	digest, err := deck.Hash()
	if err != nil {
		return err
	}
	fmt.Println(digest)
	return nil
}

func auditLogAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("audit log requires 1 argument, see help audit log")
	}
	deck, err := punch.LoadDeck(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	if len(deck.Header.History) == 0 {
		fmt.Println("No audit events recorded.")
		return nil
	}
	for _, event := range deck.Header.History {
		fmt.Printf("%s %s - %s\n", event.Timestamp.Format(time.RFC3339), event.Actor, event.Action)
	}
	return nil
}
