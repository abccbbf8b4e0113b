package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

func templateListAction(ctx *cli.Context) error {
	registry, err := loadTemplateRegistry()
	if err != nil {
		return err
	}
	fmt.Println("Available templates:")
	for _, tpl := range registry.List() {
		fmt.Printf("  - %s: %s\n", tpl.Name, tpl.Description)
	}
	return nil
}

func templateShowAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("template show requires 1 argument, see help template show")
	}
	registry, err := loadTemplateRegistry()
	if err != nil {
		return err
	}
	tpl, err := registry.Lookup(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	fmt.Printf("Template: %s\n", tpl.Name)
	fmt.Println(tpl.Description)
	for _, column := range tpl.Columns {
		fmt.Printf("  %2d-%2d: %s\n", column.Range.Start, column.Range.End, column.Label)
	}
	return nil
}
