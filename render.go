package main

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"punchtool/punch"
)

func renderImageAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("render image requires 2 arguments, see help render image")
	}
	path := ctx.Args().Get(0)
	output := ctx.Args().Get(1)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	style, err := punch.ParseCardImageStyle(ctx.String("style"))
	if err != nil {
		return err
	}
	layout, err := punch.ParsePageLayout(ctx.String("pagesize"))
	if err != nil {
		return err
	}
	dpi := ctx.Int("dpi")
	if dpi < punch.MinDPI {
		dpi = punch.MinDPI
	}
	if dpi > punch.MaxDPI {
		dpi = punch.MaxDPI
	}
	opts := punch.ImageRenderOptions{Style: style, DPI: dpi, Layout: layout}

	singleFile := strings.EqualFold(filepath.Ext(output), ".png")
	if len(deck.Cards) > 1 && singleFile {
		return errors.New("output path must be a directory when rendering multiple cards")
	}
	if !singleFile {
		if err := os.MkdirAll(output, 0755); err != nil {
			return err
		}
	}

	punched, err := deck.PunchDeck(punch.NewIBM029())
	if err != nil {
		return err
	}
	for ii, card := range punched.Cards {
		target := output
		if !singleFile {
			target = filepath.Join(output, fmt.Sprintf("card_%04d.png", ii+1))
		}
		logDebug("rendering card %d to %q", ii+1, target)
		img := punch.RenderCardImage(card, opts)
		f, err := openOutputFile(target)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if singleFile {
		fmt.Printf("Rendered card image to %s at %d DPI\n", output, dpi)
	} else {
		fmt.Printf("Rendered %d card image(s) to %s at %d DPI\n", len(punched.Cards), output, dpi)
	}
	return nil
}

func renderInterpretAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 || ctx.NArg() > 2 {
		return errors.New("render interpret requires 1 or 2 arguments, see help render interpret")
	}
	path := ctx.Args().Get(0)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	style, err := punch.ParseRenderStyle(ctx.String("style"))
	if err != nil {
		return err
	}
	punched, err := deck.PunchDeck(punch.NewIBM029())
	if err != nil {
		return err
	}
	rendered := punched.Render(style)
	if ctx.NArg() == 2 {
		output := ctx.Args().Get(1)
		if err := writeOutput(output, rendered); err != nil {
			return err
		}
		fmt.Printf("Wrote interpreted listing for %s to %s\n", path, output)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

func renderListingAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 || ctx.NArg() > 2 {
		return errors.New("render listing requires 1 or 2 arguments, see help render listing")
	}
	path := ctx.Args().Get(0)
	deck, err := punch.LoadDeck(path)
	if err != nil {
		return err
	}
	style, err := punch.ParseRenderStyle(ctx.String("style"))
	if err != nil {
		return err
	}
	punched, err := deck.PunchDeck(punch.NewIBM029())
	if err != nil {
		return err
	}
	var out strings.Builder
	for ii, card := range punched.Cards {
		if ii > 0 {
			out.WriteString("\n\n")
		}
		record := deck.Cards[ii]
		seqLabel := "(none)"
		if record.Seq != nil {
			seqLabel = fmt.Sprintf("%d", *record.Seq)
		}
		fmt.Fprintf(&out, "Card %4d | seq %s | type %s\n", ii+1, seqLabel, record.Type)
		if record.Meta.Note != "" {
			fmt.Fprintf(&out, "Note: %s\n", record.Meta.Note)
		}
		if record.Meta.Color != "" {
			fmt.Fprintf(&out, "Color: %s\n", record.Meta.Color)
		}
		text := record.Text
		if text == "" {
			text = "(stored punches)"
		}
		fmt.Fprintf(&out, "Text:\n%s\n", text)
		out.WriteString("Punches:\n")
		out.WriteString(card.Render(style))
	}
	if ctx.NArg() == 2 {
		output := ctx.Args().Get(1)
		if err := writeOutput(output, out.String()); err != nil {
			return err
		}
		fmt.Printf("Wrote listing for %s to %s\n", path, output)
		return nil
	}
	fmt.Print(out.String())
	return nil
}
