package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	defaultSeqStart = 10
	defaultSeqStep  = 10
	defaultDPI      = 300
)

var (
	forceFlag     = false
	verboseFlag   = false
	debugFlag     = false
	actorFlag     = ""
	templatesFlag = ""
	appVersion    string
)

func main() {
	app := cli.NewApp()
	app.Name = "punchtool"
	app.Version = appVersion
	app.Usage = "tool for encoding, editing and rendering IBM 80-column punch card decks"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Aliases:     []string{"f"},
			Usage:       "Overwrite output files without asking",
			Destination: &forceFlag,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "Enable verbose output",
			Destination: &verboseFlag,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Usage:       "Print debug messages",
			Destination: &debugFlag,
		},
		&cli.StringFlag{
			Name:        "actor",
			Usage:       "Actor name recorded in deck audit events (defaults to the OS user)",
			Destination: &actorFlag,
		},
		&cli.StringFlag{
			Name:        "templates",
			Usage:       "Load additional card layout templates from a yaml file",
			Destination: &templatesFlag,
		},
	}
	app.Before = setupLogging
	app.Commands = []*cli.Command{
		{
			Name:  "deck",
			Usage: "Create, inspect and reorganize deck files",
			Subcommands: []*cli.Command{
				{
					Name:      "init",
					Usage:     "Initialize a new deck file with optional template metadata",
					ArgsUsage: "<deck>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Usage: "Logical language of the deck (fortran/cobol/jcl/assembler)"},
						&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: "Column template name"},
						&cli.StringSliceFlag{Name: "protect", Usage: "Protected column ranges, e.g. --protect 73-80"},
					},
					Action: deckInitAction,
				},
				{
					Name:      "import",
					Usage:     "Import 80-column text into a new deck file",
					ArgsUsage: "<source> <deck>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "encoding", Value: "hollerith", Usage: "Encoding to mark on imported cards (hollerith/ascii/ebcdic)"},
						&cli.StringFlag{Name: "type", Value: "code", Usage: "Card type for imported lines"},
					},
					Action: deckImportAction,
				},
				{
					Name:      "export",
					Usage:     "Export a deck as 80-column text or a deck copy",
					ArgsUsage: "<deck> <output>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "format", Value: "text80", Usage: "Export format (text80/deck)"},
					},
					Action: deckExportAction,
				},
				{
					Name:      "info",
					Usage:     "Show deck metadata summary",
					ArgsUsage: "<deck>",
					Action:    deckInfoAction,
				},
				{
					Name:      "merge",
					Usage:     "Merge two or more decks into a new deck",
					ArgsUsage: "<deck> <deck> [deck...] <output>",
					Action:    deckMergeAction,
				},
				{
					Name:      "slice",
					Usage:     "Slice a deck by card indices or ranges",
					ArgsUsage: "<deck> <output>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "range", Aliases: []string{"r"}, Required: true, Usage: "Range expression, e.g. 1..10,25,30..$"},
					},
					Action: deckSliceAction,
				},
			},
		},
		{
			Name:  "card",
			Usage: "Add, replace and inspect individual cards",
			Subcommands: []*cli.Command{
				{
					Name:      "add",
					Usage:     "Append or insert cards from raw text",
					ArgsUsage: "<deck>",
					Flags: append(cardInputFlags(),
						&cli.IntFlag{Name: "position", Usage: "1-based insert position (defaults to append)"}),
					Action: cardAddAction,
				},
				{
					Name:      "type",
					Usage:     "Type cards from stdin",
					ArgsUsage: "<deck>",
					Flags:     cardInputFlags(),
					Action:    cardTypeAction,
				},
				{
					Name:      "replace",
					Usage:     "Replace an existing card by index",
					ArgsUsage: "<deck>",
					Flags: append(cardInputFlags(),
						&cli.IntFlag{Name: "index", Aliases: []string{"i"}, Required: true, Usage: "1-based card index"}),
					Action: cardReplaceAction,
				},
				{
					Name:      "show",
					Usage:     "Show a card with its metadata",
					ArgsUsage: "<deck>",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "index", Aliases: []string{"i"}, Required: true, Usage: "1-based card index"},
						&cli.BoolFlag{Name: "interpret", Usage: "Render punched rows as ASCII art"},
					},
					Action: cardShowAction,
				},
				{
					Name:      "patch",
					Usage:     "Append a corrective patch card",
					ArgsUsage: "<deck>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "text", Usage: "Card text (80 columns or fewer)"},
						&cli.StringFlag{Name: "from", Usage: "Read card text from a file ('-' for stdin)"},
						&cli.StringFlag{Name: "note", Usage: "Human note stored with the card"},
					},
					Action: cardPatchAction,
				},
			},
		},
		{
			Name:  "seq",
			Usage: "Manage card sequence numbers",
			Subcommands: []*cli.Command{
				{
					Name:      "number",
					Usage:     "Assign sequence numbers to every card",
					ArgsUsage: "<deck>",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "start", Value: defaultSeqStart, Usage: "Starting sequence value"},
						&cli.IntFlag{Name: "step", Value: defaultSeqStep, Usage: "Step applied between cards"},
					},
					Action: seqNumberAction,
				},
				{
					Name:      "sort",
					Usage:     "Sort cards by existing sequence numbers",
					ArgsUsage: "<deck>",
					Action:    seqSortAction,
				},
			},
		},
		{
			Name:  "render",
			Usage: "Render decks as PNG images or ASCII listings",
			Subcommands: []*cli.Command{
				{
					Name:      "image",
					Usage:     "Render PNG images of the card faces",
					ArgsUsage: "<deck> <output.png|output-dir>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "style", Value: "interpreter", Usage: "Visual style (plain/interpreter/keypunch)"},
						&cli.StringFlag{Name: "pagesize", Value: "card", Usage: "Output page layout (card/a4)"},
						&cli.IntFlag{Name: "dpi", Value: defaultDPI, Usage: "Dots per inch used when rasterizing"},
					},
					Action: renderImageAction,
				},
				{
					Name:      "interpret",
					Usage:     "Produce an interpreter-style punch listing",
					ArgsUsage: "<deck> [output]",
					Flags:     renderStyleFlags(),
					Action:    renderInterpretAction,
				},
				{
					Name:      "listing",
					Usage:     "Emit a card-by-card textual listing",
					ArgsUsage: "<deck> [output]",
					Flags:     renderStyleFlags(),
					Action:    renderListingAction,
				},
			},
		},
		{
			Name:  "template",
			Usage: "Inspect card layout templates",
			Subcommands: []*cli.Command{
				{
					Name:   "list",
					Usage:  "List all known templates",
					Action: templateListAction,
				},
				{
					Name:      "show",
					Usage:     "Show column rules for a template",
					ArgsUsage: "<name>",
					Action:    templateShowAction,
				},
			},
		},
		{
			Name:  "encode",
			Usage: "Encode free text into punch cards",
			Subcommands: []*cli.Command{
				{
					Name:  "text",
					Usage: "Encode text into an 80-column card deck",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "text", Usage: "Inline input text (falls back to stdin)"},
						&cli.StringFlag{Name: "from", Usage: "Read input from a file ('-' for stdin)"},
						&cli.BoolFlag{Name: "render", Usage: "Render the ASCII representation"},
					},
					Action: encodeTextAction,
				},
			},
		},
		{
			Name:  "audit",
			Usage: "Hash deck content and show audit history",
			Subcommands: []*cli.Command{
				{
					Name:      "hash",
					Usage:     "Compute the SHA-256 hash over deck content",
					ArgsUsage: "<deck>",
					Action:    auditHashAction,
				},
				{
					Name:      "log",
					Usage:     "Show recorded audit events",
					ArgsUsage: "<deck>",
					Action:    auditLogAction,
				},
			},
		},
		{
			Name:  "verify",
			Usage: "Compare a re-typed pass against a deck snapshot",
			Subcommands: []*cli.Command{
				{
					Name:      "start",
					Usage:     "Capture the current deck text as the verification baseline",
					ArgsUsage: "<deck>",
					Action:    verifyStartAction,
				},
				{
					Name:      "pass",
					Usage:     "Compare a second pass against the recorded baseline",
					ArgsUsage: "<deck>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "from", Usage: "Text file to compare ('-' for stdin)"},
						&cli.BoolFlag{Name: "strict", Usage: "Treat any difference as an error"},
						&cli.StringSliceFlag{Name: "mask", Usage: "Ignore column ranges during comparison, e.g. --mask 73-80"},
					},
					Action: verifyPassAction,
				},
				{
					Name:      "report",
					Usage:     "Display the latest verification diff",
					ArgsUsage: "<deck>",
					Action:    verifyReportAction,
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cardInputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "text", Usage: "Card text (80 columns or fewer)"},
		&cli.StringFlag{Name: "from", Usage: "Read card text from a file ('-' for stdin)"},
		&cli.StringFlag{Name: "template", Usage: "Apply template defaults"},
		&cli.StringFlag{Name: "type", Usage: "Card type (code/data/jcl/comment/separator/patch)"},
		&cli.StringFlag{Name: "note", Usage: "Human note stored with the card"},
		&cli.StringFlag{Name: "color", Usage: "Color hint stored with the card"},
	}
}

func renderStyleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "style", Value: "ascii-x", Usage: "Punch rendering style (ascii-x/ascii-01)"},
	}
}
