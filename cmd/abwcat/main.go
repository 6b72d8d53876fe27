// Command abwcat parses one AbiWord document and prints the event
// sequence a Dispatcher emits for it, as a structural trace: one line
// per open/close/insert, indented by nesting depth. It is a debugging
// aid, not a renderer.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/pgavlin/abiword-kit/abw"
	"github.com/pgavlin/abiword-kit/internal/dump"
)

func main() {
	cmd := &cli.Command{
		Name:      "abwcat",
		Usage:     "print the structural event trace of an AbiWord document",
		ArgsUsage: "<file.abw>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "log debug-level parser diagnostics to stderr"},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "abwcat:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("missing input file")
	}

	log := logrus.New()
	if cmd.Bool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	input, err := dump.LoadInput(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	printer := dump.NewPrinter(os.Stdout)
	dispatcher := abw.NewDispatcher(log)
	ok, err := dispatcher.Parse(input, printer)
	if !ok {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "abwcat: %s parsed (terminal width %d)\n", path, width)
	return nil
}
