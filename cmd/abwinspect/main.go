// Command abwinspect is an interactive TUI for exploring one AbiWord
// document's parsed event tree: navigate open/close/insert events,
// preview insert-binary-object nodes inline, copy a node's path to the
// clipboard, or open the source file in the system's default handler.
package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/pgavlin/abiword-kit/abw"
	"github.com/pgavlin/abiword-kit/cmd/abwinspect/internal/inspector"
	"github.com/pgavlin/abiword-kit/internal/dump"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.abw>\n", os.Args[0])
		os.Exit(1)
	}
	path := os.Args[1]

	if err := run(path); err != nil {
		fmt.Fprintln(os.Stderr, "abwinspect:", err)
		os.Exit(1)
	}
}

func run(path string) error {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	input, err := dump.LoadInput(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	recorder := dump.NewRecorder()
	dispatcher := abw.NewDispatcher(log)
	ok, parseErr := dispatcher.Parse(input, recorder)
	if !ok {
		return fmt.Errorf("parse %s: %w", path, parseErr)
	}

	roots := inspector.BuildTree(recorder.Events)
	model := inspector.NewModel(path, roots, canDisplayImages())

	program := tea.NewProgram(model, tea.WithContext(context.Background()))
	_, err = program.Run()
	return err
}

// canDisplayImages reports whether the controlling terminal advertises
// kitty graphics protocol support.
func canDisplayImages() bool {
	return os.Getenv("TERM") == "xterm-kitty"
}
