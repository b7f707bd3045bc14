// Package main provides a small CLI that drives an emulator.Emulator over
// a byte stream and prints the resulting grid, useful for inspecting what
// a captured terminal session actually rendered.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xtermgo/xtermcore/emulator"
	"golang.org/x/term"
)

var (
	cols       int
	rows       int
	showErrors bool
)

var rootCmd = &cobra.Command{
	Use:   "xtermcore [file]",
	Short: "Replay a byte stream through an XTerm-compatible screen model",
	Long: `xtermcore feeds a byte stream — a file, or stdin when no file is
given — through a control-sequence parser and cell-grid emulator, then
prints the resulting screen contents.

	$ xtermcore session.log
	$ cat session.log | xtermcore`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	w, h := defaultSize()
	rootCmd.Flags().IntVar(&cols, "cols", w, "screen width in columns")
	rootCmd.Flags().IntVar(&rows, "rows", h, "screen height in rows")
	rootCmd.Flags().BoolVar(&showErrors, "show-errors", false, "print parser diagnostics to stderr")
}

func defaultSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return 80, 24
}

func run(cmd *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	opts := []emulator.Option{}
	if showErrors {
		opts = append(opts, emulator.WithErrorHandler(func(msg string) {
			fmt.Fprintln(os.Stderr, "xtermcore:", msg)
		}))
	}
	e := emulator.New(cols, rows, opts...)

	if _, err := io.Copy(e, r); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	for _, row := range e.Rows {
		fmt.Println(row.Substr(0, cols))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
