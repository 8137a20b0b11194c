package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// TextReader reads raw text input for a command, either from a file flag
// or from piped stdin. When stdin is a terminal and no file was given,
// Read fails rather than blocking on an interactive read.
type TextReader struct {
	fileFlagValue string
}

func (tr *TextReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to input file (reads from stdin if not provided)",
		Destination: &tr.fileFlagValue,
	}
}

func (tr *TextReader) Read() (string, error) {
	var reader io.Reader

	if tr.fileFlagValue != "" {
		f, err := os.Open(tr.fileFlagValue)
		if err != nil {
			return "", fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return "", fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe input")
		}
		reader = os.Stdin
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(data), nil
}
