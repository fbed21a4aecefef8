package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	wordwrap "github.com/muesli/reflow/wordwrap"
	termenv "github.com/muesli/termenv"
	uitable "github.com/mutablelogic/go-openai/pkg/ui/table"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Width used when the output is not a terminal
	defaultWidth = 80
)

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// printText writes text to stdout, rendering it as markdown when asked.
// Text which cannot be rendered is word-wrapped instead.
func printText(text string, markdown bool) error {
	width := termWidth()
	if markdown {
		style := "dark"
		if !termenv.HasDarkBackground() {
			style = "light"
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			if out, err := renderer.Render(text); err == nil {
				_, err := fmt.Fprint(os.Stdout, out)
				return err
			}
		}
	}
	_, err := fmt.Fprintln(os.Stdout, wordwrap.String(strings.TrimSpace(text), width))
	return err
}

// printTable writes a table to stdout
func printTable(data uitable.TableData) error {
	return uitable.Write(os.Stdout, data, !isTerminal(os.Stdout))
}

// writeFile writes data to a file, or stdout when the path is "-"
func writeFile(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// createFile opens a file for writing, or stdout when the path is "-"
func createFile(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

func termWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return defaultWidth
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
