// Package console is the operator's terminal: line input, centered text and
// colored result banners.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

type Options struct {
	Width int
	Color bool
	Pause bool
}

type Console struct {
	in      *bufio.Reader
	out     io.Writer
	width   int
	pause   bool
	success *color.Color
	failure *color.Color
}

func New(in io.Reader, out io.Writer, opts Options) *Console {
	c := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		width:   opts.Width,
		pause:   opts.Pause,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	if !opts.Color {
		c.success.DisableColor()
		c.failure.DisableColor()
	}
	return c
}

// ReadLine returns the next line without its terminator. A final line with
// no newline is still returned; only a read with no data reports ErrInputClosed.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.ReadLine()
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Lines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}

func (c *Console) Center(text string) {
	fmt.Fprintln(c.out, c.padding(text)+text)
}

func (c *Console) padding(text string) string {
	pad := (c.width - runewidth.StringWidth(text)) / 2
	if pad <= 0 {
		return ""
	}
	return strings.Repeat(" ", pad)
}

func (c *Console) Success(message string) error {
	text := "✓ " + message
	fmt.Fprint(c.out, c.padding(text))
	c.success.Fprintln(c.out, text)
	return c.Pause()
}

func (c *Console) Error(message string) error {
	text := "⚠ " + message
	fmt.Fprint(c.out, c.padding(text))
	c.failure.Fprintln(c.out, text)
	return c.Pause()
}

// Pause waits for Enter when pausing is enabled.
func (c *Console) Pause() error {
	if !c.pause {
		return nil
	}
	fmt.Fprintln(c.out, "\nPress Enter...")
	_, err := c.ReadLine()
	return err
}
