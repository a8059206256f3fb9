// Package prompt provides the interactive pieces of the CLI: yes/no
// confirmation, colored notices and a progress indicator for bulk actions.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	noticeColor  = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)

// Reporter receives progress of a bulk action.
type Reporter interface {
	// Advance marks one more item as started.
	Advance(item string)
	// Done stops the indicator.
	Done()
}

// Terminal reads answers from In and writes prompts to Out. Progress is
// drawn on Err.
type Terminal struct {
	in  *bufio.Reader
	Out io.Writer
	Err io.Writer

	// Animate enables the spinner. When false, progress is printed as
	// plain lines.
	Animate bool
}

// NewTerminal creates a Terminal. Animation is enabled when errOut is a
// terminal.
func NewTerminal(in io.Reader, out, errOut io.Writer) *Terminal {
	return &Terminal{
		in:      bufio.NewReader(in),
		Out:     out,
		Err:     errOut,
		Animate: isTerminal(errOut),
	}
}

// Confirm prints message followed by " [y/N]: " and reads one line.
// Only "y" and "yes" (any case) confirm; end of input declines.
func (t *Terminal) Confirm(message string) (bool, error) {
	_, _ = fmt.Fprint(t.Out, message+" [y/N]: ")

	input, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	if errors.Is(err, io.EOF) && input == "" {
		_, _ = fmt.Fprintln(t.Out)
		return false, nil
	}

	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes", nil
}

// Notice prints an informational message such as "Nothing to do.".
func (t *Terminal) Notice(message string) {
	_, _ = noticeColor.Fprintln(t.Out, message)
}

// Success prints a success message.
func (t *Terminal) Success(message string) {
	_, _ = successColor.Fprintln(t.Out, message)
}

// Error prints an error message on the error stream.
func (t *Terminal) Error(message string) {
	_, _ = errorColor.Fprintln(t.Err, message)
}

// StartProgress starts a progress indicator for total items.
func (t *Terminal) StartProgress(label string, total int) Reporter {
	if !t.Animate {
		return &lineProgress{w: t.Err, label: label, total: total}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(t.Err))
	_ = s.Color("cyan")
	p := &spinnerProgress{s: s, w: t.Err, label: label, total: total}
	p.s.Suffix = " " + p.status("")
	p.s.Start()
	return p
}

// spinnerProgress animates a spinner with a "label (n/total) item" suffix.
type spinnerProgress struct {
	s     *spinner.Spinner
	w     io.Writer
	label string
	total int
	done  int
}

func (p *spinnerProgress) status(item string) string {
	status := fmt.Sprintf("%s (%d/%d)", p.label, p.done, p.total)
	if item != "" {
		status += " " + item
	}
	return status
}

func (p *spinnerProgress) Advance(item string) {
	p.done++
	p.s.Lock()
	p.s.Suffix = " " + p.status(item)
	p.s.Unlock()
}

func (p *spinnerProgress) Done() {
	p.s.Stop()
	_, _ = fmt.Fprintln(p.w, p.status(""))
}

// lineProgress prints one line per item.
type lineProgress struct {
	w     io.Writer
	label string
	total int
	done  int
}

func (p *lineProgress) Advance(item string) {
	p.done++
	_, _ = fmt.Fprintf(p.w, "%s (%d/%d) %s\n", p.label, p.done, p.total, item)
}

func (p *lineProgress) Done() {}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
