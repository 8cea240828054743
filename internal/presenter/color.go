package presenter

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/spacesedan/sentimind/internal/models"
)

type labelColor struct {
	label models.SentimentLabel
	color *color.Color
}

var (
	labelColors = [...]labelColor{
		{models.VeryPositive, color.New(color.FgGreen)},
		{models.Positive, color.New(color.FgHiGreen)},
		{models.Neutral, color.New(color.FgYellow)},
		{models.Negative, color.New(color.FgHiRed)},
		{models.VeryNegative, color.New(color.FgRed)},
	}
	defaultColor = color.New(color.FgWhite)

	bold    = color.New(color.Bold).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	banner  = color.New(color.FgCyan, color.Bold).SprintFunc()
	warn    = color.New(color.FgYellow).SprintFunc()
	fail    = color.New(color.FgRed).SprintFunc()
	success = color.New(color.FgGreen).SprintFunc()
)

// Setup configures terminal color for the whole process and returns the
// writer results should be printed to. It is meant to be called once from
// main before any output is produced.
func Setup(out *os.File, noColor bool) io.Writer {
	color.NoColor = noColor || !IsTerminal(out)
	if color.NoColor {
		return colorable.NewNonColorable(out)
	}
	return colorable.NewColorable(out)
}

// IsTerminal reports whether f is an interactive terminal that renders ANSI color.
func IsTerminal(f *os.File) bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorFor returns the color for a label, white for unknown labels.
func ColorFor(label models.SentimentLabel) *color.Color {
	for _, lc := range labelColors {
		if lc.label == label {
			return lc.color
		}
	}
	return defaultColor
}

func Bold(a ...any) string    { return bold(a...) }
func Info(a ...any) string    { return info(a...) }
func Banner(a ...any) string  { return banner(a...) }
func Warn(a ...any) string    { return warn(a...) }
func Error(a ...any) string   { return fail(a...) }
func Success(a ...any) string { return success(a...) }
