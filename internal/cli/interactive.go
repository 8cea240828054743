package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentimind/internal/presenter"
)

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Launch interactive sentiment analyzer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return a.interactive(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func isQuit(text string) bool {
	t := strings.TrimSpace(text)
	return strings.EqualFold(t, "quit") || strings.EqualFold(t, "exit")
}

// interactive prompts for text until quit, end of input or ctx is done.
func (a *app) interactive(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "\n%s\n", presenter.Banner("Welcome to SentiMind Interactive Mode!"))
	fmt.Fprint(out, "Type 'quit' or 'exit' to quit.\n\n")

	lines, done := readLinesAsync(in)
	defer close(done)

	for {
		fmt.Fprintf(out, "%s: ", presenter.Info("Enter text"))

		var (
			text string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintf(out, "\n%s\n\n", presenter.Warn("Exiting..."))
			return nil
		case text, ok = <-lines:
		}

		if !ok {
			fmt.Fprintf(out, "\n%s\n\n", presenter.Warn("Exiting..."))
			return nil
		}

		if isQuit(text) {
			fmt.Fprintf(out, "%s\n\n", presenter.Warn("Goodbye!"))
			return nil
		}

		if strings.TrimSpace(text) == "" {
			fmt.Fprintln(out, presenter.Error("Please enter some text."))
			continue
		}

		fmt.Fprintln(out, presenter.Format(a.getAnalyzer().Analyze(text)))
	}
}

// readLinesAsync feeds lines from r into the returned channel so a reader
// blocked on the terminal does not hold up interrupt handling. The channel
// is closed at end of input; closing done releases the reader goroutine.
func readLinesAsync(r io.Reader) (<-chan string, chan struct{}) {
	lines := make(chan string)
	done := make(chan struct{})

	go func() {
		defer close(lines)
		lr := newLineReader(r)
		for {
			line, ok, err := lr.Next()
			if err != nil {
				slog.Warn("[Interactive] Stopped reading input", slog.String("error", err.Error()))
				return
			}
			if !ok {
				return
			}
			select {
			case lines <- line:
			case <-done:
				return
			}
		}
	}()

	return lines, done
}
