package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentimind/internal/presenter"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [TEXT]",
		Short: "Analyze sentiment of provided text",
		Long: `Analyze sentiment of provided text.

Without TEXT, lines are read from standard input until an empty line
or end of input and joined with spaces.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var text string
			if len(args) > 0 {
				text = args[0]
			}

			if text == "" {
				fmt.Fprintln(out, presenter.Info("Enter text to analyze (press Enter twice to finish):"))
				lines, err := readUntilBlank(cmd.InOrStdin())
				if err != nil {
					slog.Warn("[Analyze] Stopped reading input", slog.String("error", err.Error()))
				}
				if len(lines) == 0 {
					fmt.Fprintln(out, presenter.Error("No text provided!"))
					return nil
				}
				text = strings.Join(lines, " ")
			}

			result := a.getAnalyzer().Analyze(text)
			if asJSON {
				return writeJSON(out, result)
			}
			fmt.Fprintln(out, presenter.Format(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
