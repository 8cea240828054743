package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentimind/internal/models"
	"github.com/spacesedan/sentimind/internal/presenter"
)

func newAnalyzeFileCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze-file FILEPATH",
		Short: "Analyze sentiment from a text file (one line per analysis)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.analyzeFile(cmd.OutOrStdout(), args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per analyzed line")
	return cmd
}

func (a *app) analyzeFile(out io.Writer, path string, asJSON bool) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		slog.Debug("[AnalyzeFile] Rejected path", slog.String("path", path))
		fmt.Fprintln(out, presenter.Error("File not found: "+path))
		return nil
	}

	lines, err := readLines(path)
	if err != nil {
		slog.Error("[AnalyzeFile] Failed to read file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		fmt.Fprintln(out, presenter.Error(fmt.Sprintf("Error reading file: %v", err)))
		return nil
	}

	if len(lines) == 0 {
		fmt.Fprintln(out, presenter.Error("File is empty!"))
		return nil
	}

	if !asJSON {
		fmt.Fprintf(out, "\n%s\n\n", presenter.Info(fmt.Sprintf("Analyzing %d lines from %s...", len(lines), path)))
	}

	analyzed := 0
	for i, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		result := a.getAnalyzer().Analyze(text)
		analyzed++

		if asJSON {
			if err := writeJSON(out, models.LineResult{Line: i + 1, AnalysisResult: result}); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, presenter.Bold(fmt.Sprintf("[Line %d]", i+1)))
		fmt.Fprintln(out, presenter.Format(result))
	}

	slog.Info("[AnalyzeFile] Analysis complete",
		slog.String("path", path),
		slog.Int("lines", len(lines)),
		slog.Int("analyzed", analyzed))

	if !asJSON {
		fmt.Fprintf(out, "%s\n\n", presenter.Success("Analysis complete!"))
	}
	return nil
}
