package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentimind/internal/presenter"
)

const APP_NAME = "SentiMind"

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "1.0.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, presenter.Info(fmt.Sprintf("%s v%s", APP_NAME, Version)))
			fmt.Fprintln(out, "AI-powered Sentiment Analysis CLI Tool")
		},
	}
}
