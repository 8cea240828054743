package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentimind/config"
	"github.com/spacesedan/sentimind/internal/logging"
	"github.com/spacesedan/sentimind/internal/presenter"
	"github.com/spacesedan/sentimind/internal/sentiment"
)

// Options wires the commands to their collaborators.
type Options struct {
	Settings config.Settings

	// Scorer defaults to a VADER scorer, built on first use.
	Scorer sentiment.Scorer

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Terminal, when set, is the file color support is detected against.
	// Out is then replaced by the writer presenter.Setup returns.
	Terminal *os.File
}

type app struct {
	opts     Options
	analyzer *sentiment.Analyzer
}

func (a *app) getAnalyzer() *sentiment.Analyzer {
	if a.analyzer == nil {
		scorer := a.opts.Scorer
		if scorer == nil {
			slog.Debug("[CLI] Loading VADER lexicon")
			scorer = sentiment.NewVaderScorer()
		}
		a.analyzer = sentiment.NewAnalyzer(scorer)
	}
	return a.analyzer
}

// NewRootCmd builds the sentimind command tree.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	a := &app{opts: opts}

	var (
		noColor  bool
		logLevel string
	)

	root := &cobra.Command{
		Use:   "sentimind",
		Short: "SentiMind - Sentiment Analysis CLI Tool",
		Long: `SentiMind analyzes the sentiment of text and prints color-coded results.

Text is scored for polarity (-1.0 to 1.0) and subjectivity (0.0 to 1.0)
and bucketed into very positive, positive, neutral, negative or very negative.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s := a.opts.Settings
			if cmd.Flags().Changed("no-color") {
				s.NoColor = noColor
			}
			if cmd.Flags().Changed("log-level") {
				s.LogLevel = logLevel
			}

			logging.InitLogger(a.opts.Err, s.LogLevel, s.NoColor || !isTerminalWriter(a.opts.Err))
			s.LogEnvFile()
			if a.opts.Terminal != nil {
				cmd.Root().SetOut(presenter.Setup(a.opts.Terminal, s.NoColor))
			}

			slog.Debug("[CLI] Running command",
				slog.String("command", cmd.Name()),
				slog.String("env", s.Env),
				slog.Bool("no_color", s.NoColor))
			return nil
		},
	}

	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().StringVar(&logLevel, "log-level", config.DEFAULT_LOG_LEVEL, "Log level: debug, info, warn or error")

	root.AddCommand(
		newAnalyzeCmd(a),
		newAnalyzeFileCmd(a),
		newInteractiveCmd(a),
		newVersionCmd(),
	)

	return root
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && presenter.IsTerminal(f)
}

// Execute runs the command tree with the process arguments.
func Execute(opts Options) error {
	return NewRootCmd(opts).Execute()
}
