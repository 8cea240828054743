package sentiment

import (
	"log/slog"

	"github.com/spacesedan/sentimind/internal/models"
)

type Analyzer struct {
	scorer Scorer
}

func NewAnalyzer(scorer Scorer) *Analyzer {
	return &Analyzer{scorer: scorer}
}

func (a *Analyzer) Analyze(text string) models.AnalysisResult {
	polarity, subjectivity := a.scorer.Score(text)
	label := Classify(polarity)

	slog.Debug("[Analyzer] Scored text",
		slog.Int("length", len(text)),
		slog.Float64("polarity", polarity),
		slog.Float64("subjectivity", subjectivity),
		slog.String("label", string(label)))

	return models.AnalysisResult{
		Text:         text,
		Polarity:     polarity,
		Subjectivity: subjectivity,
		Sentiment:    label,
	}
}
