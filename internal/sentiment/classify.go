package sentiment

import "github.com/spacesedan/sentimind/internal/models"

type threshold struct {
	label    models.SentimentLabel
	min, max float64
}

// thresholds partitions [-1, 1] into closed intervals. Shared edges go to
// the interval listed first, so the order here is part of the behaviour.
var thresholds = [...]threshold{
	{models.VeryPositive, 0.5, 1.0},
	{models.Positive, 0.1, 0.5},
	{models.Neutral, -0.1, 0.1},
	{models.Negative, -0.5, -0.1},
	{models.VeryNegative, -1.0, -0.5},
}

// Classify returns the first label whose interval contains polarity,
// or neutral when none does.
func Classify(polarity float64) models.SentimentLabel {
	for _, t := range thresholds {
		if t.min <= polarity && polarity <= t.max {
			return t.label
		}
	}
	return models.Neutral
}
