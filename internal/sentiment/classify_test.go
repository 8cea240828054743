package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentimind/internal/models"
)

func TestClassify_Intervals(t *testing.T) {
	testCases := []struct {
		name     string
		polarity float64
		want     models.SentimentLabel
	}{
		{"max", 1.0, models.VeryPositive},
		{"strong positive", 0.75, models.VeryPositive},
		{"mild positive", 0.3, models.Positive},
		{"zero", 0, models.Neutral},
		{"slightly positive", 0.05, models.Neutral},
		{"slightly negative", -0.05, models.Neutral},
		{"mild negative", -0.3, models.Negative},
		{"strong negative", -0.75, models.VeryNegative},
		{"min", -1.0, models.VeryNegative},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.polarity))
		})
	}
}

func TestClassify_SharedEdgesGoToFirstListedInterval(t *testing.T) {
	require.Equal(t, models.VeryPositive, Classify(0.5))
	require.Equal(t, models.Positive, Classify(0.1))
	require.Equal(t, models.Neutral, Classify(-0.1))
	require.Equal(t, models.Negative, Classify(-0.5))
}

func TestClassify_OutOfRangeFallsBackToNeutral(t *testing.T) {
	for _, p := range []float64{1.5, -1.5, math.Inf(1), math.Inf(-1), math.NaN()} {
		require.Equal(t, models.Neutral, Classify(p), "polarity %v", p)
	}
}

func TestClassify_EveryPolarityInRangeIsLabelled(t *testing.T) {
	for i := -100; i <= 100; i++ {
		p := float64(i) / 100
		label := Classify(p)
		require.Contains(t, []models.SentimentLabel{
			models.VeryPositive, models.Positive, models.Neutral, models.Negative, models.VeryNegative,
		}, label)
	}
}
