package presenter

import (
	"fmt"
	"strings"

	"github.com/spacesedan/sentimind/internal/models"
)

// Format renders a result as a blank line followed by the Text, Sentiment,
// Polarity Score and Subjectivity Score lines.
func Format(result models.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s %s\n", Bold("Text:"), result.Text)
	fmt.Fprintf(&b, "Sentiment: %s\n", ColorFor(result.Sentiment).Sprint(result.Sentiment.Display()))
	fmt.Fprintf(&b, "Polarity Score: %.2f (range: -1.0 to 1.0)\n", result.Polarity)
	fmt.Fprintf(&b, "Subjectivity Score: %.2f (range: 0.0 to 1.0)\n", result.Subjectivity)

	return b.String()
}
