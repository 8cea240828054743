package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// Scorer returns a polarity in [-1, 1] and a subjectivity in [0, 1] for text.
type Scorer interface {
	Score(text string) (polarity, subjectivity float64)
}

// VaderScorer scores text with the VADER lexicon.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score uses the compound score as polarity and the non-neutral share of
// the text as subjectivity.
func (v *VaderScorer) Score(text string) (float64, float64) {
	plainText := ConvertMarkdownToText(text)
	if plainText == "" {
		return 0, 0
	}

	s := v.analyzer.PolarityScores(plainText)

	return clamp(s.Compound, -1, 1), clamp(s.Positive+s.Negative, 0, 1)
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// ConvertMarkdownToText renders markdown and flattens it back to plain
// single-spaced text with links removed.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions(), blackfriday.WithRenderer(newPlainRenderer()))
	plainText := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))

	return strings.Join(strings.Fields(plainText), " ")
}

// No smartypants: curly apostrophes would hide "n't" negations from VADER.
func newPlainRenderer() blackfriday.Renderer {
	return blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.HTMLFlagsNone,
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
