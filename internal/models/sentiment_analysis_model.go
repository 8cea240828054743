package models

import "strings"

type SentimentLabel string

const (
	VeryPositive SentimentLabel = "very_positive"
	Positive     SentimentLabel = "positive"
	Neutral      SentimentLabel = "neutral"
	Negative     SentimentLabel = "negative"
	VeryNegative SentimentLabel = "very_negative"
)

// Display returns the label in its printed form, e.g. "VERY POSITIVE".
func (l SentimentLabel) Display() string {
	return strings.ToUpper(strings.ReplaceAll(string(l), "_", " "))
}

// AnalysisResult is the outcome of scoring and classifying one piece of text.
type AnalysisResult struct {
	Text         string         `json:"text"`
	Polarity     float64        `json:"polarity"`
	Subjectivity float64        `json:"subjectivity"`
	Sentiment    SentimentLabel `json:"sentiment"`
}

// LineResult is an AnalysisResult tagged with its 1-based line in a source file.
type LineResult struct {
	Line int `json:"line"`
	AnalysisResult
}
