package readtime

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Estimate is the reading time derived from a word count.
// Minutes rounds RawMinutes half to even, so 2.5 becomes 2 and 3.5 becomes 4.
type Estimate struct {
	Words        int
	Speed        int
	Minutes      int
	RawMinutes   float64
	RuleSet      string
	SkippedLines int
	CodeLines    int
}

// NewEstimate converts words into minutes at speed words per minute
func NewEstimate(words, speed int) (Estimate, error) {
	if speed <= 0 {
		return Estimate{}, fmt.Errorf("reading speed must be positive, got %d", speed)
	}
	if words < 0 {
		return Estimate{}, fmt.Errorf("word count must not be negative, got %d", words)
	}

	raw := float64(words) / float64(speed)
	return Estimate{
		Words:      words,
		Speed:      speed,
		Minutes:    int(math.RoundToEven(raw)),
		RawMinutes: raw,
	}, nil
}

// Estimator counts a document and converts it to minutes
type Estimator struct {
	Speed   int
	Options Options
}

func NewEstimator(speed int, opts Options) *Estimator {
	return &Estimator{Speed: speed, Options: opts}
}

// EstimateFile loads path and estimates it
func (e *Estimator) EstimateFile(path string) (Estimate, *Document, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return Estimate{}, nil, err
	}
	est, err := e.EstimateDocument(doc)
	return est, doc, err
}

func (e *Estimator) EstimateDocument(doc *Document) (Estimate, error) {
	// the legacy rules never stripped front matter
	text := doc.Body
	if e.Options.Rules == RulesV1 {
		text = doc.Raw
	}
	return e.EstimateText(text)
}

func (e *Estimator) EstimateText(text string) (Estimate, error) {
	tally, err := CountWords(text, e.Options)
	if err != nil {
		return Estimate{}, err
	}

	est, err := NewEstimate(tally.Words, e.Speed)
	if err != nil {
		return Estimate{}, err
	}

	est.RuleSet = e.Options.Rules
	if est.RuleSet == "" {
		est.RuleSet = RulesV2
	}
	est.SkippedLines = tally.SkippedLines
	est.CodeLines = tally.CodeLines
	return est, nil
}

// WriteTo prints the three-line report
func (est Estimate) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Words: %d\nMinutes to read: %d with average speed of %d wpm\nRounding from: %s\n",
		est.Words, est.Minutes, est.Speed, formatRaw(est.RawMinutes))
	return int64(n), err
}

// formatRaw prints the shortest representation, always with a fraction
func formatRaw(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
