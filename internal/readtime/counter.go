package readtime

import (
	"fmt"
	"strings"
)

// Options select the normalization rule set and how fenced code is treated
type Options struct {
	Rules      string
	CodeBlocks CodeBlockPolicy
	// OnSkip, if set, receives every line dropped as markup noise
	OnSkip func(line string)
}

// Tally is the outcome of counting one text
type Tally struct {
	Words        int
	SkippedLines int
	CodeLines    int
}

// CountWords counts prose words in text using the selected rule set
func CountWords(text string, opts Options) (Tally, error) {
	switch opts.Rules {
	case RulesV2, "":
		return countV2(text, opts), nil
	case RulesV1:
		return countV1(text, opts), nil
	default:
		return Tally{}, fmt.Errorf("unknown rule set: %s", opts.Rules)
	}
}

func countV2(text string, opts Options) Tally {
	var t Tally
	inCode := false

	for _, line := range strings.Split(text, "\n") {
		fence := strings.Contains(line, codeFence)
		if fence {
			inCode = !inCode
		}

		var clean string
		if inCode {
			t.CodeLines++
			if opts.CodeBlocks == CodeBlocksSkip {
				continue
			}
			clean = line
		} else {
			if fence {
				// closing fence
				t.CodeLines++
				if opts.CodeBlocks == CodeBlocksSkip {
					continue
				}
			}
			if isLineToSkip(line) {
				t.SkippedLines++
				if opts.OnSkip != nil {
					opts.OnSkip(line)
				}
				continue
			}
			clean = normalizeProse(line)
		}

		t.Words += countTokens(clean, nonWordCharV2)
	}
	return t
}

// countV1 follows the legacy counter: any line with a tag is dropped,
// links become one word, and a few separators split tokens.
func countV1(text string, opts Options) Tally {
	var t Tally
	for _, line := range strings.Split(text, "\n") {
		if htmlLineRe.MatchString(line) {
			t.SkippedLines++
			if opts.OnSkip != nil {
				opts.OnSkip(line)
			}
			continue
		}

		clean := linkRe.ReplaceAllString(strings.TrimSpace(line), " W ")
		clean = nonWordCharV1.ReplaceAllString(clean, " ")
		t.Words += len(strings.Fields(clean))
	}
	return t
}
