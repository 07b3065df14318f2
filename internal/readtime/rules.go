package readtime

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule set versions. v2 is the current rule set; v1 reproduces the
// legacy 200 wpm counter so older estimates can be regenerated.
const (
	RulesV1 = "v1"
	RulesV2 = "v2"
)

const (
	codeFence       = "```"
	linkPlaceholder = "_link_"
)

var (
	// v2
	linkRe        = regexp.MustCompile(`(http://|https://)(\S+)`)
	anchorRe      = regexp.MustCompile(`<a href=(.*?)>(.*?)</a>`)
	nonWordCharV2 = regexp.MustCompile("[,.?!~`'\"/\\\\=\\-_+<>{}()\\[\\]|;:#$%*&]")

	// v1
	htmlLineRe    = regexp.MustCompile(`<.+>`)
	nonWordCharV1 = regexp.MustCompile(`,|\.|\?|-|>`)
)

var postDelimiters = []string{
	`<div class="post-delimiter">`,
	`<div class='post-delimiter'>`,
}

var skippedTags = []string{"figure", "figcaption", "img"}

type CodeBlockPolicy int

const (
	// CodeBlocksCount tokenizes fenced lines as-is, without link or HTML rules
	CodeBlocksCount CodeBlockPolicy = iota
	// CodeBlocksSkip drops fenced lines, fences included
	CodeBlocksSkip
)

func ParseCodeBlockPolicy(s string) (CodeBlockPolicy, error) {
	switch strings.ToLower(s) {
	case "", "count":
		return CodeBlocksCount, nil
	case "skip":
		return CodeBlocksSkip, nil
	default:
		return 0, fmt.Errorf("unknown code block policy: %s", s)
	}
}

func (p CodeBlockPolicy) String() string {
	if p == CodeBlocksSkip {
		return "skip"
	}
	return "count"
}

// isLineToSkip matches markup-only lines: post delimiters and figure/img tags
func isLineToSkip(line string) bool {
	for _, d := range postDelimiters {
		if strings.Contains(line, d) {
			return true
		}
	}
	for _, tag := range skippedTags {
		if hasHTMLTag(tag, line) {
			return true
		}
	}
	return false
}

func hasHTMLTag(tag, line string) bool {
	return strings.Contains(line, "<"+tag) ||
		strings.Contains(line, tag+">") ||
		strings.Contains(line, tag+"/>")
}

// normalizeProse keeps only the visible text of anchors and collapses
// every URL to a single placeholder word.
func normalizeProse(line string) string {
	clean := anchorRe.ReplaceAllString(strings.TrimSpace(line), "$2")
	return linkRe.ReplaceAllString(clean, linkPlaceholder)
}

// countTokens counts whitespace-delimited tokens that survive stripping
func countTokens(line string, strip *regexp.Regexp) int {
	n := 0
	for _, w := range strings.Fields(line) {
		if len(strip.ReplaceAllString(w, "")) > 0 {
			n++
		}
	}
	return n
}
