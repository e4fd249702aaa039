// Package priority scores the urgency of a Vietnamese task description on
// a 1–5 scale from lexical cues.
package priority

import (
	"regexp"
	"strings"
)

// Baseline is the score assigned when no trigger phrase is found.
const Baseline = 3

// tier is one priority level with its trigger phrases. Multiple hits within
// a tier do not stack; a hit only raises the score, never lowers it.
type tier struct {
	score    int
	keywords []string
}

var tiers = []tier{
	{5, []string{"gấp", "khẩn", "ngay lập tức", "phải làm liền"}},
	{4, []string{"ưu tiên", "deadline", "ngay", "hôm nay", "nay"}},
	{3, []string{"nhớ", "cần làm", "quan trọng", "dự định", "rất cần"}},
	{2, []string{"nên làm", "mai", "tuần này"}},
	{1, []string{"để sau", "lúc rảnh", "không gấp", "lát nữa", "mốt"}},
}

// clockTimeRe detects explicit clock times ("10h", "14:30") that escalate
// urgency on their own.
var clockTimeRe = regexp.MustCompile(`\b(\d{1,2}h|\d{1,2}:\d{2})\b`)

// Detect returns the priority score for the text. It starts from Baseline
// and only ever raises: tier trigger phrases first, then escalation rules
// for same-day cues. Always returns a value in [1, 5].
func Detect(text string) int {
	lower := strings.ToLower(text)
	score := Baseline

	for _, t := range tiers {
		if t.score <= score {
			continue
		}
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				score = t.score
				break
			}
		}
	}

	hasTime := clockTimeRe.MatchString(lower)
	if (hasTime || strings.Contains(lower, "hôm nay") || strings.Contains(lower, "nay")) && score < 4 {
		score = 4
	}

	if strings.Contains(lower, "mai") && score < 2 {
		score = 2
	}

	// Inert below Baseline; kept for parity with the tier table.
	if strings.Contains(lower, "mốt") && score < 1 {
		score = 1
	}

	return score
}
