package estimators

import (
	"context"
	"regexp"
	"strings"

	"go-moodlens/types"
)

// Swahili keyword sets for the multilingual rule estimator.
var (
	swahiliPositive = map[string]bool{
		"poa": true, "sawa": true, "nzuri": true, "vizuri": true, "furaha": true,
	}
	swahiliNegative = map[string]bool{
		"mbaya": true, "vibaya": true, "huzuni": true, "hasira": true,
	}
)

// negationPatterns cover full-word negators and contracted auxiliary
// negations. A match anywhere in the original text flips pos and neg.
var negationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:not|never|no|nothing|nowhere|neither|nobody|none|without)\b`),
	regexp.MustCompile(`(?i)\b(?:isn't|aren't|wasn't|weren't|won't|wouldn't|shouldn't|couldn't|can't|don't|doesn't|didn't|haven't|hasn't|hadn't)\b`),
}

// SwahiliEstimator counts Swahili sentiment keywords and applies a blunt
// negation-flip: any negation pattern in the raw text swaps the positive and
// negative shares.
type SwahiliEstimator struct{}

func NewSwahiliEstimator() *SwahiliEstimator { return &SwahiliEstimator{} }

func (s *SwahiliEstimator) Name() string { return "swahili" }

func (s *SwahiliEstimator) Weight() float64 { return 0.3 }

func (s *SwahiliEstimator) Score(_ context.Context, original, normalized string) (types.SentimentDistribution, error) {
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return types.SentimentDistribution{Neutral: 1}, nil
	}

	var posMatches, negMatches int
	for _, word := range words {
		if swahiliPositive[word] {
			posMatches++
		}
		if swahiliNegative[word] {
			negMatches++
		}
	}

	if posMatches+negMatches == 0 {
		return types.SentimentDistribution{Neutral: 1}, nil
	}

	pos := float64(posMatches) / float64(len(words))
	neg := float64(negMatches) / float64(len(words))

	if HasNegation(original) {
		pos, neg = neg, pos
	}

	return types.SentimentDistribution{
		Positive: pos,
		Negative: neg,
		Neutral:  1 - (pos + neg),
	}, nil
}

// HasNegation reports whether any negation pattern matches the text.
func HasNegation(text string) bool {
	for _, pattern := range negationPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
