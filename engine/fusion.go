package engine

import (
	"math"

	"go-moodlens/types"
)

// Fuse linearly combines per-estimator distributions channel by channel,
// renormalizing the weights over the estimators that actually produced a
// score, then renormalizing the channels to sum to 1. An all-zero
// pre-normalization sum is left as the zero distribution; the label function
// treats it as neutral.
func Fuse(individual map[string]types.SentimentDistribution, weights map[string]float64) types.FusedSentiment {
	var totalWeight float64
	for name := range individual {
		totalWeight += weights[name]
	}
	if totalWeight == 0 {
		zero := types.SentimentDistribution{}
		return types.FusedSentiment{SentimentDistribution: zero, Label: zero.Label()}
	}

	var pos, neg, neu float64
	for name, dist := range individual {
		w := weights[name] / totalWeight
		pos += dist.Positive * w
		neg += dist.Negative * w
		neu += dist.Neutral * w
	}

	if total := pos + neg + neu; total > 0 {
		pos /= total
		neg /= total
		neu /= total
	}

	dist := types.SentimentDistribution{
		Positive: Round3(pos),
		Negative: Round3(neg),
		Neutral:  Round3(neu),
	}
	return types.FusedSentiment{
		SentimentDistribution: dist,
		Label:                 dist.Label(),
		Compound:              Round3(pos - neg),
	}
}

// Round3 rounds to three decimal places for reporting.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
