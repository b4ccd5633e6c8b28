// Package estimators holds the pluggable polarity estimators whose
// distributions are fused into the final sentiment.
package estimators

import (
	"context"

	"go-moodlens/types"
)

// Estimator produces a non-negative {positive, negative, neutral} triple for
// one text. A failing estimator is simply absent from fusion; the remaining
// weights are renormalized.
type Estimator interface {
	Name() string
	Weight() float64
	Score(ctx context.Context, original, normalized string) (types.SentimentDistribution, error)
}
