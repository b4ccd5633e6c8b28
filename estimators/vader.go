package estimators

import (
	"context"

	"github.com/jonreiter/govader"

	"go-moodlens/types"
)

// VaderEstimator is the lexicon-based, valence-aware scorer. govader already
// handles negation windows, booster words and punctuation/case emphasis, so
// its triple is used directly.
type VaderEstimator struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderEstimator loads the VADER lexicon once; the analyzer is read-only
// afterwards and safe to share across workers.
func NewVaderEstimator() *VaderEstimator {
	return &VaderEstimator{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderEstimator) Name() string { return "vader" }

func (v *VaderEstimator) Weight() float64 { return 0.4 }

func (v *VaderEstimator) Score(_ context.Context, _, normalized string) (types.SentimentDistribution, error) {
	scores := v.analyzer.PolarityScores(normalized)
	return types.SentimentDistribution{
		Positive: max(0, scores.Positive),
		Negative: max(0, scores.Negative),
		Neutral:  max(0, scores.Neutral),
	}, nil
}
