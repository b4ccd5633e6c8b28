package estimators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-moodlens/types"
)

func TestSwahiliScoreCountsKeywords(t *testing.T) {
	t.Parallel()
	est := NewSwahiliEstimator()

	// "nzuri" is the only lexicon word among three tokens.
	dist, err := est.Score(context.Background(), "siku nzuri sana", "siku nzuri sana")
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3.0, dist.Positive, 1e-9)
	assert.Zero(t, dist.Negative)
	assert.InDelta(t, 2.0/3.0, dist.Neutral, 1e-9)
}

func TestSwahiliNegationSwapsShares(t *testing.T) {
	t.Parallel()
	est := NewSwahiliEstimator()

	original := "today is not nzuri at all"
	normalized := "today is not nzuri at all"
	dist, err := est.Score(context.Background(), original, normalized)
	require.NoError(t, err)

	// Without negation "nzuri" would be a positive share; the flip moves it
	// to the negative channel.
	assert.Zero(t, dist.Positive)
	assert.InDelta(t, 1.0/6.0, dist.Negative, 1e-9)
}

func TestSwahiliContractionTriggersNegation(t *testing.T) {
	t.Parallel()
	assert.True(t, HasNegation("this isn't right"))
	assert.True(t, HasNegation("I will NEVER go back"))
	assert.False(t, HasNegation("all good here"))
	// "knot" contains "not" but is not a negator.
	assert.False(t, HasNegation("tie the knot"))
}

func TestSwahiliNoMatchesIsPureNeutral(t *testing.T) {
	t.Parallel()
	est := NewSwahiliEstimator()

	dist, err := est.Score(context.Background(), "just an english sentence", "just an english sentence")
	require.NoError(t, err)
	assert.Equal(t, types.SentimentDistribution{Neutral: 1}, dist)
}

func TestSwahiliEmptyInput(t *testing.T) {
	t.Parallel()
	est := NewSwahiliEstimator()

	dist, err := est.Score(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, types.SentimentDistribution{Neutral: 1}, dist)
}
