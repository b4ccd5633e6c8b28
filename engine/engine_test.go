package engine

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-moodlens/types"
)

func newTestEngine(t *testing.T) (*Engine, clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	return New("", clock), clock
}

func TestAnalyzeHappyText(t *testing.T) {
	t.Parallel()
	eng, clock := newTestEngine(t)

	result := eng.Analyze(context.Background(), "I am so happy, this is wonderful!", true)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, clock.Now(), result.Timestamp)
	assert.Greater(t, result.Sentiment.Positive, result.Sentiment.Negative)
	assert.Positive(t, result.Sentiment.Compound)
	assert.Positive(t, result.Emotions["joy"])

	sum := result.Sentiment.Positive + result.Sentiment.Negative + result.Sentiment.Neutral
	assert.InDelta(t, 1.0, sum, 1e-2)
}

func TestAnalyzeRunsAllLocalEstimators(t *testing.T) {
	t.Parallel()
	eng, _ := newTestEngine(t)

	result := eng.Analyze(context.Background(), "a perfectly ordinary sentence", true)

	require.Len(t, result.IndividualAnalyses, 3)
	assert.Contains(t, result.IndividualAnalyses, "vader")
	assert.Contains(t, result.IndividualAnalyses, "statistical")
	assert.Contains(t, result.IndividualAnalyses, "swahili")
}

func TestAnalyzeEmptyInput(t *testing.T) {
	t.Parallel()
	eng, clock := newTestEngine(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		result := eng.Analyze(context.Background(), text, true)

		assert.NotEmpty(t, result.ID)
		assert.Equal(t, types.Neutral, result.Sentiment.Label)
		assert.InDelta(t, 1.0, result.Sentiment.Neutral, 1e-9)
		assert.Zero(t, result.Confidence)
		assert.Empty(t, result.IndividualAnalyses)
		assert.Equal(t, clock.Now(), result.Timestamp)
		for _, category := range types.EmotionCategories {
			assert.Zero(t, result.Emotions[category])
		}
	}
}

func TestAnalyzeWithoutEmotions(t *testing.T) {
	t.Parallel()
	eng, _ := newTestEngine(t)

	result := eng.Analyze(context.Background(), "I am thrilled and delighted", false)

	assert.Len(t, result.Emotions, len(types.EmotionCategories))
	for _, category := range types.EmotionCategories {
		assert.Zero(t, result.Emotions[category])
	}
}

func TestAnalyzeRecordsLengths(t *testing.T) {
	t.Parallel()
	eng, _ := newTestEngine(t)

	text := "OMG this is great"
	result := eng.Analyze(context.Background(), text, true)

	assert.Equal(t, len(text), result.TextLength)
	assert.Equal(t, len("oh my god this is great"), result.NormalizedLength)
}

func TestConfidenceWithoutEmotions(t *testing.T) {
	t.Parallel()
	fused := types.FusedSentiment{
		SentimentDistribution: types.SentimentDistribution{Positive: 0.8, Negative: 0.1, Neutral: 0.1},
	}

	// No emotions computed: consistency defaults to 0.5.
	got := Confidence(fused, types.NewEmotionProfile(), false)
	assert.InDelta(t, (0.8+0.5)/2, got, 1e-9)
}

func TestConfidenceRewardsUniformEmotions(t *testing.T) {
	t.Parallel()
	fused := types.FusedSentiment{
		SentimentDistribution: types.SentimentDistribution{Positive: 0.8, Negative: 0.1, Neutral: 0.1},
	}

	uniform := types.NewEmotionProfile()
	for _, category := range types.EmotionCategories {
		uniform[category] = 0.5
	}
	// Zero variance: consistency is 1.
	got := Confidence(fused, uniform, true)
	assert.InDelta(t, 0.9, got, 1e-9)
}

func TestConfidenceSpreadEmotionsLowerIt(t *testing.T) {
	t.Parallel()
	fused := types.FusedSentiment{
		SentimentDistribution: types.SentimentDistribution{Neutral: 1},
	}

	uniform := types.NewEmotionProfile()
	spread := types.NewEmotionProfile()
	spread["joy"] = 1.0

	assert.Greater(t, Confidence(fused, uniform, true), Confidence(fused, spread, true))
}
