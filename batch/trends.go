package batch

import (
	"github.com/jonboulle/clockwork"

	"go-moodlens/types"
)

// Time window granularities for trend bucketing.
const (
	WindowHourly = "hourly"
	WindowDaily  = "daily"
	WindowMinute = "minute"
)

// bucketLayout returns the timestamp format that keys one bucket. Unknown
// windows fall through to minute granularity.
func bucketLayout(window string) string {
	switch window {
	case WindowHourly:
		return "2006-01-02 15:00"
	case WindowDaily:
		return "2006-01-02"
	default:
		return "2006-01-02 15:04"
	}
}

// Trends groups prior analyses into time buckets and reduces each bucket to
// its label counts, dominant label and per-emotion averages. An analysis with
// a zero timestamp is bucketed at the current time instead of failing the
// whole aggregation.
func Trends(analyses []types.AnalysisResult, window string, clock clockwork.Clock) map[string]types.BucketSummary {
	if len(analyses) == 0 {
		return map[string]types.BucketSummary{}
	}

	layout := bucketLayout(window)

	type bucket struct {
		labels        []types.SentimentLabel
		emotionScores map[string][]float64
	}
	buckets := make(map[string]*bucket)

	for _, analysis := range analyses {
		ts := analysis.Timestamp
		if ts.IsZero() {
			ts = clock.Now()
		}
		key := ts.Format(layout)

		b, ok := buckets[key]
		if !ok {
			b = &bucket{emotionScores: make(map[string][]float64)}
			buckets[key] = b
		}
		b.labels = append(b.labels, analysis.Sentiment.Label)
		for category, score := range analysis.Emotions {
			b.emotionScores[category] = append(b.emotionScores[category], score)
		}
	}

	trendData := make(map[string]types.BucketSummary, len(buckets))
	for key, b := range buckets {
		counts := make(map[types.SentimentLabel]int)
		for _, label := range b.labels {
			counts[label]++
		}

		dominant := types.Neutral
		best := -1
		for _, label := range types.Labels {
			if counts[label] > best {
				best = counts[label]
				dominant = label
			}
		}

		avgEmotions := types.NewEmotionProfile()
		for _, category := range types.EmotionCategories {
			scores := b.emotionScores[category]
			if len(scores) == 0 {
				continue
			}
			var sum float64
			for _, s := range scores {
				sum += s
			}
			avgEmotions[category] = sum / float64(len(scores))
		}

		trendData[key] = types.BucketSummary{
			SentimentCounts:   counts,
			TotalCount:        len(b.labels),
			DominantSentiment: dominant,
			AverageEmotions:   avgEmotions,
		}
	}

	return trendData
}
