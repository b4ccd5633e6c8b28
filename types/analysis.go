package types

import (
	"math"
	"time"
)

// SentimentLabel is the discrete category derived from a fused distribution.
type SentimentLabel string

const (
	Positive SentimentLabel = "positive"
	Negative SentimentLabel = "negative"
	Neutral  SentimentLabel = "neutral"
	Mixed    SentimentLabel = "mixed"
)

// Labels lists every label in a stable order, for aggregation maps.
var Labels = []SentimentLabel{Positive, Negative, Neutral, Mixed}

// SentimentDistribution holds the three polarity channels. Individual
// estimators produce non-negative triples that need not sum to 1; after
// fusion the channels sum to 1 except in the all-zero degenerate case.
type SentimentDistribution struct {
	Positive float64 `firestore:"positive" json:"positive"`
	Negative float64 `firestore:"negative" json:"negative"`
	Neutral  float64 `firestore:"neutral" json:"neutral"`
}

// Sum returns the total mass across the three channels.
func (d SentimentDistribution) Sum() float64 {
	return d.Positive + d.Negative + d.Neutral
}

// Label derives the sentiment label from a distribution. The all-zero
// degenerate distribution (no estimator produced any signal) is neutral.
func (d SentimentDistribution) Label() SentimentLabel {
	if d.Positive == 0 && d.Negative == 0 && d.Neutral == 0 {
		return Neutral
	}
	switch {
	case d.Positive > 0.6:
		return Positive
	case d.Negative > 0.6:
		return Negative
	case math.Abs(d.Positive-d.Negative) < 0.1:
		return Mixed
	default:
		return Neutral
	}
}

// FusedSentiment is the weighted combination of all estimator distributions.
type FusedSentiment struct {
	SentimentDistribution
	Label    SentimentLabel `firestore:"label" json:"label"`
	Compound float64        `firestore:"compound" json:"compound"`
}

// EmotionCategories is the fixed, closed set of emotion dimensions. Every
// EmotionProfile carries all of them, zero-filled when undetected.
var EmotionCategories = []string{
	"joy", "sadness", "anger", "fear", "surprise", "disgust", "trust", "anticipation",
}

// EmotionProfile maps each fixed category to a score in [0,1].
type EmotionProfile map[string]float64

// NewEmotionProfile returns a zero-filled profile over all categories.
func NewEmotionProfile() EmotionProfile {
	p := make(EmotionProfile, len(EmotionCategories))
	for _, c := range EmotionCategories {
		p[c] = 0.0
	}
	return p
}

// LinguisticFeatures are surface statistics of the original (non-normalized)
// text, independent of sentiment.
type LinguisticFeatures struct {
	WordCount          int     `firestore:"wordCount" json:"word_count"`
	AvgWordLength      float64 `firestore:"avgWordLength" json:"avg_word_length"`
	ExclamationMarks   int     `firestore:"exclamationMarks" json:"exclamation_marks"`
	QuestionMarks      int     `firestore:"questionMarks" json:"question_marks"`
	CapsRatio          float64 `firestore:"capsRatio" json:"caps_ratio"`
	PunctuationDensity float64 `firestore:"punctuationDensity" json:"punctuation_density"`
	UniqueWords        int     `firestore:"uniqueWords" json:"unique_words"`
	RepetitionRatio    float64 `firestore:"repetitionRatio" json:"repetition_ratio"`
}

// AnalysisResult is the composite output of the single-text pipeline.
// Immutable after construction; downstream consumers only aggregate it.
type AnalysisResult struct {
	ID                 string                           `firestore:"id" json:"id"`
	Sentiment          FusedSentiment                   `firestore:"sentiment" json:"sentiment"`
	Emotions           EmotionProfile                   `firestore:"emotions" json:"emotions"`
	Features           LinguisticFeatures               `firestore:"linguisticFeatures" json:"linguistic_features"`
	IntensityScore     float64                          `firestore:"intensityScore" json:"intensity_score"`
	Confidence         float64                          `firestore:"confidence" json:"confidence"`
	IndividualAnalyses map[string]SentimentDistribution `firestore:"individualAnalyses" json:"individual_analyses"`
	Timestamp          time.Time                        `firestore:"timestamp" json:"timestamp"`
	TextLength         int                              `firestore:"textLength" json:"text_length"`
	NormalizedLength   int                              `firestore:"normalizedLength" json:"normalized_length"`
}

// BatchItem wraps one result of a batch run. Error is empty for a successful
// item; a failed item carries the empty analysis plus the failure description,
// so one bad item never aborts the batch.
type BatchItem struct {
	Index       int            `firestore:"index" json:"index"`
	TextPreview string         `firestore:"textPreview" json:"text_preview"`
	Analysis    AnalysisResult `firestore:"analysis" json:"analysis"`
	Error       string         `firestore:"error,omitempty" json:"error,omitempty"`
}

// Ok reports whether the item was analyzed without failure.
func (b BatchItem) Ok() bool { return b.Error == "" }

// BatchSummary aggregates a whole batch run.
type BatchSummary struct {
	TotalTexts            int                        `firestore:"totalTexts" json:"total_texts"`
	SentimentDistribution map[SentimentLabel]float64 `firestore:"sentimentDistribution" json:"sentiment_distribution"`
	DominantSentiment     SentimentLabel             `firestore:"dominantSentiment" json:"dominant_sentiment"`
	AverageEmotions       EmotionProfile             `firestore:"averageEmotions" json:"average_emotions"`
	MostProminentEmotion  string                     `firestore:"mostProminentEmotion" json:"most_prominent_emotion"`
}

// BucketSummary aggregates the analyses that fell into one time bucket.
type BucketSummary struct {
	SentimentCounts   map[SentimentLabel]int `firestore:"sentimentCounts" json:"sentiment_distribution"`
	TotalCount        int                    `firestore:"totalCount" json:"total_count"`
	DominantSentiment SentimentLabel         `firestore:"dominantSentiment" json:"dominant_sentiment"`
	AverageEmotions   EmotionProfile         `firestore:"averageEmotions" json:"average_emotions"`
	Summary           string                 `firestore:"summary,omitempty" json:"summary,omitempty"`
}
