// Package engine runs the full single-text analysis pipeline: normalization,
// the estimator ensemble, score fusion, emotion detection and the derived
// confidence/intensity/feature fields.
package engine

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gonum.org/v1/gonum/stat"

	"go-moodlens/emotion"
	"go-moodlens/estimators"
	"go-moodlens/normalize"
	"go-moodlens/types"
)

// Engine holds the estimator ensemble and the statically loaded lexicon
// tables. Everything is read-only after construction, so a single Engine is
// shared across workers without synchronization.
type Engine struct {
	estimators []estimators.Estimator
	clock      clockwork.Clock
}

// New builds an engine with the three local estimators. remoteURL may be
// empty; when set, the remote classifier joins the ensemble as a best-effort
// fourth signal.
func New(remoteURL string, clock clockwork.Clock) *Engine {
	ests := []estimators.Estimator{
		estimators.NewVaderEstimator(),
		estimators.NewStatisticalEstimator(),
		estimators.NewSwahiliEstimator(),
	}
	if remote := estimators.NewRemoteEstimator(remoteURL); remote != nil {
		ests = append(ests, remote)
	}
	return &Engine{estimators: ests, clock: clock}
}

// Analyze runs the whole pipeline for one text. Empty or whitespace-only
// input short-circuits to the fixed empty analysis; estimator failures are
// logged and excluded from fusion rather than propagated.
func (e *Engine) Analyze(ctx context.Context, text string, includeEmotions bool) types.AnalysisResult {
	normalized := normalize.Text(text)
	if normalized == "" {
		return e.emptyAnalysis()
	}

	individual := make(map[string]types.SentimentDistribution, len(e.estimators))
	weights := make(map[string]float64, len(e.estimators))
	for _, est := range e.estimators {
		dist, err := est.Score(ctx, text, normalized)
		if err != nil {
			log.Printf("estimator %s unavailable, continuing without it: %v", est.Name(), err)
			continue
		}
		individual[est.Name()] = dist
		weights[est.Name()] = est.Weight()
	}

	fused := Fuse(individual, weights)

	emotions := types.NewEmotionProfile()
	if includeEmotions {
		emotions = emotion.Detect(normalized)
	}

	return types.AnalysisResult{
		ID:                 uuid.NewString(),
		Sentiment:          fused,
		Emotions:           emotions,
		Features:           ExtractFeatures(text),
		IntensityScore:     Intensity(normalized),
		Confidence:         Confidence(fused, emotions, includeEmotions),
		IndividualAnalyses: individual,
		Timestamp:          e.clock.Now(),
		TextLength:         len(text),
		NormalizedLength:   len(normalized),
	}
}

// DetectEmotions exposes emotion-only scoring for callers that do not need a
// full analysis. The input is expected to be normalized text.
func (e *Engine) DetectEmotions(normalized string) types.EmotionProfile {
	return emotion.Detect(normalized)
}

// emptyAnalysis is the fixed result for empty input: neutral sentiment,
// zero confidence, all emotions zero. Not an error condition.
func (e *Engine) emptyAnalysis() types.AnalysisResult {
	return types.AnalysisResult{
		ID: uuid.NewString(),
		Sentiment: types.FusedSentiment{
			SentimentDistribution: types.SentimentDistribution{Neutral: 1},
			Label:                 types.Neutral,
		},
		Emotions:           types.NewEmotionProfile(),
		IndividualAnalyses: map[string]types.SentimentDistribution{},
		Timestamp:          e.clock.Now(),
	}
}

// Confidence combines how decisive the fused distribution is with how
// consistent the emotion profile is: (max channel + consistency) / 2, where
// consistency is 1 minus the population variance of the emotion scores.
// A flat low-variance profile scores as consistent even though no emotion
// dominates.
func Confidence(fused types.FusedSentiment, emotions types.EmotionProfile, includeEmotions bool) float64 {
	maxChannel := max(fused.Positive, max(fused.Negative, fused.Neutral))

	consistency := 0.5
	if includeEmotions && len(emotions) > 0 {
		scores := make([]float64, 0, len(emotions))
		for _, c := range types.EmotionCategories {
			scores = append(scores, emotions[c])
		}
		consistency = 1.0 - stat.PopVariance(scores, nil)
	}

	return Round3((maxChannel + consistency) / 2)
}
