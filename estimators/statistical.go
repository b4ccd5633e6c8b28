package estimators

import (
	"context"
	"math"
	"strings"

	"go-moodlens/types"
)

// gradedWord carries the polarity [-1,1] and subjectivity [0,1] of one entry
// in the statistical table.
type gradedWord struct {
	polarity     float64
	subjectivity float64
}

// gradedLexicon is a small general-purpose table of graded sentiment words.
// Polarities are averaged across matches, so the estimator reads as a scalar
// polarity scorer rather than a counting one.
var gradedLexicon = map[string]gradedWord{
	"excellent":     {0.9, 0.9},
	"amazing":       {0.8, 0.9},
	"wonderful":     {0.8, 0.9},
	"fantastic":     {0.8, 0.9},
	"great":         {0.7, 0.8},
	"love":          {0.6, 0.7},
	"good":          {0.5, 0.6},
	"happy":         {0.6, 0.8},
	"nice":          {0.4, 0.6},
	"cool":          {0.35, 0.6},
	"best":          {0.8, 0.5},
	"perfect":       {0.9, 0.8},
	"better":        {0.4, 0.5},
	"fine":          {0.3, 0.5},
	"interesting":   {0.3, 0.6},
	"bad":           {-0.5, 0.6},
	"terrible":      {-0.8, 0.9},
	"awful":         {-0.8, 0.9},
	"horrible":      {-0.8, 0.9},
	"hate":          {-0.7, 0.8},
	"worst":         {-0.9, 0.6},
	"sad":           {-0.5, 0.8},
	"angry":         {-0.6, 0.9},
	"disappointing": {-0.6, 0.8},
	"disappointed":  {-0.6, 0.8},
	"useless":       {-0.6, 0.7},
	"pathetic":      {-0.8, 0.9},
	"disgusting":    {-0.9, 0.9},
	"boring":        {-0.5, 0.8},
	"broken":        {-0.4, 0.4},
	"worse":         {-0.5, 0.5},
	"annoying":      {-0.6, 0.8},
	"scared":        {-0.5, 0.8},
	"worried":       {-0.4, 0.7},
}

// strong intensifiers scale the polarity of the following graded word.
var boosters = map[string]float64{
	"very": 1.3, "really": 1.25, "extremely": 1.5, "so": 1.2,
	"slightly": 0.6, "somewhat": 0.7, "barely": 0.5,
}

// StatisticalEstimator maps a scalar polarity/subjectivity pair into the
// shared distribution shape.
type StatisticalEstimator struct{}

func NewStatisticalEstimator() *StatisticalEstimator { return &StatisticalEstimator{} }

func (s *StatisticalEstimator) Name() string { return "statistical" }

func (s *StatisticalEstimator) Weight() float64 { return 0.3 }

func (s *StatisticalEstimator) Score(_ context.Context, _, normalized string) (types.SentimentDistribution, error) {
	polarity, _ := s.Polarity(normalized)
	return PolarityToDistribution(polarity), nil
}

// Polarity returns the averaged polarity in [-1,1] and subjectivity in [0,1]
// of the graded words present in the text. Both are 0 when nothing matched.
func (s *StatisticalEstimator) Polarity(normalized string) (polarity, subjectivity float64) {
	words := strings.Fields(normalized)

	var polSum, subSum float64
	matched := 0
	for i, word := range words {
		entry, ok := gradedLexicon[strings.Trim(word, ".,!?;:'\"")]
		if !ok {
			continue
		}
		p := entry.polarity
		if i > 0 {
			if factor, ok := boosters[words[i-1]]; ok {
				p = clampPolarity(p * factor)
			}
		}
		polSum += p
		subSum += entry.subjectivity
		matched++
	}

	if matched == 0 {
		return 0, 0
	}
	return polSum / float64(matched), subSum / float64(matched)
}

// PolarityToDistribution maps a scalar polarity into {pos,neg,neu}:
// above 0.1 the positive channel takes the polarity, below -0.1 the negative
// channel takes its magnitude, and the band between is pure neutral.
func PolarityToDistribution(polarity float64) types.SentimentDistribution {
	switch {
	case polarity > 0.1:
		return types.SentimentDistribution{Positive: polarity, Neutral: 1 - polarity}
	case polarity < -0.1:
		return types.SentimentDistribution{Negative: math.Abs(polarity), Neutral: 1 - math.Abs(polarity)}
	default:
		return types.SentimentDistribution{Neutral: 1}
	}
}

func clampPolarity(p float64) float64 {
	if p > 1 {
		return 1
	}
	if p < -1 {
		return -1
	}
	return p
}
