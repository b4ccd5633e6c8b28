package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFeaturesCounts(t *testing.T) {
	t.Parallel()
	features := ExtractFeatures("go go go")

	assert.Equal(t, 3, features.WordCount)
	assert.Equal(t, 1, features.UniqueWords)
	assert.InDelta(t, 2.0/3.0, features.RepetitionRatio, 1e-9)
	assert.InDelta(t, 2.0, features.AvgWordLength, 1e-9)
}

func TestExtractFeaturesPunctuation(t *testing.T) {
	t.Parallel()
	features := ExtractFeatures("what?! really?? yes!")

	assert.Equal(t, 2, features.ExclamationMarks)
	assert.Equal(t, 3, features.QuestionMarks)
	assert.Positive(t, features.PunctuationDensity)
}

func TestExtractFeaturesCapsRatio(t *testing.T) {
	t.Parallel()
	// 3 uppercase of 7 runes.
	features := ExtractFeatures("ABC abc")
	assert.InDelta(t, 3.0/7.0, features.CapsRatio, 1e-9)
}

func TestExtractFeaturesEmptyText(t *testing.T) {
	t.Parallel()
	features := ExtractFeatures("")

	assert.Zero(t, features.WordCount)
	assert.Zero(t, features.AvgWordLength)
	assert.Zero(t, features.CapsRatio)
	assert.Zero(t, features.PunctuationDensity)
	assert.Zero(t, features.RepetitionRatio)
}

func TestIntensityComponents(t *testing.T) {
	t.Parallel()
	// "very" contributes 1.5, one "!" contributes 0.3: (1.5+0.3)/5.
	got := Intensity("very happy!")
	assert.InDelta(t, 1.8/5, got, 1e-9)

	assert.Zero(t, Intensity(""))
}

func TestIntensityCapsAtOne(t *testing.T) {
	t.Parallel()
	got := Intensity("extremely absolutely completely totally wild!!!")
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestIntensityQuestionMarksAreWeaker(t *testing.T) {
	t.Parallel()
	assert.Greater(t, Intensity("what!"), Intensity("what?"))
}
