package engine

import (
	"strings"
	"unicode"

	"go-moodlens/emotion"
	"go-moodlens/types"
)

// ExtractFeatures computes surface statistics of the original, non-normalized
// text. All ratios degrade to 0 for empty input.
func ExtractFeatures(text string) types.LinguisticFeatures {
	words := strings.Fields(text)
	var features types.LinguisticFeatures

	features.WordCount = len(words)
	if len(words) > 0 {
		totalLen := 0
		unique := make(map[string]bool, len(words))
		for _, w := range words {
			totalLen += len(w)
			unique[w] = true
		}
		features.AvgWordLength = float64(totalLen) / float64(len(words))
		features.UniqueWords = len(unique)
		features.RepetitionRatio = float64(len(words)-len(unique)) / float64(len(words))
	}

	features.ExclamationMarks = strings.Count(text, "!")
	features.QuestionMarks = strings.Count(text, "?")

	runes := []rune(text)
	if len(runes) > 0 {
		var upper, punct int
		for _, r := range runes {
			if unicode.IsUpper(r) {
				upper++
			}
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
				punct++
			}
		}
		features.CapsRatio = float64(upper) / float64(len(runes))
		features.PunctuationDensity = float64(punct) / float64(len(runes))
	}

	return features
}

// Intensity estimates emotional intensity of normalized text from modifier
// words, emphatic punctuation and capitalization, scaled into [0,1].
func Intensity(normalized string) float64 {
	if normalized == "" {
		return 0
	}

	var intensity float64
	for _, word := range strings.Fields(normalized) {
		if factor, ok := emotion.Modifiers[word]; ok {
			intensity += factor
		}
	}

	intensity += float64(strings.Count(normalized, "!")) * 0.3
	intensity += float64(strings.Count(normalized, "?")) * 0.1

	runes := []rune(normalized)
	var upper int
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	intensity += float64(upper) / float64(len(runes)) * 2

	return min(intensity/5, 1.0)
}
