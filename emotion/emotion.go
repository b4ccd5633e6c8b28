// Package emotion scores text over a fixed eight-category profile using
// English trigger lexicons, a Swahili direct lexicon and intensity modifiers.
package emotion

import (
	"strings"

	"go-moodlens/types"
)

// lexicons maps each category to its English trigger words. A trigger matches
// when it occurs as a substring of a token, so short triggers also match inside
// longer words ("joy" in "joyful").
var lexicons = map[string][]string{
	"joy":          {"happy", "joy", "cheerful", "delighted", "ecstatic", "elated", "glad", "pleased", "excited", "thrilled"},
	"sadness":      {"sad", "depressed", "melancholy", "sorrowful", "grief", "mourning", "despair", "dejected"},
	"anger":        {"angry", "furious", "rage", "irritated", "annoyed", "frustrated", "outraged", "livid"},
	"fear":         {"afraid", "scared", "terrified", "anxious", "worried", "nervous", "panic", "frightened"},
	"surprise":     {"surprised", "amazed", "astonished", "shocked", "startled", "stunned", "bewildered"},
	"disgust":      {"disgusted", "revolted", "repulsed", "sickened", "appalled", "nauseated"},
	"trust":        {"trust", "faith", "confidence", "belief", "reliable", "dependable", "loyal"},
	"anticipation": {"excited", "eager", "hopeful", "optimistic", "anticipating"},
}

// swahiliEntry holds the category and base intensity of one Swahili word.
type swahiliEntry struct {
	category  string
	intensity float64
}

// swahiliLexicon maps Swahili words directly to (category, base intensity).
// Direct entries can only raise a score, never lower it.
var swahiliLexicon = map[string]swahiliEntry{
	"furaha":    {"joy", 0.8},
	"huzuni":    {"sadness", 0.8},
	"hasira":    {"anger", 0.9},
	"hofu":      {"fear", 0.7},
	"mshangao":  {"surprise", 0.6},
	"chuki":     {"disgust", 0.8},
	"imani":     {"trust", 0.7},
	"matumaini": {"anticipation", 0.8},
	"poa":       {"joy", 0.6},
	"sawa":      {"joy", 0.5},
	"vibaya":    {"sadness", 0.7},
	"nzuri":     {"joy", 0.6},
	"mbaya":     {"sadness", 0.7},
}

// Modifiers is the intensity-modifier table: each matched modifier token
// multiplies every category score. The factor applies to the whole profile,
// not just the word that follows the modifier.
var Modifiers = map[string]float64{
	"very": 1.5, "extremely": 2.0, "really": 1.3, "quite": 1.2, "somewhat": 0.8,
	"slightly": 0.6, "barely": 0.4, "absolutely": 2.0, "totally": 1.8, "completely": 2.0,
}

// Detect scores normalized text over all eight categories. Every category is
// always present in the returned profile, zero when nothing matched.
func Detect(normalized string) types.EmotionProfile {
	profile := types.NewEmotionProfile()
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return profile
	}

	for category, triggers := range lexicons {
		matches := 0
		for _, word := range words {
			for _, trigger := range triggers {
				if strings.Contains(word, trigger) {
					matches++
					break
				}
			}
		}
		if matches > 0 {
			profile[category] = min(float64(matches)/float64(len(words))*10, 1.0)
		}
	}

	for _, word := range words {
		if entry, ok := swahiliLexicon[word]; ok {
			profile[entry.category] = max(profile[entry.category], entry.intensity)
		}
	}

	return ApplyModifiers(normalized, profile)
}

// ApplyModifiers multiplies all category scores by the factor of every
// modifier token present in the text, re-capping each score at 1.0.
func ApplyModifiers(normalized string, profile types.EmotionProfile) types.EmotionProfile {
	for _, word := range strings.Fields(normalized) {
		factor, ok := Modifiers[word]
		if !ok {
			continue
		}
		for category := range profile {
			profile[category] = min(profile[category]*factor, 1.0)
		}
	}
	return profile
}
