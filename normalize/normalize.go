// Package normalize performs deterministic text cleanup before scoring:
// emoji glyphs become descriptive tokens, slang and abbreviations are
// expanded, and the result is lowercased.
package normalize

import (
	"sort"
	"strings"
)

// emojiTokens maps emoji glyphs to space-delimited descriptive tokens.
var emojiTokens = map[string]string{
	"😊": " happy ",
	"😀": " happy ",
	"😁": " happy ",
	"🤣": " laughing very much ",
	"😂": " laughing ",
	"😢": " sad ",
	"😭": " crying sad ",
	"😠": " angry ",
	"😡": " very angry ",
	"😱": " shocked ",
	"😨": " scared ",
	"😮": " surprised ",
	"🤢": " disgusted ",
	"❤":  " love ",
	"❤️": " love ",
	"🔥": " fire intense ",
	"👍": " positive ",
	"👎": " negative ",
	"🙏": " hopeful ",
}

// replacements expands regional slang, internet abbreviations and
// punctuation runs into plain words the estimators can score.
var replacements = map[string]string{
	// Kenyan slang
	"sawa sawa":     "very good",
	"poa kabisa":    "very cool",
	"mambo vipi":    "how are things",
	"hakuna matata": "no problem",
	"harambee":      "unity cooperation",
	"iko sawa":      "it is good",
	"si sawa":       "not good",

	// Internet slang
	"omg": "oh my god",
	"lol": "laughing",
	"rofl": "laughing very much",
	"smh": "disappointed",
	"fml": "frustrated",
	"wtf": "confused angry",
	"imo": "in my opinion",
	"tbh": "to be honest",
	"ngl": "not gonna lie",
	"fr":  "for real",
	"rn":  "right now",

	// Punctuation runs carrying emotion
	"!!!": " very excited",
	"???": " very confused",
}

// orderedKeys holds the replacement keys sorted longest-first so that a key
// that is a substring of another ("sawa" in "sawa sawa") never shadows the
// more specific match.
var orderedKeys = func() []string {
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// Text cleans raw input for the estimator pipeline. Empty or whitespace-only
// input normalizes to the empty string, which short-circuits analysis.
func Text(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	// Emoji first, so glyph-derived tokens go through the slang table too.
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if token, ok := emojiTokens[string(r)]; ok {
			b.WriteString(token)
			continue
		}
		b.WriteRune(r)
	}

	out := strings.ToLower(b.String())
	for _, key := range orderedKeys {
		out = strings.ReplaceAll(out, key, replacements[key])
	}

	return strings.ToLower(strings.TrimSpace(out))
}

// Words splits normalized text into tokens on whitespace.
func Words(normalized string) []string {
	return strings.Fields(normalized)
}
