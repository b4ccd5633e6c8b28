package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercases",
			in:   "This Is GREAT",
			want: "this is great",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   "   \t\n  ",
			want: "",
		},
		{
			name: "emoji becomes token",
			in:   "won the game 😊",
			want: "won the game  happy",
		},
		{
			name: "kenyan slang expands",
			in:   "everything iko sawa leo",
			want: "everything it is good leo",
		},
		{
			name: "longer key wins over substring",
			in:   "sawa sawa my dear",
			want: "very good my dear",
		},
		{
			name: "internet abbreviation",
			in:   "omg this works",
			want: "oh my god this works",
		},
		{
			name: "exclamation run",
			in:   "we won!!!",
			want: "we won very excited",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Text(tc.in))
		})
	}
}

func TestTextEmojiFeedsSlangTable(t *testing.T) {
	t.Parallel()
	// 🤣 expands to "laughing very much"; none of those words are slang
	// keys, but the expansion must run after the emoji pass.
	out := Text("🤣 that joke")
	assert.Contains(t, out, "laughing very much")
	assert.Contains(t, out, "that joke")
}

func TestTextNeverReturnsUppercase(t *testing.T) {
	t.Parallel()
	out := Text("OMG!!! SAWA SAWA 😡")
	assert.Equal(t, strings.ToLower(out), out)
}

func TestWords(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "b", "c"}, Words(" a  b \t c "))
	assert.Empty(t, Words(""))
}
