package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Syllable
	}{
		{
			name:  "two letter initial",
			input: "zhōng",
			want:  Syllable{Initial: "zh", Final: "ōng", Tone: 1, First: "z", Head: "", Body: "ō", Tail: "ng"},
		},
		{
			name:  "glide before nucleus",
			input: "guó",
			want:  Syllable{Initial: "g", Final: "uó", Tone: 2, First: "g", Head: "u", Body: "ó", Tail: ""},
		},
		{
			name:  "third tone",
			input: "hǎo",
			want:  Syllable{Initial: "h", Final: "ǎo", Tone: 3, First: "h", Head: "", Body: "ǎ", Tail: "o"},
		},
		{
			name:  "y counts as initial",
			input: "yún",
			want:  Syllable{Initial: "y", Final: "ún", Tone: 2, First: "y", Head: "", Body: "ú", Tail: "n"},
		},
		{
			name:  "toned u with glide",
			input: "liù",
			want:  Syllable{Initial: "l", Final: "iù", Tone: 4, First: "l", Head: "i", Body: "ù", Tail: ""},
		},
		{
			name:  "umlaut final",
			input: "lǜ",
			want:  Syllable{Initial: "l", Final: "ǜ", Tone: 4, First: "l", Head: "", Body: "ǜ", Tail: ""},
		},
		{
			name:  "bare syllable keeps neutral tone",
			input: "le",
			want:  Syllable{Initial: "l", Final: "e", Tone: 0, First: "l", Head: "", Body: "e", Tail: ""},
		},
		{
			name:  "no initial",
			input: "ér",
			want:  Syllable{Initial: "", Final: "ér", Tone: 2, First: "é", Head: "", Body: "é", Tail: "r"},
		},
		{
			name:  "unmarked iu places body on second vowel",
			input: "liu",
			want:  Syllable{Initial: "l", Final: "iu", Tone: 0, First: "l", Head: "i", Body: "u", Tail: ""},
		},
		{
			name:  "unmarked ui places body on second vowel",
			input: "gui",
			want:  Syllable{Initial: "g", Final: "ui", Tone: 0, First: "g", Head: "u", Body: "i", Tail: ""},
		},
		{
			name:  "vowelless syllable",
			input: "ń",
			want:  Syllable{Initial: "", Final: "ń", Tone: 2, First: "ń", Head: "", Body: "", Tail: "ń"},
		},
		{
			name:  "interjection e with circumflex",
			input: "ê",
			want:  Syllable{Initial: "", Final: "ê", Tone: 0, First: "ê", Head: "", Body: "ê", Tail: ""},
		},
		{
			name:  "combining tone mark stays with the body",
			input: "ê̄",
			want:  Syllable{Initial: "", Final: "ê̄", Tone: 1, First: "ê", Head: "", Body: "ê̄", Tail: ""},
		},
		{
			name:  "empty input",
			input: "",
			want:  Syllable{},
		},
		{
			name:  "lone consonant is not its own initial",
			input: "m",
			want:  Syllable{Initial: "", Final: "m", Tone: 0, First: "m", Head: "", Body: "", Tail: "m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzeReconstruction(t *testing.T) {
	// Initial + final must always reassemble the syllable, and the final
	// must equal head + body + tail.
	syllables := []string{"zhōng", "guó", "xíng", "háng", "yuán", "wǔ", "ér", "lǜ", "shuài", "qióng", "ń", "le"}
	for _, s := range syllables {
		sy := Analyze(s)
		assert.Equal(t, s, sy.Initial+sy.Final, "initial+final for %q", s)
		assert.Equal(t, sy.Final, sy.Head+sy.Body+sy.Tail, "head+body+tail for %q", s)
	}
}
