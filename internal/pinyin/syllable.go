package pinyin

import "strings"

// initials holds every pinyin initial, two-letter clusters first so the
// longest-prefix match never stops at z when the syllable starts with zh.
var initials = []string{
	"zh", "ch", "sh",
	"b", "p", "m", "f", "d", "t", "n", "l",
	"g", "k", "h", "j", "q", "x", "r",
	"z", "c", "s", "y", "w",
}

// Syllable is the decomposition of one toned pinyin syllable. String
// fields keep their diacritics; Tone is 0 for the neutral tone. Head,
// Body, and Tail split the final into glide, nucleus, and coda.
type Syllable struct {
	Initial string
	Final   string
	Tone    int
	First   string
	Head    string
	Body    string
	Tail    string
}

// Analyze decomposes a toned pinyin syllable. Inputs that are not pinyin
// syllables produce zero or partial fields, never an error.
func Analyze(s string) Syllable {
	var sy Syllable
	if s == "" {
		return sy
	}
	runes := []rune(s)
	sy.First = string(runes[0])
	sy.Tone = SyllableTone(s)
	for _, ini := range initials {
		if strings.HasPrefix(s, ini) && len(s) > len(ini) {
			sy.Initial = ini
			break
		}
	}
	sy.Final = s[len(sy.Initial):]
	sy.Head, sy.Body, sy.Tail = splitFinal(sy.Final)
	return sy
}

// splitFinal decomposes a final into head (vowels before the nucleus),
// body (the tone-bearing vowel), and tail (everything after it).
func splitFinal(final string) (head, body, tail string) {
	if final == "" {
		return "", "", ""
	}
	runes := []rune(final)

	// A vowel already carrying a tone mark is the body wherever it sits.
	idx := -1
	for i, r := range runes {
		if t, ok := toneTable[r]; ok && t.tone > 0 && isVowel(t.base) {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = placeBody(runes)
	}
	if idx < 0 {
		// Vowel-less final (m, ng, ...): all coda.
		return "", "", final
	}
	// A decomposed syllable like ê̄ carries its tone as a combining mark
	// after the vowel; keep it with the body.
	end := idx + 1
	for end < len(runes) {
		if _, ok := combiningTones[runes[end]]; !ok {
			break
		}
		end++
	}
	return string(runes[:idx]), string(runes[idx:end]), string(runes[end:])
}

// placeBody finds the vowel a tone mark would fall on in an unmarked
// final: a first, then o, then e; in iu and ui the second vowel; else
// the lone i, u, or ü.
func placeBody(runes []rune) int {
	bare := make([]rune, len(runes))
	for i, r := range runes {
		if t, ok := toneTable[r]; ok {
			bare[i] = t.base
		} else {
			bare[i] = r
		}
		if bare[i] == 'ê' {
			bare[i] = 'e'
		}
	}
	for _, target := range []rune{'a', 'o', 'e'} {
		for i, r := range bare {
			if r == target {
				return i
			}
		}
	}
	for i := 0; i+1 < len(bare); i++ {
		if (bare[i] == 'i' && bare[i+1] == 'u') || (bare[i] == 'u' && bare[i+1] == 'i') {
			return i + 1
		}
	}
	for i, r := range bare {
		if r == 'i' || r == 'u' || r == 'ü' {
			return i
		}
	}
	return -1
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'o', 'e', 'i', 'u', 'ü', 'ê':
		return true
	}
	return false
}
