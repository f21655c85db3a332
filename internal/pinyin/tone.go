package pinyin

import (
	"strconv"
	"strings"
)

// toneTable maps every diacritic-bearing pinyin rune to its bare form and
// tone number. Toned ü strips to ü, not v; the v spelling is a separate
// substitution applied after formatting.
var toneTable = map[rune]struct {
	base rune
	tone int
}{
	'ā': {'a', 1}, 'á': {'a', 2}, 'ǎ': {'a', 3}, 'à': {'a', 4},
	'ō': {'o', 1}, 'ó': {'o', 2}, 'ǒ': {'o', 3}, 'ò': {'o', 4},
	'ē': {'e', 1}, 'é': {'e', 2}, 'ě': {'e', 3}, 'è': {'e', 4},
	'ī': {'i', 1}, 'í': {'i', 2}, 'ǐ': {'i', 3}, 'ì': {'i', 4},
	'ū': {'u', 1}, 'ú': {'u', 2}, 'ǔ': {'u', 3}, 'ù': {'u', 4},
	'ǖ': {'ü', 1}, 'ǘ': {'ü', 2}, 'ǚ': {'ü', 3}, 'ǜ': {'ü', 4},
	'ń': {'n', 2}, 'ň': {'n', 3}, 'ǹ': {'n', 4},
	'ḿ': {'m', 2},
	'ế': {'ê', 2}, 'ề': {'ê', 4},
}

// combiningTones maps combining tone marks to tone numbers. Syllables
// like ê̄ and m̀ have no precomposed form, so their tone arrives as a
// separate combining code point.
var combiningTones = map[rune]int{
	'̄': 1, // macron
	'́': 2, // acute accent
	'̌': 3, // caron
	'̀': 4, // grave accent
}

// SyllableTone returns the tone number carried by the diacritic in s, or
// 0 when s is unmarked (the neutral tone).
func SyllableTone(s string) int {
	for _, r := range s {
		if t, ok := toneTable[r]; ok && t.tone > 0 {
			return t.tone
		}
		if tone, ok := combiningTones[r]; ok {
			return tone
		}
	}
	return 0
}

// StripTones replaces every diacritic-bearing rune with its bare form
// and drops combining tone marks. The circumflex of ê survives, like the
// umlaut of ü.
func StripTones(s string) string {
	return strings.Map(func(r rune) rune {
		if t, ok := toneTable[r]; ok {
			return t.base
		}
		if _, ok := combiningTones[r]; ok {
			return -1
		}
		return r
	}, s)
}

// SubstituteV rewrites ü as v.
func SubstituteV(s string) string {
	return strings.ReplaceAll(s, "ü", "v")
}

// FormatTone renders the working syllable in the requested notation. For
// ToneNum the digit comes from src, the originally resolved syllable:
// after pattern extraction the working form may no longer carry the
// diacritic (an initial never does), so the tone is read from the full
// syllable it was extracted from.
func FormatTone(working, src string, tt ToneType) string {
	switch tt {
	case ToneNum:
		return StripTones(working) + strconv.Itoa(SyllableTone(src))
	case ToneNone:
		return StripTones(working)
	default:
		return working
	}
}
