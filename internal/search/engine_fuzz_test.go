package search

import (
	"strings"
	"testing"
	"unicode"

	"github.com/palemoky/chinese-pinyin-api/internal/pinyin"
)

// FuzzIsPinyinQuery tests the isPinyinQuery function with random inputs
func FuzzIsPinyinQuery(f *testing.F) {
	// Seed corpus with known cases
	f.Add("yin hang")
	f.Add("银行")
	f.Add("háng")
	f.Add("lǜ")
	f.Add("")
	f.Add("123")
	f.Add("abc123中文")
	f.Add("   ")
	f.Add("a")
	f.Add("中")
	f.Add("UPPERCASE")
	f.Add("MixedCase123")

	f.Fuzz(func(t *testing.T, input string) {
		// Should not panic
		result := isPinyinQuery(input)

		// For empty strings, should return false
		if input == "" && result {
			t.Error("isPinyinQuery(\"\") should return false")
		}

		// Whitespace-only input carries no letters
		if strings.TrimSpace(input) == "" && result {
			t.Errorf("isPinyinQuery(%q) with only spaces should return false", input)
		}

		// The decision is the >50% letter ratio after tone stripping
		plain := pinyin.SubstituteV(pinyin.StripTones(strings.ToLower(input)))
		letterCount := 0
		totalCount := 0
		for _, r := range plain {
			if unicode.IsSpace(r) {
				continue
			}
			totalCount++
			if r >= 'a' && r <= 'z' {
				letterCount++
			}
		}

		if totalCount > 0 {
			expected := float64(letterCount)/float64(totalCount) > 0.5
			if result != expected {
				t.Errorf("isPinyinQuery(%q) = %v, want %v (letters: %d/%d)",
					input, result, expected, letterCount, totalCount)
			}
		}
	})
}
