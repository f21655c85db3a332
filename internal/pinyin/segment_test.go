package pinyin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsChinese(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"common ideograph", '中', true},
		{"ideographic zero", '〇', true},
		{"extension A", '㐀', true},
		{"compatibility ideograph", '豈', true},
		{"latin letter", 'a', false},
		{"digit", '7', false},
		{"space", ' ', false},
		{"chinese punctuation", '，', false},
		{"astral emoji", '🙂', false},
		{"astral ideograph stays non-chinese", '\U00020000', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsChinese(tt.r))
		})
	}
}

func TestSegmentRuns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Run
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "pure chinese",
			input: "中国",
			want: []Run{
				{Kind: RunChinese, Text: "中国"},
			},
		},
		{
			name:  "pure latin",
			input: "abc",
			want: []Run{
				{Kind: RunNonChinese, Text: "abc", LeadingNonZh: true, TrailingNonZh: true},
			},
		},
		{
			name:  "mixed",
			input: "中国 USA",
			want: []Run{
				{Kind: RunChinese, Text: "中国"},
				{Kind: RunNonChinese, Text: " USA", LeadingNonZh: true, TrailingNonZh: true},
			},
		},
		{
			name:  "astral splits its neighbors",
			input: "中🙂国",
			want: []Run{
				{Kind: RunChinese, Text: "中"},
				{Kind: RunAstral, Text: "🙂", LeadingNonZh: true, TrailingNonZh: true},
				{Kind: RunChinese, Text: "国"},
			},
		},
		{
			name:  "adjacent astral code points stay separate",
			input: "🙂🙃",
			want: []Run{
				{Kind: RunAstral, Text: "🙂", LeadingNonZh: true, TrailingNonZh: true},
				{Kind: RunAstral, Text: "🙃", LeadingNonZh: true, TrailingNonZh: true},
			},
		},
		{
			name:  "latin astral latin",
			input: "ab🙂cd",
			want: []Run{
				{Kind: RunNonChinese, Text: "ab", LeadingNonZh: true, TrailingNonZh: true},
				{Kind: RunAstral, Text: "🙂", LeadingNonZh: true, TrailingNonZh: true},
				{Kind: RunNonChinese, Text: "cd", LeadingNonZh: true, TrailingNonZh: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentRuns(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegmentRunsPartition(t *testing.T) {
	inputs := []string{
		"中国人民",
		"hello 世界 2024",
		"🙂中a🙃b国",
		"，。中！",
	}
	for _, input := range inputs {
		runs := SegmentRuns(input)
		var b strings.Builder
		for _, run := range runs {
			require.NotEmpty(t, run.Text, "no run may be empty")
			b.WriteString(run.Text)
		}
		assert.Equal(t, input, b.String(), "runs must reassemble the input")
	}
}
