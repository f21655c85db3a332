package variant

import (
	"unicode/utf8"

	"github.com/palemoky/chinese-pinyin-api/internal/pinyin"
)

// SimplifyingResolver resolves traditional Chinese input through its
// simplified twin, so the simplified phrase tables disambiguate
// traditional text too (銀行 reads via 银行). The conversion feeds the
// lookup only; callers keep their original runes, and a conversion that
// fails or changes the rune count falls back to resolving the original
// text unchanged.
type SimplifyingResolver struct {
	inner pinyin.Resolver
}

// Simplifying wraps inner with traditional-to-simplified lookup.
func Simplifying(inner pinyin.Resolver) *SimplifyingResolver {
	return &SimplifyingResolver{inner: inner}
}

func (r *SimplifyingResolver) ResolveRun(text string, opt pinyin.ResolveOption) []string {
	simplified, err := ToSimplified(text)
	if err == nil && simplified != text &&
		utf8.RuneCountInString(simplified) == utf8.RuneCountInString(text) {
		return r.inner.ResolveRun(simplified, opt)
	}
	return r.inner.ResolveRun(text, opt)
}

// Heteronyms stays on the original character. Simplified twins merge
// several traditional characters, so the twin can carry readings the
// original never has (发 lists fā and fà; 發 is only fā).
func (r *SimplifyingResolver) Heteronyms(ch rune) []string {
	return r.inner.Heteronyms(ch)
}

func (r *SimplifyingResolver) HasCustom() bool {
	return r.inner.HasCustom()
}
