// Package pinyin converts Chinese text to pinyin.
//
// The conversion is an ordered pipeline of pure stages: the input is
// segmented into runs of Chinese, non-Chinese, and astral characters;
// Chinese runs are resolved to toned syllables through a dictionary
// Resolver; then the requested pattern, tone notation, and output shape
// are applied. Every stage is total: any string input produces a
// well-defined result and nothing on the conversion path returns an
// error.
package pinyin

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Resolver supplies dictionary readings. ResolveRun receives a run of
// Chinese characters and returns exactly one toned syllable per rune,
// with characters the dictionary does not know coming back as
// themselves. Heteronyms lists every known reading of a single
// character, primary first, and may return nil. Implementations must be
// safe for concurrent readers.
type Resolver interface {
	ResolveRun(text string, opt ResolveOption) []string
	Heteronyms(r rune) []string
	HasCustom() bool
}

// ResolveOption adjusts a single resolution request.
type ResolveOption struct {
	// Surname prefers surname-table readings.
	Surname bool
	// UseCustom lets the resolver consult its user-registered entries.
	UseCustom bool
}

// Converter drives the conversion pipeline against a dictionary.
type Converter struct {
	dict Resolver
}

// New returns a Converter backed by dict.
func New(dict Resolver) *Converter {
	return &Converter{dict: dict}
}

// token is one output unit flowing through the pipeline. py is the
// working form rewritten by the pattern and tone stages; src stays the
// originally resolved toned syllable so tone digits survive pattern
// extraction. glue marks a token that attaches to its predecessor
// without a separating space.
type token struct {
	origin string
	py     string
	src    string
	zh     bool
	glue   bool
}

// Convert renders word as a single space-joined string.
func (c *Converter) Convert(word string, opts Options) string {
	if word == "" {
		return ""
	}
	toks := c.resolveTokens(word, opts)
	if opts.Pattern == PatternNum {
		return joinTokens(numTokens(toks))
	}
	toks = applyPattern(toks, opts.Pattern)
	toks = applyTone(toks, opts)
	return joinTokens(toks)
}

// ConvertSlice renders word as the string form split on single spaces.
func (c *Converter) ConvertSlice(word string, opts Options) []string {
	s := c.Convert(word, opts)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, " ")
}

// resolveTokens runs the front half of the pipeline: the removal
// pre-filter, segmentation, dictionary resolution, and the
// single-character multi-pronunciation override.
func (c *Converter) resolveTokens(word string, opts Options) []token {
	work := word
	if opts.NonZh == NonZhRemoved {
		work = stripNonChinese(work)
	}

	var toks []token
	// tail tracks whether the previously emitted token is non-Chinese
	// text ending flush at the current boundary; under the consecutive
	// policy such neighbors glue together without a space.
	tail := false
	for _, run := range SegmentRuns(work) {
		switch run.Kind {
		case RunChinese:
			runes := []rune(run.Text)
			sylls := alignSyllables(runes, c.dict.ResolveRun(run.Text, ResolveOption{
				Surname:   opts.Mode == ModeSurname,
				UseCustom: c.dict.HasCustom(),
			}))
			for i, r := range runes {
				toks = append(toks, token{origin: string(r), py: sylls[i], src: sylls[i], zh: true})
			}
			tail = false
		case RunAstral:
			nonZhBefore := opts.NonZh == NonZhConsecutive && tail && run.LeadingNonZh
			toks = append(toks, token{origin: run.Text, py: run.Text, src: run.Text, glue: nonZhBefore})
			tail = true
		default:
			if opts.NonZh == NonZhConsecutive {
				pieces := strings.Fields(run.Text)
				flushLeft := !startsWithSpace(run.Text)
				for i, p := range pieces {
					toks = append(toks, token{origin: p, py: p, src: p, glue: i == 0 && flushLeft && tail})
				}
				tail = len(pieces) > 0 && !endsWithSpace(run.Text)
			} else {
				for _, r := range run.Text {
					s := string(r)
					toks = append(toks, token{origin: s, py: s, src: s})
				}
				tail = false
			}
		}
	}

	// A single-character word with Multiple set discards the resolved
	// reading and emits every known pronunciation instead.
	if opts.Multiple && utf8.RuneCountInString(word) == 1 {
		r, _ := utf8.DecodeRuneInString(word)
		if hets := c.dict.Heteronyms(r); len(hets) > 0 {
			toks = toks[:0]
			for _, h := range hets {
				toks = append(toks, token{origin: word, py: h, src: h, zh: true})
			}
		}
	}
	return toks
}

// alignSyllables pads or truncates a resolver response so exactly one
// syllable lines up with each rune of the run; gaps fall back to the
// character itself.
func alignSyllables(runes []rune, sylls []string) []string {
	if len(sylls) == len(runes) {
		return sylls
	}
	out := make([]string, len(runes))
	for i, r := range runes {
		if i < len(sylls) && sylls[i] != "" {
			out[i] = sylls[i]
		} else {
			out[i] = string(r)
		}
	}
	return out
}

// applyPattern replaces each syllable's working form with the requested
// facet. Non-Chinese tokens pass through untouched. PatternNum is
// handled by the orchestrator before this stage.
func applyPattern(toks []token, p Pattern) []token {
	if p == PatternPinyin {
		return toks
	}
	for i, t := range toks {
		if !t.zh {
			continue
		}
		sy := Analyze(t.py)
		switch p {
		case PatternInitial:
			toks[i].py = sy.Initial
		case PatternFinal:
			toks[i].py = sy.Final
		case PatternFirst:
			toks[i].py = sy.First
		case PatternFinalHead:
			toks[i].py = sy.Head
		case PatternFinalBody:
			toks[i].py = sy.Body
		case PatternFinalTail:
			toks[i].py = sy.Tail
		}
	}
	return toks
}

// applyTone renders each token in the requested tone notation and runs
// the v substitution. Tone digits attach to syllables only; ToneNone
// strips diacritics from the whole sequence, passthrough text included.
func applyTone(toks []token, opts Options) []token {
	for i, t := range toks {
		py := t.py
		switch opts.ToneType {
		case ToneNum:
			if t.zh {
				py = StripTones(py) + strconv.Itoa(SyllableTone(t.src))
			}
		case ToneNone:
			py = StripTones(py)
		}
		if opts.V {
			py = SubstituteV(py)
		}
		toks[i].py = py
	}
	return toks
}

// numTokens rewrites each syllable to its bare tone digit.
func numTokens(toks []token) []token {
	for i, t := range toks {
		if t.zh {
			toks[i].py = strconv.Itoa(SyllableTone(t.src))
		}
	}
	return toks
}

func joinTokens(toks []token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 && !t.glue {
			b.WriteByte(' ')
		}
		b.WriteString(t.py)
	}
	return b.String()
}

func stripNonChinese(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= 0xFFFF && IsChinese(r) {
			return r
		}
		return -1
	}, s)
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}
