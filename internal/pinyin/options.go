package pinyin

import "fmt"

// ToneType selects how tones appear in the output.
type ToneType int

const (
	// ToneSymbol keeps the diacritic on the syllable (zhōng).
	ToneSymbol ToneType = iota
	// ToneNum strips the diacritic and appends the tone digit (zhong1).
	ToneNum
	// ToneNone strips tone information entirely (zhong).
	ToneNone
)

// Pattern selects which phonetic facet of each syllable is emitted.
type Pattern int

const (
	PatternPinyin Pattern = iota
	PatternInitial
	PatternFinal
	PatternNum
	PatternFirst
	PatternFinalHead
	PatternFinalBody
	PatternFinalTail
)

// Mode selects the reading preference for ambiguous characters.
type Mode int

const (
	ModeNormal Mode = iota
	// ModeSurname prefers surname-table readings (单 → shàn).
	ModeSurname
)

// NonZh selects how non-Chinese characters are carried into the output.
type NonZh int

const (
	// NonZhSpaced emits each non-Chinese character as its own token.
	NonZhSpaced NonZh = iota
	// NonZhConsecutive keeps non-Chinese text glued together, separated
	// from syllables by single spaces.
	NonZhConsecutive
	// NonZhRemoved strips non-Chinese characters before conversion.
	NonZhRemoved
)

// Options configures a conversion. The zero value is the default
// configuration: full pinyin with tone symbols, normal mode, spaced
// non-Chinese handling.
type Options struct {
	ToneType ToneType
	Pattern  Pattern
	Mode     Mode
	NonZh    NonZh
	// Multiple emits every known reading when the input is a single
	// character.
	Multiple bool
	// V writes ü as v in the output.
	V bool
}

func (t ToneType) String() string {
	switch t {
	case ToneNum:
		return "num"
	case ToneNone:
		return "none"
	default:
		return "symbol"
	}
}

// ParseToneType parses the wire name of a tone type.
func ParseToneType(s string) (ToneType, error) {
	switch s {
	case "", "symbol":
		return ToneSymbol, nil
	case "num":
		return ToneNum, nil
	case "none":
		return ToneNone, nil
	}
	return ToneSymbol, fmt.Errorf("unknown tone type: %q", s)
}

func (p Pattern) String() string {
	switch p {
	case PatternInitial:
		return "initial"
	case PatternFinal:
		return "final"
	case PatternNum:
		return "num"
	case PatternFirst:
		return "first"
	case PatternFinalHead:
		return "finalHead"
	case PatternFinalBody:
		return "finalBody"
	case PatternFinalTail:
		return "finalTail"
	default:
		return "pinyin"
	}
}

// ParsePattern parses the wire name of a pattern.
func ParsePattern(s string) (Pattern, error) {
	switch s {
	case "", "pinyin":
		return PatternPinyin, nil
	case "initial":
		return PatternInitial, nil
	case "final":
		return PatternFinal, nil
	case "num":
		return PatternNum, nil
	case "first":
		return PatternFirst, nil
	case "finalHead", "finalhead":
		return PatternFinalHead, nil
	case "finalBody", "finalbody":
		return PatternFinalBody, nil
	case "finalTail", "finaltail":
		return PatternFinalTail, nil
	}
	return PatternPinyin, fmt.Errorf("unknown pattern: %q", s)
}

func (m Mode) String() string {
	if m == ModeSurname {
		return "surname"
	}
	return "normal"
}

// ParseMode parses the wire name of a mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "normal":
		return ModeNormal, nil
	case "surname":
		return ModeSurname, nil
	}
	return ModeNormal, fmt.Errorf("unknown mode: %q", s)
}

func (n NonZh) String() string {
	switch n {
	case NonZhConsecutive:
		return "consecutive"
	case NonZhRemoved:
		return "removed"
	default:
		return "spaced"
	}
}

// ParseNonZh parses the wire name of a non-Chinese policy.
func ParseNonZh(s string) (NonZh, error) {
	switch s {
	case "", "spaced":
		return NonZhSpaced, nil
	case "consecutive":
		return NonZhConsecutive, nil
	case "removed":
		return NonZhRemoved, nil
	}
	return NonZhSpaced, fmt.Errorf("unknown nonZh policy: %q", s)
}
