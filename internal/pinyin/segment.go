package pinyin

// RunKind classifies a segment of the input text.
type RunKind int

const (
	// RunChinese is a maximal span of Chinese characters.
	RunChinese RunKind = iota
	// RunNonChinese is a maximal span of non-Chinese BMP characters.
	RunNonChinese
	// RunAstral is a single code point above the BMP, kept verbatim and
	// never merged with its neighbors.
	RunAstral
)

// Run is one segment of the input. LeadingNonZh and TrailingNonZh record
// whether the first and last character are non-Chinese; the assembler
// consults them when deciding whether adjacent runs touch without a
// separating space.
type Run struct {
	Kind          RunKind
	Text          string
	LeadingNonZh  bool
	TrailingNonZh bool
}

func runKind(r rune) RunKind {
	if r > 0xFFFF {
		return RunAstral
	}
	if IsChinese(r) {
		return RunChinese
	}
	return RunNonChinese
}

// SegmentRuns splits s into runs of uniform kind, in input order. Astral
// code points form one run each. The concatenation of all run texts
// reproduces s exactly; no run is empty.
func SegmentRuns(s string) []Run {
	var runs []Run
	var pending []rune
	var kind RunKind

	flush := func() {
		if len(pending) == 0 {
			return
		}
		nonZh := kind != RunChinese
		runs = append(runs, Run{
			Kind:          kind,
			Text:          string(pending),
			LeadingNonZh:  nonZh,
			TrailingNonZh: nonZh,
		})
		pending = pending[:0]
	}

	for _, r := range s {
		k := runKind(r)
		if len(pending) > 0 && (k != kind || k == RunAstral) {
			flush()
		}
		kind = k
		pending = append(pending, r)
	}
	flush()
	return runs
}
