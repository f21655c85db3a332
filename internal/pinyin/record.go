package pinyin

// Record is the full decomposition of one logical character, as produced
// by ConvertAll. Non-Chinese characters populate Origin and IsZh only;
// every phonetic field stays empty or zero.
type Record struct {
	Origin    string `json:"origin"`
	Pinyin    string `json:"pinyin"`
	Initial   string `json:"initial"`
	Final     string `json:"final"`
	First     string `json:"first"`
	FinalHead string `json:"final_head"`
	FinalBody string `json:"final_body"`
	FinalTail string `json:"final_tail"`
	Num       int    `json:"num"`
	IsZh      bool   `json:"is_zh"`
}

// ConvertAll renders word as one Record per logical character.
// Resolution always runs under the spaced policy so tokens line up one
// per character; the caller's NonZh intent is then re-applied to the
// finished list: removed filters out non-Chinese records, consecutive
// merges adjacent non-Chinese origins into a single record. A
// single-character word with Multiple set yields one record per known
// pronunciation. PatternNum shapes strings only and is treated as
// PatternPinyin here.
func (c *Converter) ConvertAll(word string, opts Options) []Record {
	records := []Record{}
	if word == "" {
		return records
	}

	eff := opts
	eff.NonZh = NonZhSpaced
	toks := c.resolveTokens(word, eff)
	if opts.Pattern != PatternNum {
		toks = applyPattern(toks, opts.Pattern)
	}
	for _, t := range toks {
		records = append(records, buildRecord(t, opts))
	}

	switch opts.NonZh {
	case NonZhRemoved:
		kept := records[:0]
		for _, rec := range records {
			if rec.IsZh {
				kept = append(kept, rec)
			}
		}
		records = kept
	case NonZhConsecutive:
		records = mergeNonZhRecords(records)
	}
	return records
}

// buildRecord decomposes the aligned token. Facets come from the working
// form, so a pattern-transformed token is decomposed as-is; the tone
// digit for ToneNum still reads from the original resolved syllable.
func buildRecord(t token, opts Options) Record {
	rec := Record{Origin: t.origin, IsZh: t.zh}
	if !t.zh {
		return rec
	}
	sy := Analyze(t.py)
	rec.Num = sy.Tone

	py := FormatTone(t.py, t.src, opts.ToneType)
	if opts.V {
		py = SubstituteV(py)
	}
	rec.Pinyin = py

	rec.Initial = facet(sy.Initial, opts)
	rec.Final = facet(sy.Final, opts)
	rec.First = facet(sy.First, opts)
	rec.FinalHead = facet(sy.Head, opts)
	rec.FinalBody = facet(sy.Body, opts)
	rec.FinalTail = facet(sy.Tail, opts)
	return rec
}

// facet post-processes one phonetic field: diacritics are kept only for
// ToneSymbol, and the v substitution applies everywhere.
func facet(s string, opts Options) string {
	if opts.ToneType != ToneSymbol {
		s = StripTones(s)
	}
	if opts.V {
		s = SubstituteV(s)
	}
	return s
}

func mergeNonZhRecords(records []Record) []Record {
	merged := records[:0]
	for _, rec := range records {
		if !rec.IsZh && len(merged) > 0 && !merged[len(merged)-1].IsZh {
			merged[len(merged)-1].Origin += rec.Origin
			continue
		}
		merged = append(merged, rec)
	}
	return merged
}
