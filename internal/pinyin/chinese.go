package pinyin

// IsChinese reports whether r is a Chinese character the converter will
// try to resolve. Code points above the BMP are always treated as
// non-Chinese so the segmenter carries them through verbatim.
func IsChinese(r rune) bool {
	switch {
	case r == 0x3007: // 〇
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK extension A
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK unified ideographs
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK compatibility ideographs
		return true
	}
	return false
}
