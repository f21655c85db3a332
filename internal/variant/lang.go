package variant

// Lang represents the script variant for Chinese text
type Lang string

const (
	// LangHans represents Simplified Chinese (zh-Hans)
	LangHans Lang = "zh-Hans"
	// LangHant represents Traditional Chinese (zh-Hant)
	LangHant Lang = "zh-Hant"
)

// IsValid checks if the script variant is valid
func (l Lang) IsValid() bool {
	return l == LangHans || l == LangHant
}

// Default returns the variant itself when valid, simplified otherwise
func (l Lang) Default() Lang {
	if l.IsValid() {
		return l
	}
	return LangHans
}

// ParseLang parses a string to Lang, defaulting to simplified Chinese
func ParseLang(s string) Lang {
	switch s {
	case "zh-Hant", "zh_Hant", "hant", "tc", "traditional":
		return LangHant
	default:
		return LangHans
	}
}
