// Package dict provides the pronunciation dictionary backing the
// converter: embedded base tables, optional database-built extensions,
// and runtime custom overrides.
package dict

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/palemoky/chinese-pinyin-api/internal/pinyin"
)

// Registry implements pinyin.Resolver over three layered tables: custom
// entries registered at runtime, surname readings, disambiguation
// phrases, and per-character readings. Lookups take the longest match
// at each position, in that order. All methods are safe for concurrent
// use.
type Registry struct {
	mu         sync.RWMutex
	chars      map[rune][]string
	phrases    map[string][]string
	surnames   map[string][]string
	custom     map[string][]string
	maxPhrase  int
	maxSurname int
	maxCustom  int
}

// NewRegistry builds a registry from the embedded tables.
func NewRegistry() *Registry {
	r := &Registry{
		chars:    make(map[rune][]string, len(charReadings)),
		phrases:  make(map[string][]string, len(phraseReadings)),
		surnames: make(map[string][]string, len(surnameReadings)),
		custom:   make(map[string][]string),
	}
	for ch, readings := range charReadings {
		r.chars[ch] = strings.Split(readings, ",")
	}
	for phrase, sylls := range phraseReadings {
		r.phrases[phrase] = strings.Fields(sylls)
		if n := utf8.RuneCountInString(phrase); n > r.maxPhrase {
			r.maxPhrase = n
		}
	}
	for name, sylls := range surnameReadings {
		r.surnames[name] = strings.Fields(sylls)
		if n := utf8.RuneCountInString(name); n > r.maxSurname {
			r.maxSurname = n
		}
	}
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, built on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})
	return defaultReg
}

// ResolveRun resolves a run of Chinese characters to one toned syllable
// per rune. At each position the longest custom entry wins, then (in
// surname mode) the longest surname entry, then the longest phrase,
// then the character's primary reading; characters the dictionary does
// not know resolve to themselves.
func (r *Registry) ResolveRun(text string, opt pinyin.ResolveOption) []string {
	runes := []rune(text)
	out := make([]string, 0, len(runes))

	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := 0; i < len(runes); {
		if opt.UseCustom {
			if n, sylls := longestMatch(runes[i:], r.custom, r.maxCustom); n > 0 {
				out = append(out, sylls...)
				i += n
				continue
			}
		}
		if opt.Surname {
			if n, sylls := longestMatch(runes[i:], r.surnames, r.maxSurname); n > 0 {
				out = append(out, sylls...)
				i += n
				continue
			}
		}
		if n, sylls := longestMatch(runes[i:], r.phrases, r.maxPhrase); n > 0 {
			out = append(out, sylls...)
			i += n
			continue
		}
		if readings := r.chars[runes[i]]; len(readings) > 0 {
			out = append(out, readings[0])
		} else {
			out = append(out, string(runes[i]))
		}
		i++
	}
	return out
}

// longestMatch finds the longest table entry starting at runes[0].
// Callers hold the registry lock.
func longestMatch(runes []rune, table map[string][]string, maxLen int) (int, []string) {
	if len(table) == 0 {
		return 0, nil
	}
	if maxLen > len(runes) {
		maxLen = len(runes)
	}
	for n := maxLen; n >= 1; n-- {
		if sylls, ok := table[string(runes[:n])]; ok {
			return n, sylls
		}
	}
	return 0, nil
}

// Heteronyms returns every known reading of ch, primary first. A
// single-character custom override is listed before the dictionary
// readings. Unknown characters return nil.
func (r *Registry) Heteronyms(ch rune) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	if sylls, ok := r.custom[string(ch)]; ok && len(sylls) == 1 {
		out = append(out, sylls[0])
	}
	for _, reading := range r.chars[ch] {
		if !containsString(out, reading) {
			out = append(out, reading)
		}
	}
	return out
}

// HasCustom reports whether any custom entries are registered.
func (r *Registry) HasCustom() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.custom) > 0
}

// AddCustom registers override entries. A key is a single character or
// a phrase; the value is its space-joined toned pinyin, one syllable
// per character. Validation is all-or-nothing: on error no entry is
// registered.
func (r *Registry) AddCustom(entries map[string]string) error {
	prepared := make(map[string][]string, len(entries))
	maxLen := 0
	for key, value := range entries {
		n := utf8.RuneCountInString(key)
		if n == 0 {
			return fmt.Errorf("empty custom dictionary key")
		}
		sylls := strings.Fields(value)
		if len(sylls) != n {
			return fmt.Errorf("custom entry %q needs %d syllables, got %d", key, n, len(sylls))
		}
		prepared[key] = sylls
		if n > maxLen {
			maxLen = n
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for key, sylls := range prepared {
		r.custom[key] = sylls
	}
	if maxLen > r.maxCustom {
		r.maxCustom = maxLen
	}
	return nil
}

// ClearCustom removes every custom entry.
func (r *Registry) ClearCustom() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom = make(map[string][]string)
	r.maxCustom = 0
}

// Snapshot is a bulk dictionary extension, typically loaded from a
// database built by cmd/processor. Merged entries override embedded
// ones with the same key.
type Snapshot struct {
	Chars    map[rune][]string
	Phrases  map[string][]string
	Surnames map[string][]string
}

// Merge layers a snapshot over the registry.
func (r *Registry) Merge(snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for ch, readings := range snap.Chars {
		if len(readings) > 0 {
			r.chars[ch] = readings
		}
	}
	for phrase, sylls := range snap.Phrases {
		if len(sylls) == 0 {
			continue
		}
		r.phrases[phrase] = sylls
		if n := utf8.RuneCountInString(phrase); n > r.maxPhrase {
			r.maxPhrase = n
		}
	}
	for name, sylls := range snap.Surnames {
		if len(sylls) == 0 {
			continue
		}
		r.surnames[name] = sylls
		if n := utf8.RuneCountInString(name); n > r.maxSurname {
			r.maxSurname = n
		}
	}
}

// Stats reports the table sizes.
type Stats struct {
	Chars    int `json:"chars"`
	Phrases  int `json:"phrases"`
	Surnames int `json:"surnames"`
	Custom   int `json:"custom"`
}

func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{
		Chars:    len(r.chars),
		Phrases:  len(r.phrases),
		Surnames: len(r.surnames),
		Custom:   len(r.custom),
	}
}

// CharEntry is one character row for listings and search.
type CharEntry struct {
	Char     string   `json:"char"`
	Readings []string `json:"readings"`
}

// CharEntries returns every character entry ordered by code point.
func (r *Registry) CharEntries() []CharEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runes := make([]rune, 0, len(r.chars))
	for ch := range r.chars {
		runes = append(runes, ch)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	entries := make([]CharEntry, 0, len(runes))
	for _, ch := range runes {
		entries = append(entries, CharEntry{Char: string(ch), Readings: r.chars[ch]})
	}
	return entries
}

func containsString(list []string, s string) bool {
	for _, have := range list {
		if have == s {
			return true
		}
	}
	return false
}
