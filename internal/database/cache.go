package database

import (
	"sync"
)

// CachedRepository wraps Repository with caching for frequently accessed data.
// Dictionary building resolves the same characters over and over while
// validating phrase entries, so character rows are kept in memory.
type CachedRepository struct {
	*Repository

	charCache   map[rune]*Character
	charCacheMu sync.RWMutex

	surnameCache   map[string]*Surname
	surnameCacheMu sync.RWMutex
}

// NewCachedRepository creates a new cached repository
func NewCachedRepository(repo *Repository) *CachedRepository {
	return &CachedRepository{
		Repository:   repo,
		charCache:    make(map[rune]*Character),
		surnameCache: make(map[string]*Surname),
	}
}

// GetCharacter retrieves a character row with caching
func (r *CachedRepository) GetCharacter(codepoint rune) (*Character, error) {
	// Try to get from cache first
	r.charCacheMu.RLock()
	if ch, ok := r.charCache[codepoint]; ok {
		r.charCacheMu.RUnlock()
		return ch, nil
	}
	r.charCacheMu.RUnlock()

	// Not in cache, get from database
	ch, err := r.Repository.GetCharacter(codepoint)
	if err != nil {
		return nil, err
	}

	// Store in cache
	r.charCacheMu.Lock()
	r.charCache[codepoint] = ch
	r.charCacheMu.Unlock()

	return ch, nil
}

// UpsertCharacter writes through to the database and drops the stale
// cache entry.
func (r *CachedRepository) UpsertCharacter(ch *Character) error {
	if err := r.Repository.UpsertCharacter(ch); err != nil {
		return err
	}

	r.charCacheMu.Lock()
	delete(r.charCache, rune(ch.Codepoint))
	r.charCacheMu.Unlock()

	return nil
}

// GetSurname retrieves a surname row by text with caching
func (r *CachedRepository) GetSurname(text string) (*Surname, error) {
	// Try to get from cache first
	r.surnameCacheMu.RLock()
	if s, ok := r.surnameCache[text]; ok {
		r.surnameCacheMu.RUnlock()
		return s, nil
	}
	r.surnameCacheMu.RUnlock()

	// Not in cache, get from database
	var surname Surname
	err := r.db.Where("text = ?", text).First(&surname).Error
	if err != nil {
		return nil, err
	}

	// Store in cache
	r.surnameCacheMu.Lock()
	r.surnameCache[text] = &surname
	r.surnameCacheMu.Unlock()

	return &surname, nil
}

// ClearCache clears all caches
func (r *CachedRepository) ClearCache() {
	r.charCacheMu.Lock()
	r.charCache = make(map[rune]*Character)
	r.charCacheMu.Unlock()

	r.surnameCacheMu.Lock()
	r.surnameCache = make(map[string]*Surname)
	r.surnameCacheMu.Unlock()
}

// GetCacheStats returns statistics about cache usage
func (r *CachedRepository) GetCacheStats() map[string]int {
	r.charCacheMu.RLock()
	charCount := len(r.charCache)
	r.charCacheMu.RUnlock()

	r.surnameCacheMu.RLock()
	surnameCount := len(r.surnameCache)
	r.surnameCacheMu.RUnlock()

	return map[string]int{
		"characters": charCount,
		"surnames":   surnameCount,
	}
}
