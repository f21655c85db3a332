package database

// Statistics methods

// GetStatistics returns overall dictionary statistics
func (r *Repository) GetStatistics() (*Statistics, error) {
	stats := &Statistics{}

	// Total counts
	var err error
	stats.TotalCharacters, err = r.CountCharacters()
	if err != nil {
		return nil, err
	}

	stats.TotalPhrases, err = r.CountPhrases()
	if err != nil {
		return nil, err
	}

	stats.TotalSurnames, err = r.CountSurnames()
	if err != nil {
		return nil, err
	}

	// Characters with more than one reading
	var count int64
	err = r.db.Model(&Character{}).
		Where("json_array_length(readings) > 1").
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	stats.Heteronyms = int(count)

	// Phrase counts per script variant
	var scriptStats []ScriptStats
	err = r.db.Model(&Phrase{}).
		Select("script, COUNT(*) as phrase_count").
		Group("script").
		Order("phrase_count DESC").
		Scan(&scriptStats).Error
	if err != nil {
		return nil, err
	}
	stats.PhrasesByScript = scriptStats

	stats.SchemaVersion, err = r.db.GetSchemaVersion()
	if err != nil {
		return nil, err
	}

	return stats, nil
}
