package repository

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"project_cloudi/internal/entities"
	"project_cloudi/internal/usecases"
)

const faqFileName = "faq_data.json"

// seedFAQ is written on first run when no FAQ file exists yet.
var seedFAQ = map[string]string{
	"hello": "Hi there! Welcome to Cloudi!",
}

// LoadFAQ reads the FAQ table from dataDir, normalizing every question key.
// A missing file is seeded with a starter entry; a corrupt file yields an
// empty table. Never fatal: the pipeline degrades to the generative fallback
// when the table is empty.
func LoadFAQ(dataDir string, logger *zap.Logger) entities.PhraseTable {
	path := filepath.Join(dataDir, faqFileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("faq file not found, seeding a starter file", zap.String("path", path))
		if writeErr := writeSeed(path); writeErr != nil {
			logger.Error("failed to seed faq file", zap.Error(writeErr))
			return entities.PhraseTable{}
		}
		return normalizeKeys(seedFAQ)
	}
	if err != nil {
		logger.Error("failed to read faq file", zap.Error(err))
		return entities.PhraseTable{}
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Error("failed to parse faq file", zap.Error(err))
		return entities.PhraseTable{}
	}

	table := normalizeKeys(raw)
	logger.Info("loaded faq entries", zap.Int("count", len(table)))
	return table
}

func normalizeKeys(raw map[string]string) entities.PhraseTable {
	table := make(entities.PhraseTable, len(raw))
	for question, answer := range raw {
		table[usecases.Normalize(question)] = answer
	}
	return table
}

func writeSeed(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(seedFAQ, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
