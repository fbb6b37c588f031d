package db

import (
	"encoding/json"
	"fmt"

	"github.com/corpustools/ocrclean/models"
)

// Correction stages persisted to the corrections table.
const (
	StageHeaders    = "headers"
	StageLinebreaks = "linebreaks"
	StageLongS      = "long_s"
	StageOCR        = "ocr"
	StageFS         = "f_s"
)

// InsertWork upserts a work row.
func (db *DB) InsertWork(workID, language string, numPages int) error {
	_, err := db.Exec(`
		INSERT INTO works (work_id, num_pages, language)
		VALUES (?, ?, NULLIF(?, ''))
		ON CONFLICT(work_id) DO UPDATE SET
			num_pages = excluded.num_pages,
			language = excluded.language,
			cleaned_at = CURRENT_TIMESTAMP
	`, workID, numPages, language)
	if err != nil {
		return fmt.Errorf("failed to insert work %s: %w", workID, err)
	}
	return nil
}

// InsertCleanedPage stores one cleaned page and all its correction rows in a
// single transaction. The page id is taken from the record's metadata.
func (db *DB) InsertCleanedPage(workID string, page models.CleanedPage) error {
	pageID, _ := page.Meta["page_id"].(string)
	if pageID == "" {
		return fmt.Errorf("cleaned page for work %s has no page_id", workID)
	}

	tokensJSON, err := json.Marshal(page.Tokens)
	if err != nil {
		return fmt.Errorf("failed to encode tokens for %s: %w", pageID, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var pageNum any
	if n, ok := page.Meta["page_num"]; ok {
		pageNum = n
	}

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO pages
			(page_id, work_id, page_num, page_text, page_text_orig, page_tokens, num_tokens, num_corrections)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, pageID, workID, pageNum, page.Text, page.TextOrig, string(tokensJSON), len(page.Tokens), page.NumCorrections())
	if err != nil {
		return fmt.Errorf("failed to insert page %s: %w", pageID, err)
	}

	if _, err := tx.Exec(`DELETE FROM corrections WHERE page_id = ?`, pageID); err != nil {
		return fmt.Errorf("failed to clear corrections for %s: %w", pageID, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO corrections (page_id, stage, original, corrected)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare corrections insert: %w", err)
	}
	defer stmt.Close()

	stages := []struct {
		name  string
		pairs []models.Correction
	}{
		{StageHeaders, page.Headers},
		{StageLinebreaks, page.Linebreaks},
		{StageLongS, page.LongS},
		{StageOCR, page.OCR},
		{StageFS, page.FSHack},
	}
	for _, stage := range stages {
		for _, pair := range stage.pairs {
			if _, err := stmt.Exec(pageID, stage.name, pair.Original, pair.Corrected); err != nil {
				return fmt.Errorf("failed to insert %s correction for %s: %w", stage.name, pageID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit page %s: %w", pageID, err)
	}
	return nil
}

// Stats summarizes the corpus database.
type Stats struct {
	Works       int            `yaml:"works"`
	Pages       int            `yaml:"pages"`
	Corrections int            `yaml:"corrections"`
	ByStage     map[string]int `yaml:"by_stage"`
}

// Stats counts works, pages and corrections, broken down by stage.
func (db *DB) Stats() (Stats, error) {
	stats := Stats{ByStage: make(map[string]int)}

	if err := db.QueryRow(`SELECT COUNT(*) FROM works`).Scan(&stats.Works); err != nil {
		return stats, fmt.Errorf("failed to count works: %w", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM pages`).Scan(&stats.Pages); err != nil {
		return stats, fmt.Errorf("failed to count pages: %w", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM corrections`).Scan(&stats.Corrections); err != nil {
		return stats, fmt.Errorf("failed to count corrections: %w", err)
	}

	rows, err := db.Query(`SELECT stage, COUNT(*) FROM corrections GROUP BY stage`)
	if err != nil {
		return stats, fmt.Errorf("failed to count corrections by stage: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var stage string
		var count int
		if err := rows.Scan(&stage, &count); err != nil {
			return stats, fmt.Errorf("failed to scan stage count: %w", err)
		}
		stats.ByStage[stage] = count
	}
	return stats, rows.Err()
}

// CorrectionCount is one (original, corrected) pair with its frequency.
type CorrectionCount struct {
	Original  string `yaml:"original"`
	Corrected string `yaml:"corrected"`
	Count     int    `yaml:"count"`
}

// TopCorrections returns the most frequent correction pairs for a stage,
// most frequent first.
func (db *DB) TopCorrections(stage string, limit int) ([]CorrectionCount, error) {
	rows, err := db.Query(`
		SELECT original, corrected, COUNT(*) AS n
		FROM corrections
		WHERE stage = ?
		GROUP BY original, corrected
		ORDER BY n DESC, original ASC
		LIMIT ?
	`, stage, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top corrections: %w", err)
	}
	defer rows.Close()

	var out []CorrectionCount
	for rows.Next() {
		var cc CorrectionCount
		if err := rows.Scan(&cc.Original, &cc.Corrected, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan correction: %w", err)
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}
