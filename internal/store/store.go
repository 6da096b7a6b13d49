// Package store persists generated worksheets in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aontas/aontas/internal/model"

	_ "modernc.org/sqlite"
)

// schemaVersion is stamped into app_metadata on first migration so future
// schema changes can detect what they are upgrading from.
const schemaVersion = "1"

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS worksheets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME NOT NULL,
		title TEXT NOT NULL,
		target_cefr TEXT NOT NULL,
		text_type TEXT NOT NULL,
		output_language TEXT NOT NULL,
		length TEXT NOT NULL,
		word_target INTEGER NOT NULL DEFAULT 0,
		result TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS app_metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	current, err := s.GetMetadata("schema_version")
	if err != nil {
		return err
	}
	if current == "" {
		return s.SetMetadata("schema_version", schemaVersion)
	}
	return nil
}

// InsertWorksheet stores a generation result and returns its id.
func (s *Store) InsertWorksheet(title string, result *model.GenerationResult) (int64, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("marshal worksheet: %w", err)
	}
	res, err := s.db.Exec(
		`INSERT INTO worksheets (created_at, title, target_cefr, text_type, output_language, length, word_target, result)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), title, result.Meta.TargetCEFR, result.Meta.TextType,
		result.Meta.OutputLanguage, result.Meta.Length, result.Meta.WordTarget, string(payload),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetWorksheet returns one stored worksheet with its full result.
// Returns sql.ErrNoRows when the id is unknown.
func (s *Store) GetWorksheet(id int64) (model.Worksheet, error) {
	var w model.Worksheet
	var payload string
	err := s.db.QueryRow(
		`SELECT id, created_at, title, target_cefr, text_type, output_language, length, word_target, result
		 FROM worksheets WHERE id = ?`, id,
	).Scan(&w.ID, &w.CreatedAt, &w.Title, &w.TargetCEFR, &w.TextType, &w.OutputLanguage, &w.Length, &w.WordTarget, &payload)
	if err != nil {
		return w, err
	}
	var result model.GenerationResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return w, fmt.Errorf("unmarshal worksheet %d: %w", id, err)
	}
	w.Result = &result
	return w, nil
}

// ListWorksheets returns stored worksheets newest first, without their
// result payloads.
func (s *Store) ListWorksheets() ([]model.Worksheet, error) {
	rows, err := s.db.Query(
		`SELECT id, created_at, title, target_cefr, text_type, output_language, length, word_target
		 FROM worksheets ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var worksheets []model.Worksheet
	for rows.Next() {
		var w model.Worksheet
		if err := rows.Scan(&w.ID, &w.CreatedAt, &w.Title, &w.TargetCEFR, &w.TextType, &w.OutputLanguage, &w.Length, &w.WordTarget); err != nil {
			return nil, err
		}
		worksheets = append(worksheets, w)
	}
	return worksheets, rows.Err()
}

// DeleteWorksheet removes a stored worksheet. Deleting an unknown id
// returns sql.ErrNoRows.
func (s *Store) DeleteWorksheet(id int64) error {
	res, err := s.db.Exec(`DELETE FROM worksheets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
