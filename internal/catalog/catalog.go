// Package catalog persists classification results and upload state in a
// local SQLite database, so reruns can skip finished work and the study
// tools can query the corpus offline.
package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/voyomusic/voyo-ops/internal/canon"
)

const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS classifications (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    video_id         TEXT NOT NULL UNIQUE,
    title            TEXT NOT NULL DEFAULT '',
    artist           TEXT NOT NULL DEFAULT '',
    tier             TEXT NOT NULL DEFAULT 'D',
    canon_level      TEXT NOT NULL DEFAULT 'ECHO',
    content_type     TEXT NOT NULL DEFAULT 'original',
    genre            TEXT NOT NULL DEFAULT '',
    era              TEXT NOT NULL DEFAULT 'unknown',
    view_count       INTEGER NOT NULL DEFAULT 0,
    view_percentile  REAL NOT NULL DEFAULT 0,
    confidence       REAL NOT NULL DEFAULT 0,
    classified_by    TEXT NOT NULL DEFAULT 'pattern',
    is_echo          INTEGER NOT NULL DEFAULT 0,
    result_json      TEXT NOT NULL DEFAULT '{}',
    classified_at    DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_class_tier ON classifications(tier);
CREATE INDEX IF NOT EXISTS idx_class_level ON classifications(canon_level);
CREATE INDEX IF NOT EXISTS idx_class_artist ON classifications(artist);

CREATE TABLE IF NOT EXISTS uploads (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    video_id    TEXT NOT NULL,
    format      TEXT NOT NULL DEFAULT 'opus',
    bitrate     INTEGER NOT NULL,
    object_key  TEXT NOT NULL DEFAULT '',
    file_size   INTEGER NOT NULL DEFAULT 0,
    uploaded_at DATETIME NOT NULL DEFAULT (datetime('now')),
    UNIQUE(video_id, format, bitrate)
);

CREATE INDEX IF NOT EXISTS idx_uploads_video ON uploads(video_id);
`

// DB wraps the SQLite connection. The mutex serializes writers; modernc
// sqlite tolerates concurrent readers under WAL.
type DB struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates the catalog database at the given path.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog at %s: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := sqlDB.Exec(pragma); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", pragma, err)
		}
	}

	if _, err := sqlDB.Exec(createSchemaSQL); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: sqlDB}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// SaveResult upserts one classification keyed by video id. The full result
// is kept as JSON next to the indexed columns.
func (d *DB) SaveResult(r canon.Result) error {
	if d == nil || d.db == nil {
		return fmt.Errorf("catalog not initialized")
	}

	blob, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding result %s: %w", r.ID, err)
	}

	isEcho := 0
	if r.IsEcho {
		isEcho = 1
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	_, err = d.db.Exec(`
		INSERT INTO classifications (
			video_id, title, artist, tier, canon_level, content_type,
			genre, era, view_count, view_percentile, confidence,
			classified_by, is_echo, result_json, classified_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(video_id) DO UPDATE SET
			title=excluded.title, artist=excluded.artist,
			tier=excluded.tier, canon_level=excluded.canon_level,
			content_type=excluded.content_type, genre=excluded.genre,
			era=excluded.era, view_count=excluded.view_count,
			view_percentile=excluded.view_percentile,
			confidence=excluded.confidence,
			classified_by=excluded.classified_by,
			is_echo=excluded.is_echo, result_json=excluded.result_json,
			classified_at=excluded.classified_at
	`,
		r.ID, r.Title, r.Artist, string(r.Tier), string(r.CanonLevel), string(r.ContentType),
		r.Genre, r.Era, r.ViewCount, r.ViewPercentile, r.Confidence,
		r.ClassifiedBy, isEcho, string(blob), r.ClassifiedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving classification %s: %w", r.ID, err)
	}
	return nil
}

// SaveResults saves a batch, stopping at the first failure.
func (d *DB) SaveResults(results []canon.Result) error {
	for i := range results {
		if err := d.SaveResult(results[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetResult loads one classification by video id.
func (d *DB) GetResult(videoID string) (canon.Result, error) {
	var r canon.Result
	if d == nil || d.db == nil {
		return r, fmt.Errorf("catalog not initialized")
	}

	var blob string
	err := d.db.QueryRow(
		"SELECT result_json FROM classifications WHERE video_id = ?", videoID,
	).Scan(&blob)
	if err != nil {
		return r, fmt.Errorf("loading classification %s: %w", videoID, err)
	}
	if err := json.Unmarshal([]byte(blob), &r); err != nil {
		return r, fmt.Errorf("decoding classification %s: %w", videoID, err)
	}
	return r, nil
}

// ListByLevel returns stored results at one canon level, most viewed first.
func (d *DB) ListByLevel(level canon.Level, limit int) ([]canon.Result, error) {
	if d == nil || d.db == nil {
		return nil, fmt.Errorf("catalog not initialized")
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := d.db.Query(`
		SELECT result_json FROM classifications
		WHERE canon_level = ?
		ORDER BY view_count DESC
		LIMIT ?
	`, string(level), limit)
	if err != nil {
		return nil, fmt.Errorf("listing level %s: %w", level, err)
	}
	defer rows.Close()

	var results []canon.Result
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("scanning classification: %w", err)
		}
		var r canon.Result
		if err := json.Unmarshal([]byte(blob), &r); err != nil {
			return nil, fmt.Errorf("decoding classification: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// CountByLevel returns how many stored rows sit at each canon level.
func (d *DB) CountByLevel() (map[canon.Level]int, error) {
	if d == nil || d.db == nil {
		return nil, fmt.Errorf("catalog not initialized")
	}
	rows, err := d.db.Query("SELECT canon_level, COUNT(*) FROM classifications GROUP BY canon_level")
	if err != nil {
		return nil, fmt.Errorf("counting classifications: %w", err)
	}
	defer rows.Close()

	counts := make(map[canon.Level]int)
	for rows.Next() {
		var level string
		var n int
		if err := rows.Scan(&level, &n); err != nil {
			return nil, fmt.Errorf("scanning counts: %w", err)
		}
		counts[canon.Level(level)] = n
	}
	return counts, rows.Err()
}

// MarkUploaded records a finished upload for one rendition, identified by
// container format and bitrate.
func (d *DB) MarkUploaded(videoID, format string, bitrate int, objectKey string, fileSize int64) error {
	if d == nil || d.db == nil {
		return fmt.Errorf("catalog not initialized")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	_, err := d.db.Exec(`
		INSERT INTO uploads (video_id, format, bitrate, object_key, file_size)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(video_id, format, bitrate) DO UPDATE SET
			object_key=excluded.object_key, file_size=excluded.file_size,
			uploaded_at=datetime('now')
	`, videoID, format, bitrate, objectKey, fileSize)
	if err != nil {
		return fmt.Errorf("recording upload %s %s@%d: %w", videoID, format, bitrate, err)
	}
	return nil
}

// IsUploaded reports whether a rendition has already been pushed.
func (d *DB) IsUploaded(videoID, format string, bitrate int) (bool, error) {
	if d == nil || d.db == nil {
		return false, fmt.Errorf("catalog not initialized")
	}
	var n int
	err := d.db.QueryRow(
		"SELECT COUNT(*) FROM uploads WHERE video_id = ? AND format = ? AND bitrate = ?",
		videoID, format, bitrate,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking upload %s %s@%d: %w", videoID, format, bitrate, err)
	}
	return n > 0, nil
}
