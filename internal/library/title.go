package library

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/streamgen/pkg/streamlink"
)

// mapSQLiteError converts SQLite errors to custom error types.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	if strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "CHECK constraint failed") {
		return ErrConstraint
	}
	return err
}

const titleColumns = "id, tmdb_id, type, title, year, created_at, updated_at"

func scanTitle(row interface{ Scan(...any) error }, t *Title) error {
	return row.Scan(&t.ID, &t.TMDBID, &t.Type, &t.Title, &t.Year, &t.CreatedAt, &t.UpdatedAt)
}

func upsertTitle(q querier, t *Title) error {
	now := time.Now().UTC()
	err := q.QueryRow(`
		INSERT INTO titles (tmdb_id, type, title, year, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (tmdb_id, type) DO UPDATE SET
			title = excluded.title,
			year = excluded.year,
			updated_at = excluded.updated_at
		RETURNING id`,
		t.TMDBID, t.Type, t.Title, t.Year, now, now,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("upsert title %d: %w", t.TMDBID, mapSQLiteError(err))
	}
	if err := q.QueryRow("SELECT created_at FROM titles WHERE id = ?", t.ID).Scan(&t.CreatedAt); err != nil {
		return fmt.Errorf("get title %d: %w", t.ID, mapSQLiteError(err))
	}
	t.UpdatedAt = now
	return nil
}

// UpsertTitle inserts a title or refreshes the stored one with the same
// TMDB id and type. Sets ID, CreatedAt and UpdatedAt on the struct.
func (s *Store) UpsertTitle(t *Title) error { return upsertTitle(s.db, t) }

// UpsertTitle inserts or refreshes a title within a transaction.
func (t *Tx) UpsertTitle(title *Title) error { return upsertTitle(t.tx, title) }

func getTitle(q querier, id int64) (*Title, error) {
	t := &Title{}
	err := scanTitle(q.QueryRow("SELECT "+titleColumns+" FROM titles WHERE id = ?", id), t)
	if err != nil {
		return nil, fmt.Errorf("get title %d: %w", id, mapSQLiteError(err))
	}
	return t, nil
}

// GetTitle retrieves a title by ID.
// Returns ErrNotFound if the title does not exist.
func (s *Store) GetTitle(id int64) (*Title, error) { return getTitle(s.db, id) }

// GetTitle retrieves a title by ID within a transaction.
func (t *Tx) GetTitle(id int64) (*Title, error) { return getTitle(t.tx, id) }

func getTitleByTMDB(q querier, tmdbID int64, mode streamlink.Mode) (*Title, error) {
	t := &Title{}
	err := scanTitle(q.QueryRow("SELECT "+titleColumns+" FROM titles WHERE tmdb_id = ? AND type = ?", tmdbID, mode), t)
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", mode, tmdbID, mapSQLiteError(err))
	}
	return t, nil
}

// GetTitleByTMDB retrieves a title by TMDB id and type.
// Returns ErrNotFound if it was never saved.
func (s *Store) GetTitleByTMDB(tmdbID int64, mode streamlink.Mode) (*Title, error) {
	return getTitleByTMDB(s.db, tmdbID, mode)
}

// GetTitleByTMDB retrieves a title by TMDB id and type within a transaction.
func (t *Tx) GetTitleByTMDB(tmdbID int64, mode streamlink.Mode) (*Title, error) {
	return getTitleByTMDB(t.tx, tmdbID, mode)
}

func listTitles(q querier, f TitleFilter) ([]*Title, int, error) {
	var conditions []string
	var args []any

	if f.Type != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, *f.Type)
	}
	if f.Query != nil {
		conditions = append(conditions, "title LIKE ? COLLATE NOCASE")
		args = append(args, "%"+*f.Query+"%")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := q.QueryRow("SELECT COUNT(*) FROM titles "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count titles: %w", err)
	}

	query := "SELECT " + titleColumns + " FROM titles " + whereClause + " ORDER BY updated_at DESC, id DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list titles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Title
	for rows.Next() {
		t := &Title{}
		if err := scanTitle(rows, t); err != nil {
			return nil, 0, fmt.Errorf("scan title: %w", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate titles: %w", err)
	}

	return results, total, nil
}

// ListTitles returns titles matching the filter, most recently generated
// first. Returns (results, totalCount, error).
func (s *Store) ListTitles(f TitleFilter) ([]*Title, int, error) { return listTitles(s.db, f) }

// ListTitles returns titles matching the filter within a transaction.
func (t *Tx) ListTitles(f TitleFilter) ([]*Title, int, error) { return listTitles(t.tx, f) }

func deleteTitle(q querier, id int64) error {
	if _, err := q.Exec("DELETE FROM links WHERE title_id = ?", id); err != nil {
		return fmt.Errorf("delete links of title %d: %w", id, mapSQLiteError(err))
	}
	if _, err := q.Exec("DELETE FROM titles WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete title %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

// DeleteTitle removes a title and its links.
// This operation is idempotent - no error is returned if the title does not exist.
func (s *Store) DeleteTitle(id int64) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if err := tx.DeleteTitle(id); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteTitle removes a title and its links within a transaction.
func (t *Tx) DeleteTitle(id int64) error { return deleteTitle(t.tx, id) }
