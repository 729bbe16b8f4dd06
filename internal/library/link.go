package library

import (
	"fmt"
	"sort"

	"github.com/vmunix/streamgen/pkg/streamlink"
)

func replaceLinks(q querier, titleID int64, links map[streamlink.PositionKey]string) error {
	var mode streamlink.Mode
	if err := q.QueryRow("SELECT type FROM titles WHERE id = ?", titleID).Scan(&mode); err != nil {
		return fmt.Errorf("replace links of title %d: %w", titleID, mapSQLiteError(err))
	}
	for pos := range links {
		if !fitsMode(pos, mode) {
			return fmt.Errorf("link %s on %s %d: %w", pos, mode, titleID, ErrPositionMismatch)
		}
	}

	if _, err := q.Exec("DELETE FROM links WHERE title_id = ?", titleID); err != nil {
		return fmt.Errorf("clear links of title %d: %w", titleID, mapSQLiteError(err))
	}

	keys := make([]streamlink.PositionKey, 0, len(links))
	for pos := range links {
		keys = append(keys, pos)
	}
	sort.Slice(keys, func(i, j int) bool { return lessPosition(keys[i], keys[j]) })

	for _, pos := range keys {
		_, err := q.Exec(`
			INSERT INTO links (title_id, season, episode, option_no, url)
			VALUES (?, ?, ?, ?, ?)`,
			titleID, pos.Season, pos.Episode, pos.Option, links[pos],
		)
		if err != nil {
			return fmt.Errorf("insert link %s: %w", pos, mapSQLiteError(err))
		}
	}
	return nil
}

// ReplaceLinks swaps the whole link set of a title atomically.
// Returns ErrNotFound if the title does not exist and ErrPositionMismatch if
// a position does not fit its type.
func (s *Store) ReplaceLinks(titleID int64, links map[streamlink.PositionKey]string) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if err := tx.ReplaceLinks(titleID, links); err != nil {
		return err
	}
	return tx.Commit()
}

// ReplaceLinks swaps the link set of a title within a transaction.
func (t *Tx) ReplaceLinks(titleID int64, links map[streamlink.PositionKey]string) error {
	return replaceLinks(t.tx, titleID, links)
}

func listLinks(q querier, titleID int64) ([]*Link, error) {
	rows, err := q.Query(`
		SELECT season, episode, option_no, url FROM links
		WHERE title_id = ?
		ORDER BY season, episode, option_no`, titleID)
	if err != nil {
		return nil, fmt.Errorf("list links of title %d: %w", titleID, err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Link
	for rows.Next() {
		l := &Link{}
		if err := rows.Scan(&l.Position.Season, &l.Position.Episode, &l.Position.Option, &l.URL); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate links: %w", err)
	}
	return results, nil
}

// ListLinks returns the saved links of a title in position order.
func (s *Store) ListLinks(titleID int64) ([]*Link, error) { return listLinks(s.db, titleID) }

// ListLinks returns the saved links of a title within a transaction.
func (t *Tx) ListLinks(titleID int64) ([]*Link, error) { return listLinks(t.tx, titleID) }

// SaveGeneration upserts the title and replaces its links in one transaction.
func (s *Store) SaveGeneration(t *Title, links map[streamlink.PositionKey]string) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.UpsertTitle(t); err != nil {
		return err
	}
	if err := tx.ReplaceLinks(t.ID, links); err != nil {
		return err
	}
	return tx.Commit()
}

func lessPosition(a, b streamlink.PositionKey) bool {
	if a.Season != b.Season {
		return a.Season < b.Season
	}
	if a.Episode != b.Episode {
		return a.Episode < b.Episode
	}
	return a.Option < b.Option
}

func fitsMode(pos streamlink.PositionKey, mode streamlink.Mode) bool {
	if mode == streamlink.ModeMovie {
		return pos.Option >= 1 && pos.Season == 0 && pos.Episode == 0
	}
	return pos.Option == 0 && pos.Season >= 1 && pos.Episode >= 1
}
