package daily

import (
	"context"
	"database/sql"
)

// Result is one user's submission for a date: the longest word they claimed
// from the daily pool.
type Result struct {
	UserID   string `json:"userId"`
	Date     string `json:"date"`
	BestWord string `json:"bestWord"`
	BestLen  int    `json:"bestLen"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?`,
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records a submission; UNIQUE(user_id, date) makes repeats
// no-ops.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, date, best_word, best_len)
		 VALUES(?,?,?,?)`, r.UserID, r.Date, r.BestWord, r.BestLen,
	)
	return err
}

type LBRow struct {
	UserID   string `json:"userId"`
	BestWord string `json:"bestWord"`
	BestLen  int    `json:"bestLen"`
}

// Leaderboard returns the top submissions for a date, longest word first.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, best_word, best_len
		 FROM daily_results
		 WHERE date=?
		 ORDER BY best_len DESC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LBRow
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.BestWord, &r.BestLen); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
