package pg

import (
	"database/sql"
	"fmt"

	"github.com/talkboard-dev/talkboard/internal/domain"
)

func (s *Storage) ThreadIdsByAuthor(author domain.UserId) ([]domain.ThreadId, error) {
	return s.ids("SELECT id FROM threads WHERE author_id = $1 ORDER BY id", author)
}

func (s *Storage) PostIdsByThread(thread domain.ThreadId) ([]domain.PostId, error) {
	return s.ids("SELECT id FROM posts WHERE thread_id = $1 ORDER BY id", thread)
}

func (s *Storage) PostIdsByAuthor(author domain.UserId) ([]domain.PostId, error) {
	return s.ids("SELECT id FROM posts WHERE author_id = $1 ORDER BY id", author)
}

func (s *Storage) ids(query string, arg any) ([]int64, error) {
	rows, err := s.db.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate ids: %w", err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}

var deleteStatements = map[domain.EntityKind]string{
	domain.KindPost:   "DELETE FROM posts WHERE id = $1",
	domain.KindThread: "DELETE FROM threads WHERE id = $1",
	domain.KindUser:   "DELETE FROM users WHERE id = $1",
}

// ApplyDeletePlan executes a cascade plan as one transaction: either the
// whole plan commits or none of it does, so concurrent readers see the
// pre-delete or post-delete state and never a half-cascaded one. The
// plan's deepest-first ordering keeps foreign keys satisfied at every
// step; the schema itself carries no ON DELETE CASCADE.
func (s *Storage) ApplyDeletePlan(plan []domain.Deletion) error {
	ctx, cancel := txContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, d := range plan {
			stmt, ok := deleteStatements[d.Kind]
			if !ok {
				return fmt.Errorf("unknown entity kind %q in delete plan", d.Kind)
			}
			// a row already gone (raced delete) is fine; the plan is
			// applied for effect, not row counts
			if _, err := tx.Exec(stmt, d.Id); err != nil {
				return fmt.Errorf("failed to delete %s %d: %w", d.Kind, d.Id, err)
			}
		}
		return nil
	})
}
