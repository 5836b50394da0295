package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/talkboard-dev/talkboard/internal/domain"
	internal_errors "github.com/talkboard-dev/talkboard/internal/errors"
)

func (s *Storage) CreateThread(creation domain.ThreadCreationData) (domain.ThreadId, error) {
	var id domain.ThreadId
	err := s.db.QueryRow(`
        INSERT INTO threads (title, content, author_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `, creation.Title, creation.Content, creation.Author).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert thread: %w", err)
	}
	return id, nil
}

func (s *Storage) GetThread(id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRow(`
        SELECT id, title, content, created, updated, author_id
        FROM threads
        WHERE id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Content, &thread.Created, &thread.Updated, &thread.Author)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Thread not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}

func (s *Storage) Threads(limit, offset int) ([]domain.Thread, error) {
	rows, err := s.db.Query(`
        SELECT id, title, content, created, updated, author_id
        FROM threads
        ORDER BY updated DESC
        LIMIT $1 OFFSET $2
    `, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		var thread domain.Thread
		if err := rows.Scan(&thread.Id, &thread.Title, &thread.Content, &thread.Created, &thread.Updated, &thread.Author); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}

// UpdateThread patches only the supplied fields and bumps updated.
func (s *Storage) UpdateThread(id domain.ThreadId, upd domain.ThreadUpdate) error {
	ctx, cancel := txContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`
            UPDATE threads SET
                title = COALESCE($1, title),
                content = COALESCE($2, content),
                updated = now()
            WHERE id = $3`,
			nullString(upd.Title), nullString(upd.Content), id,
		)
		if err != nil {
			return fmt.Errorf("failed to update thread: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check affected rows for thread update: %w", err)
		}
		if rowsAffected == 0 {
			return &internal_errors.ErrorWithStatusCode{Message: "Thread not found", StatusCode: http.StatusNotFound}
		}
		return nil
	})
}
