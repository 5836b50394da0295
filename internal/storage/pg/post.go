package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/talkboard-dev/talkboard/internal/domain"
	internal_errors "github.com/talkboard-dev/talkboard/internal/errors"
)

func (s *Storage) CreatePost(creation domain.PostCreationData) (domain.PostId, error) {
	var id domain.PostId
	err := s.db.QueryRow(`
        INSERT INTO posts (text, author_id, thread_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `, creation.Text, creation.Author, creation.Thread).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert post: %w", err)
	}
	return id, nil
}

func (s *Storage) GetPost(id domain.PostId) (domain.Post, error) {
	var post domain.Post
	err := s.db.QueryRow(`
        SELECT id, text, created, updated, author_id, thread_id
        FROM posts
        WHERE id = $1
    `, id).Scan(&post.Id, &post.Text, &post.Created, &post.Updated, &post.Author, &post.Thread)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Post not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Post{}, fmt.Errorf("failed to fetch post: %w", err)
	}
	return post, nil
}

func (s *Storage) Posts(limit, offset int) ([]domain.Post, error) {
	return s.posts("ORDER BY id LIMIT $1 OFFSET $2", limit, offset)
}

func (s *Storage) PostsByThread(thread domain.ThreadId) ([]domain.Post, error) {
	return s.posts("WHERE thread_id = $1 ORDER BY created", thread)
}

func (s *Storage) posts(clause string, args ...any) ([]domain.Post, error) {
	rows, err := s.db.Query("SELECT id, text, created, updated, author_id, thread_id FROM posts "+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.Id, &post.Text, &post.Created, &post.Updated, &post.Author, &post.Thread); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return posts, nil
}

func (s *Storage) UpdatePost(id domain.PostId, upd domain.PostUpdate) error {
	ctx, cancel := txContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`
            UPDATE posts SET
                text = COALESCE($1, text),
                updated = now()
            WHERE id = $2`,
			nullString(upd.Text), id,
		)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check affected rows for post update: %w", err)
		}
		if rowsAffected == 0 {
			return &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: http.StatusNotFound}
		}
		return nil
	})
}
