package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
	"github.com/talkboard-dev/talkboard/internal/domain"
	internal_errors "github.com/talkboard-dev/talkboard/internal/errors"
)

const uniqueViolation = "23505"

// SaveUser inserts a new user. Duplicate username or email surfaces as a
// 409 so registration can report it without leaking which field collided
// at the storage level.
func (s *Storage) SaveUser(user domain.User) (domain.UserId, error) {
	ctx, cancel := txContext()
	defer cancel()

	var id domain.UserId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.saveUser(tx, user)
		return err
	})
	return id, err
}

func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	return s.userBy(s.db, "id = $1", id)
}

func (s *Storage) UserByUsername(username domain.Username) (domain.User, error) {
	return s.userBy(s.db, "username = $1", username)
}

func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	return s.userBy(s.db, "email = $1", email)
}

func (s *Storage) Users(limit, offset int) ([]domain.User, error) {
	rows, err := s.db.Query("SELECT id, username, email, password_hash FROM users ORDER BY id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.Id, &user.Username, &user.Email, &user.PassHash); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return users, nil
}

// UpdateUser is a partial update: unset fields keep their stored value.
func (s *Storage) UpdateUser(id domain.UserId, upd domain.UserUpdate) error {
	ctx, cancel := txContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateUser(tx, id, upd)
	})
}

func (s *Storage) saveUser(q Querier, user domain.User) (domain.UserId, error) {
	var id domain.UserId
	err := q.QueryRow("INSERT INTO users(username, email, password_hash) VALUES($1, $2, $3) RETURNING id",
		user.Username, user.Email, user.PassHash).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return -1, &internal_errors.ErrorWithStatusCode{Message: "User already exists", StatusCode: http.StatusConflict}
		}
		return -1, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Storage) userBy(q Querier, where string, arg any) (domain.User, error) {
	var user domain.User
	err := q.QueryRow("SELECT id, username, email, password_hash FROM users WHERE "+where, arg).
		Scan(&user.Id, &user.Username, &user.Email, &user.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *Storage) updateUser(q Querier, id domain.UserId, upd domain.UserUpdate) error {
	result, err := q.Exec(`
        UPDATE users SET
            username = COALESCE($1, username),
            email = COALESCE($2, email),
            password_hash = COALESCE($3, password_hash)
        WHERE id = $4`,
		nullString(upd.Username), nullString(upd.Email), nullString(upd.Password), id,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return &internal_errors.ErrorWithStatusCode{Message: "Username or email already taken", StatusCode: http.StatusConflict}
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for user update: %w", err)
	}
	if rowsAffected == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
