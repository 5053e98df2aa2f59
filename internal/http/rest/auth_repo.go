package rest

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/versehub/versehub_api/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

func (api *API) UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`
	err := api.DB.QueryRow(ctx, query, username, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (api *API) CreateNewUserRepo(ctx context.Context, user model.User) error {
	query := `
        INSERT INTO users (id, username, displayname, email, password_hash, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
    `
	_, err := api.DB.Exec(ctx, query,
		user.ID, user.Username, user.Displayname, user.Email, user.PasswordHash, user.Role,
	)
	return err
}

func (api *API) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	query := `
        SELECT id, username, displayname, email, password_hash, role, created_at
        FROM users
        WHERE username = $1
    `
	var user model.User
	err := api.DB.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Displayname, &user.Email,
		&user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return model.User{}, ErrUserNotFound
	}
	return user, err
}

func (api *API) GetUserByID(ctx context.Context, userID string) (model.User, error) {
	query := `
        SELECT id, username, displayname, email, password_hash, role, created_at
        FROM users
        WHERE id = $1
    `
	var user model.User
	err := api.DB.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.Displayname, &user.Email,
		&user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return model.User{}, ErrUserNotFound
	}
	return user, err
}

func (api *API) StoreRefreshToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	query := `
        INSERT INTO refresh_tokens (user_id, token, expires_at, created_at)
        VALUES ($1, $2, $3, NOW())
    `
	_, err := api.DB.Exec(ctx, query, userID, token, expiresAt)
	return err
}

func (api *API) ValidateRefreshToken(ctx context.Context, token string) error {
	var exists bool
	query := `
        SELECT EXISTS (
            SELECT 1 FROM refresh_tokens
            WHERE token = $1 AND revoked = FALSE AND expires_at > NOW()
        )
    `
	err := api.DB.QueryRow(ctx, query, token).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("refresh token not valid")
	}
	return nil
}

func (api *API) RevokeRefreshToken(ctx context.Context, token string) error {
	query := `UPDATE refresh_tokens SET revoked = TRUE WHERE token = $1`
	_, err := api.DB.Exec(ctx, query, token)
	return err
}
