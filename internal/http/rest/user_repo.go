package rest

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/versehub/versehub_api/internal/model"
)

var (
	ErrFollowUnchanged = errors.New("follow state already met")
	ErrSelfFollow      = errors.New("a user cannot follow themselves")
)

// SetFollowRepo applies a strict follow transition; same-state requests are
// conflicts, mirroring the favorite semantics.
func (api *API) SetFollowRepo(ctx context.Context, followerID, followedID uuid.UUID, desired bool) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	var exists bool
	if err := api.DB.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, followedID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	if desired {
		_, err := api.DB.Exec(ctx,
			`INSERT INTO follows (follower_id, followed_id, created_at) VALUES ($1, $2, NOW())`,
			followerID, followedID,
		)
		if pgErr, ok := err.(*pgconn.PgError); ok {
			switch pgErr.Code {
			case pgUniqueViolation:
				return ErrFollowUnchanged
			case pgForeignKeyViolation:
				return ErrUserNotFound
			}
		}
		return err
	}

	result, err := api.DB.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`,
		followerID, followedID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrFollowUnchanged
	}
	return nil
}

func (api *API) GetUserStatisticsRepo(ctx context.Context, userID uuid.UUID) (model.UserStatistics, error) {
	query := `
        WITH num AS (
            SELECT COUNT(*) AS num_poems
            FROM poems
            WHERE user_id = $1
        ), total AS (
            SELECT COALESCE(SUM(v.value), 0)::int AS total_score
            FROM poems p
            LEFT JOIN votes v ON v.poem_id = p.id
            WHERE p.user_id = $1
        )
        SELECT num.num_poems, total.total_score
        FROM num, total
    `
	var stats model.UserStatistics
	err := api.DB.QueryRow(ctx, query, userID).Scan(&stats.NumPoems, &stats.TotalScore)
	return stats, err
}
