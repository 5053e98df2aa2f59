package rest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/versehub/versehub_api/internal/model"
)

var (
	ErrPoemNotFound      = errors.New("poem not found")
	ErrAlreadyVoted      = errors.New("poem already rated by this user")
	ErrFavoriteUnchanged = errors.New("favorite state already met")
)

const pgUniqueViolation = "23505"
const pgForeignKeyViolation = "23503"

func (api *API) ListPoemsRepo(ctx context.Context, q feedQuery) ([]model.AnnotatedPoem, error) {
	query, args := q.build()

	rows, err := api.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying poems: %w", err)
	}
	defer rows.Close()

	var poems []model.AnnotatedPoem
	for rows.Next() {
		var poem model.AnnotatedPoem
		err := rows.Scan(
			&poem.ID, &poem.UserID, &poem.Username, &poem.Displayname,
			&poem.PoemText, &poem.CreatedAt, &poem.Rating, &poem.Rated,
			&poem.IsFavorite, &poem.IsFollowing, &poem.IsReported,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning poem: %w", err)
		}
		poems = append(poems, poem)
	}
	return poems, rows.Err()
}

func (api *API) GetPoemByIDRepo(ctx context.Context, viewerID uuid.UUID, poemID int64) (model.AnnotatedPoem, error) {
	query, args := newFeedQuery(viewerID).forPoem(poemID).build()

	var poem model.AnnotatedPoem
	err := api.DB.QueryRow(ctx, query, args...).Scan(
		&poem.ID, &poem.UserID, &poem.Username, &poem.Displayname,
		&poem.PoemText, &poem.CreatedAt, &poem.Rating, &poem.Rated,
		&poem.IsFavorite, &poem.IsFollowing, &poem.IsReported,
	)
	if err == pgx.ErrNoRows {
		return model.AnnotatedPoem{}, ErrPoemNotFound
	}
	return poem, err
}

func (api *API) InsertPoemRepo(ctx context.Context, userID uuid.UUID, poemText string) (model.Poem, error) {
	query := `
        INSERT INTO poems (user_id, poem_text, created_at, updated_at)
        VALUES ($1, $2, NOW(), NOW())
        RETURNING id, user_id, poem_text, created_at, updated_at
    `
	var poem model.Poem
	err := api.DB.QueryRow(ctx, query, userID, poemText).Scan(
		&poem.ID, &poem.UserID, &poem.PoemText, &poem.CreatedAt, &poem.UpdatedAt,
	)
	if err != nil {
		return model.Poem{}, fmt.Errorf("inserting poem: %w", err)
	}
	return poem, nil
}

func (api *API) GetPoemAuthorRepo(ctx context.Context, poemID int64) (uuid.UUID, error) {
	var authorID uuid.UUID
	err := api.DB.QueryRow(ctx, `SELECT user_id FROM poems WHERE id = $1`, poemID).Scan(&authorID)
	if err == pgx.ErrNoRows {
		return uuid.Nil, ErrPoemNotFound
	}
	return authorID, err
}

func (api *API) UpdatePoemRepo(ctx context.Context, poemID int64, poemText string) error {
	query := `
        UPDATE poems
        SET poem_text = $2, updated_at = NOW()
        WHERE id = $1
    `
	result, err := api.DB.Exec(ctx, query, poemID, poemText)
	if err != nil {
		return fmt.Errorf("updating poem: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrPoemNotFound
	}
	return nil
}

// shouldDelete reports whether a rating has reached the deletion threshold.
// The threshold itself counts: a poem sitting exactly on it goes.
func shouldDelete(rating, threshold int) bool {
	return rating <= threshold
}

// removePoemTx removes a poem; votes, favorites and reports go with it through
// the store's cascade. Deleting an already-deleted poem is a no-op, which keeps
// the threshold path and the moderation path safe to race.
func removePoemTx(ctx context.Context, tx pgx.Tx, poemID int64) error {
	_, err := tx.Exec(ctx, `DELETE FROM poems WHERE id = $1`, poemID)
	return err
}

func (api *API) DeletePoemRepo(ctx context.Context, poemID int64) error {
	return api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		return removePoemTx(ctx, tx, poemID)
	})
}

// ApplyVoteRepo records a vote and runs the threshold check as one atomic unit.
// The poem row lock serializes concurrent votes on the same poem, so the rating
// returned is the one this vote produced, and exactly one vote can observe the
// threshold crossing.
func (api *API) ApplyVoteRepo(ctx context.Context, poemID int64, voterID uuid.UUID, value int) (int, bool, error) {
	var rating int
	var deleted bool

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var id int64
		if err := tx.QueryRow(ctx, `SELECT id FROM poems WHERE id = $1 FOR UPDATE`, poemID).Scan(&id); err != nil {
			if err == pgx.ErrNoRows {
				return ErrPoemNotFound
			}
			return err
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO votes (poem_id, user_id, value, created_at) VALUES ($1, $2, $3, NOW())`,
			poemID, voterID, value,
		)
		if err != nil {
			if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgUniqueViolation {
				return ErrAlreadyVoted
			}
			return err
		}

		if err := tx.QueryRow(ctx,
			`SELECT COALESCE(SUM(value), 0)::int FROM votes WHERE poem_id = $1`, poemID,
		).Scan(&rating); err != nil {
			return err
		}

		if shouldDelete(rating, api.Config.DeleteThreshold) {
			deleted = true
			return removePoemTx(ctx, tx, poemID)
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	return rating, deleted, nil
}

// SetFavoriteRepo applies a strict state transition: asking for the state the
// row is already in is a conflict, not a no-op.
func (api *API) SetFavoriteRepo(ctx context.Context, poemID int64, userID uuid.UUID, desired bool) error {
	var exists bool
	if err := api.DB.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM poems WHERE id = $1)`, poemID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrPoemNotFound
	}

	if desired {
		_, err := api.DB.Exec(ctx,
			`INSERT INTO favorites (poem_id, user_id, created_at) VALUES ($1, $2, NOW())`,
			poemID, userID,
		)
		if pgErr, ok := err.(*pgconn.PgError); ok {
			switch pgErr.Code {
			case pgUniqueViolation:
				return ErrFavoriteUnchanged
			case pgForeignKeyViolation:
				// poem deleted between the existence check and the insert
				return ErrPoemNotFound
			}
		}
		return err
	}

	result, err := api.DB.Exec(ctx,
		`DELETE FROM favorites WHERE poem_id = $1 AND user_id = $2`,
		poemID, userID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrFavoriteUnchanged
	}
	return nil
}

func (api *API) RandomPublicPoemRepo(ctx context.Context) (model.PublicPoem, error) {
	query := `
        SELECT p.id, p.title, p.poem_text, p.poet_name,
               COALESCE(array_agg(t.tag) FILTER (WHERE t.tag IS NOT NULL), '{}')
        FROM public_poems p
        LEFT JOIN public_poem_tags t ON t.public_poem_id = p.id
        GROUP BY p.id, p.title, p.poem_text, p.poet_name
        ORDER BY random()
        LIMIT 1
    `
	var poem model.PublicPoem
	err := api.DB.QueryRow(ctx, query).Scan(
		&poem.ID, &poem.Title, &poem.PoemText, &poem.PoetName, &poem.Tags,
	)
	if err == pgx.ErrNoRows {
		return model.PublicPoem{}, ErrPoemNotFound
	}
	return poem, err
}
