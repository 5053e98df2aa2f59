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
	ErrReportNotFound  = errors.New("report not found")
	ErrAlreadyReported = errors.New("poem already reported by this user")
	ErrOwnPoemReport   = errors.New("authors cannot report their own poem")
)

func (api *API) CreateReportRepo(ctx context.Context, poemID int64, reporterID uuid.UUID, reportText string) error {
	authorID, err := api.GetPoemAuthorRepo(ctx, poemID)
	if err != nil {
		return err
	}
	if authorID == reporterID {
		return ErrOwnPoemReport
	}

	_, err = api.DB.Exec(ctx,
		`INSERT INTO reports (poem_id, user_id, report_text, created_at) VALUES ($1, $2, $3, NOW())`,
		poemID, reporterID, reportText,
	)
	if pgErr, ok := err.(*pgconn.PgError); ok {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrAlreadyReported
		case pgForeignKeyViolation:
			return ErrPoemNotFound
		}
	}
	return err
}

func (api *API) ListReportsRepo(ctx context.Context, limit, offset int) ([]model.ReportEntry, error) {
	query := `
        SELECT r.report_text, r.user_id, ru.username, ru.displayname,
               p.id, p.poem_text, p.created_at,
               p.user_id, pu.username, pu.displayname,
               COALESCE(SUM(v.value), 0)::int AS rating
        FROM reports r
        JOIN poems p ON p.id = r.poem_id
        JOIN users ru ON ru.id = r.user_id
        JOIN users pu ON pu.id = p.user_id
        LEFT JOIN votes v ON v.poem_id = p.id
        GROUP BY r.report_text, r.user_id, ru.username, ru.displayname,
                 p.id, p.poem_text, p.created_at, p.user_id, pu.username, pu.displayname
        ORDER BY p.created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := api.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var reports []model.ReportEntry
	for rows.Next() {
		var report model.ReportEntry
		err := rows.Scan(
			&report.ReportText, &report.ReportingUserID, &report.ReportingUsername, &report.ReportingDisplayname,
			&report.PoemID, &report.PoemText, &report.Timestamp,
			&report.PoetUserID, &report.PoetUsername, &report.PoetDisplayname,
			&report.Rating,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// DismissReportRepo resolves a report by deleting only the report row; the
// poem stays published.
func (api *API) DismissReportRepo(ctx context.Context, poemID int64, reporterID uuid.UUID) error {
	result, err := api.DB.Exec(ctx,
		`DELETE FROM reports WHERE poem_id = $1 AND user_id = $2`,
		poemID, reporterID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrReportNotFound
	}
	return nil
}

// RemoveReportedPoemRepo resolves a report by removing the reported poem with
// the same cascade semantics as the vote engine's threshold deletion. The
// report rows disappear with the poem.
func (api *API) RemoveReportedPoemRepo(ctx context.Context, poemID int64, reporterID uuid.UUID) error {
	return api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM reports WHERE poem_id = $1 AND user_id = $2)`,
			poemID, reporterID,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return ErrReportNotFound
		}
		return removePoemTx(ctx, tx, poemID)
	})
}
