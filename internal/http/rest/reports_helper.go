package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/versehub/versehub_api/internal/model"
	"github.com/versehub/versehub_api/util"
	"github.com/versehub/versehub_api/util/values"
)

func (api *API) CreateReportHelper(ctx context.Context, poemID int64, viewer util.Viewer, reportText string) (string, string, error) {
	err := api.CreateReportRepo(ctx, poemID, viewer.ID, reportText)
	if err != nil {
		switch err {
		case ErrPoemNotFound:
			return values.NotFound, "No poem with this id found", nil
		case ErrOwnPoemReport:
			return values.NotAllowed, "You cannot report your own poem", nil
		case ErrAlreadyReported:
			return values.Conflict, "This poem was already reported by you", nil
		}
		return values.Error, "Failed to create report", err
	}
	return values.Created, "Report created successfully", nil
}

func (api *API) ListReportsHelper(ctx context.Context, limit, offset int) ([]model.ReportEntry, string, string, error) {
	reports, err := api.ListReportsRepo(ctx, limit, offset)
	if err != nil {
		return nil, values.Error, "Failed to fetch reports", err
	}
	return reports, values.Success, "Reports fetched successfully", nil
}

func (api *API) ResolveReportHelper(ctx context.Context, poemID int64, reporterID uuid.UUID, removePoem bool) (string, string, error) {
	var err error
	if removePoem {
		err = api.RemoveReportedPoemRepo(ctx, poemID, reporterID)
	} else {
		err = api.DismissReportRepo(ctx, poemID, reporterID)
	}
	if err != nil {
		if err == ErrReportNotFound {
			return values.NotFound, "No matching report found", nil
		}
		return values.Error, "Failed to resolve report", err
	}
	return values.Success, "Report resolved successfully", nil
}
