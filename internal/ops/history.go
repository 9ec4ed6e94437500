package ops

import (
	"database/sql"

	"github.com/MattsSe/subtag/internal/db"
	"github.com/MattsSe/subtag/internal/errors"
)

// HistoryInput contains parameters for the History operation.
type HistoryInput struct {
	Source string // filter by exact source path, empty for all
	Limit  int    // default 20, max 100
	Offset int
}

// HistoryOutput contains a page of journaled invocations, newest first.
type HistoryOutput struct {
	Items      []*db.Invocation `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

// History lists journaled invocations.
func History(database *sql.DB, input HistoryInput) (*HistoryOutput, error) {
	if input.Limit < 0 || input.Offset < 0 {
		return nil, errors.NewInvalidRequest("limit and offset must be non-negative")
	}
	if input.Limit == 0 {
		input.Limit = DefaultHistoryLimit
	}
	if input.Limit > MaxHistoryLimit {
		input.Limit = MaxHistoryLimit
	}

	items, total, err := db.List(database, db.ListFilter{
		Source: input.Source,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &HistoryOutput{
		Items: items,
		Pagination: Pagination{
			Limit:   input.Limit,
			Offset:  input.Offset,
			HasMore: input.Offset+len(items) < total,
			Total:   total,
		},
	}, nil
}
