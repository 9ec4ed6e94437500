package ops

import (
	"database/sql"
	"strings"

	"github.com/MattsSe/subtag/internal/db"
	"github.com/MattsSe/subtag/internal/errors"
)

// ShowInput contains parameters for the Show operation.
type ShowInput struct {
	ID string // required
}

// Show fetches a single journaled invocation by ID.
func Show(database *sql.DB, input ShowInput) (*db.Invocation, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	return db.GetByID(database, id)
}
