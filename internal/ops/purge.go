package ops

import (
	"database/sql"
	"time"

	"github.com/MattsSe/subtag/internal/db"
	"github.com/MattsSe/subtag/internal/errors"
)

// PurgeInput contains parameters for the Purge operation.
type PurgeInput struct {
	OlderThanDays *int // nil purges everything
}

// PurgeOutput contains the result of the Purge operation.
type PurgeOutput struct {
	Purged int `json:"purged"`
}

// Purge permanently deletes journaled invocations.
func Purge(database *sql.DB, input PurgeInput) (*PurgeOutput, error) {
	// cutoff one second past now catches records created this second
	cutoff := time.Now().Unix() + 1
	if input.OlderThanDays != nil {
		days := *input.OlderThanDays
		if days < 0 {
			return nil, errors.NewInvalidRequest("older_than_days must be non-negative")
		}
		cutoff = time.Now().Unix() - int64(days)*86400
	}

	purged, err := db.PurgeBefore(database, cutoff)
	if err != nil {
		return nil, err
	}

	return &PurgeOutput{Purged: purged}, nil
}
