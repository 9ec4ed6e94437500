// Package ops implements the operations behind the CLI and MCP surfaces:
// assembling and running SublerCLI invocations, and querying the journal.
package ops

import (
	"crypto/rand"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

// Pagination limits
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Pagination contains pagination metadata for list operations.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// truncate caps s at max bytes without splitting a UTF-8 rune; the cut
// backs up to the nearest rune boundary. max <= 0 means no cap.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
