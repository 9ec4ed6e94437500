package db

import (
	"database/sql"
	"encoding/json"

	"github.com/MattsSe/subtag/internal/atoms"
	"github.com/MattsSe/subtag/internal/errors"
)

// Invocation is one journaled SublerCLI run.
type Invocation struct {
	ID         string       `json:"id"`
	Source     string       `json:"source"`
	Dest       string       `json:"dest"`
	MediaKind  string       `json:"media_kind"`
	Optimize   bool         `json:"optimize"`
	Atoms      []atoms.Atom `json:"atoms,omitempty"`
	Args       []string     `json:"args"`
	ExitCode   int          `json:"exit_code"`
	Success    bool         `json:"success"`
	Stdout     string       `json:"stdout,omitempty"`
	Stderr     string       `json:"stderr,omitempty"`
	DurationMs int64        `json:"duration_ms"`
	CreatedAt  int64        `json:"created_at"`
}

// Insert stores a new invocation record.
func Insert(db *sql.DB, inv *Invocation) error {
	var atomsJSON sql.NullString
	if len(inv.Atoms) > 0 {
		data, err := json.Marshal(inv.Atoms)
		if err != nil {
			return errors.NewInternal(err)
		}
		atomsJSON = sql.NullString{String: string(data), Valid: true}
	}

	argsJSON, err := json.Marshal(inv.Args)
	if err != nil {
		return errors.NewInternal(err)
	}

	query := `
		INSERT INTO invocations (
			id, source, dest, media_kind, optimize,
			atoms_json, args_json, exit_code, success,
			stdout, stderr, duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.Exec(query,
		inv.ID, inv.Source, inv.Dest, inv.MediaKind, boolToInt(inv.Optimize),
		atomsJSON, string(argsJSON), inv.ExitCode, boolToInt(inv.Success),
		nullIfEmpty(inv.Stdout), nullIfEmpty(inv.Stderr), inv.DurationMs, inv.CreatedAt,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// GetByID retrieves an invocation record by its ULID.
func GetByID(db *sql.DB, id string) (*Invocation, error) {
	query := selectColumns + ` FROM invocations WHERE id = ?`

	row := db.QueryRow(query, id)
	inv, err := scanInvocation(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return inv, nil
}

// ListFilter narrows and pages a history listing.
type ListFilter struct {
	Source string // exact source path, empty for all
	Limit  int
	Offset int
}

// List returns invocation records newest-first, plus the total count
// matching the filter (ignoring pagination).
func List(db *sql.DB, filter ListFilter) ([]*Invocation, int, error) {
	countQuery := `SELECT COUNT(*) FROM invocations`
	query := selectColumns + ` FROM invocations`
	args := []any{}

	if filter.Source != "" {
		countQuery += ` WHERE source = ?`
		query += ` WHERE source = ?`
		args = append(args, filter.Source)
	}

	var total int
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, errors.NewInternal(err)
	}
	defer rows.Close()

	items := make([]*Invocation, 0)
	for rows.Next() {
		inv, err := scanInvocation(rows)
		if err != nil {
			return nil, 0, errors.NewInternal(err)
		}
		items = append(items, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	return items, total, nil
}

// PurgeBefore permanently deletes records created before the cutoff
// (unix seconds) and returns how many were removed.
func PurgeBefore(db *sql.DB, cutoff int64) (int, error) {
	result, err := db.Exec(`DELETE FROM invocations WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return int(n), nil
}

const selectColumns = `
	SELECT id, source, dest, media_kind, optimize,
		atoms_json, args_json, exit_code, success,
		stdout, stderr, duration_ms, created_at
`

// scanner abstracts sql.Row and sql.Rows for scanInvocation.
type scanner interface {
	Scan(dest ...any) error
}

// scanInvocation reads one row into an Invocation.
func scanInvocation(row scanner) (*Invocation, error) {
	var (
		inv       Invocation
		optimize  int
		success   int
		atomsJSON sql.NullString
		argsJSON  string
		stdout    sql.NullString
		stderr    sql.NullString
	)

	err := row.Scan(
		&inv.ID, &inv.Source, &inv.Dest, &inv.MediaKind, &optimize,
		&atomsJSON, &argsJSON, &inv.ExitCode, &success,
		&stdout, &stderr, &inv.DurationMs, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	inv.Optimize = optimize != 0
	inv.Success = success != 0
	inv.Stdout = stdout.String
	inv.Stderr = stderr.String

	if atomsJSON.Valid && atomsJSON.String != "" {
		if err := json.Unmarshal([]byte(atomsJSON.String), &inv.Atoms); err != nil {
			return nil, err
		}
	}
	if err := json.Unmarshal([]byte(argsJSON), &inv.Args); err != nil {
		return nil, err
	}

	return &inv, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
