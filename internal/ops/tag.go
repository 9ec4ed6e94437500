package ops

import (
	"database/sql"
	"strings"
	"time"

	"github.com/MattsSe/subtag/internal/atoms"
	"github.com/MattsSe/subtag/internal/config"
	"github.com/MattsSe/subtag/internal/db"
	"github.com/MattsSe/subtag/internal/errors"
	"github.com/MattsSe/subtag/internal/subler"
)

// AtomPair is one metadata name/value pair in caller order.
type AtomPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TagInput contains parameters for the Tag operation.
type TagInput struct {
	Source    string     // required
	Dest      string     // optional; derived from Source when empty
	MediaKind string     // optional; default "movie"
	Optimize  *bool      // optional; default true
	Atoms     []AtomPair // applied in order, duplicates preserved
	DryRun    bool       // assemble the command without running it
}

// TagOutput contains the result of the Tag operation.
type TagOutput struct {
	ID         string   `json:"id,omitempty"` // journal record, empty if not recorded
	Source     string   `json:"source"`
	Dest       string   `json:"dest"`
	MediaKind  string   `json:"media_kind"`
	Optimize   bool     `json:"optimize"`
	Executable string   `json:"executable"`
	Args       []string `json:"args"`
	DryRun     bool     `json:"dry_run,omitempty"`
	ExitCode   int      `json:"exit_code"`
	Success    bool     `json:"success"`
	Stdout     string   `json:"stdout,omitempty"`
	Stderr     string   `json:"stderr,omitempty"`
	DurationMs int64    `json:"duration_ms"`
}

// Tag assembles a SublerCLI invocation, runs it, and journals the outcome.
//
// Configuration problems fail fast before any process is touched. A
// non-zero SublerCLI exit is not an error here either: the output carries
// the raw exit code and stderr for the caller to present. database may be
// nil when the journal is disabled.
func Tag(database *sql.DB, cfg *config.Config, input TagInput) (*TagOutput, error) {
	if strings.TrimSpace(input.Source) == "" {
		return nil, errors.NewConfiguration("source is required")
	}
	for _, p := range input.Atoms {
		if strings.TrimSpace(p.Name) == "" {
			return nil, errors.NewInvalidRequest("atom name must not be empty")
		}
	}

	kind, err := atoms.ParseMediaKind(input.MediaKind)
	if err != nil {
		return nil, errors.NewInvalidRequest(err.Error())
	}

	builder := atoms.New()
	for _, p := range input.Atoms {
		builder.Add(p.Name, p.Value)
	}

	inv := subler.New(input.Source, builder.Build()).
		MediaKind(kind).
		Executable(cfg.CLIPath)
	if input.Dest != "" {
		inv.Dest(input.Dest)
	}
	if input.Optimize != nil {
		inv.Optimize(*input.Optimize)
	}

	args, err := inv.Args()
	if err != nil {
		return nil, err
	}

	output := &TagOutput{
		Source:     input.Source,
		Dest:       inv.DestPath(),
		MediaKind:  kind.String(),
		Optimize:   inv.Optimized(),
		Executable: subler.ResolveExecutable(cfg.CLIPath),
		Args:       args,
	}

	if input.DryRun {
		output.DryRun = true
		return output, nil
	}

	started := time.Now()
	result, err := inv.Tag()
	if err != nil {
		return nil, err
	}

	output.ExitCode = result.ExitCode
	output.Success = result.Success
	output.Stdout = string(result.Stdout)
	output.Stderr = string(result.Stderr)
	output.DurationMs = time.Since(started).Milliseconds()

	if database == nil || cfg.HistoryDisabled {
		return output, nil
	}

	id, err := generateULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	record := &db.Invocation{
		ID:         id,
		Source:     input.Source,
		Dest:       output.Dest,
		MediaKind:  output.MediaKind,
		Optimize:   output.Optimize,
		Atoms:      inv.Atoms().List(),
		Args:       args,
		ExitCode:   output.ExitCode,
		Success:    output.Success,
		Stdout:     truncate(output.Stdout, cfg.HistoryMaxCaptureChars),
		Stderr:     truncate(output.Stderr, cfg.HistoryMaxCaptureChars),
		DurationMs: output.DurationMs,
		CreatedAt:  time.Now().Unix(),
	}
	if err := db.Insert(database, record); err != nil {
		return nil, err
	}
	output.ID = id

	return output, nil
}
