// Package subler assembles and executes SublerCLI invocations.
//
// A Subler value pairs a source file with a collection of metadata atoms
// and renders the exact argument list the external tool expects. The
// package performs no file I/O of its own; the only side effects happen
// inside the spawned SublerCLI process, which writes the tagged copy to
// the destination path.
package subler

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/MattsSe/subtag/internal/atoms"
	"github.com/MattsSe/subtag/internal/errors"
)

const (
	// DefaultExecutable is the canonical homebrew install location.
	DefaultExecutable = "/usr/local/bin/SublerCli"

	// EnvExecutable overrides the SublerCLI location when set.
	EnvExecutable = "SUBLER_CLI_PATH"
)

// Subler is a write-once invocation config for a single tagging run.
// Defaults: media kind Movie, optimization on, destination derived from
// the source path.
type Subler struct {
	source     string
	dest       string
	kind       atoms.MediaKind
	optimize   bool
	executable string
	atoms      atoms.Atoms
}

// New creates an invocation that applies the given atoms to the file at
// source.
func New(source string, a atoms.Atoms) *Subler {
	return &Subler{
		source:   source,
		kind:     atoms.Movie,
		optimize: true,
		atoms:    a,
	}
}

// Dest sets an explicit destination path for the tagged output file.
func (s *Subler) Dest(dest string) *Subler {
	s.dest = dest
	return s
}

// MediaKind sets the media classification. Last call wins; exactly one
// kind is always emitted.
func (s *Subler) MediaKind(k atoms.MediaKind) *Subler {
	s.kind = k
	return s
}

// Optimize toggles SublerCLI's optimization pass. Last call wins.
func (s *Subler) Optimize(v bool) *Subler {
	s.optimize = v
	return s
}

// Executable sets a fallback path for the SublerCLI binary. The
// SUBLER_CLI_PATH environment variable still takes precedence.
func (s *Subler) Executable(path string) *Subler {
	s.executable = path
	return s
}

// Source returns the source file path.
func (s *Subler) Source() string { return s.source }

// Kind returns the media kind that will be emitted.
func (s *Subler) Kind() atoms.MediaKind { return s.kind }

// Optimized reports whether the optimization flag will be emitted.
func (s *Subler) Optimized() bool { return s.optimize }

// Atoms returns the atom collection to be applied.
func (s *Subler) Atoms() atoms.Atoms { return s.atoms }

// DestPath returns the destination that will be handed to SublerCLI:
// the explicit path if one was set, otherwise the derived suffix path.
func (s *Subler) DestPath() string {
	if s.dest != "" {
		return s.dest
	}
	return DeriveDest(s.source)
}

// DeriveDest inserts a ".0" suffix before the file extension:
// demo.mp4 becomes demo.0.mp4. The filesystem is never consulted, so a
// pre-existing demo.0.mp4 is silently overwritten by SublerCLI on a
// repeated run. Callers that care must pass an explicit destination.
func DeriveDest(source string) string {
	ext := filepath.Ext(source)
	stem := strings.TrimSuffix(source, ext)
	if ext == "" {
		return stem + ".0"
	}
	return stem + ".0" + ext
}

// ResolveExecutable returns the SublerCLI path to launch: the
// SUBLER_CLI_PATH environment variable if set, then the override, then
// the default install location. Resolution happens per call; nothing is
// cached process-wide. A missing binary only surfaces at launch time.
func ResolveExecutable(override string) string {
	if p := os.Getenv(EnvExecutable); p != "" {
		return p
	}
	if override != "" {
		return override
	}
	return DefaultExecutable
}

// Args assembles the ordered SublerCLI argument list:
//
//	tag -source <src> -metadata <kind> [-optimize] (-metadata <name> <value>)... -dest <dst>
//
// Atom pairs appear in insertion order; the ordering is load-bearing
// because SublerCLI accumulates repeated tags by position.
func (s *Subler) Args() ([]string, error) {
	if strings.TrimSpace(s.source) == "" {
		return nil, errors.NewConfiguration("source path must not be empty")
	}
	for _, a := range s.atoms.List() {
		if a.Name == "" {
			return nil, errors.NewConfiguration("atom name must not be empty")
		}
	}

	args := []string{"tag", "-source", s.source, "-metadata", s.kind.String()}
	if s.optimize {
		args = append(args, "-optimize")
	}
	args = append(args, s.atoms.Args()...)
	args = append(args, "-dest", s.DestPath())
	return args, nil
}

// Command builds the ready-to-run SublerCLI process without starting it.
func (s *Subler) Command() (*exec.Cmd, error) {
	args, err := s.Args()
	if err != nil {
		return nil, err
	}
	return exec.Command(ResolveExecutable(s.executable), args...), nil
}

// Result holds the captured outcome of a completed SublerCLI run.
// It is fully owned by the caller; nothing is shared with the builder.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Success  bool
}

// Tag runs SublerCLI synchronously and captures its output and exit
// status. A non-zero exit is not a Go error: the Result carries the raw
// exit code and stderr verbatim so the caller can present the tool's own
// diagnostics. Errors are returned only when the config is invalid, the
// binary cannot be launched, or the process fails to run to completion.
func (s *Subler) Tag() (*Result, error) {
	cmd, err := s.Command()
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, errors.NewLaunch(cmd.Path, err)
	}

	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &Result{
				Stdout:   stdout.Bytes(),
				Stderr:   stderr.Bytes(),
				ExitCode: exitErr.ExitCode(),
				Success:  false,
			}, nil
		}
		return nil, errors.NewExecution(err)
	}

	return &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: 0,
		Success:  true,
	}, nil
}

// SpawnTag starts SublerCLI and hands back the live process without
// waiting. The caller becomes the sole owner of the handle and is
// responsible for waiting on and reaping it; no output capture is wired
// up unless the caller does so before calling this.
func (s *Subler) SpawnTag() (*exec.Cmd, error) {
	cmd, err := s.Command()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.NewLaunch(cmd.Path, err)
	}
	return cmd, nil
}
