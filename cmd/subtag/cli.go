package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/MattsSe/subtag/internal/config"
	"github.com/MattsSe/subtag/internal/errors"
	"github.com/MattsSe/subtag/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "subtag",
		Usage:   "Write metadata to media files with SublerCLI",
		Version: Version,
		Commands: []*cli.Command{
			tagCmd(db, cfg),
			atomsCmd(),
			historyCmd(db),
			showCmd(db),
			purgeCmd(db),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// tagCmd creates the tag command.
func tagCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "tag",
		Usage:     "Tag a media file (shorthand flags first, then --meta pairs, in flag order)",
		ArgsUsage: "<source>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dest", Aliases: []string{"d"}, Usage: "Destination path (default: source with .0 suffix, never collision-checked)"},
			&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Value: "movie", Usage: "Media kind: movie|music|audiobook|musicvideo|tvshow|booklet|ringtone"},
			&cli.BoolFlag{Name: "no-optimize", Usage: "Skip SublerCLI's optimization pass"},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Title (Name atom)"},
			&cli.StringFlag{Name: "artist", Usage: "Artist atom"},
			&cli.StringFlag{Name: "album", Usage: "Album atom"},
			&cli.StringFlag{Name: "genre", Usage: "Genre atom"},
			&cli.StringFlag{Name: "release-date", Usage: "Release Date atom"},
			&cli.StringSliceFlag{Name: "cast", Usage: "Cast atom (repeatable, accumulates in order)"},
			&cli.BoolFlag{Name: "hd", Usage: "Set the HD Video atom to 1"},
			&cli.StringSliceFlag{Name: "meta", Aliases: []string{"m"}, Usage: "Arbitrary atom as Name=Value (repeatable, accumulates in order)"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the assembled command without running SublerCLI"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return outputError(errors.NewConfiguration("exactly one source path is required"))
			}

			pairs := shorthandAtoms(c)
			for _, m := range c.StringSlice("meta") {
				pair, err := parseMetaPair(m)
				if err != nil {
					return outputError(errors.NewInvalidRequest(err.Error()))
				}
				pairs = append(pairs, pair)
			}

			input := ops.TagInput{
				Source:    c.Args().First(),
				Dest:      c.String("dest"),
				MediaKind: c.String("kind"),
				Atoms:     pairs,
				DryRun:    c.Bool("dry-run"),
			}
			if c.Bool("no-optimize") {
				optimize := false
				input.Optimize = &optimize
			}

			output, err := ops.Tag(db, cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// atomsCmd creates the atoms command.
func atomsCmd() *cli.Command {
	return &cli.Command{
		Name:  "atoms",
		Usage: "List all known metadata tag names and media kinds",
		Action: func(_ *cli.Context) error {
			return outputJSON(ops.Tags())
		},
	}
}

// historyCmd creates the history command.
func historyCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List journaled SublerCLI invocations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "Filter by exact source path"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "Maximum items to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Items to skip"},
		},
		Action: func(c *cli.Context) error {
			if db == nil {
				return outputError(errors.NewInvalidRequest("the invocation journal is disabled (history_disabled)"))
			}

			output, err := ops.History(db, ops.HistoryInput{
				Source: c.String("source"),
				Limit:  c.Int("limit"),
				Offset: c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// showCmd creates the show command.
func showCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one journaled invocation by ID",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if db == nil {
				return outputError(errors.NewInvalidRequest("the invocation journal is disabled (history_disabled)"))
			}

			output, err := ops.Show(db, ops.ShowInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// purgeCmd creates the purge command.
func purgeCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "purge",
		Usage: "Permanently delete journaled invocations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "older-than", Usage: "Only purge records older than N days (e.g., 7d)"},
		},
		Action: func(c *cli.Context) error {
			if db == nil {
				return outputError(errors.NewInvalidRequest("the invocation journal is disabled (history_disabled)"))
			}

			input := ops.PurgeInput{}
			if olderThan := c.String("older-than"); olderThan != "" {
				days, err := parseDuration(olderThan)
				if err != nil {
					return outputError(errors.NewInvalidRequest(err.Error()))
				}
				input.OlderThanDays = &days
			}

			output, err := ops.Purge(db, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// Helper functions

// shorthandAtoms collects the common-tag convenience flags in a fixed
// order: title, artist, album, genre, release date, cast, HD.
func shorthandAtoms(c *cli.Context) []ops.AtomPair {
	pairs := make([]ops.AtomPair, 0)
	if v := c.String("title"); v != "" {
		pairs = append(pairs, ops.AtomPair{Name: "Name", Value: v})
	}
	if v := c.String("artist"); v != "" {
		pairs = append(pairs, ops.AtomPair{Name: "Artist", Value: v})
	}
	if v := c.String("album"); v != "" {
		pairs = append(pairs, ops.AtomPair{Name: "Album", Value: v})
	}
	if v := c.String("genre"); v != "" {
		pairs = append(pairs, ops.AtomPair{Name: "Genre", Value: v})
	}
	if v := c.String("release-date"); v != "" {
		pairs = append(pairs, ops.AtomPair{Name: "Release Date", Value: v})
	}
	for _, v := range c.StringSlice("cast") {
		pairs = append(pairs, ops.AtomPair{Name: "Cast", Value: v})
	}
	if c.Bool("hd") {
		pairs = append(pairs, ops.AtomPair{Name: "HD Video", Value: "1"})
	}
	return pairs
}

// parseMetaPair splits "Name=Value" into an atom pair.
func parseMetaPair(s string) (ops.AtomPair, error) {
	name, value, found := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return ops.AtomPair{}, fmt.Errorf("invalid --meta %q, expected Name=Value", s)
	}
	return ops.AtomPair{Name: name, Value: value}, nil
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.Error); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// parseDuration parses "7d" format to days.
func parseDuration(s string) (int, error) {
	if numStr, ok := strings.CutSuffix(s, "d"); ok {
		days, err := strconv.Atoi(numStr)
		if err != nil {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}
		if days < 0 {
			return 0, fmt.Errorf("duration must be non-negative")
		}
		return days, nil
	}
	return 0, fmt.Errorf("duration must end with 'd' (days), e.g., 7d")
}
