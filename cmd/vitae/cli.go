package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hollisgrant/vitae/internal/config"
	"github.com/hollisgrant/vitae/internal/errors"
	"github.com/hollisgrant/vitae/internal/extract"
	"github.com/hollisgrant/vitae/internal/llm"
	"github.com/hollisgrant/vitae/internal/ops"
	"github.com/hollisgrant/vitae/internal/resume"
	"github.com/hollisgrant/vitae/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "vitae",
		Usage:   "Resume structuring engine",
		Version: Version,
		Commands: []*cli.Command{
			parseCmd(cfg),
			storeCmd(db, cfg),
			fetchCmd(db),
			listCmd(db),
			deleteCmd(db),
			purgeCmd(db),
			exportCmd(db, cfg),
			siteCmd(db, cfg),
			serveCmd(db, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// chooseStrategy returns the parsing strategy for a command. The heuristic
// parser is the default; --llm selects the Gemini-backed one.
func chooseStrategy(ctx context.Context, cfg *config.Config, useLLM bool) (resume.Strategy, error) {
	if !useLLM {
		return resume.NewParser(), nil
	}
	model := llm.DefaultModel
	apiKey := ""
	if cfg != nil {
		if cfg.GeminiModel != "" {
			model = cfg.GeminiModel
		}
		apiKey = cfg.GeminiAPIKey
	}
	return llm.New(ctx, apiKey, model)
}

// sourceText resolves the input text for parse/store: a positional file path
// goes through the document extractor, otherwise the text is read from stdin.
func sourceText(c *cli.Context) (text string, source *string, err error) {
	if c.NArg() > 0 {
		path := c.Args().First()
		text, err = extract.Text(path)
		if err != nil {
			return "", nil, err
		}
		return text, &path, nil
	}

	if !stdinHasData() {
		return "", nil, errors.NewInvalidRequest("provide a source file argument or pipe resume text via stdin")
	}
	text, err = readStdin()
	if err != nil {
		return "", nil, errors.NewInternal(err)
	}
	if text == "" {
		return "", nil, errors.NewInvalidRequest("resume text is required")
	}
	return text, nil, nil
}

// parseCmd creates the parse command.
func parseCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a resume into structured JSON without storing it",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "llm", Usage: "Use the Gemini parsing strategy"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write the record JSON to a file instead of stdout"},
		},
		Action: func(c *cli.Context) error {
			text, _, err := sourceText(c)
			if err != nil {
				return outputError(err)
			}

			strategy, err := chooseStrategy(c.Context, cfg, c.Bool("llm"))
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Parse(c.Context, strategy, cfg, ops.ParseInput{Text: text})
			if err != nil {
				return outputError(err)
			}

			if path := c.String("output"); path != "" {
				data, err := json.MarshalIndent(output.Record, "", "  ")
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
					return outputError(errors.NewInternal(err))
				}
				fmt.Printf("wrote %s\n", path)
				return nil
			}

			return outputJSON(output)
		},
	}
}

// storeCmd creates the store command.
func storeCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "store",
		Usage:     "Parse and store a resume (from a file argument or stdin)",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Archive name (optional, unique)"},
			&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: "error", Usage: "Collision mode: error|replace"},
			&cli.BoolFlag{Name: "llm", Usage: "Use the Gemini parsing strategy"},
		},
		Action: func(c *cli.Context) error {
			text, source, err := sourceText(c)
			if err != nil {
				return outputError(err)
			}

			strategy, err := chooseStrategy(c.Context, cfg, c.Bool("llm"))
			if err != nil {
				return outputError(err)
			}

			input := ops.StoreInput{
				Text:   text,
				Source: source,
				Mode:   ops.StoreMode(c.String("mode")),
			}
			if name := c.String("name"); name != "" {
				input.Name = &name
			}

			output, err := ops.Store(c.Context, db, cfg, strategy, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// fetchCmd creates the fetch command.
func fetchCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch a stored resume by ID or name",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Archive name"},
			&cli.BoolFlag{Name: "include-deleted", Usage: "Include soft-deleted resumes"},
			&cli.BoolFlag{Name: "no-text", Usage: "Exclude raw_text from output"},
		},
		Action: func(c *cli.Context) error {
			input := ops.FetchInput{
				IncludeDeleted: c.Bool("include-deleted"),
			}

			// Check for positional ID argument
			if c.NArg() > 0 {
				input.ID = c.Args().First()
			} else {
				input.Name = c.String("name")
			}

			if c.Bool("no-text") {
				includeText := false
				input.IncludeText = &includeText
			}

			output, err := ops.Fetch(db, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List stored resumes, most recently updated first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum items to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Items to skip"},
			&cli.BoolFlag{Name: "include-deleted", Usage: "Include soft-deleted resumes"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(db, ops.ListInput{
				Limit:          c.Int("limit"),
				Offset:         c.Int("offset"),
				IncludeDeleted: c.Bool("include-deleted"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Soft-delete a resume",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Archive name"},
		},
		Action: func(c *cli.Context) error {
			input := ops.DeleteInput{}

			// Check for positional ID argument
			if c.NArg() > 0 {
				input.ID = c.Args().First()
			} else {
				input.Name = c.String("name")
			}

			output, err := ops.Delete(db, input)
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
		Usage: "Permanently delete soft-deleted resumes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "older-than", Usage: "Only purge if deleted more than N days ago (e.g., 7d)"},
		},
		Action: func(c *cli.Context) error {
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

// exportCmd creates the export command.
func exportCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export resumes to a JSONL file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: ~/.vitae/exports/resumes-<timestamp>.jsonl)"},
			&cli.BoolFlag{Name: "include-deleted", Usage: "Include soft-deleted resumes"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(c.Context, db, cfg, ops.ExportInput{
				Path:           c.String("path"),
				IncludeDeleted: c.Bool("include-deleted"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// siteCmd creates the site command.
func siteCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "site",
		Usage:     "Generate a static portfolio website from a stored resume",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Archive name"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output directory (default from config)"},
		},
		Action: func(c *cli.Context) error {
			input := ops.SiteInput{
				OutDir: c.String("out"),
			}

			if c.NArg() > 0 {
				input.ID = c.Args().First()
			} else {
				input.Name = c.String("name")
			}

			output, err := ops.Site(db, cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the local browse UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Value: 8080, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(db, cfg, Version, c.String("bind"), c.Int("port"))
			if err := web.Run(srv); err != nil {
				return outputError(err)
			}
			return nil
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if vErr, ok := err.(*errors.VitaeError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", vErr.Code, vErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
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
