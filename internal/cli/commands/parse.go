package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqldialect/internal/cli/output"
	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/leapstack-labs/sqldialect/pkg/parser"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Files   []string
	Workers int
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [SQL]",
		Short: "Parse SQL and list the statements",
		Long: `Parse SQL with the selected dialect and list each statement with its
kind, position and canonical form.

SQL is taken from the arguments, from --file (repeatable) or from stdin.
Files are parsed concurrently. With --output json or yaml the full syntax
tree of every statement is included.`,
		Example: `  # Parse a MySQL DELETE
  sqldialect parse -d mysql "DELETE FROM t WHERE id = 1 ORDER BY id LIMIT 10"

  # Parse files and dump the syntax tree
  sqldialect parse -f a.sql -f b.sql -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Files, "file", "f", nil, "SQL file to parse (repeatable)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Number of files parsed concurrently (default from config)")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	inputs, err := readInputs(cmd, args, opts.Files)
	if err != nil {
		return err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = cc.Cfg.Workers
	}

	results, err := parseAll(cmd.Context(), cc.Dialect, cc.Logger, inputs, workers)
	if err != nil {
		return err
	}

	r := cc.Renderer
	if r.IsStructured() {
		return r.Structured(results)
	}

	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				r.Println()
			}
			r.Header(res.Source)
		}
		renderStatements(r, res.Statements)
	}
	return nil
}

// parseAll parses every input against the shared dialect, at most workers
// at a time. Results keep input order. The first failure cancels the rest.
func parseAll(ctx context.Context, d dialect.Dialect, logger *slog.Logger, inputs []input, workers int) ([]output.SourceResult, error) {
	results := make([]output.SourceResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stmts, err := parser.ParseStatements(in.sql, d, parser.WithLogger(logger.With(slog.String("source", in.name))))
			if err != nil {
				return &output.SourceError{Name: in.name, Input: in.sql, Err: err}
			}

			res := output.SourceResult{
				Source:     in.name,
				Dialect:    d.Name(),
				Statements: make([]output.StatementInfo, 0, len(stmts)),
			}
			for _, stmt := range stmts {
				res.Statements = append(res.Statements, output.NewStatementInfo(stmt))
			}
			results[i] = res

			logger.Debug("parsed input",
				slog.String("source", in.name),
				slog.Int("statements", len(stmts)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderStatements(r *output.Renderer, stmts []output.StatementInfo) {
	if len(stmts) == 0 {
		r.Muted("(no statements)")
		return
	}
	rows := make([]table.Row, 0, len(stmts))
	for i, s := range stmts {
		rows = append(rows, table.Row{i + 1, s.Kind, fmt.Sprintf("%d:%d", s.Line, s.Column), s.SQL})
	}
	r.Table(table.Row{"#", "Kind", "Position", "SQL"}, rows)
}
