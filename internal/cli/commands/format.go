package commands

import (
	"github.com/leapstack-labs/sqldialect/internal/cli/output"
	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/leapstack-labs/sqldialect/pkg/format"
	"github.com/leapstack-labs/sqldialect/pkg/parser"
	"github.com/spf13/cobra"
)

// FormatOptions holds options for the format command.
type FormatOptions struct {
	Files  []string
	To     string
	Pretty bool
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	opts := &FormatOptions{}

	cmd := &cobra.Command{
		Use:   "format [SQL]",
		Short: "Print SQL in canonical form",
		Long: `Parse SQL with the selected dialect and print it back in canonical form:
upper-case keywords, single spacing and one statement per line. Comments
are kept next to the statement they belong to.

With --to, identifiers are re-quoted for the target dialect, so a MySQL
` + "`name`" + ` becomes "name" for Postgres.`,
		Example: `  sqldialect format -d mysql --to postgres "delete from ` + "`t`" + ` where ` + "`id`" + `=1"
  sqldialect format --pretty -f query.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Files, "file", "f", nil, "SQL file to format (repeatable)")
	cmd.Flags().StringVar(&opts.To, "to", "", "Re-quote identifiers for this dialect")
	cmd.Flags().BoolVar(&opts.Pretty, "pretty", false, "Multi-line layout")

	_ = cmd.RegisterFlagCompletionFunc("to", completeDialects)

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, opts *FormatOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	var fmtOpts []format.Option
	target := cc.Dialect
	if opts.To != "" {
		target, err = dialect.Lookup(opts.To)
		if err != nil {
			return err
		}
		fmtOpts = append(fmtOpts, format.WithDialect(target))
	}
	if opts.Pretty {
		fmtOpts = append(fmtOpts, format.Pretty())
	}

	inputs, err := readInputs(cmd, args, opts.Files)
	if err != nil {
		return err
	}

	results := make([]output.FormatResult, 0, len(inputs))
	for _, in := range inputs {
		p, err := parser.NewParser(in.sql, cc.Dialect, parser.WithLogger(cc.Logger))
		if err != nil {
			return &output.SourceError{Name: in.name, Input: in.sql, Err: err}
		}
		stmts, err := p.ParseStatements()
		if err != nil {
			return &output.SourceError{Name: in.name, Input: in.sql, Err: err}
		}
		results = append(results, output.FormatResult{
			Source:  in.name,
			Dialect: target.Name(),
			SQL:     format.Statements(stmts, p.Comments(), fmtOpts...),
		})
	}

	r := cc.Renderer
	if r.IsStructured() {
		return r.Structured(results)
	}
	for _, res := range results {
		if len(results) > 1 {
			r.Muted("-- " + res.Source)
		}
		r.Printf("%s", res.SQL)
	}
	return nil
}

// completeDialects completes dialect names for flags.
func completeDialects(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return dialect.List(), cobra.ShellCompDirectiveNoFileComp
}
