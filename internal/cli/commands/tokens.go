package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqldialect/internal/cli/output"
	"github.com/leapstack-labs/sqldialect/pkg/parser"
	"github.com/leapstack-labs/sqldialect/pkg/token"
	"github.com/spf13/cobra"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "tokens [SQL]",
		Short: "Show the token stream for SQL",
		Long: `Tokenize SQL with the selected dialect's identifier rules and print
every token with its position. Useful to see how a dialect treats quoting,
sigils such as $ and @, and non-ASCII identifiers.`,
		Example: "  sqldialect tokens -d mssql \"SELECT [order], #tmp FROM t\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd, args, files)
			if err != nil {
				return err
			}

			all := make([][]output.TokenInfo, 0, len(inputs))
			for _, in := range inputs {
				toks, err := parser.Tokenize(in.sql, cc.Dialect)
				if err != nil {
					return &output.SourceError{Name: in.name, Input: in.sql, Err: err}
				}
				all = append(all, tokenInfos(toks))
			}

			r := cc.Renderer
			if r.IsStructured() {
				if len(all) == 1 {
					return r.Structured(all[0])
				}
				return r.Structured(all)
			}
			for i, infos := range all {
				if len(inputs) > 1 {
					r.Header(inputs[i].name)
				}
				renderTokens(r, infos)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "SQL file to tokenize (repeatable)")

	return cmd
}

// tokenInfos describes toks without the trailing EOF.
func tokenInfos(toks []token.Token) []output.TokenInfo {
	infos := make([]output.TokenInfo, 0, len(toks))
	for _, tok := range toks {
		if tok.Type == token.EOF {
			break
		}
		infos = append(infos, output.NewTokenInfo(tok))
	}
	return infos
}

func renderTokens(r *output.Renderer, infos []output.TokenInfo) {
	rows := make([]table.Row, 0, len(infos))
	for _, t := range infos {
		literal := t.Literal
		if t.Quote != "" {
			literal = fmt.Sprintf("%s (quoted %s)", t.Literal, t.Quote)
		}
		rows = append(rows, table.Row{fmt.Sprintf("%d:%d", t.Line, t.Column), t.Type, literal})
	}
	r.Table(table.Row{"Position", "Type", "Literal"}, rows)
}
