package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqldialect/internal/cli/output"
	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects",
		Long: `List every registered dialect with the delimiter it uses to quote
identifiers and whether it intercepts statement parsing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			names := dialect.List()
			infos := make([]output.DialectInfo, 0, len(names))
			for _, name := range names {
				d, ok := dialect.Get(name)
				if !ok {
					continue
				}
				infos = append(infos, output.NewDialectInfo(d))
			}

			r := cc.Renderer
			if r.IsStructured() {
				return r.Structured(infos)
			}

			rows := make([]table.Row, 0, len(infos))
			for _, info := range infos {
				name := info.Name
				if name == cc.Dialect.Name() {
					name += " *"
				}
				intercepts := ""
				if info.Intercepts {
					intercepts = "yes"
				}
				rows = append(rows, table.Row{name, info.Quote, intercepts})
			}
			r.Table(table.Row{"Dialect", "Quote", "Intercepts"}, rows)
			r.Muted("* selected")
			return nil
		},
	}
}
