package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leapstack-labs/sqldialect/internal/cli/config"
	"github.com/leapstack-labs/sqldialect/internal/cli/output"
	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Dialect  dialect.Dialect
	Renderer *output.Renderer
}

// NewCommandContext resolves the configured dialect and builds the
// renderer for cmd.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	d, err := dialect.Lookup(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Dialect:  d,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}, nil
}

// getConfig returns the current configuration, or the defaults when the
// command runs without the root command's pre-run.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// input is one chunk of SQL with a display name.
type input struct {
	name string
	sql  string
}

// Names used for inputs that do not come from files.
const (
	argsInput  = "<args>"
	stdinInput = "<stdin>"
)

// readInputs collects SQL from positional args (joined into one input),
// then from files. With neither it reads stdin.
func readInputs(cmd *cobra.Command, args, files []string) ([]input, error) {
	var inputs []input
	if len(args) > 0 {
		inputs = append(inputs, input{name: argsInput, sql: strings.Join(args, " ")})
	}
	for _, path := range files {
		data, err := os.ReadFile(path) //nolint:gosec // path is supplied on the command line
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		inputs = append(inputs, input{name: path, sql: string(data)})
	}
	if len(inputs) > 0 {
		return inputs, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return []input{{name: stdinInput, sql: string(data)}}, nil
}
