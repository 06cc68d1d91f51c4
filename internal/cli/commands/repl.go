package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/sqldialect/internal/cli/config"
	"github.com/leapstack-labs/sqldialect/internal/cli/output"
	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/leapstack-labs/sqldialect/pkg/format"
	"github.com/leapstack-labs/sqldialect/pkg/parser"
	"github.com/spf13/cobra"
)

const (
	continuationPrompt = "      ...> "
	replSource         = "<repl>"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	var historyFile string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive SQL parsing shell",
		Long: `Start an interactive shell that parses each statement as it is entered
and prints it back in canonical form. Statements end with a semicolon and
may span several lines.

Type .help inside the shell for the available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			if historyFile == "" {
				historyFile = defaultHistoryFile(cc.Cfg)
			}
			return runREPL(cmd, cc, historyFile)
		},
	}

	cmd.Flags().StringVar(&historyFile, "history-file", "", "File to keep REPL history in (default ~/.sqldialect_history)")

	return cmd
}

func defaultHistoryFile(cfg *config.Config) string {
	if cfg.HistoryFile != "" {
		return cfg.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, config.DefaultHistory)
}

func runREPL(cmd *cobra.Command, cc *CommandContext, historyFile string) error {
	session := newREPLSession(cc.Dialect, cc.Logger, cc.Renderer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          session.prompt(),
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r := cc.Renderer
	r.Printf("sqldialect REPL (dialect: %s)\n", cc.Dialect.Name())
	r.Println("Type .help for commands, .quit to exit")
	r.Println()

	for {
		rl.SetPrompt(session.prompt())
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			session.reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if session.handleLine(line) {
			return nil
		}
	}
}

// replSession holds the state of one interactive session.
type replSession struct {
	dialect    dialect.Dialect
	logger     *slog.Logger
	r          *output.Renderer
	showTokens bool
	pretty     bool
	pending    strings.Builder
}

func newREPLSession(d dialect.Dialect, logger *slog.Logger, r *output.Renderer) *replSession {
	return &replSession{dialect: d, logger: logger, r: r}
}

func (s *replSession) prompt() string {
	if s.pending.Len() > 0 {
		return continuationPrompt
	}
	return fmt.Sprintf("sqldialect(%s)> ", s.dialect.Name())
}

func (s *replSession) reset() {
	s.pending.Reset()
}

// handleLine processes one line of input and reports whether the session
// should end. SQL accumulates until a line ends with a semicolon.
func (s *replSession) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if s.pending.Len() == 0 && strings.HasPrefix(line, ".") {
		return s.handleDotCommand(line)
	}

	s.pending.WriteString(line)
	if !strings.HasSuffix(line, ";") {
		s.pending.WriteString("\n")
		return false
	}

	sql := s.pending.String()
	s.pending.Reset()
	s.run(sql)
	return false
}

func (s *replSession) run(sql string) {
	if s.showTokens {
		toks, err := parser.Tokenize(sql, s.dialect)
		if err != nil {
			s.r.Error(&output.SourceError{Name: replSource, Input: sql, Err: err})
			return
		}
		renderTokens(s.r, tokenInfos(toks))
	}

	p, err := parser.NewParser(sql, s.dialect, parser.WithLogger(s.logger))
	if err != nil {
		s.r.Error(&output.SourceError{Name: replSource, Input: sql, Err: err})
		return
	}
	stmts, err := p.ParseStatements()
	if err != nil {
		s.r.Error(&output.SourceError{Name: replSource, Input: sql, Err: err})
		return
	}

	if s.r.IsStructured() {
		infos := make([]output.StatementInfo, 0, len(stmts))
		for _, stmt := range stmts {
			infos = append(infos, output.NewStatementInfo(stmt))
		}
		_ = s.r.Structured(infos)
		return
	}

	var opts []format.Option
	if s.pretty {
		opts = append(opts, format.Pretty())
	}
	s.r.Printf("%s", format.Statements(stmts, p.Comments(), opts...))

	kinds := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		kinds = append(kinds, output.StatementKind(stmt))
	}
	if len(kinds) > 0 {
		s.r.Muted("-- " + strings.Join(kinds, ", "))
	}
}

func (s *replSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.r.Writer())

	case ".dialect":
		if len(parts) < 2 {
			s.r.Printf("dialect: %s\n", s.dialect.Name())
			return false
		}
		d, err := dialect.Lookup(parts[1])
		if err != nil {
			s.r.Error(err)
			return false
		}
		s.dialect = d
		s.r.Printf("dialect: %s\n", d.Name())

	case ".dialects":
		s.r.Println(strings.Join(dialect.List(), ", "))

	case ".tokens":
		s.showTokens = !s.showTokens
		s.r.Printf("tokens: %s\n", onOff(s.showTokens))

	case ".pretty":
		s.pretty = !s.pretty
		s.r.Printf("pretty: %s\n", onOff(s.pretty))

	default:
		_, _ = fmt.Fprintf(s.r.ErrWriter(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .dialect [name]  Show or switch the dialect
  .dialects        List registered dialects
  .tokens          Toggle printing the token stream
  .pretty          Toggle multi-line formatting
  .quit / .exit    Exit the REPL

Tips:
  - SQL statements must end with a semicolon (;)
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter completes dot-commands and dialect names.
func newREPLCompleter() *readline.PrefixCompleter {
	names := dialect.List()
	dialectItems := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		dialectItems = append(dialectItems, readline.PcItem(name))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".dialect", dialectItems...),
		readline.PcItem(".dialects"),
		readline.PcItem(".tokens"),
		readline.PcItem(".pretty"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
