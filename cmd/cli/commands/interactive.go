package commands

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jakechorley/scholarship-allocator/pkg/core/services"
	"github.com/jakechorley/scholarship-allocator/pkg/dataset"
)

const sessionHelp = `
Session commands:
  home                           Go to the home page (clears the loaded file)
  guide                          Show the usage guide (clears the loaded file)
  load <file> [sheet]            Load a candidate file and go to the compute page
  compute [flags]                Allocate the loaded file (flags as for allocate)
  show                           Show the last allocation
  export <file>                  Save the last allocation as .xlsx, .csv or .json
  help                           Show this help message
  exit, quit                     Exit the interactive session
`

const homeText = `
Scholarship allocator

Ranks candidates with the Weighted Product Model and shares a budget among them.
You can allocate to every candidate, to the optimal number of candidates, or to
a number of candidates you choose.

Type 'load <file>' to start or 'guide' for instructions.
`

// InteractiveCmd creates the interactive command
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (load a file once, compute several allocations)",
		Long: `Start an interactive session that keeps the loaded file and last result between commands.
The session will keep running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := newSessionShell(app, cmd)
			return shell.run(cmd.InOrStdin())
		},
	}
}

// sessionShell drives a services.Session from text commands. Commands it does not
// handle are passed to the sibling cobra commands
type sessionShell struct {
	app      *AppContext
	out      io.Writer
	session  *services.Session
	compute  *cobra.Command
	commands map[string]*cobra.Command
}

func newSessionShell(app *AppContext, cmd *cobra.Command) *sessionShell {
	shell := &sessionShell{
		app:      app,
		out:      cmd.OutOrStdout(),
		session:  services.NewSession(),
		commands: make(map[string]*cobra.Command),
	}
	shell.compute = shell.computeCmd()

	if root := cmd.Parent(); root != nil {
		for _, subCmd := range root.Commands() {
			switch subCmd.Name() {
			case "interactive", "completion", "help", "guide":
			default:
				shell.commands[subCmd.Name()] = subCmd
			}
		}
	}

	return shell
}

func (s *sessionShell) run(in io.Reader) error {
	fmt.Fprint(s.out, homeText)
	fmt.Fprintln(s.out, "Type 'help' for available commands, 'exit' or 'quit' to leave")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(s.out, "[%s] > ", s.session.Page())

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts, err := parseCommandLine(line)
		if err != nil {
			fmt.Fprintf(s.out, "❌ Error parsing command: %v\n\n", err)
			continue
		}
		if len(parts) == 0 {
			continue
		}

		if parts[0] == "exit" || parts[0] == "quit" {
			fmt.Fprintln(s.out, "👋 Goodbye!")
			return nil
		}

		if err := s.dispatch(parts[0], parts[1:]); err != nil {
			fmt.Fprintf(s.out, "❌ Error: %v\n\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}

func (s *sessionShell) dispatch(name string, args []string) error {
	switch name {
	case "help":
		s.printHelp()
		return nil
	case "home":
		s.session.Navigate(services.PageHome)
		fmt.Fprint(s.out, homeText)
		return nil
	case "guide":
		s.session.Navigate(services.PageGuide)
		printGuide(s.out)
		return nil
	case "load":
		return s.load(args)
	case "compute":
		return runParsed(s.compute, args)
	case "show":
		result := s.session.Result()
		if result == nil {
			return fmt.Errorf("nothing computed yet")
		}
		renderAllocation(s.out, result)
		return nil
	case "export":
		if len(args) != 1 {
			return fmt.Errorf("usage: export <file>")
		}
		result := s.session.Result()
		if result == nil {
			return fmt.Errorf("nothing computed yet")
		}
		if err := result.Save(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "✓ Saved to %s\n\n", args[0])
		return nil
	}

	targetCmd, exists := s.commands[name]
	if !exists {
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", name)
	}
	return runParsed(targetCmd, args)
}

func (s *sessionShell) load(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: load <file> [sheet]")
	}

	sheet := ""
	if len(args) == 2 {
		sheet = args[1]
	}

	table, err := dataset.LoadFile(args[0], sheet)
	if err != nil {
		return err
	}

	s.session.Navigate(services.PageCompute)
	s.session.Upload(args[0], table)
	s.app.Logger.Debug("Session dataset loaded", zap.String("path", args[0]), zap.Int("rows", table.Len()))

	renderInspection(s.out, filepath.Base(args[0]), table)
	return nil
}

// computeCmd parses the allocation flags of the session's compute command
func (s *sessionShell) computeCmd() *cobra.Command {
	var flags allocationFlags

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Allocate the loaded file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.buildRequest(s.app, cmd)
			if err != nil {
				return err
			}

			result, err := s.session.Compute(s.app.Ctx, s.app.Logger, req)
			if err != nil {
				return err
			}

			renderAllocation(s.out, result)
			return nil
		},
	}
	flags.register(cmd, true)

	return cmd
}

func (s *sessionShell) printHelp() {
	fmt.Fprint(s.out, sessionHelp)

	if len(s.commands) == 0 {
		fmt.Fprintln(s.out)
		return
	}

	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(s.out, "\nOther commands:")
	for _, name := range names {
		cmd := s.commands[name]
		fmt.Fprintf(s.out, "  %-30s %s\n", cmd.Use, cmd.Short)
	}
	fmt.Fprintln(s.out)
}

// runParsed resets and parses the command's flags and runs it directly,
// bypassing Execute so the root's PersistentPreRunE does not run again
func runParsed(cmd *cobra.Command, args []string) error {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
		if slice, ok := flag.Value.(pflag.SliceValue); ok {
			slice.Replace(nil)
			return
		}
		flag.Value.Set(flag.DefValue)
	})

	if err := cmd.ParseFlags(args); err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}

	args = cmd.Flags().Args()
	if cmd.Args != nil {
		if err := cmd.Args(cmd, args); err != nil {
			return err
		}
	}

	if cmd.RunE != nil {
		return cmd.RunE(cmd, args)
	}
	if cmd.Run != nil {
		cmd.Run(cmd, args)
	}
	return nil
}

// parseCommandLine splits a command line into arguments, respecting single and double quotes
func parseCommandLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	var inQuote rune

	for _, r := range line {
		switch {
		case inQuote != 0:
			if r == inQuote {
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			inQuote = r
		case unicode.IsSpace(r):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if inQuote != 0 {
		return nil, fmt.Errorf("unclosed quote: %c", inQuote)
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args, nil
}
