package commands

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// Setup binds a command's flags on fs and returns the function to run once fs is parsed.
// It is called with a fresh FlagSet on every execution, so flag values never leak between runs.
type Setup func(fs *flag.FlagSet) func() error

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]Setup
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Setup)}
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "spawn").
func (r *Registry) Register(name string, setup Setup) {
	r.cmds[name] = setup
}

// Names returns the registered subcommands in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Parse interprets line as a command line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from the command itself.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	setup, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := setup(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return run()
}

// RunScript executes every "cmd ..." line read from src. Blank lines and lines starting
// with # are skipped; other lines are errors. It returns the number of commands run and
// stops at the first failure, reporting its line number.
func (r *Registry) RunScript(src io.Reader) (int, error) {
	sc := bufio.NewScanner(src)
	n, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, ok := Parse(line)
		if !ok {
			return n, fmt.Errorf("line %d: not a command: %q", lineNo, line)
		}
		if err := r.Execute(args); err != nil {
			return n, fmt.Errorf("line %d: %w", lineNo, err)
		}
		n++
	}
	return n, sc.Err()
}
