// Package repl is the read-eval-print loop that sits outside the core
// expression engine as an external collaborator. It wires a
// Lexer/Parser/Evaluator session to a read_line source and a write_line
// sink, plus the handful of REPL-level commands the core has no notion of:
// angles, history, vars/display/show, exit/quit.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/computor/internal/angle"
	"github.com/midbel/computor/internal/history"
	"github.com/midbel/computor/internal/interp"
	"github.com/midbel/computor/internal/parser"
)

// Session owns the one Environment and angle Mode that live for the
// process, plus an optional history store.
type Session struct {
	env     *interp.Environment
	mode    *angle.Mode
	history *history.Store
}

// New creates a session. store may be nil, in which case history commands
// are accepted but record nothing.
func New(store *history.Store) *Session {
	mode := angle.New()
	return &Session{env: interp.NewEnvironment(mode), mode: mode, history: store}
}

// AngleMode exposes the session's angle mode so the command-line entrypoint
// can apply a -degrees flag before the loop starts.
func (s *Session) AngleMode() *angle.Mode {
	return s.mode
}

// Run drains lines from r, evaluating each and writing its rendering to w,
// until EOF, an "exit"/"quit" command, or a read error.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if s.handleCommand(line, w) {
			break
		}
		if isCommand(line) {
			continue
		}
		outcome := s.evalLine(line, w)
		s.record(line, outcome)
	}
	return scanner.Err()
}

// evalLine evaluates one statement and writes its rendering, returning the
// text recorded to history.
func (s *Session) evalLine(line string, w io.Writer) string {
	node, err := parser.ParseLine(line, s.env)
	if err != nil {
		return s.reportError(w, err)
	}
	out, err := interp.Eval(node, s.env)
	if err != nil {
		return s.reportError(w, err)
	}
	switch {
	case out.Silent:
		return ""
	case out.Text != "":
		fmt.Fprintln(w, out.Text)
		return out.Text
	default:
		fmt.Fprintln(w, out.Value.String())
		return out.Value.String()
	}
}

func (s *Session) reportError(w io.Writer, err error) string {
	ce := interp.Classify(err)
	msg := fmt.Sprintf("Error: %s", ce.Error())
	fmt.Fprintln(w, msg)
	return msg
}

func (s *Session) record(line, outcome string) {
	if s.history == nil {
		return
	}
	s.history.Append(line, outcome, time.Now())
}

// isCommand reports whether line is one of the REPL-level commands handled
// entirely outside the core (angles, history, vars/display/show, exit,
// quit).
func isCommand(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "angles", "history", "vars", "display", "show", "exit", "quit":
		return true
	default:
		return false
	}
}

// handleCommand dispatches a REPL-level command; it returns true when the
// session should stop.
func (s *Session) handleCommand(line string, w io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "exit", "quit":
		return true
	case "angles":
		s.cmdAngles(fields[1:], w)
	case "history":
		s.cmdHistory(fields[1:], w)
	case "vars", "display", "show":
		s.cmdVars(w)
	}
	return false
}

func (s *Session) cmdAngles(args []string, w io.Writer) {
	if len(args) == 0 {
		fmt.Fprintln(w, s.mode.Get())
		return
	}
	switch args[0] {
	case "rad", "radians":
		s.mode.Set(angle.Radians)
	case "deg", "degrees":
		s.mode.Set(angle.Degrees)
	default:
		fmt.Fprintf(w, "Error: unknown angle mode %q\n", args[0])
		return
	}
	fmt.Fprintln(w, s.mode.Get())
}

func (s *Session) cmdHistory(args []string, w io.Writer) {
	n := 10
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			n = v
		}
	}
	if s.history == nil {
		fmt.Fprintln(w, "history is not enabled for this session")
		return
	}
	records, err := s.history.Recent(n)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", err)
		return
	}
	for _, rec := range records {
		fmt.Fprintf(w, "%s => %s\n", rec.Line, rec.Outcome)
	}
}

// cmdVars lists every name currently bound in the session (variables and
// user-defined functions alike, since they share one scope), sorted by
// name, one "name = value" line per binding.
func (s *Session) cmdVars(w io.Writer) {
	bindings := s.env.Bindings()
	if len(bindings) == 0 {
		fmt.Fprintln(w, "no variables defined")
		return
	}
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s = %s\n", name, bindings[name].String())
	}
}
