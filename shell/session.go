// Package shell implements the interactive text interface of rebal.
//
// The interface is split in two: a Dispatcher that applies fully specified
// Commands to a ledger and returns the lines to print, and a Session that
// reads menu selections and values from the user to build those Commands.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/rs/zerolog"
)

const prompt = "> "

// quit cancels menu selections and number prompts. Names are free text.
const quit = "q"

// SelectionError reports a cancelled or invalid menu selection.
type SelectionError struct {
	Input  string
	Reason string
}

func (e *SelectionError) Error() string {
	if e.Input == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

// Cancelled reports whether the user cancelled the selection.
func (e *SelectionError) Cancelled() bool { return e.Reason == reasonCancelled }

// reasonCancelled is the reason of a SelectionError for a user cancellation.
const reasonCancelled = "selection cancelled"

// Session is an interactive session over a single ledger.
type Session struct {
	w        io.Writer
	r        *bufio.Reader
	ledger   *rebalance.Ledger
	dispatch *Dispatcher
	log      zerolog.Logger
}

// NewSession creates a session reading user input from r and writing to w.
func NewSession(w io.Writer, r io.Reader, ledger *rebalance.Ledger, d *Dispatcher) *Session {
	return &Session{
		w:        w,
		r:        bufio.NewReader(r),
		ledger:   ledger,
		dispatch: d,
		log:      d.Log.With().Str("component", "session").Logger(),
	}
}

// Ledger returns the ledger edited by the session.
func (s *Session) Ledger() *rebalance.Ledger { return s.ledger }

// Run starts the interactive loop. It returns nil when the user selects Exit
// or when the input is exhausted.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.w, "Welcome to rebal, the portfolio rebalancer.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := s.next()
		if errors.Is(err, io.EOF) {
			return nil // Clean exit on Ctrl+D
		}
		var serr *SelectionError
		if errors.As(err, &serr) {
			s.log.Debug().Err(err).Msg("selection aborted")
			fmt.Fprintf(s.w, "Error: %v\n", err)
			continue
		}
		if err != nil {
			return err
		}

		res := s.dispatch.Dispatch(s.ledger, cmd)
		if res.Err != nil {
			fmt.Fprintf(s.w, "Error: %v\n", res.Err)
			continue
		}
		s.println(res.Lines...)
		if res.Exit {
			return nil
		}
	}
}

// next asks the user for the next command.
func (s *Session) next() (Command, error) {
	actions := Actions(StateOf(s.ledger))
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.String()
	}

	fmt.Fprintln(s.w)
	i, err := s.choose("What would you like to do?", labels)
	if err != nil {
		return Command{}, err
	}
	cmd := Command{Action: actions[i]}

	switch cmd.Action {
	case AddAssetClass:
		name, err := s.ask("Asset class name")
		if err != nil {
			return Command{}, err
		}
		cmd.Name = name

	case SetAllocation, SetTarget:
		names := s.ledger.Names()
		j, err := s.choose("Which asset class?", names)
		if err != nil {
			return Command{}, err
		}
		cmd.Name = names[j]
		return s.askValue(cmd)
	}
	return cmd, nil
}

// askValue prompts for cmd.Value until it parses as a number for cmd.Action.
func (s *Session) askValue(cmd Command) (Command, error) {
	question := fmt.Sprintf("Amount invested in %s", cmd.Name)
	parse := func(v string) error {
		_, err := rebalance.ParseAmount(v, s.ledger.Currency())
		return err
	}
	if cmd.Action == SetTarget {
		question = fmt.Sprintf("Target percentage for %s", cmd.Name)
		parse = func(v string) error {
			_, err := rebalance.ParsePercent(v)
			return err
		}
	}
	for {
		value, err := s.ask(question)
		if err != nil {
			return Command{}, err
		}
		if value == quit {
			return Command{}, &SelectionError{Reason: reasonCancelled}
		}
		if err := parse(value); err != nil {
			fmt.Fprintf(s.w, "Error: %v, please enter a number.\n", err)
			continue
		}
		cmd.Value = value
		return cmd, nil
	}
}

// choose prints an enumerated menu and returns the index of the chosen option.
// Options can be selected by number or by name.
func (s *Session) choose(question string, options []string) (int, error) {
	fmt.Fprintln(s.w, question)
	for i, o := range options {
		fmt.Fprintf(s.w, "  %d) %s\n", i+1, o)
	}
	input, err := s.ask("")
	if err != nil {
		return 0, err
	}
	if input == quit {
		return 0, &SelectionError{Reason: reasonCancelled}
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(options) {
			return 0, &SelectionError{Input: input, Reason: "no such option"}
		}
		return n - 1, nil
	}
	for i, o := range options {
		if normalize(o) == normalize(input) {
			return i, nil
		}
	}
	return 0, &SelectionError{Input: input, Reason: "no such option"}
}

// ask prints the question and reads one trimmed line. An empty line cancels
// with a SelectionError.
func (s *Session) ask(question string) (string, error) {
	if question != "" {
		fmt.Fprintf(s.w, "%s: ", question)
	} else {
		fmt.Fprint(s.w, prompt)
	}
	line, err := s.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", &SelectionError{Reason: reasonCancelled}
	}
	return line, nil
}

func (s *Session) println(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(s.w, l)
	}
}
