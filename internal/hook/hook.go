// Package hook implements the Codex notify hook: read one notification
// event from stdin, run keel compile when an agent turn completes, and
// relay the compiler's stderr diagnostics so Codex sees violations in
// its next turn.
package hook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// EventAgentTurnComplete is the only event type the hook acts on.
// All other event types are silently ignored.
const EventAgentTurnComplete = "agent-turn-complete"

// Event is a Codex notification event. Codex sends a larger payload;
// only the type field is inspected, everything else is ignored.
type Event struct {
	Type string `json:"type"`
}

// ParseEvent reads r to EOF and decodes a single notification event.
func ParseEvent(r io.Reader) (Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Event{}, fmt.Errorf("reading event: %w", err)
	}

	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("parsing event: %w", err)
	}

	return ev, nil
}

// Hook runs the compile command in response to notification events.
type Hook struct {
	Runner Runner
	Stderr io.Writer

	// Cmd and Args form the compile invocation,
	// by default "keel compile --changed --json".
	Cmd  string
	Args []string
}

// New creates a Hook that reports diagnostics to stderr.
func New(runner Runner, stderr io.Writer, cmd string, args []string) *Hook {
	return &Hook{
		Runner: runner,
		Stderr: stderr,
		Cmd:    cmd,
		Args:   args,
	}
}

// HandleEvent reads one event from input and dispatches it.
//
// Irrelevant event types are a no-op. For agent-turn-complete the compile
// command runs synchronously with no timeout; when it exits non-zero with
// a non-blank stderr, that stderr text is relayed verbatim (plus a
// trailing newline) to the hook's stderr. A failing compile is not an
// error here: the hook's own exit status stays zero so the agent runner
// never treats diagnostics as a hook failure. Only malformed input and a
// compile command that cannot be spawned at all surface as errors.
func (h *Hook) HandleEvent(ctx context.Context, input io.Reader) error {
	ev, err := ParseEvent(input)
	if err != nil {
		return err
	}

	if ev.Type != EventAgentTurnComplete {
		return nil
	}

	result, err := h.Runner.Run(ctx, h.Cmd, h.Args...)
	if err != nil {
		return fmt.Errorf("running %s: %w", h.Cmd, err)
	}

	if result.ExitCode != 0 && strings.TrimSpace(result.Stderr) != "" {
		fmt.Fprintln(h.Stderr, result.Stderr)
	}

	return nil
}
