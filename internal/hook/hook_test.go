// Package hook_test tests notification event parsing and compile dispatch.
// Related: internal/hook/hook.go

package hook

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		wantType string
		wantErr  bool
	}{
		"turn complete event": {
			input:    `{"type": "agent-turn-complete"}`,
			wantType: "agent-turn-complete",
		},
		"extra fields ignored": {
			input:    `{"type": "agent-turn-complete", "turn-id": "t-123", "input-messages": ["hi"]}`,
			wantType: "agent-turn-complete",
		},
		"other event type": {
			input:    `{"type": "agent-turn-start"}`,
			wantType: "agent-turn-start",
		},
		"missing type field": {
			input:    `{}`,
			wantType: "",
		},
		"malformed input": {
			input:   `not json`,
			wantErr: true,
		},
		"empty input": {
			input:   ``,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ev, err := ParseEvent(strings.NewReader(tt.input))

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "parsing event")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, ev.Type)
		})
	}
}

func TestHandleEvent(t *testing.T) {
	t.Parallel()

	compileArgs := []string{"compile", "--changed", "--json"}

	tests := map[string]struct {
		input      string
		result     Result
		runErr     error
		wantErr    bool
		wantCalls  int
		wantStderr string
	}{
		"turn complete runs compile once": {
			input:     `{"type": "agent-turn-complete"}`,
			result:    Result{ExitCode: 0},
			wantCalls: 1,
		},
		"other event type does not run compile": {
			input:     `{"type": "agent-turn-start"}`,
			wantCalls: 0,
		},
		"missing type does not run compile": {
			input:     `{"turn-id": "t-1"}`,
			wantCalls: 0,
		},
		"violations relayed with trailing newline": {
			input:      `{"type": "agent-turn-complete"}`,
			result:     Result{ExitCode: 1, Stderr: "violation: rule X failed\n"},
			wantCalls:  1,
			wantStderr: "violation: rule X failed\n\n",
		},
		"failure with empty stderr is silent": {
			input:     `{"type": "agent-turn-complete"}`,
			result:    Result{ExitCode: 1, Stderr: ""},
			wantCalls: 1,
		},
		"failure with whitespace-only stderr is silent": {
			input:     `{"type": "agent-turn-complete"}`,
			result:    Result{ExitCode: 1, Stderr: "  \n\t\n"},
			wantCalls: 1,
		},
		"success with stderr is silent": {
			input:     `{"type": "agent-turn-complete"}`,
			result:    Result{ExitCode: 0, Stderr: "warning: slow index\n"},
			wantCalls: 1,
		},
		"malformed event is an error": {
			input:   `not json`,
			wantErr: true,
		},
		"unspawnable compile command is an error": {
			input:     `{"type": "agent-turn-complete"}`,
			runErr:    errors.New(`starting keel: exec: "keel": executable file not found in $PATH`),
			wantErr:   true,
			wantCalls: 1,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			runner := NewMockRunner().WithResult(tt.result).WithError(tt.runErr)
			var stderr bytes.Buffer
			h := New(runner, &stderr, "keel", compileArgs)

			err := h.HandleEvent(context.Background(), strings.NewReader(tt.input))

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantCalls, runner.CallCount())
			if tt.wantCalls > 0 && len(runner.Calls) > 0 {
				assert.Equal(t, "keel", runner.Calls[0].Name)
				assert.Equal(t, compileArgs, runner.Calls[0].Args)
			}
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestHandleEventReadsInputOnce(t *testing.T) {
	t.Parallel()

	// Two concatenated objects are not a single JSON value; exactly one
	// event is read per invocation, so this must fail to parse.
	input := `{"type": "agent-turn-complete"}{"type": "agent-turn-complete"}`

	runner := NewMockRunner()
	h := New(runner, &bytes.Buffer{}, "keel", []string{"compile"})

	err := h.HandleEvent(context.Background(), strings.NewReader(input))

	require.Error(t, err)
	assert.Equal(t, 0, runner.CallCount())
}
