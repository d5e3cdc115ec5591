package cmd

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "empty defaults to 2m", input: "", expected: 2 * time.Minute},
		{name: "duration minutes", input: "5m", expected: 5 * time.Minute},
		{name: "duration seconds", input: "30s", expected: 30 * time.Second},
		{name: "duration hours", input: "1h", expected: time.Hour},
		{name: "bare integer is seconds", input: "120", expected: 120 * time.Second},
		{name: "garbage", input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimeout(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Commands with positional arguments reject bad invocations before any
// request is built or signed.
func TestCommandArgValidation(t *testing.T) {
	tests := []struct {
		name    string
		cmdName string
		args    []string
		wantErr bool
	}{
		{name: "execute-script missing query", cmdName: "execute-script", args: []string{"title"}, wantErr: true},
		{name: "execute-script ok", cmdName: "execute-script", args: []string{"title", "tag:web"}},
		{name: "get-script missing title", cmdName: "get-script", args: []string{}, wantErr: true},
		{name: "get-script extra arg", cmdName: "get-script", args: []string{"a", "b"}, wantErr: true},
		{name: "get-all-hosts rejects positional args", cmdName: "get-all-hosts", args: []string{"x"}, wantErr: true},
		{name: "create-script-attachment missing file", cmdName: "create-script-attachment",
			args: []string{"title"}, wantErr: true},
		{name: "remove-script-attachment ok", cmdName: "remove-script-attachment",
			args: []string{"title", "helper.sh"}},
	}

	byName := make(map[string]*cobra.Command)
	for _, c := range rootCmd.Commands() {
		byName[c.Name()] = c
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := byName[tt.cmdName]
			require.True(t, ok, "command %s not registered", tt.cmdName)
			err := c.Args(c, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
