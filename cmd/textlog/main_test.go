package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := map[string]struct {
		args      []string
		stdin     string
		expStdout string
		expStderr string
		expErr    bool
	}{
		"Message argument should be logged as info": {
			args:      []string{"hello", "world"},
			expStdout: "hello world\n",
		},
		"Stdin lines should be logged one by one": {
			stdin:     "one\ntwo\n",
			expStdout: "one\ntwo\n",
		},
		"Error kind should go to stderr": {
			args:      []string{"--kind=error", "disk full"},
			expStderr: "disk full\n",
		},
		"Error kind with secondary stream should write both": {
			args:      []string{"--kind=error", "--secondary-error-output=stdout", "disk full"},
			expStdout: "disk full\n",
			expStderr: "disk full\n",
		},
		"Debug kind with matching identity should carry a prefix": {
			args:      []string{"--kind=debug", "--filter=7", "--identity=7", "--debug-level=2", "ready"},
			expStdout: "Info     7     ready\n",
		},
		"Debug kind with other identity should be dropped": {
			args: []string{"--kind=debug", "--filter=7", "--identity=8", "ready"},
		},
		"Stats should be printed to stderr": {
			args:      []string{"--stats", "x"},
			expStdout: "x\n",
			expStderr: "delivered: backend=0 syslog=0 stream=1\nfallback=0 failed=0 filtered=0\n",
		},
		"Unknown kind should fail": {
			args:   []string{"--kind=trace", "x"},
			expErr: true,
		},
		"Unknown backend should fail": {
			args:   []string{"--backend=kafka", "x"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("TEXTLOG_FILTER", "")
			var stdout, stderr bytes.Buffer
			args := append([]string{"textlog"}, test.args...)

			err := Run(context.Background(), args, strings.NewReader(test.stdin), &stdout, &stderr)
			if test.expErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expStdout, stdout.String())
			assert.Equal(t, test.expStderr, stderr.String())
		})
	}
}

func TestRunConfigFile(t *testing.T) {
	t.Setenv("TEXTLOG_FILTER", "")
	dir := t.TempDir()
	out := filepath.Join(dir, "out.log")
	cfgPath := filepath.Join(dir, "textlog.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: "+out+"\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), []string{"textlog", "--config", cfgPath, "to file"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "to file\n", string(got))
	assert.Empty(t, stdout.String())
}

func TestRunErrorOutputStdout(t *testing.T) {
	t.Setenv("TEXTLOG_FILTER", "")
	out := filepath.Join(t.TempDir(), "out.log")

	var stdout, stderr bytes.Buffer
	args := []string{"textlog", "--output", out, "--error-output", "stdout", "--kind=error", "disk full"}
	err := Run(context.Background(), args, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "disk full\n", stdout.String())
	assert.Empty(t, stderr.String())
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, string(got))
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := Run(ctx, []string{"textlog"}, strings.NewReader("line\n"), &stdout, &stderr)
	assert.ErrorIs(t, err, context.Canceled)
}
