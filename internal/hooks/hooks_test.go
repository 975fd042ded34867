package hooks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Nil(t, cfg)

	yml := `version: 1
hooks:
  post_submit:
    - command: "echo {{reference}}"
      timeout: 5
      pipe_output: true
    - command: "true"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yml), 0644))
	cfg, err = LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Version)
	require.Len(t, cfg.Hooks.PostSubmit, 2)
	require.True(t, cfg.Hooks.PostSubmit[0].PipeOutput)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("hooks: [oops"), 0644))
	_, err = LoadConfig(dir)
	require.Error(t, err)
}

func TestExecute_ExpandsVariables(t *testing.T) {
	vars := Variables{Order: "cq3v1s", Reference: "paleo-lee-3v1s", Plan: "paleo"}
	out, err := Execute(context.Background(), &HookConfig{Command: "echo {{plan}}:{{reference}}:$MACROPLATE_ORDER_ID"}, t.TempDir(), vars)
	require.NoError(t, err)
	require.Equal(t, "paleo:paleo-lee-3v1s:cq3v1s\n", out)
}

func TestExecute_IncludesStderr(t *testing.T) {
	out, err := Execute(context.Background(), &HookConfig{Command: "echo sent; echo 'slow mailer' >&2"}, t.TempDir(), Variables{})
	require.NoError(t, err)
	require.Equal(t, "sent\n\n[stderr]\nslow mailer\n", out)
}

func TestExecute_FailureIsReported(t *testing.T) {
	out, err := Execute(context.Background(), &HookConfig{Command: "echo partial; exit 3"}, t.TempDir(), Variables{})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "[Hook command failed:"), out)
	require.Contains(t, out, "partial")
}

func TestExecute_Timeout(t *testing.T) {
	out, err := Execute(context.Background(), &HookConfig{Command: "sleep 5", Timeout: 1}, t.TempDir(), Variables{})
	require.NoError(t, err)
	require.Contains(t, out, "[Hook timed out after 1s]")
}

func TestExecuteAllPiped(t *testing.T) {
	ctx := context.Background()
	workDir := t.TempDir()
	vars := Variables{Plan: "paleo"}

	tests := []struct {
		name     string
		hooks    []*HookConfig
		expected string
	}{
		{"no hooks", nil, ""},
		{"piped", []*HookConfig{{Command: "echo piped", PipeOutput: true}}, "piped\n"},
		{"not piped", []*HookConfig{{Command: "echo hidden"}}, ""},
		{"mixed", []*HookConfig{
			{Command: "echo first", PipeOutput: true},
			{Command: "echo hidden"},
			{Command: "echo {{plan}}", PipeOutput: true},
		}, "first\n\npaleo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ExecuteAllPiped(ctx, tt.hooks, workDir, vars)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestRunPostSubmit_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &Config{Hooks: HooksConfig{PostSubmit: []*HookConfig{{Command: "echo test", PipeOutput: true}}}}
	_, err := RunPostSubmit(ctx, cfg, t.TempDir(), Variables{})
	require.Error(t, err)

	out, err := RunPostSubmit(context.Background(), nil, t.TempDir(), Variables{})
	require.NoError(t, err)
	require.Empty(t, out)
}
