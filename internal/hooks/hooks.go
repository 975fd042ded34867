// Package hooks runs user-configured shell commands around order submission.
package hooks

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/macroplate/macroplate/internal/logger"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the hooks configuration file.
const ConfigFileName = ".macroplate.hooks.yml"

// LoadConfig loads the hooks configuration from the working directory.
// Returns nil if the config file doesn't exist (hooks are optional).
func LoadConfig(workDir string) (*Config, error) {
	configPath := filepath.Join(workDir, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No hooks config found at %s", configPath)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hooks config: %w", err)
	}

	logger.Debug("Loaded hooks config from %s (version: %d, post_submit: %d)", configPath, cfg.Version, len(cfg.Hooks.PostSubmit))
	return &cfg, nil
}

// Variables holds the values expanded in hook commands.
type Variables struct {
	Order     string // {{order}}: order id
	Reference string // {{reference}}: order reference
	Plan      string // {{plan}}: selected plan id
}

// Execute runs a hook command and returns its output.
// Failures and timeouts are reported in the output rather than as an error;
// only context cancellation is returned as an error.
func Execute(ctx context.Context, hook *HookConfig, workDir string, vars Variables) (string, error) {
	if hook == nil || hook.Command == "" {
		return "", nil
	}

	// Expand template variables in command
	command := expandVariables(hook.Command, vars)
	logger.Debug("Executing hook command: %s", command)

	// Determine timeout
	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// Create context with timeout
	execCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	// Execute command via shell, with the order exposed in the environment
	cmd := exec.CommandContext(execCtx, "sh", "-c", command)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(),
		"MACROPLATE_ORDER_ID="+vars.Order,
		"MACROPLATE_ORDER_REFERENCE="+vars.Reference,
		"MACROPLATE_ORDER_PLAN="+vars.Plan,
	)

	// Capture stdout and stderr separately
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Run the command
	err := cmd.Run()

	// Check for context cancellation (propagate this)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	// Handle timeout
	if execCtx.Err() == context.DeadlineExceeded {
		logger.Warn("Hook command timed out after %ds: %s", timeout, command)
		return fmt.Sprintf("[Hook timed out after %ds]\nPartial output:\n%s", timeout, stdout.String()), nil
	}

	// Handle command failure (report it in the output, don't fail the order)
	if err != nil {
		logger.Warn("Hook command failed: %v", err)
		output := stdout.String()
		if stderr.Len() > 0 {
			output += "\n[stderr]\n" + stderr.String()
		}
		return fmt.Sprintf("[Hook command failed: %v]\n%s", err, output), nil
	}

	// Success - return stdout (include stderr if present)
	output := stdout.String()
	if stderr.Len() > 0 {
		logger.Debug("Hook stderr: %s", stderr.String())
		// Include stderr so piped output shows warnings next to the result
		output += "\n[stderr]\n" + stderr.String()
	}

	logger.Debug("Hook executed successfully, output length: %d bytes", len(output))
	return output, nil
}

// ExecuteAllPiped runs hooks in order and joins the output of those with
// pipe_output set.
func ExecuteAllPiped(ctx context.Context, hooks []*HookConfig, workDir string, vars Variables) (string, error) {
	var parts []string
	for _, h := range hooks {
		out, err := Execute(ctx, h, workDir, vars)
		if err != nil {
			return "", err
		}
		if h != nil && h.PipeOutput && out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n"), nil
}

// RunPostSubmit runs the post_submit hooks of cfg. A nil cfg runs nothing.
func RunPostSubmit(ctx context.Context, cfg *Config, workDir string, vars Variables) (string, error) {
	if cfg == nil {
		return "", nil
	}
	return ExecuteAllPiped(ctx, cfg.Hooks.PostSubmit, workDir, vars)
}

func expandVariables(command string, vars Variables) string {
	return strings.NewReplacer(
		"{{order}}", vars.Order,
		"{{reference}}", vars.Reference,
		"{{plan}}", vars.Plan,
	).Replace(command)
}
