package hooks

// Config is the top-level configuration loaded from .macroplate.hooks.yml.
type Config struct {
	Version int         `yaml:"version"`
	Hooks   HooksConfig `yaml:"hooks"`
}

// HooksConfig contains all hook configurations.
type HooksConfig struct {
	// PostSubmit runs after an order is accepted by the submitter.
	PostSubmit []*HookConfig `yaml:"post_submit"`
}

// HookConfig defines a single hook's configuration.
type HookConfig struct {
	Command    string `yaml:"command"`
	Timeout    int    `yaml:"timeout"`     // seconds, default 30
	PipeOutput bool   `yaml:"pipe_output"` // show output on the confirmation screen
}

// DefaultTimeout is the default timeout for hook execution in seconds.
const DefaultTimeout = 30
