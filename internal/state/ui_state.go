package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/macroplate/macroplate/internal/logger"
)

// FileName is the UI state file inside the data directory.
const FileName = "ui-state.json"

// UIState holds persistent UI preferences that carry across sessions.
type UIState struct {
	Hints  HintState   `json:"hints"`
	Review ReviewState `json:"review"`
}

// HintState holds key hint bar visibility.
type HintState struct {
	Visible bool `json:"visible"`
}

// ReviewState holds review screen preferences.
type ReviewState struct {
	// RawJSON shows the draft as highlighted JSON instead of the summary.
	RawJSON bool `json:"raw_json"`
}

// DefaultUIState returns the default UI state.
func DefaultUIState() *UIState {
	return &UIState{
		Hints: HintState{Visible: true},
	}
}

// Load reads the UI state from <dataDir>/ui-state.json.
// Returns default state if the file doesn't exist or on error.
func Load(dataDir string) *UIState {
	path := filepath.Join(dataDir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read UI state file: %v", err)
		}
		return DefaultUIState()
	}

	state := DefaultUIState()
	if err := json.Unmarshal(data, state); err != nil {
		logger.Warn("Failed to parse UI state JSON: %v", err)
		return DefaultUIState()
	}
	return state
}

// Save writes the UI state, creating the data directory if needed.
func Save(dataDir string, state *UIState) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, FileName)
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling UI state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing UI state file: %w", err)
	}

	logger.Debug("UI state saved to %s", path)
	return nil
}
