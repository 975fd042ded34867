package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultUIState(t *testing.T) {
	s := DefaultUIState()
	require.True(t, s.Hints.Visible)
	require.False(t, s.Review.RawJSON)
}

func TestLoad_Missing(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope"))
	require.Equal(t, DefaultUIState(), s)
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".macroplate")

	require.NoError(t, Save(dir, &UIState{Hints: HintState{Visible: false}, Review: ReviewState{RawJSON: true}}))

	s := Load(dir)
	require.False(t, s.Hints.Visible)
	require.True(t, s.Review.RawJSON)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"review":{"raw_json":true}}`), 0644))

	s := Load(dir)
	require.True(t, s.Hints.Visible)
	require.True(t, s.Review.RawJSON)
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0644))
	require.Equal(t, DefaultUIState(), Load(dir))
}
