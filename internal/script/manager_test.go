package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestNewManagerLoadsEveryRegularFileAndSkipsDotfiles(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "greet.lua", "function greet() return 1 end")
	writeScript(t, dir, "default.lua", "function greet() return 2 end")
	writeScript(t, dir, ".hidden", "not lua at all")

	m, err := NewManager(dir, "default.lua", []EntryPoint{
		{Symbol: "greet", Result: ValueInteger},
	}, nil, zap.NewNop())
	require.NoError(t, err)
	defer m.Close()

	require.NotNil(t, m.def)
	_, ok := m.scripts["greet.lua"]
	require.True(t, ok)
	_, ok = m.scripts[".hidden"]
	require.False(t, ok)
}

func TestNewManagerSkipsBrokenScriptWithoutFailingStartup(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "broken.lua", "this is not valid lua (((")
	writeScript(t, dir, "default.lua", "function greet() return 1 end")

	m, err := NewManager(dir, "default.lua", []EntryPoint{
		{Symbol: "greet", Result: ValueInteger},
	}, nil, zap.NewNop())
	require.NoError(t, err)
	defer m.Close()

	_, ok := m.scripts["broken.lua"]
	require.False(t, ok)
	require.NotNil(t, m.def)
}

func TestAllocRejectsOutOfRangeEntryIndex(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "default.lua", "function greet() return 1 end")

	m, err := NewManager(dir, "default.lua", []EntryPoint{
		{Symbol: "greet", Result: ValueInteger},
	}, nil, zap.NewNop())
	require.NoError(t, err)
	defer m.Close()

	_, err = m.Alloc("anything", 5)
	require.Error(t, err)
}

func TestAllocFallsBackToDefaultForUnknownName(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "default.lua", "function greet() return 1 end")

	m, err := NewManager(dir, "default.lua", []EntryPoint{
		{Symbol: "greet", Result: ValueInteger},
	}, nil, zap.NewNop())
	require.NoError(t, err)
	defer m.Close()

	inst, err := m.Alloc("nonexistent.lua", 0)
	require.NoError(t, err)
	require.Same(t, m.def, inst.owner)
}
