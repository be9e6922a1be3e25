package script

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// script is one loaded Lua file: a dedicated VM and the mutex that
// serializes spawning, resuming, and detaching coroutines against it
// (§5 — a per-script mutex, never held across a whole interaction).
type script struct {
	name string
	mu   sync.Mutex
	L    *lua.LState
}

// OpenLibs is called once per loaded VM (including the default script) to
// register the interaction bridge's native callables before the file's
// top-level code runs. Supplied by the caller so this package stays
// ignorant of the bridge's concrete Client/Reactor/Job types.
type OpenLibs func(L *lua.LState)

// Manager owns every script loaded from one directory plus the shared
// entry-point registry callers address by index.
type Manager struct {
	def         *script
	scripts     map[string]*script
	entryPoints []EntryPoint
	log         *zap.Logger
}

// NewManager scans dir for regular files, loading each as an independent
// Lua VM. The file named def (if present) becomes the fallback used for
// any name Alloc can't find. Load failures are logged and skipped — a
// broken script never prevents the manager from starting (§7).
func NewManager(dir string, def string, entryPoints []EntryPoint, openLibs OpenLibs, log *zap.Logger) (*Manager, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("script: read dir %s: %w", dir, err)
	}

	m := &Manager{
		scripts:     make(map[string]*script),
		entryPoints: entryPoints,
		log:         log,
	}

	var mu sync.Mutex
	g, _ := errgroup.WithContext(context.Background())
	for _, ent := range entries {
		ent := ent
		if ent.IsDir() || len(ent.Name()) == 0 || ent.Name()[0] == '.' {
			continue
		}
		g.Go(func() error {
			path := filepath.Join(dir, ent.Name())
			sc, err := loadScript(path, ent.Name(), openLibs)
			if err != nil {
				log.Warn("script load failed, continuing without it", zap.String("file", ent.Name()), zap.Error(err))
				return nil // log-and-continue: never fails the group
			}
			mu.Lock()
			defer mu.Unlock()
			if ent.Name() == def {
				m.def = sc
			} else {
				m.scripts[ent.Name()] = sc
			}
			return nil
		})
	}
	_ = g.Wait() // errors are already logged inside each goroutine

	if m.def == nil {
		log.Warn("script manager has no default script", zap.String("dir", dir), zap.String("expected", def))
	}
	return m, nil
}

func loadScript(path, name string, openLibs OpenLibs) (*script, error) {
	L := lua.NewState()
	if openLibs != nil {
		openLibs(L)
	}
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, err
	}
	return &script{name: name, L: L}, nil
}

// Close tears down every loaded VM.
func (m *Manager) Close() {
	for _, sc := range m.scripts {
		sc.L.Close()
	}
	if m.def != nil {
		m.def.L.Close()
	}
}

// Alloc creates a new script instance bound to the file named name (or
// the default script if none matches), ready to Run the entry point at
// index entry.
func (m *Manager) Alloc(name string, entry int) (*Instance, error) {
	if entry < 0 || entry >= len(m.entryPoints) {
		return nil, fmt.Errorf("script: entry point index %d out of range", entry)
	}
	sc, ok := m.scripts[name]
	if !ok {
		sc = m.def
	}
	if sc == nil {
		return nil, fmt.Errorf("script: no script named %q and no default script loaded", name)
	}

	sc.mu.Lock()
	co, _ := sc.L.NewThread()
	sc.mu.Unlock()

	return &Instance{
		co:    co,
		owner: sc,
		entry: &m.entryPoints[entry],
		log:   m.log,
	}, nil
}
