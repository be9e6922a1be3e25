package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mapleforge/channeld/internal/bridge"
	"github.com/mapleforge/channeld/internal/config"
	"github.com/mapleforge/channeld/internal/net"
	dispatch "github.com/mapleforge/channeld/internal/net/packet"
	"github.com/mapleforge/channeld/internal/persist"
	"github.com/mapleforge/channeld/internal/script"
	"github.com/mapleforge/channeld/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// entryPoints mirrors the (symbol, arg-types, result-type) tuples a real
// deployment would load from its quest/portal/reactor/job-table data; kept
// here as the one fixed vector every script manager shares (§4.4 — entry
// points are addressed by index, not by name).
var entryPoints = []script.EntryPoint{
	{Symbol: "onTalk", Args: []script.Arg{{Type: script.ValueUserdata, Tag: "client"}}, Result: script.ValueInteger},
	{Symbol: "onEnter", Args: []script.Arg{{Type: script.ValueUserdata, Tag: "client"}}, Result: script.ValueBoolean},
	{Symbol: "onTrigger", Args: []script.Arg{{Type: script.ValueUserdata, Tag: "reactor"}, {Type: script.ValueInteger}}, Result: script.ValueBoolean},
	{Symbol: "onAdvance", Args: []script.Arg{{Type: script.ValueUserdata, Tag: "client"}}, Result: script.ValueBoolean},
}

func run() error {
	cfgPath := "config/server.toml"
	if p := os.Getenv("CHANNELD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	log.Info("starting channel server", zap.String("name", cfg.Server.Name), zap.Int("channel_id", cfg.Server.ChannelID))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := persist.NewDB(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()
	log.Info("connected to database")

	if err := persist.RunMigrations(ctx, db.Pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	log.Info("migrations applied")

	accountRepo := persist.NewAccountRepo(db)
	snapshotRepo := persist.NewSnapshotRepo(db)
	effectLog := persist.NewEffectLogRepo(db)

	maxCharID, err := snapshotRepo.MaxCharacterID(ctx)
	if err != nil {
		return fmt.Errorf("query max character id: %w", err)
	}
	log.Info("character id allocator seeded", zap.Int32("max_character_id", maxCharID))

	reg := bridge.NewRegistry()
	openLibs := func(L *lua.LState) {
		bridge.OpenClient(L, reg)
		bridge.OpenReactor(L, reg)
		bridge.OpenJob(L)
	}

	managers := make(map[string]*script.Manager, len(cfg.Scripts))
	for name, sc := range cfg.Scripts {
		m, err := script.NewManager(sc.Directory, sc.DefaultScript, entryPoints, openLibs, log)
		if err != nil {
			return fmt.Errorf("script manager %q: %w", name, err)
		}
		managers[name] = m
		log.Info("script manager ready", zap.String("name", name), zap.String("dir", sc.Directory))
	}
	defer func() {
		for _, m := range managers {
			m.Close()
		}
	}()

	world := session.NewWorld(cfg, log, accountRepo, snapshotRepo, effectLog, reg, managers, maxCharID)
	defer world.Close()

	dreg := dispatch.NewRegistry(log)
	session.RegisterHandlers(dreg)

	srv, err := net.NewServer(cfg.Network.BindAddress, 64, 64, log)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Network.BindAddress, err)
	}
	defer srv.Shutdown()
	go srv.AcceptLoop()
	log.Info("channel server ready", zap.String("bind_address", cfg.Network.BindAddress))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case sess := <-srv.NewSessions():
			go serveSession(world, dreg, sess)
		case sig := <-shutdownCh:
			log.Info("shutting down", zap.String("signal", sig.String()))
			return nil
		}
	}
}

// serveSession owns one connection's dispatch loop: every inbound frame is
// routed through dreg to a session.Worker until the session closes, at
// which point any in-world character is persisted.
func serveSession(world *session.World, dreg *dispatch.Registry, sess *net.Session) {
	wk := session.NewWorker(world, sess)
	defer wk.Close()

	for {
		select {
		case payload := <-sess.InQueue:
			if err := dreg.Dispatch(wk, sess.State(), payload); err != nil {
				wk.Log.Debug("dispatch error", zap.Error(err))
			}
		case <-sess.Done():
			if wk.Player != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				world.PersistOnDisconnect(ctx, wk)
				cancel()
			}
			return
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
