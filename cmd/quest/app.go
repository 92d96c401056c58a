package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"io"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/solution-quest/internal/config"
	"github.com/KirkDiggler/solution-quest/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/solution-quest/internal/errors"
	questorch "github.com/KirkDiggler/solution-quest/internal/orchestrators/quest"
	"github.com/KirkDiggler/solution-quest/internal/pkg/idgen"
	"github.com/KirkDiggler/solution-quest/internal/redis"
	"github.com/KirkDiggler/solution-quest/internal/repositories/content"
	"github.com/KirkDiggler/solution-quest/internal/repositories/session"
)

var (
	envFile    string
	contentDir string
	contentDB  string
	redisAddr  string
	logLevel   string
	seed       uint64
)

// loadConfig reads the environment and applies the flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("content-dir") {
		cfg.ContentDir = contentDir
		cfg.ContentDB = ""
	}
	if flags.Changed("content-db") {
		cfg.ContentDB = contentDB
		cfg.ContentDir = ""
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config, w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

// app holds the wired quest stack of one process
type app struct {
	orchestrator *questorch.Orchestrator
	bus          events.EventBus
	seed         uint64
	closers      []io.Closer
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
}

// newApp wires content, engine, storage and the orchestrator. With
// randomSeed the roller is seeded even when cfg.Seed is 0, so the run can be
// reported and repeated.
func newApp(ctx context.Context, cfg *config.Config, randomSeed bool) (*app, error) {
	a := &app{bus: events.NewBus()}

	source, err := a.contentSource(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	storeCfg := &content.Config{Source: source}
	if cfg.RedisAddr != "" {
		client, err := redis.Connect(ctx, cfg.RedisAddr, nil)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, client)

		cache, err := content.NewRedisCache(&content.RedisCacheConfig{Client: client, TTL: cfg.CacheTTL})
		if err != nil {
			a.Close()
			return nil, err
		}
		storeCfg.Cache = cache
	}

	store, err := content.New(storeCfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	var roller dice.Roller = dice.DefaultRoller
	a.seed = cfg.Seed
	if a.seed == 0 && randomSeed {
		a.seed = randomUint64()
	}
	if a.seed != 0 {
		roller = rpgtoolkit.NewSeededRoller(a.seed)
	}

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: roller})
	if err != nil {
		a.Close()
		return nil, err
	}

	orch, err := questorch.New(&questorch.Config{
		Engine:      adapter,
		ContentRepo: store,
		SessionRepo: session.NewInMemory(),
		EventBus:    a.bus,
		IDGenerator: idgen.NewUUID("quest"),
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.orchestrator = orch

	slog.Debug("Quest stack ready",
		"content_dir", cfg.ContentDir,
		"content_db", cfg.ContentDB,
		"redis", cfg.RedisAddr != "",
		"seed", a.seed,
	)

	return a, nil
}

func (a *app) contentSource(ctx context.Context, cfg *config.Config) (content.Source, error) {
	if cfg.ContentDB != "" {
		db, err := content.OpenSQLite(ctx, &content.SQLiteConfig{Path: cfg.ContentDB})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db)
		return db, nil
	}

	fsys := content.DefaultFS()
	if cfg.ContentDir != "" {
		fsys = os.DirFS(cfg.ContentDir)
	}

	csv, err := content.NewCSVSource(&content.CSVConfig{FS: fsys})
	if err != nil {
		return nil, err
	}
	return csv, nil
}

func randomUint64() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 1
	}
	return binary.LittleEndian.Uint64(b[:]) | 1
}
