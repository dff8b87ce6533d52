package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"skijobs-engine/internal/cache"
	"skijobs-engine/internal/config"
	"skijobs-engine/internal/httpapi"
	"skijobs-engine/internal/refresh"
	"skijobs-engine/internal/scheduler"
	"skijobs-engine/internal/scrape"
	"skijobs-engine/internal/secrets"
	"skijobs-engine/internal/store"
)

func main() {
	setToken := flag.String("set-refresh-token", "", "store the refresh bearer token in the OS keychain and exit")
	deleteToken := flag.Bool("delete-refresh-token", false, "remove the refresh bearer token from the OS keychain and exit")
	flag.Parse()

	if *setToken != "" {
		if err := secrets.SetRefreshToken(*setToken); err != nil {
			log.Fatalf("store refresh token: %v", err)
		}
		log.Println("refresh token stored")
		return
	}
	if *deleteToken {
		if err := secrets.DeleteRefreshToken(); err != nil {
			log.Fatalf("delete refresh token: %v", err)
		}
		log.Println("refresh token deleted")
		return
	}

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, userCfgPath := mustLoadConfig()

	// One engine per data dir. A second instance would race the sqlite file
	// and double-scrape the career sites.
	lock := flock.New(filepath.Join(cfg.App.DataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("data dir lock: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance already holds %s", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	db, err := store.Open(filepath.Join(cfg.App.DataDir, "skijobs.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	jobCache := cache.New(time.Duration(cfg.Cache.TTLHours) * time.Hour)
	runner := scrape.NewRunner(cfg)
	svc := refresh.New(runner, jobCache, db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Warm the cache and DB on startup, then refresh on the daily ticker.
	go func() {
		if _, err := svc.Run(ctx); err != nil {
			log.Printf("[refresh] startup run: %v", err)
		}
		scheduler.Every(ctx, time.Duration(cfg.Refresh.IntervalHours)*time.Hour, "refresh", func(ctx context.Context) error {
			_, err := svc.Run(ctx)
			return err
		})
	}()

	mux := httpapi.NewMux(httpapi.Deps{
		DB:           db.Pool,
		Cache:        jobCache,
		Runner:       runner,
		Refresh:      svc,
		RefreshToken: secrets.GetRefreshToken,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
		httpapi.Cors,
	)

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (config=%s)", addr, userCfgPath)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func mustLoadConfig() (config.Config, string) {
	dataDir := os.Getenv("SKIJOBS_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	config.OverlayEnv(&cfg)
	cfg.App.DataDir = dataDir

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config invalid: %v", err)
	}
	return cfg, userCfgPath
}
