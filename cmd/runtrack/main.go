package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/runtrackapp/runtrack/internal/backup"
	"github.com/runtrackapp/runtrack/internal/config"
	"github.com/runtrackapp/runtrack/internal/profile"
	"github.com/runtrackapp/runtrack/internal/realtime"
	"github.com/runtrackapp/runtrack/internal/store"
	"github.com/runtrackapp/runtrack/internal/web"
	"github.com/runtrackapp/runtrack/internal/web/api"
)

func main() {
	configPath := flag.String("config", "runtrack.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	// Ensure data directory exists.
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("failed to create data directory %s: %v", cfg.DataDir, err)
	}

	// Open SQLite store.
	dbPath := filepath.Join(cfg.DataDir, "runtrack.db")
	st, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()
	log.Printf("store opened at %s", dbPath)

	repo := store.NewRepository(st)
	profiles := profile.NewStore(st)
	events := realtime.NewBroker()

	a := &api.API{
		Repo:      repo,
		Profiles:  profiles,
		Events:    events,
		GetConfig: func() *config.Config { return cfg },
	}

	// Periodic JSON snapshots of the run data.
	var sched *backup.Scheduler
	if cfg.Backup.IsEnabled() {
		if err := os.MkdirAll(cfg.Backup.Dir, 0755); err != nil {
			log.Fatalf("failed to create backup directory %s: %v", cfg.Backup.Dir, err)
		}

		mgr := backup.NewManager(cfg.Backup.Dir, cfg.Backup.Keep)
		snapshot := func() (string, error) {
			doc, err := repo.ExportDocument(context.Background())
			if err != nil {
				return "", err
			}
			return mgr.Snapshot(doc)
		}
		a.Snapshot = snapshot

		sched, err = backup.NewScheduler(cfg.Backup.Schedule, func() {
			path, err := snapshot()
			if err != nil {
				log.Printf("ERROR: scheduled backup failed: %v", err)
				return
			}
			log.Printf("backup written to %s", path)
			events.Publish(realtime.Event{Type: realtime.EventBackupCreated})
		})
		if err != nil {
			log.Fatalf("invalid backup schedule %q: %v", cfg.Backup.Schedule, err)
		}
		sched.Start()
		log.Printf("backups enabled, next snapshot at %s", sched.NextRunTime().Format(time.RFC3339))
	}

	srv := web.NewServer(cfg.Listen, a)

	// Graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	log.Printf("runtrack started, listening on %s", cfg.Listen)

	<-sigCh
	log.Println("shutting down...")

	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: http server shutdown error: %v", err)
	}

	log.Println("runtrack stopped")
}
