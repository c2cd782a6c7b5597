package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sahaara/core/internal/adapters/platform"
	"github.com/sahaara/core/internal/adapters/storage"
	"github.com/sahaara/core/internal/application/services"
	"github.com/sahaara/core/internal/domain/entities"
	"github.com/sahaara/core/internal/infrastructure/config"
	"github.com/sahaara/core/internal/infrastructure/logger"
	"github.com/sahaara/core/internal/infrastructure/metrics"
	"github.com/sahaara/core/internal/infrastructure/validation"
	"github.com/sahaara/core/internal/ports"
)

// app wires the store, services, and platform adapters for one command run.
// One process is one "tab": permission state and metrics live for the run,
// the documents in the store outlive it.
type app struct {
	cfg        *config.Config
	logger     *logger.Logger
	metrics    *metrics.Metrics
	store      ports.KeyValueStore
	notifier   ports.Notifier
	sessions   *services.SessionService
	tasks      *services.TaskService
	acceptance *services.AcceptanceService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	var store ports.KeyValueStore
	switch cfg.Storage.Backend {
	case "sqlite":
		store, err = storage.NewSqliteStore(cfg.Storage.SqlitePath)
	default:
		store, err = storage.NewFileStore(cfg.Storage.Dir, log)
	}
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	m := metrics.New()
	validator := validation.New()
	notifier := platform.NewTerminalNotifier(os.Stdout)
	confirmer := platform.NewTerminalConfirmer(os.Stdin, os.Stdout)
	device := platform.NewDevice(cfg.Location)

	sessionRepo := storage.NewSessionRepository(store, log)
	taskRepo := storage.NewTaskRepository(store, log)

	return &app{
		cfg:      cfg,
		logger:   log,
		metrics:  m,
		store:    store,
		notifier: notifier,
		sessions: services.NewSessionService(sessionRepo, validator, notifier, m, log),
		tasks:    services.NewTaskService(taskRepo, validator, m, log),
		acceptance: services.NewAcceptanceService(
			device, device, notifier, confirmer, cfg.UX.FollowUpDelay, m, log,
		),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warnw("Closing store failed", "error", err)
	}
	_ = a.logger.Close()
}

// requireSession is the mount guard of every session-gated view: absent or
// corrupt session sends the user to login.
func (a *app) requireSession(ctx context.Context) (*entities.Session, error) {
	session, err := a.sessions.Current(ctx)
	if err != nil {
		fmt.Println("No active session. Run `sahaara login` or `sahaara register` first.")
		return nil, err
	}
	return session, nil
}

// awaitPermissionState gives the fire-and-forget mount query a moment to
// resolve so the status line and the accept flow see the device's answer.
// The services never wait on this; only the terminal presentation does.
func (a *app) awaitPermissionState(timeout time.Duration) entities.PermissionState {
	deadline := time.Now().Add(timeout)
	for {
		state := a.acceptance.State()
		if state != entities.PermissionUnknown || time.Now().After(deadline) {
			return state
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// followStore re-renders the view whenever the task list document changes on
// disk, the analog of another tab writing to shared storage. Runs until
// interrupted. Only watchable backends support it.
func (a *app) followStore(ctx context.Context, render func()) error {
	watcher, ok := a.store.(ports.StoreWatcher)
	if !ok {
		return fmt.Errorf("the %s backend does not support watching", a.cfg.Storage.Backend)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	changes, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Watching for new tasks (Ctrl-C to stop)...")
	for {
		select {
		case <-ctx.Done():
			return nil
		case key, ok := <-changes:
			if !ok {
				return nil
			}
			if key != ports.UserTasksKey {
				continue
			}
			fmt.Println("--- task list updated ---")
			render()
		}
	}
}

func permissionStatusLine(state entities.PermissionState) string {
	if state.Granted() {
		return "Location sharing: Ready for task coordination"
	}
	return "Location sharing: Will be requested when accepting tasks"
}

func printTask(task entities.Task) {
	fmt.Printf("%s\n", task.Title)
	fmt.Printf("  %s\n", task.Description)
	fmt.Printf("  %s · %s · %s · posted by %s (%.1f)\n", task.Location, task.Reward, task.TimePosted, task.Poster, task.Rating)
	fmt.Printf("  id: %s\n", task.ID)
}
