// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/infra/config"
	"github.com/sanirudh17/mission-control/internal/infra/crypto"
	"github.com/sanirudh17/mission-control/internal/infra/gitstore"
	"github.com/sanirudh17/mission-control/internal/infra/idgen"
	"github.com/sanirudh17/mission-control/internal/infra/jsonstore"
	"github.com/sanirudh17/mission-control/internal/infra/logging"
	"github.com/sanirudh17/mission-control/internal/infra/sqlitestore"
	"github.com/sanirudh17/mission-control/internal/responder"
	"github.com/sanirudh17/mission-control/internal/store"
	"github.com/sanirudh17/mission-control/internal/usecase"
)

// DataDirEnv overrides the default data directory.
const DataDirEnv = "MC_DATA_DIR"

// GitRepoDirName is the bare repository used by the git backend.
const GitRepoDirName = "snapshots.git"

// Config holds the application paths.
type Config struct {
	DataDir     string // Directory holding the snapshot, logs and data-dir config
	GlobalDir   string // Directory holding the global config
	StorePath   string // Path of the snapshot (file, database or repository)
	Backend     string // Resolved storage backend
	Namespace   string // Storage key of the snapshot record
	SQLitePath  string // Path to the sqlite database
	GitRepoPath string // Path to the git repository
}

// newConfig derives every path from the data directory and app config.
func newConfig(dataDir, globalDir string, appConfig *domain.Config) Config {
	namespace := appConfig.Storage.Namespace
	if namespace == "" {
		namespace = domain.DefaultNamespace
	}
	backend := strings.ToLower(appConfig.Storage.Backend)
	if backend == "" {
		backend = domain.DefaultBackend
	}

	cfg := Config{
		DataDir:     dataDir,
		GlobalDir:   globalDir,
		Backend:     backend,
		Namespace:   namespace,
		SQLitePath:  filepath.Join(dataDir, domain.SQLiteFileName),
		GitRepoPath: filepath.Join(dataDir, GitRepoDirName),
	}
	switch backend {
	case domain.BackendSQLite:
		cfg.StorePath = cfg.SQLitePath
	case domain.BackendGit:
		cfg.StorePath = cfg.GitRepoPath
	default:
		cfg.StorePath = filepath.Join(dataDir, namespace+".json")
	}
	return cfg
}

// ResolveDataDir picks the data directory: flag, then $MC_DATA_DIR, then
// $XDG_DATA_HOME/mission-control, then ~/.local/share/mission-control.
func ResolveDataDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return filepath.Abs(dir)
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, domain.AppDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve data directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", domain.AppDirName), nil
}

// globalConfigDir returns $XDG_CONFIG_HOME/mission-control or ~/.config/mission-control.
func globalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Repository    domain.SnapshotRepository
	History       domain.SnapshotHistory // nil unless the backend keeps history
	Clock         domain.Clock
	IDs           domain.IDGenerator
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Store     *store.Store
	Responder *responder.Responder
	AppConfig *domain.Config

	closers []func() error

	// Configuration
	Config Config
}

// New creates a new Container rooted at dataDir.
// The data directory is created if it does not exist.
func New(dataDir string) (*Container, error) {
	return NewWithGlobalDir(dataDir, globalConfigDir())
}

// NewWithGlobalDir creates a new Container with an explicit global config directory.
func NewWithGlobalDir(dataDir, globalDir string) (*Container, error) {
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	// Load app config to determine the storage backend
	configLoader := config.NewLoaderWithGlobalDir(dataDir, globalDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := newConfig(dataDir, globalDir, appConfig)
	if err := validateNamespace(cfg.Namespace); err != nil {
		return nil, err
	}
	logger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))

	c := &Container{
		Clock:         domain.RealClock{},
		IDs:           idgen.UUID{},
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithGlobalDir(dataDir, globalDir),
		AppConfig:     appConfig,
		Config:        cfg,
	}
	c.closers = append(c.closers, logger.Close)

	if err := c.openRepository(); err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Store = store.New(c.Repository, c.IDs, c.Clock, c.Logger)
	if appConfig.Responder.Enabled {
		c.Responder = responder.New(c.Store, appConfig.Responder.DelayDuration(), appConfig.Responder.Prefix, c.Logger)
	}

	logger.Debug("app", fmt.Sprintf("opened %s store at %s", cfg.Backend, cfg.StorePath))
	return c, nil
}

// validateNamespace rejects namespaces that would escape the data directory
// or produce a ref the git CLI refuses.
func validateNamespace(namespace string) error {
	if strings.ContainsAny(namespace, `/\`) || strings.Contains(namespace, "..") {
		return fmt.Errorf("%w: %q", domain.ErrInvalidNamespace, namespace)
	}
	if err := plumbing.ReferenceName("refs/" + namespace + "/snapshot").Validate(); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidNamespace, namespace)
	}
	return nil
}

// openRepository binds the configured persistence backend.
func (c *Container) openRepository() error {
	var encryptor *crypto.Encryptor
	if key := c.AppConfig.Storage.EncryptionKey; key != "" {
		var err error
		if encryptor, err = crypto.NewEncryptor(key, c.Config.Namespace); err != nil {
			return fmt.Errorf("storage encryption: %w", err)
		}
	}

	switch c.Config.Backend {
	case domain.BackendJSON:
		if encryptor != nil {
			c.Repository = jsonstore.NewWithEncryption(c.Config.DataDir, c.Config.Namespace, encryptor)
		} else {
			c.Repository = jsonstore.New(c.Config.DataDir, c.Config.Namespace)
		}
	case domain.BackendSQLite:
		if encryptor != nil {
			return errors.New("storage encryption is not supported by the sqlite backend")
		}
		db, err := sqlitestore.Open(c.Config.SQLitePath, c.Config.Namespace)
		if err != nil {
			return err
		}
		c.Repository = db
		c.closers = append(c.closers, db.Close)
	case domain.BackendGit:
		repo, err := gitstore.OpenWithEncryption(c.Config.GitRepoPath, c.Config.Namespace, encryptor)
		if err != nil {
			return err
		}
		c.Repository = repo
		c.History = repo
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidBackend, c.Config.Backend)
	}
	return nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, repo domain.SnapshotRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger, appConfig *domain.Config) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	c := &Container{
		Repository: repo,
		Clock:      clock,
		IDs:        ids,
		Logger:     logger,
		AppConfig:  appConfig,
		Config:     cfg,
	}
	if h, ok := repo.(domain.SnapshotHistory); ok {
		c.History = h
	}
	c.Store = store.New(repo, ids, clock, logger)
	if appConfig.Responder.Enabled {
		c.Responder = responder.New(c.Store, appConfig.Responder.DelayDuration(), appConfig.Responder.Prefix, logger)
	}
	return c
}

// Close cancels pending replies and releases storage and log handles.
func (c *Container) Close() error {
	if c.Responder != nil {
		c.Responder.Close()
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// responderPort returns the responder as a port, or nil when replies are disabled.
func (c *Container) responderPort() domain.Responder {
	if c.Responder == nil {
		return nil
	}
	return c.Responder
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store, c.Logger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Store)
}

// MoveTaskUseCase returns a new MoveTask use case.
func (c *Container) MoveTaskUseCase() *usecase.MoveTask {
	return usecase.NewMoveTask(c.Store)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Store)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store)
}

// ShowBoardUseCase returns a new ShowBoard use case filtered by the configured source.
func (c *Container) ShowBoardUseCase() *usecase.ShowBoard {
	return usecase.NewShowBoard(c.Store, c.AppConfig.Board.Source)
}

// SeedBoardUseCase returns a new SeedBoard use case.
func (c *Container) SeedBoardUseCase() *usecase.SeedBoard {
	return usecase.NewSeedBoard(c.Store, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Store, c.Logger)
}

// AddActivityUseCase returns a new AddActivity use case.
func (c *Container) AddActivityUseCase() *usecase.AddActivity {
	return usecase.NewAddActivity(c.Store)
}

// ListActivitiesUseCase returns a new ListActivities use case.
func (c *Container) ListActivitiesUseCase() *usecase.ListActivities {
	return usecase.NewListActivities(c.Store)
}

// AddDeliverableUseCase returns a new AddDeliverable use case.
func (c *Container) AddDeliverableUseCase() *usecase.AddDeliverable {
	return usecase.NewAddDeliverable(c.Store, c.Logger)
}

// ListDeliverablesUseCase returns a new ListDeliverables use case.
func (c *Container) ListDeliverablesUseCase() *usecase.ListDeliverables {
	return usecase.NewListDeliverables(c.Store)
}

// SendMessageUseCase returns a new SendMessage use case.
func (c *Container) SendMessageUseCase() *usecase.SendMessage {
	return usecase.NewSendMessage(c.Store, c.responderPort())
}

// ListMessagesUseCase returns a new ListMessages use case.
func (c *Container) ListMessagesUseCase() *usecase.ListMessages {
	return usecase.NewListMessages(c.Store)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowHistoryUseCase returns a new ShowHistory use case.
func (c *Container) ShowHistoryUseCase() *usecase.ShowHistory {
	return usecase.NewShowHistory(c.History)
}
