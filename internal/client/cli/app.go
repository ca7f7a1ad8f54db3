package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/client/config"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/storage"
	"github.com/dmitrijs2005/gophtodo/internal/client/services"
	"github.com/dmitrijs2005/gophtodo/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	logger logging.Logger

	authService   services.AuthService
	todoService   services.TodoService
	backupService services.BackupService

	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewSlogLogger(slog.Default())

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	as := services.NewAuthService(db, logger)
	ts := services.NewTodoService(as, logger)
	bs := services.NewBackupService(as, c.BackupDir, logger)

	return &App{
		config:        c,
		logger:        logger,
		authService:   as,
		todoService:   ts,
		backupService: bs,
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
