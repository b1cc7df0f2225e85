package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/tinyapp/internal/config"
	"github.com/fsdevblog/tinyapp/internal/controllers"
	"github.com/fsdevblog/tinyapp/internal/db"
	"github.com/fsdevblog/tinyapp/internal/services"
)

type App struct {
	config     config.Config
	dbServices *services.Services
	Logger     *logrus.Logger
}

func New(config config.Config) (*App, error) {
	logger := config.Logger
	if logger == nil {
		logger = logrus.New()
	}

	if config.SessionSecret == "" {
		// Без ключа сессии не переживут рестарт. Для in-memory хранилища
		// это и так верно, но предупредить стоит.
		config.SessionSecret = uuid.NewString()
		logger.Warn("SESSION_SECRET is not set, using a random one-off key")
	}

	dbServices, servicesErr := initServices(config, logger)
	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	return &App{
		config:     config,
		dbServices: dbServices,
		Logger:     logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	server := controllers.SetupRouter(controllers.RouterParams{
		URLService:  a.dbServices.URLService,
		UserService: a.dbServices.UserService,
		AppConf:     a.config,
		Logger:      a.Logger,
	})

	go func() {
		if err := server.Run(a.config.ServerAddress); err != nil {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.WithError(serverErr).Error("router error")
	}

	return serverErr
}

// initServices создает подключение к базе данных и возвращает сервисный слой приложения.
func initServices(appConf config.Config, logger *logrus.Logger) (*services.Services, error) {
	dbConn, connErr := db.NewConnectionFactory(db.FactoryConfig{
		StorageType:  whatIsDBStorageType(&appConf),
		SQLiteDBPath: &appConf.SQLiteDBPath,
	})
	if connErr != nil {
		return nil, connErr //nolint:wrapcheck
	}

	dbServices, dbServErr := services.Factory(dbConn, whatIsServiceType(&appConf), logger)
	if dbServErr != nil {
		return nil, dbServErr //nolint:wrapcheck
	}
	return dbServices, nil
}

func whatIsDBStorageType(appConf *config.Config) db.StorageType {
	if appConf.DBType == config.DBTypeSQLite {
		return db.StorageTypeSQLite
	}
	return db.StorageTypeInMemory
}

func whatIsServiceType(appConf *config.Config) services.ServiceType {
	if appConf.DBType == config.DBTypeSQLite {
		return services.ServiceTypeSQLite
	}
	return services.ServiceTypeInMemory
}
