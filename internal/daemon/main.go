// Package daemon assembles the running service: it opens the database,
// migrates the schema, seeds initial data and starts the web service.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pentagon-api/pentagon-api/internal/config"
	"github.com/pentagon-api/pentagon-api/internal/db/dsn"
	"github.com/pentagon-api/pentagon-api/internal/rbac"
	"github.com/pentagon-api/pentagon-api/internal/security"
	"github.com/pentagon-api/pentagon-api/internal/store"
	"github.com/pentagon-api/pentagon-api/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until it stops.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	st, err := store.New(db)
	if err != nil {
		return nil, err
	}

	if err = st.Migrate(); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	hasher := security.NewArgon2Hasher()
	svc := rbac.NewService(st, hasher)

	if cfg.DB.SkipSeed {
		log.Info().Msg("skipping seed of initial data")
	} else if err = seed(st, hasher); err != nil {
		return nil, errors.Wrap(err, "failed to seed database")
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, svc),
	}, nil
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.GormEngineMySQL:
		dialector = gormmysql.Open(dsn.Create(cfg))
	case config.GormEnginePostgres:
		dialector = gormpostgres.Open(dsn.Create(cfg))
	case config.GormEngineSQLite:
		dialector = sqlite.Open(dsn.Create(cfg))
	default:
		return nil, errors.Errorf("unknown gorm engine: %q", cfg.DB.GormEngine)
	}

	return gorm.Open(dialector, &gorm.Config{})
}
