package testutils

import (
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"app-builder-backend/internal/config"
	"app-builder-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "appbuilder"
	pgPassword = "appbuilder"
	pgDatabase = "appbuilder_test"
)

// Tables emptied between tests, children first.
var cleanedTables = []string{"chat_messages", "orphaned_databases", "projects"}

var (
	containerOnce sync.Once
	containerErr  error
	pool          *dockertest.Pool
	container     *dockertest.Resource
	sharedDB      *gorm.DB
	sharedConfig  *config.Config
)

// BaseTestSuite gives repository suites a migrated Postgres shared by the whole run
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	containerOnce.Do(func() { containerErr = startPostgres() })
	if containerErr != nil {
		t.Fatalf("postgres container: %v", containerErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer closes the pool and purges the container. TestMain calls it once.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if pool != nil && container != nil {
		if err := pool.Purge(container); err != nil {
			logrus.WithError(err).Warn("Could not purge postgres container")
		}
		container = nil
		pool = nil
	}
}

func (s *BaseTestSuite) SetupTest()         { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest()      { s.CleanTestDB() }
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every table the repositories write to
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	migrator := s.DB.Migrator()
	for _, table := range cleanedTables {
		if migrator.HasTable(table) {
			s.DB.Exec(`TRUNCATE TABLE "` + table + `" RESTART IDENTITY CASCADE`)
		}
	}
}

func startPostgres() error {
	var err error
	pool, err = dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}

	container, err = pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}

	port := container.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		// The server accepts TCP before it accepts logins; ping with a plain
		// connection before migrating.
		conn, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer conn.Close()
		if err := conn.Ping(); err != nil {
			return err
		}

		db, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		sharedDB = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	sharedConfig = &config.Config{
		DatabaseURL: dsn,
		Port:        "8080",
		LogLevel:    "debug",
		Environment: "test",
	}
	logrus.Infof("Test postgres ready on port %s", port)
	return nil
}
