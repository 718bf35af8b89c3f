package integrationtestutil

import (
	"context"
	"log"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/l3montree-dev/fixflow/database"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitSQLiteDatabase creates a file backed sqlite database in the test temp dir with the
// schema derived from the models. A single connection serializes all writes.
func InitSQLiteDatabase(t testing.TB) shared.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "fixflow.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open sqlite database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not get sqlite connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Project{},
		&models.Message{},
		&models.Fragment{},
		&models.ErrorLog{},
		&models.ProposedFix{},
	); err != nil {
		t.Fatalf("could not migrate sqlite database: %v", err)
	}
	return db
}

// InitDatabaseContainer starts a postgres container and applies the embedded migrations.
func InitDatabaseContainer() (shared.DB, func()) {
	ctx := context.Background()

	dbName := "fixflow"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	pool, err := database.NewPgxConnPool(database.PoolConfig{
		User:            dbUser,
		Password:        dbPassword,
		Host:            host,
		Port:            port.Port(),
		DBName:          dbName,
		MaxOpenConns:    10,
		MinConns:        1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 10 * time.Minute,
	})
	if err != nil {
		log.Printf("failed to connect to database: %s", err)
		panic(err)
	}

	db, err := database.NewGormDB(pool)
	if err != nil {
		log.Printf("failed to open gorm: %s", err)
		panic(err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		log.Printf("failed to run migrations: %s", err)
		panic(err)
	}

	return db, func() {
		pool.Close()
		terminate()
	}
}
