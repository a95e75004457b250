package database

import (
	"path/filepath"
	"testing"
	"time"

	"budget-ledger/internal/config"
	"budget-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:          DriverSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "ledger.db"),
		MaxConnections:  5,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}
}

func TestNew_SQLite(t *testing.T) {
	db, err := New(sqliteConfig(t))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate())
	assert.NoError(t, db.HealthCheck())
	assert.NoError(t, db.CreateIndexes())

	run := CreateTestReportRun(t, db, models.ReportRunStatusCompleted, models.ReportRunSourceCLI)

	var stored models.ReportRun
	require.NoError(t, db.First(&stored, "id = ?", run.ID).Error)
	assert.Equal(t, "ledger.xlsx", stored.SourceName)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "oracle"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestInitialize_AutoMigratesWithoutRunner(t *testing.T) {
	t.Setenv("AUTO_MIGRATE", "false")

	cfg := &config.Config{Database: *sqliteConfig(t)}
	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.Migrator().HasTable(&models.ReportRun{}))
}

func TestNew_RunMigrations_SQLite(t *testing.T) {
	db, err := New(sqliteConfig(t))
	require.NoError(t, err)
	defer db.Close()

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)

	runner := &MigrationRunner{
		db:             sqlDB,
		driver:         DriverSQLite,
		migrationsPath: filepath.Join("..", "..", migrationsRoot, DriverSQLite),
	}

	require.NoError(t, runner.RunMigrations())

	version, dirty, err := runner.GetMigrationStatus()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	// gorm writes into the table created by the SQL migration
	run := CreateTestReportRun(t, db, models.ReportRunStatusDegraded, models.ReportRunSourceHTTP)
	run.AddWarning("totals", "missing columns 총지급액")
	require.NoError(t, db.Save(run).Error)

	var stored models.ReportRun
	require.NoError(t, db.First(&stored, "id = ?", run.ID).Error)
	assert.Equal(t, "missing columns 총지급액", stored.GetWarning("totals", ""))

	// a second run is a no-op
	assert.NoError(t, runner.RunMigrations())
}
