package repository

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Black-png/trackers-api/migrations"
	"github.com/Black-png/trackers-api/pkg/postgres"
)

var (
	testDB     *pgxpool.Pool
	testDBOnce sync.Once
)

// SetupTestDatabase connects to TEST_POSTGRES_DSN, applies the migrations
// and empties the reference tables. The test is skipped without a DSN.
func SetupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	testDBOnce.Do(func() {
		ctx := context.Background()

		pool, err := postgres.Connect(ctx, dsn, 4)
		require.NoError(t, err)

		db := postgres.OpenDB(pool)
		defer db.Close()

		require.NoError(t, postgres.UpMigrations(db, migrations.FS))

		testDB = pool
	})

	require.NotNil(t, testDB)

	CleanupDatabase(t, testDB)

	return testDB
}

func CleanupDatabase(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"notification_templates",
		"notification_settings",
		"notifications",
		"notification_types",
		"package_operations",
		"operations",
		"packages",
		"steps",
		"equipment_sub_types",
		"equipment_types",
		"maintenance_reasons",
		"maintenance_types",
		"maintenance_statuses",
		"maintenance_priorities",
		"downtime_reasons",
		"user_area_roles",
		"user_areas",
		"roles",
		"factory_configuration",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, "DELETE FROM "+table)
		if err != nil {
			t.Logf("Warning: failed to cleanup table %s: %v", table, err)
		}
	}
}
