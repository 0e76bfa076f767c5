package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/balsons/erp-backend-go/internal/pkg/database"
)

// TestDatabaseSetup wraps the connection used by repository tests
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL; ok is false when it is unset.
func NewTestDatabase() (setup *TestDatabaseSetup, ok bool, err error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, false, nil
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		return nil, true, fmt.Errorf("failed to connect to test database: %w", err)
	}

	return &TestDatabaseSetup{DB: db}, true, nil
}

// TruncateAllTables clears the employee master relations
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"employee_master_rows",
		"employee_master_columns",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close closes the database connection
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
