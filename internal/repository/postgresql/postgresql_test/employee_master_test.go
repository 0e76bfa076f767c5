package postgresql_test

import (
	"context"
	"testing"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEmployeeMaster(t *testing.T) (*TestDatabaseSetup, context.Context) {
	t.Helper()
	ctx := context.Background()

	setup, ok, err := NewTestDatabase()
	if !ok {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, err)
	t.Cleanup(setup.Close)

	require.NoError(t, postgresql.EnsureEmployeeMasterSchema(ctx, setup.DB))
	require.NoError(t, setup.TruncateAllTables(ctx))
	return setup, ctx
}

func TestEmployeeMasterRepository_Load_Empty(t *testing.T) {
	setup, ctx := setupEmployeeMaster(t)
	repo := postgresql.NewEmployeeMasterRepository(setup.DB)

	tbl, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, employee.ColumnNames(), tbl.Columns)
	assert.Empty(t, tbl.Records)
}

func TestEmployeeMasterRepository_SaveLoad(t *testing.T) {
	setup, ctx := setupEmployeeMaster(t)
	repo := postgresql.NewEmployeeMasterRepository(setup.DB)

	first := employee.Employee{ECNumber: "EC001", BasicSalary: decimal.NewFromInt(10000), Status: employee.StatusActive}
	first.SetNames("RAO", "ANIL", "")
	second := employee.Employee{ECNumber: "EC002", Status: employee.StatusResigned, Extra: map[string]string{"Grade": "B1"}}

	tbl := employee.NewTable()
	tbl.EnsureColumns("Grade")
	tbl.Records = []employee.Employee{first, second}
	require.NoError(t, repo.Save(ctx, tbl))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns, got.Columns)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "EC001", got.Records[0].ECNumber)
	assert.Equal(t, "RAO ANIL", got.Records[0].FullName)
	assert.True(t, got.Records[0].BasicSalary.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, "B1", got.Records[1].Cell("Grade"))

	// a second save replaces rather than appends
	tbl.Records = tbl.Records[:1]
	require.NoError(t, repo.Save(ctx, tbl))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Records, 1)
}
