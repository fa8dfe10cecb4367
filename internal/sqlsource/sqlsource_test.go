package sqlsource

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pie"
)

func seed(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `CREATE TABLE sales (region TEXT, amount REAL)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO sales VALUES ('north', 2), ('south', 3.5), ('north', 1)`)
	require.NoError(t, err)
}

func TestLoadSQLite(t *testing.T) {
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	seed(t, db)

	points, err := Load(context.Background(), db,
		`SELECT region, SUM(amount) FROM sales GROUP BY region ORDER BY region`)
	require.NoError(t, err)
	assert.Equal(t, []pie.DataPoint{
		{Key: "north", Value: 3},
		{Key: "south", Value: 3.5},
	}, points)
}

func TestLoadNullValue(t *testing.T) {
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	seed(t, db)

	_, err = Load(context.Background(), db, `SELECT 'x', NULL`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null value")
}

func TestLoadErrors(t *testing.T) {
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = Load(context.Background(), db, "  ")
	assert.ErrorIs(t, err, ErrNoQuery)

	_, err = Load(context.Background(), db, `SELECT * FROM missing`)
	assert.Error(t, err)

	_, err = Open("oracle", "")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestLoadDSN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.db")
	db, err := Open("sqlite", path)
	require.NoError(t, err)
	seed(t, db)
	require.NoError(t, db.Close())

	points, err := LoadDSN(context.Background(), "SQLite", path,
		`SELECT region, amount FROM sales WHERE region = 'south'`)
	require.NoError(t, err)
	assert.Equal(t, []pie.DataPoint{{Key: "south", Value: 3.5}}, points)
}
