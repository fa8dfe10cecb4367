// Package sqlsource loads chart data points from a SQL query.
//
// The query must return two columns, key then value:
//
//	SELECT region, SUM(sales) FROM orders GROUP BY region
//
// Drivers "sqlite" (modernc.org/sqlite, pure Go) and "pgx"
// (PostgreSQL via github.com/jackc/pgx/v5/stdlib) are linked in.
package sqlsource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/gogpu/pie"
)

// Errors.
var (
	ErrUnsupportedDriver = errors.New("sqlsource: unsupported driver")
	ErrNoQuery           = errors.New("sqlsource: empty query")
)

// Open opens a database with one of the linked drivers. SQLite databases
// use a single connection so an in-memory database is shared by every
// statement.
func Open(driver, dsn string) (*sql.DB, error) {
	driver = strings.ToLower(strings.TrimSpace(driver))
	switch driver {
	case "sqlite", "pgx":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: open %s: %w", driver, err)
	}
	if driver == "sqlite" {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}
	return db, nil
}

// Load runs query and returns one data point per row. A NULL key reads as
// the empty string; a NULL value is an error.
func Load(ctx context.Context, db *sql.DB, query string) ([]pie.DataPoint, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrNoQuery
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: query: %w", err)
	}
	defer rows.Close()

	var points []pie.DataPoint
	for row := 1; rows.Next(); row++ {
		var (
			key   sql.NullString
			value sql.NullFloat64
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("sqlsource: row %d: %w", row, err)
		}
		if !value.Valid {
			return nil, fmt.Errorf("sqlsource: row %d: null value for key %q", row, key.String)
		}
		points = append(points, pie.DataPoint{Key: key.String, Value: value.Float64})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlsource: rows: %w", err)
	}
	pie.Logger().Debug("sqlsource: loaded", "points", len(points))
	return points, nil
}

// LoadDSN opens the database, runs query and closes it again.
func LoadDSN(ctx context.Context, driver, dsn, query string) ([]pie.DataPoint, error) {
	db, err := Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return Load(ctx, db, query)
}
