package sqldb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"order-intake/pkg/sqldb"
)

func TestOpenSQLite(t *testing.T) {
	db, err := sqldb.Open(context.Background(), sqldb.Config{Driver: sqldb.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	require.Equal(t, 1, one)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := sqldb.Open(context.Background(), sqldb.Config{Driver: "mysql", DSN: "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown db driver")
}

func TestOpenSQLiteRequiresDSN(t *testing.T) {
	_, err := sqldb.Open(context.Background(), sqldb.Config{Driver: sqldb.DriverSQLite})
	require.Error(t, err)
}
