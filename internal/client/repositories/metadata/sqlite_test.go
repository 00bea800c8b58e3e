package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/loginkeeper/internal/client/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// setupDB returns an in-memory database migrated with the embedded schema.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpContext(context.Background(), db, "."))
	return db
}

func TestSQLite_BinaryValueRoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	blob := []byte{0x00, 0xff, 0xfe, '{', 0x00, '}'}
	require.NoError(t, r.Set(ctx, "loginUser", blob))

	v, err := r.Get(ctx, "loginUser")
	require.NoError(t, err)
	assert.Equal(t, blob, v)

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, blob, m["loginUser"])
}

func TestSQLite_NullValueFromOlderSchemaListsAsNil(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB);`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO metadata(key, value) VALUES ('loginUser', NULL);`)
	require.NoError(t, err)

	m, err := NewSQLiteRepository(db).List(context.Background())
	require.NoError(t, err)
	v, ok := m["loginUser"]
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestSQLite_WorksInsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteRepository(tx).Set(ctx, "loginUser", []byte(`{"userName":"alice"}`)))
	require.NoError(t, tx.Rollback())

	v, err := NewSQLiteRepository(db).Get(ctx, "loginUser")
	require.NoError(t, err)
	assert.Nil(t, v, "rolled back write must not be visible")
}

func TestSQLite_MigrationDownDropsTable(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	r := NewSQLiteRepository(db)
	require.NoError(t, r.Set(ctx, "loginUser", []byte(`{"userName":"alice"}`)))

	require.NoError(t, goose.DownContext(ctx, db, "."))

	_, err := r.Get(ctx, "loginUser")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get metadata[loginUser]")
}

func TestSQLite_DriverErrorsWrapped(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		op   func(r *SQLiteRepository) error
		want string
	}{
		{name: "get", op: func(r *SQLiteRepository) error { _, err := r.Get(ctx, "loginUser"); return err }, want: "failed to get metadata[loginUser]"},
		{name: "set", op: func(r *SQLiteRepository) error { return r.Set(ctx, "loginUser", []byte("v")) }, want: "failed to set metadata[loginUser]"},
		{name: "delete", op: func(r *SQLiteRepository) error { return r.Delete(ctx, "loginUser") }, want: "failed to delete metadata[loginUser]"},
		{name: "clear", op: func(r *SQLiteRepository) error { return r.Clear(ctx) }, want: "failed to clear metadata"},
		{name: "list", op: func(r *SQLiteRepository) error { _, err := r.List(ctx); return err }, want: "failed to list metadata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupDB(t)
			require.NoError(t, db.Close())

			err := tt.op(NewSQLiteRepository(db))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
