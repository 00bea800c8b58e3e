package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/loginkeeper/internal/client/config"
	"github.com/dmitrijs2005/loginkeeper/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(kind config.StoreKind, path string) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StoreKind = kind
	cfg.StorePath = path
	return cfg
}

func TestOpen_SQLite_MigratesAndPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "loginkeeper.db")

	repo, closer, err := Open(ctx, testConfig(config.StoreSQLite, path))
	require.NoError(t, err)
	require.IsType(t, &metadata.SQLiteRepository{}, repo)
	require.NoError(t, repo.Set(ctx, "loginUser", []byte(`{"userName":"alice"}`)))
	require.NoError(t, closer.Close())

	// reopening runs migrations again and must keep the data
	repo, closer, err = Open(ctx, testConfig(config.StoreSQLite, path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	v, err := repo.Get(ctx, "loginUser")
	require.NoError(t, err)
	assert.Equal(t, `{"userName":"alice"}`, string(v))
}

func TestOpen_File(t *testing.T) {
	repo, closer, err := Open(context.Background(), testConfig(config.StoreFile, filepath.Join(t.TempDir(), "s.json")))
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	assert.IsType(t, &metadata.FileRepository{}, repo)
}

func TestOpen_Memory(t *testing.T) {
	repo, closer, err := Open(context.Background(), testConfig(config.StoreMemory, ""))
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	assert.IsType(t, &metadata.MemoryRepository{}, repo)
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(config.StoreRedis, "")
	cfg.RedisAddr = mr.Addr()

	repo, closer, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	require.NoError(t, repo.Set(context.Background(), "loginUser", []byte("x")))
	assert.True(t, mr.Exists(cfg.RedisPrefix+"loginUser"))
}

func TestOpen_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig(config.StoreRedis, "")
	cfg.RedisAddr = addr

	_, _, err := Open(context.Background(), cfg)
	require.Error(t, err)
}

func TestOpen_UnknownKind(t *testing.T) {
	_, _, err := Open(context.Background(), testConfig("etcd", ""))
	require.ErrorIs(t, err, ErrUnknownStoreKind)
}

func TestInitDatabase_InMemory(t *testing.T) {
	db, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	assert.Zero(t, n)
}

func TestOpen_SQLite_CreatesStoreDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "loginkeeper.db")

	repo, closer, err := Open(ctx, testConfig(config.StoreSQLite, path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	require.NoError(t, repo.Set(ctx, "loginUser", []byte(`{"userName":"alice"}`)))
	assert.FileExists(t, path)
}
