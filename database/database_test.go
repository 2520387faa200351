package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AppliesEmbeddedMigrations(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "dir.db"), Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"users", "categories", "servers", "server_members", "channels"} {
		var n int
		err := db.Conn.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "table %s", table)
	}

	var fk int
	require.NoError(t, db.Conn.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestNew_ReopenSkipsAppliedMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir.db")
	migrations := fstest.MapFS{
		"001_a.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
		// Tekrar çalışırsa "table b already exists" ile patlar.
		"002_b.sql": {Data: []byte("CREATE TABLE b (id INTEGER); INSERT INTO b VALUES (1);")},
	}

	db, err := New(path, migrations)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = New(path, migrations)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var rows int
	require.NoError(t, db.Conn.QueryRow(`SELECT COUNT(*) FROM b`).Scan(&rows))
	assert.Equal(t, 1, rows)

	var applied int
	require.NoError(t, db.Conn.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 2, applied)
}

func TestNew_FailedMigrationIsNotRecorded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir.db")
	broken := fstest.MapFS{
		"001_ok.sql":  {Data: []byte("CREATE TABLE ok (id INTEGER);")},
		"002_bad.sql": {Data: []byte("CREATE TABLE half (id INTEGER); CREATE TABEL nope;")},
	}

	_, err := New(path, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_bad.sql")

	fixed := fstest.MapFS{
		"001_ok.sql":  broken["001_ok.sql"],
		"002_bad.sql": {Data: []byte("CREATE TABLE half (id INTEGER);")},
	}
	db, err := New(path, fixed)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
}

func TestSplitStatements(t *testing.T) {
	script := `
-- yorum; noktalı virgül burada sayılmaz
CREATE TABLE t (v TEXT);
INSERT INTO t VALUES ('a;b');
INSERT INTO t VALUES ('it''s');
SELECT 1`

	got := splitStatements(script)
	require.Len(t, got, 4)
	assert.Equal(t, "CREATE TABLE t (v TEXT)", got[0])
	assert.Equal(t, "INSERT INTO t VALUES ('a;b')", got[1])
	assert.Equal(t, "INSERT INTO t VALUES ('it''s')", got[2])
	assert.Equal(t, "SELECT 1", got[3])
}

func TestWithTx(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "tx.db"), fstest.MapFS{
		"001.sql": {Data: []byte("CREATE TABLE n (v INTEGER);")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	ctx := context.Background()

	count := func() int {
		var n int
		require.NoError(t, db.Conn.QueryRow(`SELECT COUNT(*) FROM n`).Scan(&n))
		return n
	}

	err = WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO n VALUES (1)`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count())

	boom := errors.New("boom")
	err = WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO n VALUES (2)`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, count())

	assert.Panics(t, func() {
		_ = WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO n VALUES (3)`)
			panic("kaboom")
		})
	})
	assert.Equal(t, 1, count())
}
