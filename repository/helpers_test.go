package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/akinalp/serverdir/database"
	"github.com/akinalp/serverdir/models"
	"github.com/stretchr/testify/require"
)

// testRepos, gerçek (geçici dosyalı) SQLite üzerinde kurulan repository seti.
type testRepos struct {
	db         *database.DB
	users      UserRepository
	categories CategoryRepository
	servers    ServerRepository
	channels   ChannelRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "repo.db"), database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &testRepos{
		db:         db,
		users:      NewSQLiteUserRepo(db.Conn),
		categories: NewSQLiteCategoryRepo(db.Conn),
		servers:    NewSQLiteServerRepo(db.Conn),
		channels:   NewSQLiteChannelRepo(db.Conn),
	}
}

func (r *testRepos) user(t *testing.T, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name}
	require.NoError(t, r.users.Create(context.Background(), u))
	return u
}

func (r *testRepos) category(t *testing.T, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	require.NoError(t, r.categories.Create(context.Background(), c))
	return c
}

func (r *testRepos) server(t *testing.T, name string, owner *models.User, cat *models.Category, members ...*models.User) *models.Server {
	t.Helper()
	ids := make([]int64, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	s := &models.Server{Name: name, OwnerID: owner.ID, CategoryID: cat.ID}
	require.NoError(t, r.servers.Create(context.Background(), s, ids...))
	return s
}

func serverIDs(servers []models.Server) []int64 {
	ids := make([]int64, len(servers))
	for i, s := range servers {
		ids[i] = s.ID
	}
	return ids
}
