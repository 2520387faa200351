package repository

import (
	"context"
	"testing"

	"github.com/akinalp/serverdir/models"
	"github.com/akinalp/serverdir/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	u := r.user(t, "alice")
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	err := r.users.Create(ctx, &models.User{Username: "alice"})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)

	got, err := r.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	require.NoError(t, r.users.Delete(ctx, u.ID))
	_, err = r.users.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	assert.ErrorIs(t, r.users.Delete(ctx, u.ID), pkg.ErrNotFound)
}

func TestCategoryRepo(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	all, err := r.categories.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	desc := "games"
	g := &models.Category{Name: " Gaming ", Description: &desc}
	require.NoError(t, r.categories.Create(ctx, g))
	s := r.category(t, "Study")

	assert.ErrorIs(t, r.categories.Create(ctx, &models.Category{Name: ""}), pkg.ErrBadRequest)

	all, err = r.categories.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Gaming", all[0].Name)
	assert.Equal(t, s.ID, all[1].ID)

	got, err := r.categories.GetByID(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "games", *got.Description)

	require.NoError(t, r.categories.Delete(ctx, g.ID))
	_, err = r.categories.GetByID(ctx, g.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
