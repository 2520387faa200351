package repository

import (
	"context"
	"testing"

	"github.com/akinalp/serverdir/models"
	"github.com/akinalp/serverdir/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelRepo_CreateLowercasesName(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	owner := r.user(t, "owner")
	s := r.server(t, "s", owner, r.category(t, "Misc"))

	ch := &models.Channel{Name: " General-Chat ", Topic: "hello", OwnerID: owner.ID, ServerID: s.ID}
	require.NoError(t, r.channels.Create(ctx, ch))
	assert.Equal(t, "general-chat", ch.Name)

	byServer, err := r.channels.GetByServerIDs(ctx, []int64{s.ID})
	require.NoError(t, err)
	require.Len(t, byServer[s.ID], 1)
	assert.Equal(t, "general-chat", byServer[s.ID][0].Name)
	assert.Equal(t, "hello", byServer[s.ID][0].Topic)
}

func TestChannelRepo_CreateErrors(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	owner := r.user(t, "owner")
	s := r.server(t, "s", owner, r.category(t, "Misc"))

	err := r.channels.Create(ctx, &models.Channel{Name: "   ", OwnerID: owner.ID, ServerID: s.ID})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	err = r.channels.Create(ctx, &models.Channel{Name: "x", OwnerID: owner.ID, ServerID: s.ID + 10})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestChannelRepo_GetByServerIDs(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	owner := r.user(t, "owner")
	cat := r.category(t, "Misc")
	a := r.server(t, "a", owner, cat)
	b := r.server(t, "b", owner, cat)

	for _, name := range []string{"one", "two"} {
		require.NoError(t, r.channels.Create(ctx, &models.Channel{Name: name, OwnerID: owner.ID, ServerID: a.ID}))
	}
	require.NoError(t, r.channels.Create(ctx, &models.Channel{Name: "three", OwnerID: owner.ID, ServerID: b.ID}))

	empty, err := r.channels.GetByServerIDs(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	byServer, err := r.channels.GetByServerIDs(ctx, []int64{a.ID})
	require.NoError(t, err)
	require.Len(t, byServer[a.ID], 2)
	assert.Equal(t, "one", byServer[a.ID][0].Name)
	assert.Equal(t, "two", byServer[a.ID][1].Name)
	_, hasB := byServer[b.ID]
	assert.False(t, hasB)
}
