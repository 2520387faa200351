package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerQuery_EmptyBuildsPlainSelect(t *testing.T) {
	sql, args := NewServerQuery().build()

	assert.Contains(t, sql, "FROM servers s JOIN categories c")
	assert.Contains(t, sql, "NULL AS num_members")
	assert.True(t, strings.HasSuffix(sql, "ORDER BY s.id ASC"))
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestServerQuery_FiltersAreAndedInOrder(t *testing.T) {
	sql, args := NewServerQuery().
		FilterByCategoryName("Gaming").
		FilterByMember(7).
		WithMemberCount().
		build()

	assert.Contains(t, sql, "WHERE c.name = ? AND EXISTS (")
	assert.Contains(t, sql, "(SELECT COUNT(*) FROM server_members m WHERE m.server_id = s.id) AS num_members")
	assert.Equal(t, []any{"Gaming", int64(7)}, args)
}

func TestServerQuery_IsImmutable(t *testing.T) {
	base := NewServerQuery().FilterByCategoryName("Gaming")
	limited := base.Limit(2)
	_ = base.FilterByID(1)
	_ = limited.WithMemberCount()

	baseSQL, baseArgs := base.build()
	assert.NotContains(t, baseSQL, "LIMIT")
	assert.Equal(t, []any{"Gaming"}, baseArgs)
	assert.False(t, base.CountsMembers())

	limitedSQL, limitedArgs := limited.build()
	assert.NotContains(t, limitedSQL, "AS w1")
	assert.Equal(t, []any{"Gaming", 2}, limitedArgs)
	assert.False(t, limited.CountsMembers())
}

func TestServerQuery_FilterAfterLimitWrapsSubselect(t *testing.T) {
	sql, args := NewServerQuery().Limit(3).FilterByID(5).build()

	require.True(t, strings.HasPrefix(sql, "SELECT * FROM (SELECT s.id AS id"))
	assert.Contains(t, sql, "LIMIT ?) AS w1 WHERE w1.id = ? ORDER BY w1.id ASC")
	assert.Equal(t, []any{3, int64(5)}, args)
}

func TestServerQuery_Limit(t *testing.T) {
	tests := []struct {
		name  string
		query ServerQuery
		want  []any
	}{
		{"single", NewServerQuery().Limit(4), []any{4}},
		{"smaller wins", NewServerQuery().Limit(4).Limit(9), []any{4}},
		{"smaller wins reversed", NewServerQuery().Limit(9).Limit(4), []any{4}},
		{"negative clamps to zero", NewServerQuery().Limit(-1), []any{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.query.build()
			assert.Equal(t, 1, strings.Count(sql, "LIMIT ?"))
			assert.Equal(t, tt.want, args)
		})
	}
}
