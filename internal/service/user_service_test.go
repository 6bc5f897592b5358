package service

import (
	"context"
	"testing"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(repository.NewUserRepo(f.db))
	ctx := context.Background()

	for _, u := range []model.UserRequest{{Name: "Ana", Age: 20}, {Name: "Luis", Age: 40}, {Name: "Ana", Age: 50}} {
		u := u
		_, err := svc.CreateUser(ctx, &u, "1")
		require.NoError(t, err)
	}

	_, err := svc.CreateUser(ctx, &model.UserRequest{Age: 3}, "1")
	var ia *InvalidArgumentError
	assert.ErrorAs(t, err, &ia)

	all, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	got, err := svc.GetUser(ctx, all[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Luis", got.Name)
	_, err = svc.GetUser(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	name, older := "Ana", 30
	byName, err := svc.SearchUsers(ctx, &name, nil)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, 20, byName[0].Age)

	byAge, err := svc.SearchUsers(ctx, nil, &older)
	require.NoError(t, err)
	assert.Len(t, byAge, 2)

	both, err := svc.SearchUsers(ctx, &name, &older)
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, 50, both[0].Age)

	ghost := "Nadie"
	none, err := svc.SearchUsers(ctx, &ghost, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.SearchUsers(ctx, nil, nil)
	assert.ErrorIs(t, err, ErrSearchCriteriaRequired)
}
