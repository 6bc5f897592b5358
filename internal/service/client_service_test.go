package service

import (
	"context"
	"errors"
	"testing"

	"go-sales-rest/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientRequest(email string, payMethods ...int64) *model.ClientRequest {
	return &model.ClientRequest{
		Name:       "Luis",
		Surname:    "Garcia",
		Email:      email,
		Phone:      "611111111",
		Address:    "Gran Via 2",
		PayMethods: payMethods,
	}
}

func TestCreateAndGetClient(t *testing.T) {
	f := newFixture(t)
	svc := NewClientService(f.clientRepo)
	ctx := context.Background()

	created, err := svc.CreateClient(ctx, clientRequest("luis@example.com", 2, 5), "1")
	require.NoError(t, err)

	got, err := svc.GetClient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "luis@example.com", got.Email)
	assert.Equal(t, []int64{2, 5}, got.PayMethodIDs())

	_, err = svc.CreateClient(ctx, clientRequest("luis@example.com"), "1")
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "email", conflict.Field)

	_, err = svc.CreateClient(ctx, clientRequest("not-an-email"), "1")
	var ia *InvalidArgumentError
	assert.True(t, errors.As(err, &ia))

	_, err = svc.GetClient(ctx, 31337)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestUpdateClientReplacesPayMethods(t *testing.T) {
	f := newFixture(t)
	svc := NewClientService(f.clientRepo)
	ctx := context.Background()
	c := f.client(t, "ana@example.com")
	f.client(t, "taken@example.com")

	updated, err := svc.UpdateClient(ctx, c.ID, clientRequest("ana.new@example.com", 9), "2")
	require.NoError(t, err)
	assert.Equal(t, c.ID, updated.ID)
	assert.Equal(t, "Luis", updated.Name)
	assert.Equal(t, []int64{9}, updated.PayMethodIDs())

	var rows int64
	require.NoError(t, f.db.Model(&model.ClientPayMethod{}).Where("client_id = ?", c.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	_, err = svc.UpdateClient(ctx, c.ID, clientRequest("taken@example.com"), "2")
	var conflict *ConflictError
	assert.True(t, errors.As(err, &conflict))

	_, err = svc.UpdateClient(ctx, 999, clientRequest("x@example.com"), "2")
	assert.ErrorIs(t, err, ErrClientNotFound)
}
