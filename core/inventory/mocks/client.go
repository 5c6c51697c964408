package mocks

import (
	"context"

	"inventory-seeder/core/catalog"
	"inventory-seeder/core/inventory"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of inventory.Client
type Client struct {
	mock.Mock
}

func (m *Client) Find(ctx context.Context, kind catalog.Kind, filter inventory.Filter) (inventory.Record, bool, error) {
	args := m.Called(ctx, kind, filter)
	rec, _ := args.Get(0).(inventory.Record)
	return rec, args.Bool(1), args.Error(2)
}

func (m *Client) Create(ctx context.Context, kind catalog.Kind, payload map[string]any) (inventory.Record, error) {
	args := m.Called(ctx, kind, payload)
	rec, _ := args.Get(0).(inventory.Record)
	return rec, args.Error(1)
}

func (m *Client) Patch(ctx context.Context, kind catalog.Kind, id int, fields map[string]any) (inventory.Record, error) {
	args := m.Called(ctx, kind, id, fields)
	rec, _ := args.Get(0).(inventory.Record)
	return rec, args.Error(1)
}
