package demo

import "context"

// DemoService fills and empties a showcase dataset. Clearing removes only
// demo entries; workers stay registered.
type DemoService interface {
	Seed(ctx context.Context) (SeedResponse, error)
	Clear(ctx context.Context) (ClearResponse, error)
}
