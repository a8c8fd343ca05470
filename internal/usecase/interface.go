package usecase

import (
	"context"
)

// KeyValueStore is the durable storage the engines persist to. Values are UTF-8 text.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type KeyValueStore interface {
	// Get returns domain.ErrKeyNotFound when key has never been set.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// ClipboardWriter places text on the system clipboard through two mechanisms.
// TryFallback is only attempted after TryPrimary fails.
type ClipboardWriter interface {
	TryPrimary(ctx context.Context, text string) error
	TryFallback(ctx context.Context, text string) error
}
