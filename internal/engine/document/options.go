package document

import "github.com/dshills/editkit/internal/engine/textstore"

// docConfig holds construction settings for a Document.
type docConfig struct {
	storeOpts []textstore.Option
}

// Option is a functional option for configuring a Document.
type Option func(*docConfig)

// WithStoreCapacity sets the initial gap capacity of the backing store.
func WithStoreCapacity(n int) Option {
	return func(cfg *docConfig) {
		cfg.storeOpts = append(cfg.storeOpts, textstore.WithCapacity(n))
	}
}
