package textstore

// storeConfig holds construction settings for a Store.
type storeConfig struct {
	capacity int
}

// Option is a functional option for configuring a Store.
type Option func(*storeConfig)

// WithCapacity sets the initial gap capacity in runes.
// Values below one fall back to the default.
func WithCapacity(n int) Option {
	return func(cfg *storeConfig) {
		if n >= 1 {
			cfg.capacity = n
		}
	}
}
