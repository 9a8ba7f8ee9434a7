package encrypt

// LoadOption configures how ASCII-safe serializations are decoded.
type LoadOption func(*loadConfig)

type loadConfig struct {
	trim bool
}

// WithoutWhitespaceTrimming disables the default removal of trailing
// whitespace before decoding. Use it when the serialized value is known to
// be byte-exact and a trailing-whitespace difference should be an error.
func WithoutWhitespaceTrimming() LoadOption {
	return func(c *loadConfig) {
		c.trim = false
	}
}

func applyLoadOptions(opts []LoadOption) loadConfig {
	cfg := loadConfig{trim: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
