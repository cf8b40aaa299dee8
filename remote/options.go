package remote

// Config holds encoding parameters.
type Config struct {
	// RepeatCount is the container's extra-transmission count
	// (0 = the blaster sends the code once)
	RepeatCount uint8
}

// defaultConfig returns the default encoding configuration.
func defaultConfig() Config {
	return Config{RepeatCount: 0}
}

// Option is a functional option for the encode entry points.
type Option func(*Config)

// WithRepeatCount sets the container's repeat count.
//
// Example:
//
//	capture, err := remote.EncodeHex(state, remote.WithRepeatCount(1))
func WithRepeatCount(n uint8) Option {
	return func(c *Config) {
		c.RepeatCount = n
	}
}
