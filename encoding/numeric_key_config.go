package encoding

import (
	"fmt"

	"github.com/arloliu/ordkey/errs"
	"github.com/arloliu/ordkey/internal/options"
	"github.com/arloliu/ordkey/internal/pool"
)

// DefaultInitialCapacity is the initial buffer capacity of a NumericKeyEncoder.
// It holds more than a hundred encoded values, enough for typical composite keys
// without reallocating.
const DefaultInitialCapacity = pool.KeyBufferDefaultSize

// NumericKeyEncoderConfig holds construction settings for NumericKeyEncoder.
type NumericKeyEncoderConfig struct {
	initialCapacity int
	pooled          bool
}

func newNumericKeyEncoderConfig() *NumericKeyEncoderConfig {
	return &NumericKeyEncoderConfig{
		initialCapacity: DefaultInitialCapacity,
		pooled:          true,
	}
}

// InitialCapacity returns the configured initial buffer capacity.
func (c *NumericKeyEncoderConfig) InitialCapacity() int {
	return c.initialCapacity
}

// Pooled reports whether the encoder buffer is taken from the shared key buffer pool.
// Pooling only applies to the default capacity.
func (c *NumericKeyEncoderConfig) Pooled() bool {
	return c.pooled && c.initialCapacity == DefaultInitialCapacity
}

func (c *NumericKeyEncoderConfig) setInitialCapacity(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCapacity, n)
	}
	c.initialCapacity = n

	return nil
}

// NumericKeyEncoderOption represents a functional option for configuring the NumericKeyEncoderConfig.
type NumericKeyEncoderOption = options.Option[*NumericKeyEncoderConfig]

// WithInitialCapacity sets the initial buffer capacity in bytes.
//
// Returns errs.ErrInvalidCapacity if n is not positive. A capacity other than
// DefaultInitialCapacity always allocates a private buffer.
func WithInitialCapacity(n int) NumericKeyEncoderOption {
	return func(c *NumericKeyEncoderConfig) error {
		return c.setInitialCapacity(n)
	}
}

// WithPooledBuffer controls whether the default-sized buffer comes from the shared key
// buffer pool. It is enabled by default; Finish returns pooled buffers.
func WithPooledBuffer(enabled bool) NumericKeyEncoderOption {
	return options.NoError(func(c *NumericKeyEncoderConfig) {
		c.pooled = enabled
	})
}
