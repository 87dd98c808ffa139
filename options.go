package signalhub

import (
	"github.com/joeycumines/logiface"
)

type (
	// Option models a configuration option for New, see also the package
	// level functions, returning values of this type.
	Option func(c *hubConfig)

	hubConfig struct {
		logger *logiface.Logger[logiface.Event]
	}
)

// WithLogger configures the hub to log operational events, at debug level
// and below, to the provided logger. The default is no logging, which may
// also be specified by providing a nil logger.
//
// Emission logging is tagged for category rate limiting, which engages only
// if the provided logger was configured with rate limits, e.g. via
// [logiface.LoggerFactory.WithCategoryRateLimits]. Note the
// [logiface.Logger.Logger] conversion method does not carry that
// configuration across, so a rate limited logger must be constructed
// natively generic, e.g. using the [logiface.L] factory.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return func(c *hubConfig) {
		c.logger = logger
	}
}
