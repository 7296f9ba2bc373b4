package md

import (
	"io"
	"log/slog"
)

// DefaultCharsPerPage is the soft page budget used when none is given.
const DefaultCharsPerPage = 2000

// Option configures Parse, Paginate and Layout.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the sink for diagnostic traces. A nil logger discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
