package batch

import (
	"runtime"

	"github.com/datatrails/go-datatrails-common/logger"
	"go.uber.org/zap"
)

// VerifierOptions configures a Verifier
type VerifierOptions struct {
	// workers bounds the number of jobs verified at once
	workers int
	log     logger.Logger
}

type VerifierOption func(*VerifierOptions)

// NewVerifierOptions returns the defaults with opts applied. A worker count
// below one means GOMAXPROCS.
func NewVerifierOptions(opts ...VerifierOption) VerifierOptions {
	options := VerifierOptions{}
	for _, o := range opts {
		o(&options)
	}
	if options.workers < 1 {
		options.workers = runtime.GOMAXPROCS(0)
	}
	if options.log == nil {
		options.log = defaultLogger()
	}
	return options
}

func WithWorkers(n int) VerifierOption {
	return func(o *VerifierOptions) {
		o.workers = n
	}
}

func WithLogger(log logger.Logger) VerifierOption {
	return func(o *VerifierOptions) {
		o.log = log
	}
}

func (o VerifierOptions) Workers() int { return o.workers }

// defaultLogger is the process logger, or a discarding one when logger.New has
// not been called.
func defaultLogger() logger.Logger {
	if logger.Sugar == nil {
		return &logger.WrappedLogger{SugaredLogger: zap.NewNop().Sugar()}
	}
	return logger.Sugar.WithServiceName("batch")
}
